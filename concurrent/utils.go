package concurrent

import (
	"sync"

	"github.com/nolawnchairs/js-types/funcs"
)

// WaitUntil polls the supplier until the predicate holds and returns the
// first matching value. The caller owns backoff; this spins.
func WaitUntil[T any](supplier funcs.Supplier[T], predicate funcs.Predicate[T]) T {
	res := supplier()
	for !predicate(res) {
		res = supplier()
	}
	return res
}

func SubmitWithWaitGroup(task funcs.Runnable, wg *sync.WaitGroup) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		task()
	}()
}

func DoInLock(lock *sync.Mutex, task funcs.Runnable) {
	lock.Lock()
	defer lock.Unlock()
	task()
}

func DoInLockAndReturn[T any](lock *sync.Mutex, supplier funcs.Supplier[T]) T {
	lock.Lock()
	defer lock.Unlock()
	return supplier()
}
