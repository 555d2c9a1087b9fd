package future

import (
	"sync"
	"time"

	"github.com/nolawnchairs/js-types/funcs/optional"
)

const defaultTimeoutSec = 60

// Future is a single-value deferred result. The task runs on its own
// goroutine as soon as the Future is created; Get blocks until the task
// delivers or the timeout elapses, after which the zero value of T sticks.
type Future[T any] struct {
	resChan chan T
	res     T
	done    bool
	lock    *sync.Mutex
	ticker  *time.Ticker
}

// New starts task on a new goroutine. The optional timeout is in seconds
// and defaults to 60.
func New[T any](task func() T, timeoutSec ...int) *Future[T] {
	killAfterSec := defaultTimeoutSec
	if len(timeoutSec) > 0 {
		killAfterSec = timeoutSec[0]
	}
	f := &Future[T]{
		resChan: make(chan T, 1),
		lock:    &sync.Mutex{},
		ticker:  time.NewTicker(time.Duration(killAfterSec) * time.Second),
	}
	go func() {
		f.resChan <- task()
	}()
	return f
}

// Completed returns an already-resolved Future holding val.
func Completed[T any](val T) *Future[T] {
	return &Future[T]{res: val, done: true, lock: &sync.Mutex{}}
}

func (f *Future[T]) Done() bool {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.done
}

// Get waits for the result. On timeout it marks the Future done with the
// zero value of T; subsequent calls return that value immediately.
func (f *Future[T]) Get() T {
	f.lock.Lock()
	defer f.lock.Unlock()
	if f.done {
		return f.res
	}
	select {
	case f.res = <-f.resChan:
	case <-f.ticker.C:
	}
	f.settle()
	return f.res
}

// Poll returns the result if it is already available, without blocking.
func (f *Future[T]) Poll() optional.Optional[T] {
	f.lock.Lock()
	defer f.lock.Unlock()
	if f.done {
		return optional.Of(f.res)
	}
	select {
	case f.res = <-f.resChan:
		f.settle()
		return optional.Of(f.res)
	default:
		return optional.NewEmpty[T]()
	}
}

func (f *Future[T]) settle() {
	f.done = true
	f.ticker.Stop()
}

// ThenApply derives a Future that resolves to mapper applied to f's result.
func ThenApply[T, K any](f *Future[T], mapper func(T) K, timeoutSec ...int) *Future[K] {
	return New(func() K {
		return mapper(f.Get())
	}, timeoutSec...)
}
