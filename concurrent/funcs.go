package concurrent

import (
	"go.uber.org/zap"

	"github.com/nolawnchairs/js-types/funcs"
	"github.com/nolawnchairs/js-types/funcs/future"
)

var logger = zap.NewNop()

// SetLogger installs the logger used for panics recovered in detached
// goroutines. Not safe to call while tasks are in flight.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Go runs the task on a detached goroutine, recovering panics. A recovered
// panic goes to the handler when one is given, otherwise to the package
// logger.
func Go(task funcs.Runnable, errorHandler ...funcs.Consumer[any]) {
	go func() {
		defer func() {
			if err := recover(); err != nil {
				if len(errorHandler) > 0 {
					errorHandler[0](err)
					return
				}
				logger.Error("recovered panic in detached task", zap.Any("panic", err))
			}
		}()
		task()
	}()
}

// SupplyAsync starts the supplier on its own goroutine and hands back the
// deferred result. The optional timeout is in seconds.
func SupplyAsync[T any](task funcs.Supplier[T], timeoutSec ...int) *future.Future[T] {
	return future.New(task, timeoutSec...)
}

// ApplyAsync applies theFunc to in on its own goroutine.
func ApplyAsync[T, K any](theFunc funcs.Function[T, K], in T, timeoutSec ...int) *future.Future[K] {
	return future.New(func() K {
		return theFunc(in)
	}, timeoutSec...)
}
