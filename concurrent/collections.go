package concurrent

import (
	"sync"

	"github.com/nolawnchairs/js-types/funcs"
	"github.com/nolawnchairs/js-types/funcs/optional"
)

// ConcurrentMap is a mutex-guarded map that reports every access to the
// registered change callbacks.
type ConcurrentMap[K comparable, V any] struct {
	internalMap map[K]V
	onChange    []funcs.BiConsumer[Entry[K, V], Operation]
	lock        *sync.Mutex
}

type Entry[K comparable, V any] struct {
	Key K
	Val V
}

type Operation int

const (
	Get Operation = iota
	Put
	Delete
)

func NewConcurrentMap[K comparable, V any](onChange ...funcs.BiConsumer[Entry[K, V], Operation]) *ConcurrentMap[K, V] {
	return &ConcurrentMap[K, V]{
		internalMap: make(map[K]V),
		lock:        &sync.Mutex{},
		onChange:    onChange,
	}
}

func (c *ConcurrentMap[K, V]) Put(k K, v V) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.internalMap[k] = v
	c.callCallback(k, v, Put)
}

func (c *ConcurrentMap[K, V]) Get(k K) optional.Optional[V] {
	c.lock.Lock()
	defer c.lock.Unlock()
	if i, ok := c.internalMap[k]; ok {
		c.callCallback(k, i, Get)
		return optional.NewWithValue(&i)
	}
	return optional.NewEmpty[V]()
}

func (c *ConcurrentMap[K, V]) Delete(k K) optional.Optional[V] {
	c.lock.Lock()
	defer c.lock.Unlock()
	if i, ok := c.internalMap[k]; ok {
		delete(c.internalMap, k)
		c.callCallback(k, i, Delete)
		return optional.NewWithValue(&i)
	}
	return optional.NewEmpty[V]()
}

// Compute stores and returns the supplied value, replacing any present one.
func (c *ConcurrentMap[K, V]) Compute(k K, newValSuppl funcs.Function[K, V]) V {
	c.lock.Lock()
	defer c.lock.Unlock()
	val := newValSuppl(k)
	c.internalMap[k] = val
	c.callCallback(k, val, Put)
	return val
}

func (c *ConcurrentMap[K, V]) ComputeIfAbsent(k K, newValSuppl funcs.Function[K, V]) V {
	c.lock.Lock()
	defer c.lock.Unlock()
	if i, ok := c.internalMap[k]; ok {
		return i
	}
	val := newValSuppl(k)
	c.internalMap[k] = val
	c.callCallback(k, val, Put)
	return val
}

func (c *ConcurrentMap[K, V]) PutIfAbsent(k K, newValSuppl funcs.Function[K, V]) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if _, ok := c.internalMap[k]; !ok {
		val := newValSuppl(k)
		c.internalMap[k] = val
		c.callCallback(k, val, Put)
	}
}

func (c *ConcurrentMap[K, V]) DeleteIf(predicate funcs.BiPredicate[K, V]) {
	c.lock.Lock()
	defer c.lock.Unlock()
	for k, i := range c.internalMap {
		if predicate(k, i) {
			delete(c.internalMap, k)
			c.callCallback(k, i, Delete)
		}
	}
}

func (c *ConcurrentMap[K, V]) ForEach(consumer funcs.BiConsumer[K, V]) {
	c.lock.Lock()
	defer c.lock.Unlock()
	for k, i := range c.internalMap {
		consumer(k, i)
	}
}

func (c *ConcurrentMap[K, V]) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return len(c.internalMap)
}

func (c *ConcurrentMap[K, V]) ReduceKeys(reducer funcs.Reducer[K]) optional.Optional[K] {
	c.lock.Lock()
	defer c.lock.Unlock()
	var res *K
	for k := range c.internalMap {
		k := k
		res = reducer(res, &k)
	}
	return optional.NewWithValue(res)
}

func (c *ConcurrentMap[K, V]) callCallback(k K, v V, operation Operation) {
	for _, fun := range c.onChange {
		fun(Entry[K, V]{k, v}, operation)
	}
}
