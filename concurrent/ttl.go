package concurrent

import (
	"sync"
	"time"

	"github.com/nolawnchairs/js-types/funcs"
	"github.com/nolawnchairs/js-types/funcs/optional"
)

const defaultSweepInterval = time.Second

type ttlEntry[V any] struct {
	val   V
	added time.Time
}

// TTLMap is a mutex-guarded map whose entries a background sweeper removes
// once the expiry predicate holds for them. It also tracks the largest key
// seen, per the given comparator. Close stops the sweeper.
type TTLMap[K comparable, V any] struct {
	items      map[K]ttlEntry[V]
	expired    funcs.BiPredicate[K, time.Time]
	lock       *sync.Mutex
	comparator funcs.Comparator[K]
	maxKey     optional.Optional[K]
	stop       chan funcs.Void
}

// NewTTLMap expires entries a fixed duration after insertion. The optional
// argument overrides how often the sweeper runs.
func NewTTLMap[K comparable, V any](comparator funcs.Comparator[K], ttl time.Duration, sweepEvery ...time.Duration) *TTLMap[K, V] {
	return NewTTLMapWithPredicate[K, V](comparator, func(_ K, added time.Time) bool {
		return time.Since(added) >= ttl
	}, sweepEvery...)
}

// NewTTLMapWithPredicate expires entries for which the predicate holds,
// given the entry's key and insertion time.
func NewTTLMapWithPredicate[K comparable, V any](comparator funcs.Comparator[K], predicate funcs.BiPredicate[K, time.Time], sweepEvery ...time.Duration) *TTLMap[K, V] {
	interval := defaultSweepInterval
	if len(sweepEvery) > 0 {
		interval = sweepEvery[0]
	}
	theMap := &TTLMap[K, V]{
		items:      make(map[K]ttlEntry[V]),
		expired:    predicate,
		lock:       &sync.Mutex{},
		comparator: comparator,
		stop:       make(chan funcs.Void),
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-theMap.stop:
				return
			case <-ticker.C:
				theMap.sweep()
			}
		}
	}()
	return theMap
}

func (c *TTLMap[K, V]) Put(k K, v V) {
	DoInLock(c.lock, func() {
		c.trackKey(k)
		c.items[k] = ttlEntry[V]{val: v, added: time.Now()}
	})
}

func (c *TTLMap[K, V]) Get(k K) optional.Optional[V] {
	return DoInLockAndReturn(c.lock, func() optional.Optional[V] {
		if i, ok := c.items[k]; ok {
			return optional.Of(i.val)
		}
		return optional.NewEmpty[V]()
	})
}

func (c *TTLMap[K, V]) Delete(k K) optional.Optional[V] {
	return DoInLockAndReturn(c.lock, func() optional.Optional[V] {
		if i, ok := c.items[k]; ok {
			delete(c.items, k)
			c.retrackMaxKey(k)
			return optional.Of(i.val)
		}
		return optional.NewEmpty[V]()
	})
}

func (c *TTLMap[K, V]) ComputeIfAbsent(k K, newValSuppl funcs.Function[K, V]) V {
	return DoInLockAndReturn(c.lock, func() V {
		if i, ok := c.items[k]; ok {
			return i.val
		}
		val := newValSuppl(k)
		c.items[k] = ttlEntry[V]{val: val, added: time.Now()}
		c.trackKey(k)
		return val
	})
}

// MaxKey reports the largest live key per the comparator.
func (c *TTLMap[K, V]) MaxKey() optional.Optional[K] {
	return DoInLockAndReturn(c.lock, func() optional.Optional[K] {
		return c.maxKey
	})
}

func (c *TTLMap[K, V]) Len() int {
	return DoInLockAndReturn(c.lock, func() int {
		return len(c.items)
	})
}

func (c *TTLMap[K, V]) Close() {
	close(c.stop)
}

func (c *TTLMap[K, V]) sweep() {
	DoInLock(c.lock, func() {
		for k, i := range c.items {
			if c.expired(k, i.added) {
				delete(c.items, k)
				c.retrackMaxKey(k)
			}
		}
	})
}

// trackKey must run under the lock.
func (c *TTLMap[K, V]) trackKey(k K) {
	if c.maxKey.IsEmpty() {
		c.maxKey = optional.Of(k)
		return
	}
	c.maxKey = optional.Of(funcs.Max(*c.maxKey.Get(), k, c.comparator))
}

// retrackMaxKey recomputes the max after deleting k, under the lock.
func (c *TTLMap[K, V]) retrackMaxKey(k K) {
	if c.maxKey.IsPresent() && *c.maxKey.Get() == k {
		c.maxKey = optional.NewEmpty[K]()
		for curr := range c.items {
			c.trackKey(curr)
		}
	}
}
