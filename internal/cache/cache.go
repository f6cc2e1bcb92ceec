package cache

import (
	"container/list"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/limbo/challenger/internal/metrics"
)

const (
	DefaultTTL      = 2 * time.Minute
	DefaultCapacity = 100
)

var ErrClosed = errors.New("cache is closed")

type Options struct {
	TTL      time.Duration
	Capacity int
	Clock    clockwork.Clock
}

type entry[K comparable, V any] struct {
	key      K
	value    V
	storedAt time.Time
}

// TTL is a size-bounded cache whose entries live at most ttl since they were stored.
// When full, the oldest stored entry is evicted first.
//
// Concurrent misses for a key share one load. Invalidate bumps the key's
// generation while loads are in flight, so a load that started before the
// invalidation is returned to its callers but never stored.
type TTL[K comparable, V any] struct {
	mu       sync.Mutex
	ttl      time.Duration
	capacity int
	clock    clockwork.Clock
	entries  map[K]*list.Element
	order    *list.List
	inflight map[K]int
	gens     map[K]uint64
	seq      uint64
	group    singleflight.Group
	closed   bool
}

func New[K comparable, V any](opts Options) *TTL[K, V] {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultCapacity
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	return &TTL[K, V]{
		ttl:      opts.TTL,
		capacity: opts.Capacity,
		clock:    opts.Clock,
		entries:  make(map[K]*list.Element, opts.Capacity),
		order:    list.New(),
		inflight: make(map[K]int),
		gens:     make(map[K]uint64),
	}
}

// Get returns the fresh cached value for key or loads, stores and returns it.
// The load outlives a cancelled caller so that other waiters still get the value.
func (c *TTL[K, V]) Get(ctx context.Context, key K, load func(ctx context.Context) (V, error)) (V, error) {
	var zero V
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return zero, ErrClosed
	}
	if el, ok := c.entries[key]; ok {
		e := el.Value.(*entry[K, V])
		if c.clock.Since(e.storedAt) < c.ttl {
			v := e.value
			c.mu.Unlock()
			metrics.CacheRequests.WithLabelValues("hit").Inc()
			return v, nil
		}
		c.removeLocked(el, "expired")
	}
	gen := c.gens[key]
	c.inflight[key]++
	c.mu.Unlock()
	metrics.CacheRequests.WithLabelValues("miss").Inc()

	ch := c.group.DoChan(fmt.Sprintf("%v#%d", key, gen), func() (any, error) {
		v, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		c.store(key, gen, v)
		return v, nil
	})
	select {
	case res := <-ch:
		c.release(key)
		if res.Err != nil {
			return zero, res.Err
		}
		v, _ := res.Val.(V)
		return v, nil
	case <-ctx.Done():
		go func() {
			<-ch
			c.release(key)
		}()
		return zero, ctx.Err()
	}
}

// Invalidate drops key. The next Get always reloads it.
func (c *TTL[K, V]) Invalidate(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		c.removeLocked(el, "invalidated")
	}
	if c.inflight[key] > 0 {
		c.seq++
		c.gens[key] = c.seq
	}
}

func (c *TTL[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Close drops every entry. Get fails with ErrClosed afterwards.
func (c *TTL[K, V]) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	clear(c.entries)
	c.order.Init()
	metrics.CacheSize.Set(0)
	return nil
}

func (c *TTL[K, V]) store(key K, gen uint64, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.gens[key] != gen {
		return
	}
	if el, ok := c.entries[key]; ok {
		c.order.Remove(el)
		delete(c.entries, key)
	}
	for c.order.Len() >= c.capacity {
		c.removeLocked(c.order.Front(), "capacity")
	}
	c.entries[key] = c.order.PushBack(&entry[K, V]{key: key, value: v, storedAt: c.clock.Now()})
	metrics.CacheSize.Set(float64(c.order.Len()))
}

func (c *TTL[K, V]) release(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight[key]--
	if c.inflight[key] <= 0 {
		delete(c.inflight, key)
		delete(c.gens, key)
	}
}

func (c *TTL[K, V]) removeLocked(el *list.Element, reason string) {
	e := c.order.Remove(el).(*entry[K, V])
	delete(c.entries, e.key)
	metrics.CacheEvictions.WithLabelValues(reason).Inc()
	metrics.CacheSize.Set(float64(c.order.Len()))
}
