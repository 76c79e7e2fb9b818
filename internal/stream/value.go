package stream

import (
	"context"
	"sync"
)

// Value holds the latest value of some state and fans it out to subscribers.
// Slow subscribers skip intermediate values and always see the newest one.
type Value[T any] struct {
	mu   sync.Mutex
	val  T
	set  bool
	subs map[chan T]struct{}
}

// NewValue creates a Value holding initial
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{val: initial, set: true, subs: make(map[chan T]struct{})}
}

// Get returns the current value
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.val
}

// Set stores val and notifies every subscriber
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.publishLocked(val)
}

// Update applies fn to the current value atomically and returns the result
func (v *Value[T]) Update(fn func(T) T) T {
	v.mu.Lock()
	defer v.mu.Unlock()
	next := fn(v.val)
	v.publishLocked(next)
	return next
}

func (v *Value[T]) publishLocked(val T) {
	v.val = val
	v.set = true
	for ch := range v.subs {
		// Replace any undelivered value. Capacity is 1 and sends happen under
		// the lock, so the send below cannot block.
		select {
		case <-ch:
		default:
		}
		ch <- val
	}
}

// Subscribe returns a channel that yields the current value, then every
// later one. The channel closes when ctx is cancelled.
func (v *Value[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	v.mu.Lock()
	if v.subs == nil {
		v.subs = make(map[chan T]struct{})
	}
	if v.set {
		ch <- v.val
	}
	v.subs[ch] = struct{}{}
	v.mu.Unlock()

	go func() {
		<-ctx.Done()
		v.mu.Lock()
		delete(v.subs, ch)
		close(ch)
		v.mu.Unlock()
	}()

	return ch
}
