package utils

import "sync"

// Observable holds a value and pushes every change to its subscribers.
// Subscribers see the latest value only: a slow reader skips intermediate
// values instead of blocking Set.
type Observable[T any] struct {
	mu    sync.RWMutex
	value T
	equal func(a, b T) bool

	nextID int
	subs   map[int]chan T
}

// NewObservable creates an Observable holding initial. When equal is not nil,
// Set ignores values equal to the current one.
func NewObservable[T any](initial T, equal func(a, b T) bool) *Observable[T] {
	return &Observable[T]{
		value: initial,
		equal: equal,
		subs:  make(map[int]chan T),
	}
}

// Get returns the current value.
func (o *Observable[T]) Get() T {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.value
}

// Set stores v and notifies subscribers. It reports whether the value
// changed.
func (o *Observable[T]) Set(v T) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.equal != nil && o.equal(o.value, v) {
		return false
	}
	o.value = v

	for _, ch := range o.subs {
		offerLatest(ch, v)
	}
	return true
}

// Subscribe returns a channel that first receives the current value and then
// every change. cancel closes the channel; it is safe to call more than once.
func (o *Observable[T]) Subscribe() (<-chan T, func()) {
	o.mu.Lock()
	defer o.mu.Unlock()

	id := o.nextID
	o.nextID++

	ch := make(chan T, 1)
	ch <- o.value
	o.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			o.mu.Lock()
			defer o.mu.Unlock()
			delete(o.subs, id)
			close(ch)
		})
	}

	return ch, cancel
}

// offerLatest replaces whatever is buffered in ch with v. Callers hold the
// write lock, so nobody else sends on ch concurrently.
func offerLatest[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}
