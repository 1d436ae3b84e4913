package viewmodel

// Property is a standalone observable value, for state that lives outside
// a view model struct (shared selections, feature toggles).
//
// Like Base, it is UI-thread only.
type Property[T comparable] struct {
	value     T
	listeners []func(old, new T)
}

// NewProperty creates a Property holding initial.
func NewProperty[T comparable](initial T) *Property[T] {
	return &Property[T]{value: initial}
}

// Get returns the current value.
func (p *Property[T]) Get() T { return p.value }

// Set stores v and notifies listeners when it differs from the current
// value. It reports whether the value changed.
func (p *Property[T]) Set(v T) bool {
	if p.value == v {
		return false
	}
	old := p.value
	p.value = v
	for _, fn := range p.listeners {
		if fn != nil {
			fn(old, v)
		}
	}
	return true
}

// Observe registers a listener invoked with the old and new value on every
// change, returning an unregister function.
func (p *Property[T]) Observe(fn func(old, new T)) (remove func()) {
	if fn == nil {
		return func() {}
	}
	p.listeners = append(p.listeners, fn)
	i := len(p.listeners) - 1
	return func() { p.listeners[i] = nil }
}
