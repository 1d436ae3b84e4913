package command

// RelayOf is a Relay whose execute function takes a typed argument, for
// bindings that carry a payload (the tapped list item, the submitted form).
type RelayOf[T any] struct {
	execute    func(T)
	canExecute func(T) bool
	listeners  []func()
}

// NewRelayOf creates a RelayOf that can always execute.
func NewRelayOf[T any](execute func(T)) *RelayOf[T] {
	return &RelayOf[T]{execute: execute}
}

// NewGuardedRelayOf creates a RelayOf gated by canExecute.
func NewGuardedRelayOf[T any](execute func(T), canExecute func(T) bool) *RelayOf[T] {
	return &RelayOf[T]{execute: execute, canExecute: canExecute}
}

// Execute runs the command with arg when CanExecute(arg) allows it.
func (c *RelayOf[T]) Execute(arg T) {
	if c.CanExecute(arg) {
		c.execute(arg)
	}
}

// CanExecute reports whether the command may run with arg.
func (c *RelayOf[T]) CanExecute(arg T) bool {
	if c.execute == nil {
		return false
	}
	if c.canExecute == nil {
		return true
	}
	return c.canExecute(arg)
}

// RaiseCanExecuteChanged tells bound views to re-query CanExecute.
func (c *RelayOf[T]) RaiseCanExecuteChanged() {
	for _, fn := range c.listeners {
		if fn != nil {
			fn()
		}
	}
}

// ObserveCanExecuteChanged registers a listener for RaiseCanExecuteChanged,
// returning an unregister function.
func (c *RelayOf[T]) ObserveCanExecuteChanged(fn func()) (remove func()) {
	if fn == nil {
		return func() {}
	}
	c.listeners = append(c.listeners, fn)
	i := len(c.listeners) - 1
	return func() { c.listeners[i] = nil }
}
