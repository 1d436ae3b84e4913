// Package command provides relay commands: the bindable bridge between a
// view's actions (taps, submits) and view-model methods, with CanExecute
// gating for enabling/disabling controls.
package command

// Relay wraps an execute function and an optional CanExecute guard.
//
// Views bind Execute to control activation and refresh enablement from
// CanExecute whenever RaiseCanExecuteChanged fires. Execute is a no-op
// while the guard reports false, so views need no separate guard check.
type Relay struct {
	execute    func()
	canExecute func() bool
	listeners  []func()
}

// NewRelay creates a Relay that can always execute.
func NewRelay(execute func()) *Relay {
	return &Relay{execute: execute}
}

// NewGuardedRelay creates a Relay gated by canExecute.
func NewGuardedRelay(execute func(), canExecute func() bool) *Relay {
	return &Relay{execute: execute, canExecute: canExecute}
}

// Execute runs the command when CanExecute allows it.
func (c *Relay) Execute() {
	if c.CanExecute() {
		c.execute()
	}
}

// CanExecute reports whether the command may run. A Relay without a guard
// can run whenever it has an execute function.
func (c *Relay) CanExecute() bool {
	if c.execute == nil {
		return false
	}
	if c.canExecute == nil {
		return true
	}
	return c.canExecute()
}

// RaiseCanExecuteChanged tells bound views to re-query CanExecute.
// Call it after mutating whatever state the guard reads.
func (c *Relay) RaiseCanExecuteChanged() {
	for _, fn := range c.listeners {
		if fn != nil {
			fn()
		}
	}
}

// ObserveCanExecuteChanged registers a listener for RaiseCanExecuteChanged,
// returning an unregister function.
func (c *Relay) ObserveCanExecuteChanged(fn func()) (remove func()) {
	if fn == nil {
		return func() {}
	}
	c.listeners = append(c.listeners, fn)
	i := len(c.listeners) - 1
	return func() { c.listeners[i] = nil }
}
