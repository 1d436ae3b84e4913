// Package viewmodel provides the embeddable base for property-change
// notification, the glue between view models and the binding layer.
//
// Property names are passed explicitly at every call site; there is no
// caller-name capture. Define them as constants next to the view model to
// avoid typos.
package viewmodel

// Base provides property-change notification for structs that embed it.
//
// Example:
//
//	type loginViewModel struct {
//	    viewmodel.Base
//	    username string
//	}
//
//	func (vm *loginViewModel) SetUsername(v string) {
//	    viewmodel.Set(&vm.Base, &vm.username, v, "Username")
//	}
//
// Base is NOT thread-safe. Raise and observe property changes only from the
// UI thread; marshal background work onto it through the host toolkit.
type Base struct {
	listeners []func(property string)
}

// ObserveChanged registers a listener invoked with the property name on
// every change. It returns an unregister function; unregistering twice is
// a no-op.
func (b *Base) ObserveChanged(fn func(property string)) (remove func()) {
	if fn == nil {
		return func() {}
	}
	b.listeners = append(b.listeners, fn)
	i := len(b.listeners) - 1
	return func() { b.listeners[i] = nil }
}

// RaisePropertyChanged notifies every listener that the named property
// changed. Listeners run synchronously in registration order.
func (b *Base) RaisePropertyChanged(name string) {
	for _, fn := range b.listeners {
		if fn != nil {
			fn(name)
		}
	}
}

// Set assigns value to field and raises a change notification for name,
// but only when the value actually differs. It reports whether it changed.
func Set[T comparable](b *Base, field *T, value T, name string) bool {
	if b == nil || field == nil {
		return false
	}
	if *field == value {
		return false
	}
	*field = value
	b.RaisePropertyChanged(name)
	return true
}
