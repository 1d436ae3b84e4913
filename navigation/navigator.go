// Package navigation defines the navigation service abstraction view models
// depend on, plus the default in-memory stack implementation registered at
// boot. Host toolkits substitute their own implementation by registering it
// before Init.
package navigation

import "errors"

// ErrStackEmpty is returned by GoBack when the navigator is at its root.
var ErrStackEmpty = errors.New("navigation: cannot go back from the root route")

// ErrEmptyRoute is returned by NavigateTo for an empty route name.
var ErrEmptyRoute = errors.New("navigation: empty route name")

// Route is a named destination plus the argument it was navigated with.
type Route struct {
	Name string
	Arg  any
}

// Navigator is the navigation contract view models program against.
type Navigator interface {
	// NavigateTo pushes the named route with an optional argument.
	NavigateTo(route string, arg any) error

	// GoBack pops the current route. Fails with ErrStackEmpty at the root.
	GoBack() error

	// CanGoBack reports whether GoBack would succeed.
	CanGoBack() bool

	// Current returns the route on top of the stack, if any.
	Current() (Route, bool)
}

// Stack is the default Navigator: a plain in-memory route stack with
// change notification. UI-thread only.
type Stack struct {
	routes    []Route
	listeners []func()
}

var _ Navigator = (*Stack)(nil)

// NewStack creates an empty Stack navigator.
func NewStack() *Stack { return &Stack{} }

// NavigateTo implements Navigator.
func (s *Stack) NavigateTo(route string, arg any) error {
	if route == "" {
		return ErrEmptyRoute
	}
	s.routes = append(s.routes, Route{Name: route, Arg: arg})
	s.notify()
	return nil
}

// GoBack implements Navigator.
func (s *Stack) GoBack() error {
	if len(s.routes) <= 1 {
		return ErrStackEmpty
	}
	s.routes = s.routes[:len(s.routes)-1]
	s.notify()
	return nil
}

// CanGoBack implements Navigator.
func (s *Stack) CanGoBack() bool { return len(s.routes) > 1 }

// Current implements Navigator.
func (s *Stack) Current() (Route, bool) {
	if len(s.routes) == 0 {
		return Route{}, false
	}
	return s.routes[len(s.routes)-1], true
}

// Depth returns the number of routes on the stack.
func (s *Stack) Depth() int { return len(s.routes) }

// ObserveChanged registers a listener invoked after every successful
// NavigateTo or GoBack, returning an unregister function.
func (s *Stack) ObserveChanged(fn func()) (remove func()) {
	if fn == nil {
		return func() {}
	}
	s.listeners = append(s.listeners, fn)
	i := len(s.listeners) - 1
	return func() { s.listeners[i] = nil }
}

func (s *Stack) notify() {
	for _, fn := range s.listeners {
		if fn != nil {
			fn()
		}
	}
}
