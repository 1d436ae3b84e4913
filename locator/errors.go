package locator

import (
	"errors"
	"strconv"
)

var (
	// ErrNilInstance is returned when RegisterInstance is given a nil value.
	ErrNilInstance = errors.New("locator: nil instance")

	// ErrNilFactory is returned when RegisterFactory is given a nil function.
	ErrNilFactory = errors.New("locator: nil factory function")
)

// DuplicateRegistrationError is returned when an abstraction is registered a
// second time, through any of the Register* flavors. Duplicate registration
// is always a hard error; the first binding stays in effect.
type DuplicateRegistrationError struct{ Abstraction string }

// Error implements the error interface.
func (e DuplicateRegistrationError) Error() string {
	// Example: locator: abstraction "dialogs.MessageVisualizer" already registered
	return "locator: abstraction " + strconv.Quote(e.Abstraction) + " already registered"
}

// NotConstructibleError is returned when Register or RegisterAs is asked to
// zero-construct a type that has no zero-value construction: anything other
// than a struct or a pointer to struct.
type NotConstructibleError struct{ Type string }

// Error implements the error interface.
func (e NotConstructibleError) Error() string {
	// Example: locator: type "io.Reader" is not zero-constructible
	return "locator: type " + strconv.Quote(e.Type) + " is not zero-constructible"
}

// InvalidBindingError is returned by RegisterAs when the constructed
// implementation does not satisfy the abstraction it is bound to.
type InvalidBindingError struct {
	Abstraction string
	Impl        string
}

// Error implements the error interface.
func (e InvalidBindingError) Error() string {
	// Example: locator: "*app.fake" does not satisfy "dialogs.MessageVisualizer"
	return "locator: " + strconv.Quote(e.Impl) + " does not satisfy " + strconv.Quote(e.Abstraction)
}

// NotResolvedError is the panic payload of MustResolve when resolution
// misses. Resolve itself never returns or panics with it.
type NotResolvedError struct{ Abstraction string }

// Error implements the error interface.
func (e NotResolvedError) Error() string {
	// Example: locator: abstraction "navigation.Navigator" not resolved
	return "locator: abstraction " + strconv.Quote(e.Abstraction) + " not resolved"
}

// constructionError carries the cause of a failed factory or host-side
// build. It never escapes Resolve; it exists so the failure log line has a
// single error field regardless of whether the factory returned an error or
// panicked.
type constructionError struct {
	abstraction string
	cause       error
}

func (e constructionError) Error() string {
	return "locator: constructing " + strconv.Quote(e.abstraction) + " failed: " + e.cause.Error()
}

func (e constructionError) Unwrap() error { return e.cause }
