package locator

import (
	"reflect"

	"github.com/golobby/container/v3"
	"go.uber.org/zap"
)

// Locator is the registry/resolver pair. It owns an entry table keyed by
// abstraction type, wraps a host service locator consulted before
// self-construction, and logs construction failures.
//
// A Locator is not safe for concurrent use. Like the rest of this library
// it assumes the host toolkit's single-UI-thread model: registration happens
// in the composition root before the first resolution, resolution happens on
// the UI thread.
type Locator struct {
	entries map[reflect.Type]*entry
	host    container.Container
	log     *zap.Logger
}

type entryKind uint8

const (
	instanceEntry entryKind = iota
	factoryEntry
)

// entry is a single registration. An instance entry holds the singleton
// directly; a factory entry holds the build function plus the Global-scope
// cache of its product.
type entry struct {
	kind      entryKind
	instance  any
	build     func(*Locator) (any, error)
	cached    any
	hasCached bool
}

// Option configures a Locator under construction.
type Option func(*Locator)

// WithLogger sets the logger used for construction failures.
// The default is zap.NewNop().
func WithLogger(log *zap.Logger) Option {
	return func(l *Locator) {
		if log != nil {
			l.log = log
		}
	}
}

// WithHost wraps an existing host container instead of a fresh one.
// Useful when the host toolkit exposes its own global container and the
// application has already bound platform services into it.
func WithHost(host container.Container) Option {
	return func(l *Locator) {
		if host != nil {
			l.host = host
		}
	}
}

// New creates an empty Locator.
func New(opts ...Option) *Locator {
	l := &Locator{
		entries: make(map[reflect.Type]*entry),
		host:    container.New(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Host exposes the wrapped host container so applications can bind
// platform services (renderers, sensors, platform channels) directly into
// the host's own locator. Such bindings are found by Resolve after the
// locator's own registrations and before self-construction.
func (l *Locator) Host() container.Container { return l.host }

// Reset clears every registration, every Global-scope cache and every host
// binding. Test use only.
func (l *Locator) Reset() {
	l.entries = make(map[reflect.Type]*entry)
	l.host.Reset()
}

// typeOf returns the reflect.Type of T without requiring a value of T.
// Works for interface types as well, which reflect.TypeOf on a value cannot.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// constructible reports whether t supports zero-value construction:
// a struct, or a pointer to struct.
func constructible(t reflect.Type) error {
	switch {
	case t.Kind() == reflect.Struct:
		return nil
	case t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct:
		return nil
	default:
		return NotConstructibleError{Type: t.String()}
	}
}

// selfConstruct builds the zero value for a constructible type. For a
// struct it is the zero struct; for *S it is new(S). Callers must have
// checked constructible(t) first.
func selfConstruct(t reflect.Type) any {
	if t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface()
	}
	return reflect.New(t).Elem().Interface()
}

func (l *Locator) add(t reflect.Type, e *entry) error {
	if _, exists := l.entries[t]; exists {
		return DuplicateRegistrationError{Abstraction: t.String()}
	}
	l.entries[t] = e
	return nil
}
