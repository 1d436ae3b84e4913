package locator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"

	"go.uber.org/zap"
)

// The host container does not expose typed errors and prefixes everything,
// resolver failures included, with `container:`. Only the no-binding message
// marks a genuine miss; any other host error is a resolver that ran and
// failed.
var hostMissPattern = regexp.MustCompile("^container: no concrete found for")

// Resolve is ResolveScoped with Global scope.
func Resolve[T any](l *Locator) (T, bool) {
	return ResolveScoped[T](l, Global)
}

// ResolveScoped returns an instance satisfying abstraction T, or reports a
// miss. It never returns an error and never panics.
//
// Precedence, first match wins:
//
//  1. A singleton registered with RegisterInstance, regardless of scope.
//  2. A factory registered with Register, RegisterAs or RegisterFactory.
//     Under Global the first product is cached and reused; under Fresh the
//     factory runs every time. A factory that returns an error or panics
//     is logged and reported as a miss, without falling through.
//  3. The wrapped host locator. Host bindings follow the lifetime they
//     were bound with; the scope parameter does not apply to them.
//  4. Self-construction: struct types resolve to their zero value, *S to
//     new(S). Interfaces and everything else miss. Self-constructed values
//     are never cached, so two Global resolutions of an unregistered
//     concrete type yield two instances.
func ResolveScoped[T any](l *Locator, scope Scope) (T, bool) {
	var zero T
	if l == nil {
		return zero, false
	}
	t := typeOf[T]()

	if e, ok := l.entries[t]; ok {
		switch e.kind {
		case instanceEntry:
			return e.instance.(T), true
		case factoryEntry:
			if scope == Global && e.hasCached {
				return e.cached.(T), true
			}
			v, err := l.runFactory(t, e.build)
			if err != nil {
				l.log.Warn("construction failed",
					zap.String("abstraction", t.String()),
					zap.Error(err))
				return zero, false
			}
			if scope == Global {
				e.cached, e.hasCached = v, true
			}
			return v.(T), true
		}
	}

	receptor := new(T)
	switch err := l.host.Resolve(receptor); {
	case err == nil:
		return *receptor, true
	case hostMissPattern.MatchString(err.Error()):
		// No host binding for t; keep going.
		l.log.Debug("host locator miss", zap.String("abstraction", t.String()))
	default:
		l.log.Warn("construction failed",
			zap.String("abstraction", t.String()),
			zap.Error(constructionError{abstraction: t.String(), cause: err}))
		return zero, false
	}

	if constructible(t) != nil {
		return zero, false
	}
	return selfConstruct(t).(T), true
}

// MustResolve resolves T or panics with NotResolvedError. Intended for
// composition roots where a miss is a programming error.
func MustResolve[T any](l *Locator) T {
	v, ok := Resolve[T](l)
	if !ok {
		panic(NotResolvedError{Abstraction: typeOf[T]().String()})
	}
	return v
}

// runFactory invokes a factory entry, converting panics and errors into a
// single constructionError so the caller logs one shape.
func (l *Locator) runFactory(t reflect.Type, build func(*Locator) (any, error)) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("panic: %v", r)
			}
			v = nil
			err = constructionError{abstraction: t.String(), cause: cause}
		}
	}()

	v, err = build(l)
	if err != nil {
		return nil, constructionError{abstraction: t.String(), cause: err}
	}
	if v == nil {
		return nil, constructionError{abstraction: t.String(), cause: errors.New("factory returned nil")}
	}
	return v, nil
}
