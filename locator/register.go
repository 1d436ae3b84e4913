package locator

// Register binds T to zero-value construction of T itself.
//
// T must be a struct or pointer-to-struct type. The binding is a factory:
// resolution with Fresh builds a new value each time, resolution with
// Global caches the first product.
//
// Registering an abstraction that is already bound, through any Register*
// flavor, returns DuplicateRegistrationError.
func Register[T any](l *Locator) error {
	t := typeOf[T]()
	if err := constructible(t); err != nil {
		return err
	}
	return l.add(t, &entry{
		kind:  factoryEntry,
		build: func(*Locator) (any, error) { return selfConstruct(t), nil },
	})
}

// RegisterAs binds abstraction T to zero-value construction of TImpl.
//
// TImpl must be a struct or pointer-to-struct type whose values satisfy T;
// the check happens at registration time and fails with InvalidBindingError
// rather than at first resolution.
func RegisterAs[T any, TImpl any](l *Locator) error {
	abs := typeOf[T]()
	impl := typeOf[TImpl]()
	if err := constructible(impl); err != nil {
		return err
	}
	if _, ok := selfConstruct(impl).(T); !ok {
		return InvalidBindingError{Abstraction: abs.String(), Impl: impl.String()}
	}
	return l.add(abs, &entry{
		kind:  factoryEntry,
		build: func(*Locator) (any, error) { return selfConstruct(impl), nil },
	})
}

// RegisterInstance binds T to an existing singleton. Every resolution of T,
// under either scope, returns exactly this value.
func RegisterInstance[T any](l *Locator, instance T) error {
	if any(instance) == nil {
		return ErrNilInstance
	}
	return l.add(typeOf[T](), &entry{
		kind:     instanceEntry,
		instance: instance,
	})
}

// RegisterFactory binds T to an explicit factory. The factory receives the
// resolving locator so it can resolve its own dependencies:
//
//	locator.RegisterFactory(l, func(l *locator.Locator) (*FeedViewModel, error) {
//	    nav, _ := locator.Resolve[navigation.Navigator](l)
//	    return NewFeedViewModel(nav), nil
//	})
//
// A factory that resolves its own abstraction, directly or through its
// dependencies, recurses without bound; the locator performs no cycle
// detection.
func RegisterFactory[T any](l *Locator, fn func(*Locator) (T, error)) error {
	if fn == nil {
		return ErrNilFactory
	}
	return l.add(typeOf[T](), &entry{
		kind: factoryEntry,
		build: func(l *Locator) (any, error) {
			v, err := fn(l)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	})
}
