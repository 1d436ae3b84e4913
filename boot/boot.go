package boot

import (
	"errors"

	"github.com/sghaida/ovm/dialogs"
	"github.com/sghaida/ovm/locator"
	"github.com/sghaida/ovm/messenger"
	"github.com/sghaida/ovm/navigation"
)

// ErrAlreadyBound is returned by Init when it is given an explicit locator
// after one has already been bound, whether by an earlier Init call or by a
// plain Locator() access. Explicit initialization must happen before first
// use; this error is not recoverable.
var ErrAlreadyBound = errors.New("boot: locator already bound; Init with an explicit locator must happen before first use")

// Process-wide boot state. Unsynchronized; see the package doc.
var (
	bound       *locator.Locator
	initialized bool
)

// Init transitions the library from uninitialized to initialized.
//
// A nil l means "use the default locator" (constructing it if no access has
// bound one yet). A non-nil l binds that locator, but only if nothing has
// been bound before; otherwise Init fails with ErrAlreadyBound.
//
// Once initialized, further Init calls are no-ops that return the bound
// locator: later flags are silently ignored, and the defaults are not
// re-registered. This mirrors how the first screen of an app wins the
// initialization race with any library code that initializes defensively.
//
// Default service registrations are best-effort: a duplicate-registration
// error means the application pre-registered its own implementation and is
// swallowed; any other registration error aborts and is returned.
func Init(l *locator.Locator, flags Flags) (*locator.Locator, error) {
	if l != nil && bound != nil {
		return nil, ErrAlreadyBound
	}
	if initialized {
		return bound, nil
	}

	if l != nil {
		bound = l
	} else if bound == nil {
		bound = defaultLocator()
	}

	if err := registerDefaults(bound, flags); err != nil {
		return nil, err
	}
	// The locator always resolves itself, so factories and view models can
	// take the locator as an ordinary dependency.
	if err := bestEffort(locator.RegisterInstance(bound, bound)); err != nil {
		return nil, err
	}

	initialized = true
	return bound, nil
}

// InitDefault is Init(nil, DefaultFlags).
func InitDefault() (*locator.Locator, error) {
	return Init(nil, DefaultFlags)
}

// Locator returns the process-wide locator, lazily constructing and binding
// the default one on first touch. It shares the construction path with
// Init, so whichever of the two runs first produces the same locator state.
func Locator() *locator.Locator {
	if bound == nil {
		bound = defaultLocator()
	}
	return bound
}

// ResetForTesting clears the bound locator and the initialized flag.
// Test use only.
func ResetForTesting() {
	bound = nil
	initialized = false
}

func defaultLocator() *locator.Locator {
	return locator.New()
}

func registerDefaults(l *locator.Locator, flags Flags) error {
	if flags.Has(WithNavigator) {
		if err := bestEffort(locator.RegisterInstance[navigation.Navigator](l, navigation.NewStack())); err != nil {
			return err
		}
	}
	if flags.Has(WithDialogs) {
		if err := bestEffort(locator.RegisterInstance[dialogs.MessageVisualizer](l, dialogs.NewConsole())); err != nil {
			return err
		}
	}
	if flags.Has(WithMessenger) {
		if err := bestEffort(locator.RegisterInstance(l, messenger.New())); err != nil {
			return err
		}
	}
	return nil
}

// bestEffort swallows duplicate-registration errors and passes everything
// else through.
func bestEffort(err error) error {
	var dup locator.DuplicateRegistrationError
	if errors.As(err, &dup) {
		return nil
	}
	return err
}
