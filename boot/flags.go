package boot

// Flags selects which default services Init registers. Each service is
// independently registrable; combine with bitwise or.
type Flags uint8

const (
	// WithNavigator registers navigation.NewStack() as navigation.Navigator.
	WithNavigator Flags = 1 << iota

	// WithDialogs registers dialogs.NewConsole() as dialogs.MessageVisualizer.
	WithDialogs

	// WithMessenger registers messenger.New() as *messenger.Messenger.
	WithMessenger
)

// DefaultFlags enables every default service.
const DefaultFlags = WithNavigator | WithDialogs | WithMessenger

// Has reports whether flag is set in f.
func (f Flags) Has(flag Flags) bool { return f&flag != 0 }
