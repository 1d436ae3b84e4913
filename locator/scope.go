package locator

// Scope selects how a resolution treats factory-built products.
//
// Scope is a parameter of the resolution call, not of the registration:
// the same binding can be resolved with Global in one place and Fresh in
// another. Explicitly registered singleton instances ignore scope entirely.
type Scope int

const (
	// Global returns a shared product: the first Global resolution of a
	// factory binding caches what the factory built and later Global
	// resolutions reuse it.
	Global Scope = iota

	// Fresh runs the factory on every resolution and never touches the cache.
	Fresh
)

// String implements fmt.Stringer.
func (s Scope) String() string {
	switch s {
	case Global:
		return "Global"
	case Fresh:
		return "Fresh"
	default:
		return "Scope(unknown)"
	}
}
