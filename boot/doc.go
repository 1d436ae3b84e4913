// Package boot holds the one-shot library initialization for ovm and the
// process-wide locator accessor.
//
// Exactly one locator is bound per process. It comes into existence either
// on the first call to Init (which may supply an explicit locator) or on the
// first call to Locator (which lazily constructs a default one); both paths
// funnel through the same default construction, so "first access" and
// "first init" cannot diverge.
//
// Init also registers the default service implementations selected by its
// Flags bitmask. Each default registration is best-effort: an application
// that pre-registered its own implementation keeps it, because the
// duplicate-registration error is swallowed here and only here.
//
// The boot state is unsynchronized, matching the host
// toolkit's single-UI-thread model: initialization is expected to happen
// once, early, before anything concurrent touches the locator.
package boot
