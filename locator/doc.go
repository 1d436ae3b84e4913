// Package locator implements the service-locator core of ovm: an explicit
// registry of abstractions plus a resolver with a fixed precedence order.
//
// A Locator is an ordinary value created by New and passed around explicitly;
// there is no package-level container here. Applications that want a single
// process-wide locator get one through the boot package.
//
// Registration comes in four flavors:
//
//   - Register[T]: bind T to zero-value construction of T
//   - RegisterAs[T, TImpl]: bind abstraction T to zero-value-constructed TImpl
//   - RegisterInstance[T]: bind T to an existing singleton
//   - RegisterFactory[T]: bind T to a factory that resolves its own
//     dependencies through the locator it receives
//
// Registering the same abstraction twice, through any flavor, is a hard
// error (DuplicateRegistrationError), never a silent overwrite.
//
// Resolution checks, in order: registered singleton instances, registered
// factories (with Global-scope caching), the wrapped host service locator,
// and finally zero-value self-construction for concrete types. A failed
// step never surfaces as an error from Resolve; construction failures are
// logged and reported as a plain miss.
//
// Start with the resolution-order doc on ResolveScoped for the fine print.
package locator
