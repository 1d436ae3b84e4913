// Package ovm provides small, opinionated MVVM scaffolding for Go mobile UI apps.
//
// This repository collects the pieces a view-model layer keeps rewriting:
//
//   - locator: a service locator with explicit registration, resolution-time
//     scopes and a zero-value self-construction fallback
//   - boot: one-shot library initialization and the global locator accessor
//   - viewmodel: an embeddable property-change notifier base
//   - command: relay commands with CanExecute gating
//   - messenger: type-keyed pub/sub between view models
//   - convert: binding value converters
//   - navigation, dialogs: default service implementations registered at boot
//
// The goal is to keep wiring explicit (registration happens in your
// composition root / app startup), keep failure modes typed and assertable,
// and keep the surface area intentionally small.
//
// Start with examples/counter for end-to-end wiring style.
package ovm
