// Package services implements the driving port interfaces.
// Services contain the core logic and orchestrate calls to driven
// ports (adapters).
//
// ServiceRef and Scope implement the observable service reference and its
// owning context. Evaluator is the calculator; HistoryService and
// SettingsService persist its history and configuration through driven
// ports.
//
// Services are pure Go with no CGO.
package services
