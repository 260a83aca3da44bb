// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - model routing over the nav shell, message contracts, command and key registries
// - shared state machines used across screens (for example picker logic)
// - chrome policy (header per resolved route options, status bar, footer)
//
// Not allowed here:
// - concrete screen/modal rendering implementations
// - low-level widget rendering primitives
package core
