// Package screens contains concrete screen implementations: route bodies and
// overlay flows rendered by the core model.
//
// Allowed here:
// - screen implementations that satisfy core.Screen (index, visitor form, command modal)
// - screen-specific presentation and interaction wiring
//
// Not allowed here:
// - app-wide route tables and key registry ownership
// - low-level widget/layout primitives
package screens
