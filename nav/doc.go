// Package nav owns the navigation shell: the ordered route registry that maps
// route names to presentation rules.
//
// Allowed here:
// - route entries, presentation/header option types, merge-over-defaults resolution
// - registration errors (duplicate route, register before configure)
//
// Not allowed here:
// - rendering, key handling, or any knowledge of what a route's screen shows
package nav
