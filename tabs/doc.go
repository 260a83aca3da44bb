// Package tabs hosts the desk tab group: the tab contract, the group screen
// that renders the tab bar, and the concrete tabs.
package tabs
