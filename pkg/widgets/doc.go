// Package widgets builds snippet components for the Olex2 input widgets from a
// single definition table instead of one type per widget. Each Definition
// lists the snippet path and the parameter defaults in the order the host
// snippet expects; Build copies those defaults, merges caller overrides and
// applies the phil shortcut.
package widgets
