// Package pretty lays out generated GUI markup for human review and colours
// it for terminal previews. Only whitespace changes; tag nesting, attribute
// values and snippet directives are preserved.
package pretty
