// Package render exposes the output formats of generated pages through a
// named Renderer registry.
package render
