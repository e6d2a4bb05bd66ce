package render

// RenderOptions describe per-request output settings. Renderers ignore the
// fields they do not use.
type RenderOptions struct {
	// Indent is the number of spaces per nesting level used by the pretty
	// renderers. Zero selects pretty.DefaultIndent.
	Indent int
	// Color enables ANSI colouring in the terminal renderer. Callers decide
	// based on the destination, usually with pretty.IsTerminal.
	Color bool
}
