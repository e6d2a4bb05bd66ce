package pretty

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Theme assigns a colour to each kind of line.
type Theme struct {
	Tag       lipgloss.TerminalColor
	Comment   lipgloss.TerminalColor
	Directive lipgloss.TerminalColor
	Text      lipgloss.TerminalColor
}

// DefaultTheme returns the palette used by the terminal formatter.
func DefaultTheme() Theme {
	return Theme{
		Tag:       lipgloss.Color("12"),
		Comment:   lipgloss.Color("8"),
		Directive: lipgloss.Color("13"),
		Text:      lipgloss.NoColor{},
	}
}

// HighlightOption customises Highlight.
type HighlightOption func(*highlighter)

// WithTheme overrides the palette.
func WithTheme(theme Theme) HighlightOption {
	return func(h *highlighter) { h.theme = theme }
}

// WithColor forces colour on or off regardless of the writer.
func WithColor(enabled bool) HighlightOption {
	return func(h *highlighter) { h.color = &enabled }
}

type highlighter struct {
	theme Theme
	color *bool
}

// Highlight writes src to w one line at a time, colouring tags, comments and
// snippet directives. Colour is only used when w is a terminal unless
// WithColor says otherwise.
func Highlight(w io.Writer, src string, opts ...HighlightOption) error {
	h := &highlighter{theme: DefaultTheme()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(h)
	}

	enabled := IsTerminal(w)
	if h.color != nil {
		enabled = *h.color
	}

	var styles map[lineKind]lipgloss.Style
	if enabled {
		renderer := lipgloss.NewRenderer(w)
		styles = map[lineKind]lipgloss.Style{
			lineTag:       renderer.NewStyle().Foreground(h.theme.Tag),
			lineComment:   renderer.NewStyle().Foreground(h.theme.Comment).Italic(true),
			lineDirective: renderer.NewStyle().Foreground(h.theme.Directive).Bold(true),
			lineText:      renderer.NewStyle().Foreground(h.theme.Text),
		}
	}

	out := bufio.NewWriter(w)
	for _, line := range strings.Split(src, "\n") {
		if styles != nil {
			trimmed := strings.TrimLeft(line, " \t")
			indent := line[:len(line)-len(trimmed)]
			line = indent + styles[classify(trimmed)].Render(trimmed)
		}
		if _, err := out.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return out.Flush()
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type lineKind int

const (
	lineText lineKind = iota
	lineTag
	lineComment
	lineDirective
)

func classify(line string) lineKind {
	switch {
	case strings.HasPrefix(line, "<!--"):
		return lineComment
	case strings.HasPrefix(line, "<"):
		return lineTag
	case line == "$+" || line == "$-" || strings.HasPrefix(line, "html.Snippet("):
		return lineDirective
	default:
		return lineText
	}
}
