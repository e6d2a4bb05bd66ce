package pretty

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// DefaultIndent is the number of spaces added per nesting level.
const DefaultIndent = 2

// Option customises Format.
type Option func(*formatter)

// WithIndent overrides the indentation width. Negative values are ignored.
func WithIndent(width int) Option {
	return func(f *formatter) {
		if width >= 0 {
			f.indent = width
		}
	}
}

type formatter struct {
	indent int
	depth  int
	lines  []string
}

// voidElements never receive an end tag, so they do not open a level.
var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
	"img": {}, "input": {}, "link": {}, "meta": {}, "param": {}, "source": {},
	"track": {}, "wbr": {},
}

// Format re-lays out generated markup: every tag, comment and text line sits
// on its own line, indented by nesting depth. Tags and comments are copied
// byte for byte from the input; text lines are trimmed and blank lines
// dropped. Formatting already formatted output returns it unchanged.
func Format(src string, opts ...Option) (string, error) {
	f := &formatter{indent: DefaultIndent}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(f)
	}

	z := html.NewTokenizer(strings.NewReader(src))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return strings.Join(f.lines, "\n"), nil
			}
			return "", fmt.Errorf("pretty: tokenize: %w", z.Err())
		case html.StartTagToken:
			raw := string(z.Raw())
			name, _ := z.TagName()
			f.emit(raw)
			if _, void := voidElements[string(name)]; !void {
				f.depth++
			}
		case html.EndTagToken:
			if f.depth > 0 {
				f.depth--
			}
			f.emit(string(z.Raw()))
		case html.TextToken:
			for _, line := range strings.Split(string(z.Raw()), "\n") {
				f.emit(line)
			}
		default:
			// Comments, doctypes and self-closing tags keep the current depth.
			f.emit(string(z.Raw()))
		}
	}
}

func (f *formatter) emit(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	f.lines = append(f.lines, strings.Repeat(" ", f.depth*f.indent)+line)
}
