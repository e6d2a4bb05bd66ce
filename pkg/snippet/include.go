package snippet

import (
	"strings"

	"github.com/goliatone/go-olxgui/pkg/markup"
)

// Include renders a host include directive:
//
//	<!-- #include name path;key=value;...;flag;... -->
//
// Keyword parameters always precede bare flags; each group keeps call order.
type Include struct {
	Name     string
	Path     string
	keywords []string
	flags    []string
}

// NewInclude starts an include directive for the named block.
func NewInclude(name, path string) *Include {
	return &Include{Name: name, Path: path}
}

// IncludeComment mirrors the legacy helper: pars are raw entries (keyword if
// they contain "=", flags otherwise) and kw holds alternating key/value
// keyword arguments.
func IncludeComment(name, path string, pars []string, kw ...string) *Include {
	inc := NewInclude(name, path).Pars(pars...)
	for i := 0; i+1 < len(kw); i += 2 {
		inc.Param(kw[i], kw[i+1])
	}
	return inc
}

// Param appends a keyword parameter.
func (i *Include) Param(key, value string) *Include {
	i.keywords = append(i.keywords, key+"="+value)
	return i
}

// Flag appends bare flags.
func (i *Include) Flag(flags ...string) *Include {
	i.flags = append(i.flags, flags...)
	return i
}

// Pars classifies raw entries into keywords and flags.
func (i *Include) Pars(pars ...string) *Include {
	for _, par := range pars {
		if strings.Contains(par, "=") {
			i.keywords = append(i.keywords, par)
			continue
		}
		i.flags = append(i.flags, par)
	}
	return i
}

// Keyword returns the value of the first keyword parameter named key.
func (i *Include) Keyword(key string) (string, bool) {
	for _, entry := range i.keywords {
		k, v, _ := strings.Cut(entry, "=")
		if k == key {
			return v, true
		}
	}
	return "", false
}

// Arguments returns the rendered argument list after the path.
func (i *Include) Arguments() []string {
	out := make([]string, 0, len(i.keywords)+len(i.flags))
	out = append(out, i.keywords...)
	return append(out, i.flags...)
}

// Markup implements markup.Node.
func (i *Include) Markup() string {
	return markup.Comment(" #include " + i.Name + " " + i.Path + ";" + strings.Join(i.Arguments(), ";") + " ").Markup()
}
