package pagedef

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"
	"gopkg.in/yaml.v3"
)

// Expander renders pongo2 expressions found in definition values. Templates
// may include other files from the definitions filesystem.
type Expander struct {
	set  *pongo2.TemplateSet
	vars pongo2.Context
}

// NewExpander builds an expander over vars. When fsys is nil, includes are
// resolved against the working directory.
func NewExpander(fsys fs.FS, vars map[string]string) *Expander {
	set := pongo2.DefaultSet
	if fsys != nil {
		set = pongo2.NewSet("pagedef", pongo2.NewFSLoader(fsys))
	}
	ctx := make(pongo2.Context, len(vars))
	for key, value := range vars {
		ctx[strings.TrimSpace(key)] = value
	}
	return &Expander{set: set, vars: ctx}
}

// With returns a copy whose variables are overridden by vars.
func (e *Expander) With(vars map[string]string) *Expander {
	ctx := make(pongo2.Context, len(e.vars)+len(vars))
	ctx.Update(e.vars)
	for key, value := range vars {
		ctx[strings.TrimSpace(key)] = value
	}
	return &Expander{set: e.set, vars: ctx}
}

// Expand renders value. Values without template delimiters are returned as-is.
// Output is never HTML-escaped.
func (e *Expander) Expand(value string) (string, error) {
	if !strings.Contains(value, "{{") && !strings.Contains(value, "{%") {
		return value, nil
	}
	tpl, err := e.set.FromString("{% autoescape off %}" + value + "{% endautoescape %}")
	if err != nil {
		return "", fmt.Errorf("pagedef: parse template %q: %w", value, err)
	}
	out, err := tpl.Execute(e.vars)
	if err != nil {
		return "", fmt.Errorf("pagedef: expand %q: %w", value, err)
	}
	return out, nil
}

// expandNode rewrites every scalar value below node in place. Mapping keys
// are left untouched.
func (e *Expander) expandNode(node *yaml.Node) error {
	switch node.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, child := range node.Content {
			if err := e.expandNode(child); err != nil {
				return err
			}
		}
	case yaml.MappingNode:
		for i := 1; i < len(node.Content); i += 2 {
			if err := e.expandNode(node.Content[i]); err != nil {
				return err
			}
		}
	case yaml.ScalarNode:
		out, err := e.Expand(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		node.Value = out
	}
	return nil
}
