package widgets

import (
	"fmt"

	"github.com/goliatone/go-olxgui/pkg/markup"
)

// Kind names a widget variant.
type Kind string

// Built-in widget kinds.
const (
	Checkbox      Kind = "checkbox"
	CheckboxTd    Kind = "checkbox-td"
	CheckboxPlain Kind = "checkbox-plain"
	Combo         Kind = "combo"
	ComboTd       Kind = "combo-td"
	Button        Kind = "button"
	ButtonTd      Kind = "button-td"
	LinkButton    Kind = "link-button"
	LinkPlain     Kind = "link-plain"
	Text          Kind = "text"
	TextTd        Kind = "text-td"
	Spinner       Kind = "spinner"
	Label         Kind = "label"
	Slider        Kind = "slider"
)

// ParamPhil names the shortcut parameter that binds a widget to a host
// parameter path. It is consumed by Build and never rendered.
const ParamPhil = "phil"

// PhilStyle selects which parameters a phil shortcut fills in.
type PhilStyle int

const (
	// PhilNone ignores the shortcut.
	PhilNone PhilStyle = iota
	// PhilValue fills value and onchange.
	PhilValue
	// PhilCheck fills checked, oncheck and onuncheck.
	PhilCheck
)

// Definition describes one widget kind: the host snippet it renders and its
// parameter defaults, in the order the snippet expects them.
type Definition struct {
	Kind          Kind
	SnippetPath   string
	Defaults      *markup.Attrs
	Required      []string
	NameFromValue bool
	Phil          PhilStyle
}

func (d Definition) clone() Definition {
	d.Defaults = d.Defaults.Clone()
	d.Required = append([]string(nil), d.Required...)
	return d
}

func expandPhil(style PhilStyle, phil string, params *markup.Attrs) {
	fill := func(key, value string) {
		if params.Value(key) == "" {
			params.Set(key, value)
		}
	}
	switch style {
	case PhilValue:
		fill("value", fmt.Sprintf("spy.GetParam('%s')", phil))
		fill("onchange", fmt.Sprintf("spy.SetParam('%s',html.GetValue('~name~'))", phil))
	case PhilCheck:
		fill("checked", fmt.Sprintf("spy.GetParam('%s')", phil))
		fill("oncheck", fmt.Sprintf("spy.SetParam('%s','True')", phil))
		fill("onuncheck", fmt.Sprintf("spy.SetParam('%s','False')", phil))
	}
}

func fields(names ...string) *markup.Attrs {
	attrs := &markup.Attrs{}
	for _, name := range names {
		attrs.Set(name, "")
	}
	return attrs
}

func builtinDefinitions() []Definition {
	checkboxFields := []string{
		"name", "label", "checked", "oncheck", "onuncheck", "target", "data",
		"width", "height", "bgcolor", "fgcolor", "value", "onclick", "right",
		"manage", "disabled", "custom",
	}
	comboFields := []string{
		"name", "items", "value", "onchange", "label", "readonly",
		"onchangealways", "onleave", "onreturn", "onenter", "width", "height",
		"manage", "setdefault", "bgcolor", "fgcolor", "disabled",
	}
	buttonFields := []string{
		"value", "name", "width", "height", "onclick", "bgcolor", "fgcolor",
		"fit", "flat", "hint", "disabled", "custom",
	}
	linkFields := []string{
		"value", "hint", "width", "height", "name", "onclick", "fit", "focus",
		"flat", "disabled", "bgcolor", "fgcolor",
	}

	return []Definition{
		{
			Kind:        Checkbox,
			SnippetPath: "gui/snippets/input-checkbox",
			Defaults:    fields(checkboxFields...),
			Required:    []string{"name"},
			Phil:        PhilCheck,
		},
		{
			Kind:        CheckboxTd,
			SnippetPath: "gui/snippets/input-checkbox-td",
			Defaults:    fields(append(append([]string(nil), checkboxFields...), "td1", "td2")...),
			Required:    []string{"name"},
			Phil:        PhilCheck,
		},
		{
			Kind:        CheckboxPlain,
			SnippetPath: "gui/snippets/input-checkbox-plain",
			Defaults:    fields(checkboxFields...),
			Required:    []string{"name"},
			Phil:        PhilCheck,
		},
		{
			Kind:        Combo,
			SnippetPath: "gui/snippets/input-combo",
			Defaults:    fields(comboFields...),
			Required:    []string{"name", "items", "value"},
			Phil:        PhilValue,
		},
		{
			Kind:        ComboTd,
			SnippetPath: "gui/snippets/input-combo-td",
			Defaults:    fields(append(append([]string(nil), comboFields...), "custom", "td1", "td2")...),
			Required:    []string{"name", "items", "value"},
			Phil:        PhilValue,
		},
		{
			Kind:          Button,
			SnippetPath:   "gui/snippets/input-button",
			Defaults:      fields(buttonFields...),
			Required:      []string{"value"},
			NameFromValue: true,
		},
		{
			Kind:        ButtonTd,
			SnippetPath: "gui/snippets/input-button-td",
			Defaults:    fields(append(append([]string(nil), buttonFields...), "td1", "td2")...),
			Required:    []string{"value"},
		},
		{
			Kind:          LinkButton,
			SnippetPath:   "gui/snippets/gui-link-button",
			Defaults:      fields(linkFields...),
			Required:      []string{"value"},
			NameFromValue: true,
		},
		{
			Kind:          LinkPlain,
			SnippetPath:   "gui/snippets/gui-link-plain",
			Defaults:      fields(append(append([]string(nil), linkFields...), "custom")...),
			Required:      []string{"value"},
			NameFromValue: true,
		},
		{
			Kind:        Text,
			SnippetPath: "gui/snippets/input-text",
			Defaults: fields(
				"value", "name", "label", "width", "height", "manage", "password",
				"multiline", "disabled", "bgcolor", "fgcolor", "onchange", "onleave",
				"onreturn",
			),
			Required: []string{"value"},
			Phil:     PhilValue,
		},
		{
			Kind:        TextTd,
			SnippetPath: "gui/snippets/input-text-td",
			Defaults: fields(
				"value", "name", "width", "height", "manage", "password",
				"multiline", "disabled", "bgcolor", "fgcolor", "onchange", "onleave",
			),
			Required: []string{"value"},
			Phil:     PhilValue,
		},
		{
			Kind:        Spinner,
			SnippetPath: "gui/snippets/input-spin-td",
			Defaults: fields(
				"value", "name", "label", "min", "max", "width", "readonly", "manage",
				"onchangealways", "setdefault", "disabled", "bgcolor", "fgcolor",
				"custom", "td1", "td2", "onchange", "onleave", "onreturn", "onenter",
			),
			Required: []string{"value"},
			Phil:     PhilValue,
		},
		{
			Kind:        Label,
			SnippetPath: "gui/snippets/input-label",
			Defaults: fields(
				"value", "name", "width", "label", "height", "fgcolor", "bgcolor",
				"valign", "halign",
			),
			Required: []string{"value"},
		},
		{
			Kind:        Slider,
			SnippetPath: "gui/snippets/input-slider",
			Defaults: fields(
				"value", "name", "width", "height", "manage", "password", "multiline",
				"disabled", "td1", "td2", "param", "scale", "min", "max", "cmd",
				"swidth", "invert", "bgcolor",
			),
			Required: []string{"value"},
			Phil:     PhilValue,
		},
	}
}
