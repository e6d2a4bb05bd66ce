package snippet

import (
	"strings"

	"github.com/goliatone/go-olxgui/pkg/markup"
)

// ReservedCallPrefixes mark a value as an embedded call into the host
// scripting environment. Only such values are bracket-checked.
var ReservedCallPrefixes = []string{"spy.", "html.", "strcmp("}

// VerifyFunctions counts raw parentheses in every value that starts with a
// reserved call prefix. It is a textual heuristic: quoted strings are not
// understood, and values without a reserved prefix are never inspected.
func VerifyFunctions(params *markup.Attrs) error {
	var err error
	params.Each(func(key, value string) {
		if err != nil {
			return
		}
		err = VerifyExpression(key, value)
	})
	return err
}

// VerifyExpression applies the VerifyFunctions rule to a single value.
func VerifyExpression(key, value string) error {
	if !IsHostCall(value) {
		return nil
	}
	open := strings.Count(value, "(")
	closing := strings.Count(value, ")")
	if open != closing {
		return &ExpressionError{Key: key, Value: value, Open: open, Close: closing}
	}
	return nil
}

// IsHostCall reports whether value starts with a reserved call prefix.
func IsHostCall(value string) bool {
	trimmed := strings.TrimSpace(value)
	for _, prefix := range ReservedCallPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}
