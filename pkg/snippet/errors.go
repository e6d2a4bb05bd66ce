package snippet

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter marks parameter registration calls that do not
	// carry exactly one key/value pair.
	ErrInvalidParameter = errors.New("snippet: invalid parameter")
	// ErrUnbalancedExpression marks embedded host calls whose parentheses do
	// not balance.
	ErrUnbalancedExpression = errors.New("snippet: unbalanced expression")
)

// ParameterError describes an ErrInvalidParameter failure.
type ParameterError struct {
	Reason string
}

func (e *ParameterError) Error() string {
	return "snippet: invalid parameter: " + e.Reason
}

// Unwrap lets errors.Is match ErrInvalidParameter.
func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

// ExpressionError names the parameter whose value failed the bracket check.
type ExpressionError struct {
	Key   string
	Value string
	Open  int
	Close int
}

func (e *ExpressionError) Error() string {
	return fmt.Sprintf("snippet: parameter %q has unbalanced brackets (%d open, %d close): %s", e.Key, e.Open, e.Close, e.Value)
}

// Unwrap lets errors.Is match ErrUnbalancedExpression.
func (e *ExpressionError) Unwrap() error { return ErrUnbalancedExpression }
