package prompt

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
)

func TestTranslateSurveyErr(t *testing.T) {
	if err := translateSurveyErr(fmt.Errorf("ask: %w", terminal.InterruptErr)); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	other := errors.New("eof")
	if err := translateSurveyErr(other); err != other {
		t.Fatalf("expected error passthrough, got %v", err)
	}
}

func TestIndexOf(t *testing.T) {
	options := []string{"nosphera2", "refine", "solve"}
	if got := indexOf(options, "refine"); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := indexOf(options, "missing"); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}

func TestSelect_CancelledContext(t *testing.T) {
	ctx, cancel := testContext(t)
	cancel()
	if _, err := NewSurveyDriver().Select(ctx, SelectConfig{Options: []string{"a"}}); !errors.Is(err, ctx.Err()) {
		t.Fatalf("expected context error, got %v", err)
	}
	if _, err := NewSurveyDriver().Confirm(ctx, ConfirmConfig{}); !errors.Is(err, ctx.Err()) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func testContext(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()
	return context.WithCancel(t.Context())
}
