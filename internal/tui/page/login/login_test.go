package login

import (
	"errors"
	"strings"
	"testing"

	"github.com/garrettladley/earth/internal/tui/components/braille"
	"github.com/garrettladley/earth/internal/tui/theme"
)

func TestFailAndDismiss(t *testing.T) {
	t.Parallel()

	var s State
	if s.Dismiss() {
		t.Error("Dismiss() = true with no error showing")
	}

	s.Fail(errors.New("popup closed by user"))
	if s.Phase != PhaseError {
		t.Fatalf("Phase = %v, want PhaseError", s.Phase)
	}
	if s.ErrorMsg != "Login Error: popup closed by user" {
		t.Errorf("ErrorMsg = %q", s.ErrorMsg)
	}

	out := braille.StripANSI(View(theme.New(), s, 100, 40))
	if !strings.Contains(out, s.ErrorMsg) {
		t.Errorf("View() missing error message:\n%s", out)
	}

	if !s.Dismiss() {
		t.Error("Dismiss() = false with an error showing")
	}
	if s.Phase != PhaseWelcome || s.ErrorMsg != "" {
		t.Errorf("after Dismiss state = %+v", s)
	}
}
