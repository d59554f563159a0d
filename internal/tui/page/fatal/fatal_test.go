package fatal

import (
	"errors"
	"strings"
	"testing"

	"github.com/garrettladley/earth/internal/tui/components/braille"
	"github.com/garrettladley/earth/internal/tui/theme"
	"github.com/garrettladley/earth/internal/xerrors"
)

func TestView(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		want       []string
		wantResize bool
	}{
		{
			name:       "surface never attached",
			err:        xerrors.Surface(xerrors.WithMessage("terminal never reported its size")),
			want:       []string{"terminal never reported its size", hintQuit},
			wantResize: true,
		},
		{
			name: "auth failure",
			err:  xerrors.Auth(xerrors.WithMessage("session unavailable"), xerrors.WithCause(errors.New("disk full"))),
			want: []string{"session unavailable: disk full", hintQuit},
		},
		{
			name: "nil error",
			want: []string{"unknown error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := braille.StripANSI(View(theme.New(), tt.err, 100, 20))
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("View() missing %q:\n%s", w, out)
				}
			}
			if got := strings.Contains(out, hintResize); got != tt.wantResize {
				t.Errorf("resize hint shown = %v, want %v", got, tt.wantResize)
			}
		})
	}
}
