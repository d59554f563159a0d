package migrations

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPending(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		applied map[string]bool
		want    []string
	}{
		{
			name:    "fresh database",
			applied: nil,
			want:    []string{"000001_identity.sql"},
		},
		{
			name:    "already applied",
			applied: map[string]bool{"000001_identity.sql": true},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Pending(tt.applied)
			if err != nil {
				t.Fatalf("Pending() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Pending() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
