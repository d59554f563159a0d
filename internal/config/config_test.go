package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDecodeLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Location
		wantErr bool
	}{
		{
			name:  "empty file keeps defaults",
			input: "",
			want:  DefaultLocation(),
		},
		{
			name: "full override",
			input: `name = "Lisbon"
latitude = 38.72
longitude = -9.14`,
			want: Location{Name: "Lisbon", Latitude: 38.72, Longitude: -9.14},
		},
		{
			name:  "partial override keeps default name",
			input: `longitude = -10.0`,
			want:  Location{Name: "Riara Ridge, Kiambu", Latitude: -1.2921, Longitude: -10},
		},
		{
			name:    "malformed toml",
			input:   `latitude = "north"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DecodeLocation(strings.NewReader(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeLocation() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DecodeLocation() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadLocationFile_Missing(t *testing.T) {
	t.Parallel()

	got, err := LoadLocationFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadLocationFile() error = %v", err)
	}
	if diff := cmp.Diff(DefaultLocation(), got); diff != "" {
		t.Errorf("LoadLocationFile() mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "location.toml")
	if err := os.WriteFile(path, []byte("name = \"Mombasa\"\nlatitude = -4.05\nlongitude = 39.66\n"), 0o600); err != nil {
		t.Fatalf("failed to write location file: %v", err)
	}

	t.Setenv("EARTH_LON", "-10")
	t.Setenv("EARTH_API_URL", "http://api.test/v1")
	t.Setenv("EARTH_FETCH_TIMEOUT", "3s")

	cfg, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := Location{Name: "Mombasa", Latitude: -4.05, Longitude: -10}
	if diff := cmp.Diff(want, cfg.Location, cmpopts.IgnoreFields(Location{}, "LatEnv", "LonEnv")); diff != "" {
		t.Errorf("location mismatch (-want +got):\n%s", diff)
	}
	if cfg.APIURL != "http://api.test/v1" {
		t.Errorf("APIURL = %q, want %q", cfg.APIURL, "http://api.test/v1")
	}
	if cfg.FetchTimeout != 3*time.Second {
		t.Errorf("FetchTimeout = %v, want 3s", cfg.FetchTimeout)
	}
}
