package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	APIURL       string        `env:"EARTH_API_URL" envDefault:"http://127.0.0.1:8000/api/v1"`
	FetchTimeout time.Duration `env:"EARTH_FETCH_TIMEOUT" envDefault:"10s"`
	Google       Google
	Location     Location
}

type Google struct {
	ClientID     string `env:"GOOGLE_CLIENT_ID"`
	ClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
}

// Location is the monitored point. Env values win over the location file.
type Location struct {
	Name      string   `toml:"name"`
	Latitude  float64  `toml:"latitude"`
	Longitude float64  `toml:"longitude"`
	LatEnv    *float64 `env:"EARTH_LAT" toml:"-"`
	LonEnv    *float64 `env:"EARTH_LON" toml:"-"`
}

func DefaultLocation() Location {
	return Location{
		Name:      "Riara Ridge, Kiambu",
		Latitude:  -1.2921,
		Longitude: 36.8219,
	}
}

// Read parses the environment and, when locationPath names an existing file,
// the TOML location file. An empty locationPath skips the file.
func Read(locationPath string) (Config, error) {
	cfg := Config{Location: DefaultLocation()}

	if locationPath != "" {
		loc, err := LoadLocationFile(locationPath)
		if err != nil {
			return Config{}, err
		}
		cfg.Location = loc
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.Location.LatEnv != nil {
		cfg.Location.Latitude = *cfg.Location.LatEnv
	}
	if cfg.Location.LonEnv != nil {
		cfg.Location.Longitude = *cfg.Location.LonEnv
	}

	return cfg, nil
}

func LoadLocationFile(path string) (Location, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultLocation(), nil
		}
		return Location{}, fmt.Errorf("failed to open location file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeLocation(f)
}

// DecodeLocation fills unset fields from DefaultLocation.
func DecodeLocation(r io.Reader) (Location, error) {
	loc := DefaultLocation()
	if _, err := toml.NewDecoder(r).Decode(&loc); err != nil {
		return Location{}, fmt.Errorf("failed to decode location: %w", err)
	}
	return loc, nil
}
