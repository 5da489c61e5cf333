package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/readcal/internal/domain"
	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// ErrInvalidConfig indicates an environment value that cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds process-wide settings read once at startup.
type Config struct {
	// SnapshotPath is the default snapshot file; the --db flag overrides it.
	SnapshotPath string `env:"READCAL_SNAPSHOT"`
	LogCalls     bool   `env:"READCAL_LOG_CALLS" envDefault:"false"`
	NoColor      bool   `env:"READCAL_NO_COLOR" envDefault:"false"`
	// Locale drives title collation in book listings.
	Locale string `env:"READCAL_LOCALE" envDefault:"en"`
	// Language is Locale parsed as a BCP 47 tag.
	Language language.Tag `env:"-"`

	PaletteBackground []string `env:"READCAL_PALETTE_BACKGROUND" envSeparator:","`
	PaletteBorder     []string `env:"READCAL_PALETTE_BORDER" envSeparator:","`

	// Palette is resolved from the two lists above, or the default palette
	// when neither is set.
	Palette domain.Palette `env:"-"`
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset values.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %v: %w", err, ErrInvalidConfig)
	}

	if cfg.SnapshotPath == "" {
		cfg.SnapshotPath = defaultSnapshotPath()
	}

	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return Config{}, fmt.Errorf("READCAL_LOCALE %q: %v: %w", cfg.Locale, err, ErrInvalidConfig)
	}
	cfg.Language = tag

	palette, err := resolvePalette(cfg.PaletteBackground, cfg.PaletteBorder)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", err, ErrInvalidConfig)
	}
	cfg.Palette = palette

	return cfg, nil
}

func resolvePalette(backgrounds, borders []string) (domain.Palette, error) {
	if len(backgrounds) == 0 && len(borders) == 0 {
		return domain.DefaultPalette(), nil
	}
	return domain.NewPalette(backgrounds, borders)
}

// defaultSnapshotPath points at KoboReader.sqlite in the working directory,
// or ~/.readcal/KoboReader.sqlite when that does not exist.
func defaultSnapshotPath() string {
	const name = "KoboReader.sqlite"
	if _, err := os.Stat(name); err == nil {
		return name
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".readcal", name)
}
