package mod

import (
	"fmt"
	"log/slog"

	"github.com/OCharnyshevich/headwear-patcher/internal/config"
	"github.com/OCharnyshevich/headwear-patcher/internal/patcher"
)

// Metadata describes the mod to the host.
type Metadata struct {
	GUID         string
	Name         string
	Author       string
	Contributors []string
	Version      string
	HostVersion  string
	License      string
	URL          string
}

// Info is the metadata of this mod.
var Info = Metadata{
	GUID:         "com.musicmaniac.lessrestrictingheadwear",
	Name:         "LessRestrictingHeadwear",
	Author:       "MusicManiac",
	Contributors: []string{"olv"},
	Version:      "2.4.0",
	HostVersion:  "~4.0.0",
	License:      "MIT",
	URL:          "https://forge.sp-tarkov.com/mod/922/less-restricting-headwear",
}

// Mod is constructed by the host once the mod folder is known and
// receives OnLoad after the item database has been populated.
type Mod struct {
	cfg     *config.Config
	log     *slog.Logger
	patcher *patcher.Patcher
}

// Option adjusts a Mod after its config has been loaded.
type Option func(*Mod)

// WithDebug overrides the debug flag from the config file.
func WithDebug(debug bool) Option {
	return func(m *Mod) {
		m.cfg.Debug = debug
	}
}

// New loads the config from modDir, seeding it on first run.
func New(modDir string, log *slog.Logger, opts ...Option) (*Mod, error) {
	log = log.With("mod", Info.Name)

	cfg, err := config.Init(modDir, log)
	if err != nil {
		return nil, fmt.Errorf("init config: %w", err)
	}

	m := &Mod{cfg: cfg, log: log}
	for _, opt := range opts {
		opt(m)
	}
	m.patcher = patcher.New(m.cfg, log)
	return m, nil
}

// Config returns the loaded configuration.
func (m *Mod) Config() *config.Config {
	return m.cfg
}

// OnLoad patches the item database in place.
func (m *Mod) OnLoad(items patcher.ItemSource) patcher.Result {
	return m.patcher.Patch(items)
}
