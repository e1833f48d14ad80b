package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/OCharnyshevich/headwear-patcher/internal/storage"
)

// FileName is the config file seeded into the mod folder.
const FileName = "config.jsonc"

// YAML alternatives, consulted only when config.jsonc is absent.
var yamlNames = []string{"config.yaml", "config.yml"}

const header = `// Structure of every override:
//   [ HEADWEAR (Headwear), HEADPHONES (Earpiece), FACE_COVER (FaceCover), VISORS (Eyewear) ]
// A "true" value removes the block, a "false" value keeps the item's value.
// itemSettings is keyed by the id of the base class, not a readable name.
`

// Decode parses config data. Files ending in .yaml or .yml are decoded
// as YAML, everything else as JSON with comments.
func Decode(name string, data []byte) (*Config, error) {
	var cfg Config
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	default:
		std, err := hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		if err := json.Unmarshal(std, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}
	return &cfg, nil
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Decode(filepath.Base(path), data)
}

// Encode renders cfg as the commented JSON written on first run.
func Encode(cfg *Config) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	out := make([]byte, 0, len(header)+len(data)+1)
	out = append(out, header...)
	out = append(out, data...)
	return append(out, '\n'), nil
}

// Path returns the config file that Init would load from modDir.
func Path(modDir string) string {
	primary := filepath.Join(modDir, FileName)
	if _, err := os.Stat(primary); err == nil {
		return primary
	}
	for _, name := range yamlNames {
		p := filepath.Join(modDir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return primary
}

// Init loads the config from modDir, writing the default config first
// if no config file exists. Write and parse failures are returned.
func Init(modDir string, log *slog.Logger) (*Config, error) {
	path := Path(modDir)

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config: %w", err)
		}
		log.Info("config file not found, creating", "path", path)
		data, err := Encode(Default())
		if err != nil {
			return nil, err
		}
		if err := storage.WriteFileAtomic(path, data); err != nil {
			return nil, fmt.Errorf("write default config: %w", err)
		}
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	for _, p := range cfg.Validate() {
		log.Warn("config entry ignored", "path", path, "problem", p)
	}
	return cfg, nil
}
