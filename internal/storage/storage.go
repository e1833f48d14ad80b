package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/OCharnyshevich/headwear-patcher/internal/gamedata"
)

// Layout of a database directory.
const (
	ItemsFile  = "templates/items.json"
	LocaleFile = "locales/global/en.json"
)

// Storage reads and writes a game database directory.
type Storage struct {
	dir string
	log *slog.Logger
}

// New creates a Storage rooted at dir.
func New(dir string, log *slog.Logger) *Storage {
	return &Storage{dir: dir, log: log}
}

// LoadDatabase reads the item templates and, if present, the English
// locale table.
func (s *Storage) LoadDatabase() (*gamedata.Database, error) {
	path := filepath.Join(s.dir, ItemsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}

	var items map[string]*gamedata.TemplateItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse items: %w", err)
	}
	for id, it := range items {
		if it == nil {
			delete(items, id)
			continue
		}
		if it.ID == "" {
			it.ID = id
		}
	}

	locale, err := s.loadLocale()
	if err != nil {
		return nil, err
	}

	s.log.Info("loaded item database", "path", path, "items", len(items), "locale", len(locale))
	return gamedata.NewDatabase(items, locale), nil
}

// loadLocale returns nil without error when the locale file is absent.
func (s *Storage) loadLocale() (map[string]string, error) {
	path := filepath.Join(s.dir, LocaleFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read locale: %w", err)
	}

	var locale map[string]string
	if err := json.Unmarshal(data, &locale); err != nil {
		return nil, fmt.Errorf("parse locale: %w", err)
	}
	return locale, nil
}

// SaveItems writes the item templates of db to the items file atomically.
func (s *Storage) SaveItems(db *gamedata.Database) error {
	path := filepath.Join(s.dir, ItemsFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", filepath.Dir(path), err)
	}
	if err := WriteJSON(path, db.Templates()); err != nil {
		return err
	}
	s.log.Info("saved item database", "path", path, "items", db.Len())
	return nil
}

// WriteJSON marshals v to indented JSON and writes it atomically.
// Map keys are emitted in sorted order.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')
	return WriteFileAtomic(path, data)
}

// WriteFileAtomic writes data to path using a temp file + rename.
func WriteFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
