package gridview

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	koanffile "github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the two persisted presentation preferences. The file is
// read-modify-write, last-write-wins; there is no schema versioning at
// this scale.
type Settings struct {
	Theme      string `koanf:"theme" yaml:"theme"`
	FontFamily string `koanf:"font_family" yaml:"font_family"`
}

// DefaultSettings returns the settings used when no file exists yet.
func DefaultSettings() Settings {
	return Settings{
		Theme:      "default",
		FontFamily: "sans-serif",
	}
}

// SettingsStore is a process-wide key-value settings file with explicit
// load and save.
type SettingsStore struct {
	path string
}

// NewSettingsStore creates a settings store backed by the given file
// path.
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

// Load reads the settings file. A missing file yields the defaults.
func (s *SettingsStore) Load() (Settings, error) {
	settings := DefaultSettings()
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return settings, nil
	}

	k := koanf.New(".")
	if err := k.Load(koanffile.Provider(s.path), koanfyaml.Parser()); err != nil {
		return settings, fmt.Errorf("gridview: load settings: %w", err)
	}
	if err := k.Unmarshal("", &settings); err != nil {
		return settings, fmt.Errorf("gridview: parse settings: %w", err)
	}
	return settings, nil
}

// Save writes the settings file, creating parent directories as needed.
func (s *SettingsStore) Save(settings Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("gridview: encode settings: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("gridview: create settings dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("gridview: write settings: %w", err)
	}
	return nil
}

// Update performs a read-modify-write cycle on the settings file.
func (s *SettingsStore) Update(fn func(*Settings)) (Settings, error) {
	settings, err := s.Load()
	if err != nil {
		return settings, err
	}
	fn(&settings)
	if err := s.Save(settings); err != nil {
		return settings, err
	}
	return settings, nil
}
