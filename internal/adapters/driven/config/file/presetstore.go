package file

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driven"
)

// Ensure PresetStore implements the interface.
var _ driven.ConfigStore = (*PresetStore)(nil)

// PresetStore is a file-based implementation of driven.ConfigStore
// using TOML. Presets are stored as [presets.<name>] tables in a TOML
// file within the bindery config directory.
type PresetStore struct {
	mu       sync.RWMutex
	filePath string
	presets  map[string]domain.ExportOptions
}

// fileConfig is the on-disk shape of the config file.
type fileConfig struct {
	Presets map[string]domain.ExportOptions `toml:"presets"`
}

// NewPresetStore creates a new TOML-based preset store.
// If configDir is empty, defaults to ~/.bindery/config.toml.
// A missing config file yields an empty store, not an error.
func NewPresetStore(configDir string) (*PresetStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".bindery")
	}

	s := &PresetStore{
		filePath: filepath.Join(configDir, "config.toml"),
		presets:  make(map[string]domain.ExportOptions),
	}

	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return s, nil
}

// load reads and parses the config file.
func (s *PresetStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return err
	}

	if cfg.Presets != nil {
		s.presets = cfg.Presets
	}
	return nil
}

// Preset returns the named options preset.
func (s *PresetStore) Preset(name string) (domain.ExportOptions, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	opts, ok := s.presets[name]
	return opts, ok
}

// Presets returns the names of all configured presets, sorted.
func (s *PresetStore) Presets() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
