package driven

import (
	"github.com/bindery-labs/bindery-cli/internal/core/domain"
)

// ConfigStore provides named export option presets.
// Implementations load presets from caller-side configuration; the
// engine itself never reads configuration.
type ConfigStore interface {
	// Preset returns the named options preset, or false when no such
	// preset exists.
	Preset(name string) (domain.ExportOptions, bool)

	// Presets returns the names of all configured presets, sorted.
	Presets() []string
}
