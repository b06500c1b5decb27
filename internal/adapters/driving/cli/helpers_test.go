package cli

import (
	"github.com/bindery-labs/bindery-cli/internal/core/domain"
	"github.com/bindery-labs/bindery-cli/internal/core/services"
)

// mockPresetStore is a mock implementation of driven.ConfigStore.
type mockPresetStore struct {
	presets map[string]domain.ExportOptions
}

func (m *mockPresetStore) Preset(name string) (domain.ExportOptions, bool) {
	opts, ok := m.presets[name]
	return opts, ok
}

func (m *mockPresetStore) Presets() []string {
	names := make([]string, 0, len(m.presets))
	for name := range m.presets {
		names = append(names, name)
	}
	return names
}

// setupTestServices wires the real export service and an in-memory
// preset store. The returned cleanup restores the previous wiring.
func setupTestServices() func() {
	oldExport := exportService
	oldPresets := presetStore

	exportService = services.NewExportService(services.NewExporterRegistry())
	presetStore = &mockPresetStore{
		presets: map[string]domain.ExportOptions{
			"reader": {FontSize: 14, IncludeTableOfContents: true},
		},
	}

	return func() {
		exportService = oldExport
		presetStore = oldPresets
	}
}
