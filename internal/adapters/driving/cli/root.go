// Package cli implements the command-line interface for Bindery.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/bindery-labs/bindery-cli/internal/adapters/driven/config/file"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driven"
	"github.com/bindery-labs/bindery-cli/internal/core/ports/driving"
	"github.com/bindery-labs/bindery-cli/internal/core/services"
	"github.com/bindery-labs/bindery-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var verbose bool

// Services wired at startup. Package-level so commands and tests can
// swap them.
var (
	exportService driving.ExportService
	presetStore   driven.ConfigStore
)

var rootCmd = &cobra.Command{
	Use:   "bindery",
	Short: "Export books into reader-friendly document formats",
	Long: `Bindery turns a canonical book (title, author, ordered chapters) into
any of the supported document formats: plain text, Markdown, HTML,
JSON, YAML, FB2, LaTeX and the binary container formats.

Exports never abort the process: every run produces a result envelope
describing success or failure.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute wires the default services and runs the root command.
func Execute() error {
	initServices()
	return rootCmd.Execute()
}

// initServices constructs the default service graph. A broken preset
// file degrades to no presets rather than blocking exports.
func initServices() {
	if exportService == nil {
		exportService = services.NewExportService(services.NewExporterRegistry())
	}

	if presetStore == nil {
		store, err := file.NewPresetStore("")
		if err != nil {
			logger.Warn("preset store unavailable: %v", err)
		} else {
			presetStore = store
		}
	}
}
