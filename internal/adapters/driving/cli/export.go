package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bindery-labs/bindery-cli/internal/core/domain"
	"github.com/bindery-labs/bindery-cli/internal/logger"
)

var (
	exportFormat string
	exportOut    string
	exportPreset string
	exportTOC    bool
	exportWatch  bool
)

var exportCmd = &cobra.Command{
	Use:   "export [book.json]",
	Short: "Export a book file into a target format",
	Long: `Reads a book from a JSON file and renders it into the requested
format. Text-bearing formats (txt, markdown, html, json, yaml, fb2,
latex) write the rendered document; binary formats report the outcome
of the delegated conversion.

The output path defaults to the input name with the format's
extension. When stdout is not a terminal and no output path is given,
the rendered document is streamed to stdout instead.

Examples:
  # Render to Markdown next to the input file
  bindery export book.json --format markdown

  # Pipe HTML to another tool
  bindery export book.json -f html | less

  # Re-export whenever the book file changes
  bindery export book.json -f fb2 --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "txt", "target format (see 'bindery formats')")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file path")
	exportCmd.Flags().StringVar(&exportPreset, "preset", "", "named options preset from the config file")
	exportCmd.Flags().BoolVar(&exportTOC, "toc", false, "include a table of contents")
	exportCmd.Flags().BoolVarP(&exportWatch, "watch", "w", false, "re-export when the book file changes")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]

	if exportService == nil {
		return errors.New("export service not configured")
	}

	format, err := domain.ParseFormat(exportFormat)
	if err != nil {
		return fmt.Errorf("unsupported format %q (see 'bindery formats')", exportFormat)
	}

	opts, err := resolveOptions()
	if err != nil {
		return err
	}

	if exportWatch {
		return watchAndExport(cmd, path, format, opts)
	}

	return exportOnce(cmd, path, format, opts)
}

// resolveOptions merges the named preset (if any) with command flags.
// Flags win over preset values.
func resolveOptions() (domain.ExportOptions, error) {
	var opts domain.ExportOptions

	if exportPreset != "" {
		if presetStore == nil {
			return opts, errors.New("no preset store configured")
		}
		preset, ok := presetStore.Preset(exportPreset)
		if !ok {
			return opts, fmt.Errorf("unknown preset %q (available: %s)",
				exportPreset, strings.Join(presetStore.Presets(), ", "))
		}
		opts = preset
	}

	if exportTOC {
		opts.IncludeTableOfContents = true
	}

	return opts, nil
}

func exportOnce(cmd *cobra.Command, path string, format domain.Format, opts domain.ExportOptions) error {
	book, err := loadBook(path)
	if err != nil {
		return err
	}

	result := exportService.ExportBook(cmd.Context(), book, format, opts)
	if !result.Success {
		return errors.New(result.Message)
	}

	if !format.TextBearing() {
		cmd.Println(result.Message)
		return nil
	}

	// Piped stdout gets the raw document, a terminal gets a file.
	if exportOut == "" && !stdoutIsTerminal() {
		fmt.Fprint(cmd.OutOrStdout(), result.Content)
		return nil
	}

	out := exportOut
	if out == "" {
		out = outputPath(path, format)
	}

	if err := os.WriteFile(out, []byte(result.Content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	cmd.Printf("%s -> %s\n", result.Message, out)
	return nil
}

// watchAndExport runs an initial export and repeats it on every write
// to the book file. Failed runs are logged and watching continues.
func watchAndExport(cmd *cobra.Command, path string, format domain.Format, opts domain.ExportOptions) error {
	if err := exportOnce(cmd, path, format, opts); err != nil {
		logger.Error("export failed: %v", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	// Watch the directory; editors replace files on save, which drops
	// a watch registered on the file itself.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	cmd.Printf("Watching %s (Ctrl-C to stop)\n", path)

	target := filepath.Clean(path)
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Info("%s changed, re-exporting", path)
			if err := exportOnce(cmd, path, format, opts); err != nil {
				logger.Error("export failed: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error: %v", err)
		}
	}
}

// loadBook reads and decodes a book JSON file.
func loadBook(path string) (*domain.Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var book domain.Book
	if err := json.Unmarshal(data, &book); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &book, nil
}

// outputPath derives the default output file name from the input path
// and the target format's extension.
func outputPath(input string, format domain.Format) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + format.Extension()
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
