package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	formatHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("12"))

	formatIDStyle = lipgloss.NewStyle().
			Bold(true)

	formatDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported export formats",
	RunE:  runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, _ []string) error {
	if exportService == nil {
		return errors.New("export service not configured")
	}

	cmd.Println(formatHeaderStyle.Render("Supported formats"))
	cmd.Println()

	for _, info := range exportService.Formats() {
		kind := "binary"
		if info.TextBearing {
			kind = "text"
		}
		cmd.Printf("  %s  %s\n",
			formatIDStyle.Render(fmt.Sprintf("%-9s", string(info.Format))),
			formatDimStyle.Render(fmt.Sprintf("%-10s .%-5s %s", info.DisplayName, info.Extension, kind)))
	}

	return nil
}
