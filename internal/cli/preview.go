package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pimpmygrc/pimpmygrc/internal/preview"
	"github.com/pimpmygrc/pimpmygrc/internal/theme"
)

var previewOutputDir string

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview [theme]",
	Short: "Render a mock flowgraph PNG for a theme",
	Long: `Render a mock flowgraph using a theme's palette so you can see it
before applying. With no theme name, previews every available theme.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewOutputDir, "output-dir", "o", ".", "directory for the preview PNGs")
}

func runPreview(cmd *cobra.Command, args []string) error {
	store := themeStore()

	var themes []theme.Theme
	if len(args) == 1 {
		th, err := store.Get(args[0])
		if err != nil {
			return err
		}
		themes = []theme.Theme{*th}
	} else {
		var err error
		themes, err = store.List()
		if err != nil {
			return err
		}
		if len(themes) == 0 {
			return fmt.Errorf("no themes found in %s", store.Dir())
		}
	}

	if err := os.MkdirAll(previewOutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, th := range themes {
		content, err := th.ReadFile("gui/canvas/colors.py")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %s has no colors.py; skipping\n", th.Name)
			continue
		}
		out := filepath.Join(previewOutputDir, "preview-"+th.Name+".png")
		if err := preview.WritePNG(out, theme.ParsePalette(content)); err != nil {
			return err
		}
		fmt.Printf("  %s -> %s\n", th.Name, out)
	}
	return nil
}
