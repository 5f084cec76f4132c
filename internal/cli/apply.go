package cli

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pimpmygrc/pimpmygrc/internal/installer"
	"github.com/pimpmygrc/pimpmygrc/internal/theme"
)

var applyMode string

// applyCmd represents the apply command
var applyCmd = &cobra.Command{
	Use:   "apply <theme>",
	Short: "Apply a theme to the host installation",
	Long: `Apply a theme by swapping the host's rendering modules for the theme's
replacements. Every file is backed up before it is first overwritten, and
each write is verified by checksum.

Modes:
  full    all rendering modules plus the host grc.conf (default)
  colors  colors, block and entry modules only

Examples:
  pimpmygrc apply outrun
  pimpmygrc apply arctic --mode colors`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVarP(&applyMode, "mode", "m", "full", "install mode (full, colors)")
}

func runApply(cmd *cobra.Command, args []string) error {
	mode, err := theme.ParseMode(applyMode)
	if err != nil {
		return err
	}

	log := logger()
	inst, err := newInstaller(log)
	if err != nil {
		return err
	}

	warnIfHostRunning()

	report, err := inst.Apply(args[0], mode)
	if err != nil {
		if errors.Is(err, theme.ErrNotFound) {
			return fmt.Errorf("%w (run 'pimpmygrc list' for available themes)", err)
		}
		return err
	}

	printApplyReport(report)

	host, err := hostDir()
	if err == nil {
		clearCaches(host, log)
	}

	if !report.OK() {
		return fmt.Errorf("%d file(s) failed; run 'pimpmygrc check' and 'pimpmygrc restore'", len(report.Failed))
	}
	fmt.Printf("\nTheme '%s' applied (%s mode). Restart gnuradio-companion to see it.\n", report.Theme, report.Mode)
	return nil
}

func printApplyReport(report *installer.ApplyReport) {
	if len(report.Warnings) > 0 {
		paths := make([]string, 0, len(report.Warnings))
		for path := range report.Warnings {
			paths = append(paths, path)
		}
		sort.Strings(paths)
		for _, path := range paths {
			for _, issue := range report.Warnings[path] {
				fmt.Fprintf(os.Stderr, "Warning: %s: %s\n", path, issue)
			}
		}
	}

	for _, f := range report.Installed {
		fmt.Printf("  installed %-28s %s\n", f.Path, f.Note)
	}
	for _, path := range report.Reverted {
		fmt.Printf("  reverted  %s\n", path)
	}
	if flagVerbose {
		for _, f := range report.Skipped {
			fmt.Printf("  skipped   %-28s %s\n", f.Path, f.Note)
		}
	}
	for _, f := range report.Failed {
		fmt.Fprintf(os.Stderr, "  FAILED    %-28s %s\n", f.Path, f.Reason)
	}
}
