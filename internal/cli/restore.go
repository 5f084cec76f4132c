package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pimpmygrc/pimpmygrc/internal/installer"
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:     "restore",
	Aliases: []string{"reset", "default"},
	Short:   "Restore the stock installation",
	Long: `Restore every backed-up host file to its original content, byte for
byte, and clear the recorded theme state. Safe to run at any time, including
after a failed apply.`,
	Args: cobra.NoArgs,
	RunE: runRestore,
}

func runRestore(cmd *cobra.Command, args []string) error {
	log := logger()
	inst, err := newInstaller(log)
	if err != nil {
		return err
	}

	warnIfHostRunning()

	report, err := inst.RestoreAll()
	var partial *installer.PartialRestoreError
	if err != nil && !errors.As(err, &partial) {
		return err
	}

	for _, path := range report.Restored {
		fmt.Printf("  restored %s\n", path)
	}
	for _, f := range report.Failed {
		fmt.Fprintf(os.Stderr, "  FAILED   %-28s %s\n", f.Path, f.Reason)
	}

	if host, hostErr := hostDir(); hostErr == nil {
		clearCaches(host, log)
	}

	if partial != nil {
		return fmt.Errorf("restore incomplete: %w", partial)
	}
	if len(report.Restored) == 0 {
		fmt.Println("Nothing to restore; no backups recorded.")
		return nil
	}
	fmt.Printf("\nStock installation restored (%d file(s)).\n", len(report.Restored))
	return nil
}
