package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pimpmygrc/pimpmygrc/internal/hostapp"
	"github.com/pimpmygrc/pimpmygrc/internal/installer"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the state of every tracked host file",
	Long: `Compare every tracked host file against the stock backup and every
known theme's content, and report its true state. Read-only; never changes
anything, so it is always safe to run after a failed apply or restore.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	inst, err := newInstaller(logger())
	if err != nil {
		return err
	}

	report, err := inst.Check()
	if err != nil {
		return err
	}

	if report.State != nil {
		fmt.Printf("Recorded state: theme '%s' (%s mode)\n", report.State.Theme, report.State.Mode)
	} else {
		fmt.Println("Recorded state: stock (no theme applied)")
	}
	if !report.HasBackups {
		fmt.Println("No backups recorded yet; statuses are content-only.")
	}
	fmt.Println()

	tbl := NewTable([]string{"FILE", "STATUS", "NOTE"})
	for _, f := range report.Files {
		status := string(f.Status)
		if f.Status == installer.StatusThemed {
			status = fmt.Sprintf("THEMED [%s]", f.MatchedTheme)
		}
		note := f.Issue
		if len(f.MissingVars) > 0 {
			note = fmt.Sprintf("%s (%s)", note, strings.Join(f.MissingVars, ", "))
		}
		tbl.AddRow([]string{f.Path, status, note})
	}
	fmt.Print(tbl.Render())

	if host, hostErr := hostDir(); hostErr == nil {
		if n := hostapp.CountBytecodeCaches(host); n > 0 {
			fmt.Printf("\n%d stale bytecode cache entr%s present; 'apply' or 'restore' clears them.\n",
				n, plural(n, "y is", "ies are"))
		}
	}

	if report.HasIssues() {
		return fmt.Errorf("check found issues; see the NOTE column above")
	}
	fmt.Println("\nEverything checks out.")
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
