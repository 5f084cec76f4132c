package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available themes",
	Long: `List every theme in the themes directory with its description, and
mark the currently applied one.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	themes, err := themeStore().List()
	if err != nil {
		return err
	}
	if len(themes) == 0 {
		fmt.Printf("No themes found in %s\n", themesDir())
		return nil
	}

	// The current theme is cosmetic info here; listing works without a
	// host installation.
	current := ""
	if inst, err := newInstaller(logger()); err == nil {
		if state, err := inst.State(); err == nil && state != nil {
			current = state.Theme
		}
	}

	tbl := NewTable([]string{"THEME", "DESCRIPTION", ""})
	// Leave room for the name column and the applied marker.
	if w := terminalWidth(100); w > 40 {
		tbl.SetColumnMaxWidth(1, w-30)
	}
	for _, th := range themes {
		marker := ""
		if th.Name == current {
			marker = "(applied)"
		}
		tbl.AddRow([]string{th.Name, th.Description, marker})
	}
	fmt.Print(tbl.Render())

	if current == "" {
		fmt.Println("\nNo theme applied (stock).")
	}
	return nil
}
