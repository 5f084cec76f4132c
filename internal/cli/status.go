package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pimpmygrc/pimpmygrc/internal/background"
	"github.com/pimpmygrc/pimpmygrc/internal/effects"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current theming state at a glance",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	host, err := hostDir()
	if err != nil {
		return err
	}

	inst, err := newInstaller(logger())
	if err != nil {
		return err
	}

	fmt.Printf("Host install:  %s\n", host)
	if conf := confPath(); conf != "" {
		fmt.Printf("Host config:   %s\n", conf)
	} else {
		fmt.Printf("Host config:   not found\n")
	}
	fmt.Printf("Themes dir:    %s\n", themesDir())

	state, err := inst.State()
	if err != nil {
		return err
	}
	if state != nil {
		fmt.Printf("Theme:         %s (%s mode)\n", state.Theme, state.Mode)
	} else {
		fmt.Printf("Theme:         none (stock)\n")
	}

	report, err := inst.Check()
	if err != nil {
		return err
	}
	if report.HasBackups {
		fmt.Printf("Backups:       present\n")
	} else {
		fmt.Printf("Backups:       none recorded\n")
	}

	paths := background.DefaultPaths()
	switch {
	case paths.HasImage():
		if w, h, err := paths.ImageSize(); err == nil {
			fmt.Printf("Background:    image (%dx%d)\n", w, h)
		} else {
			fmt.Printf("Background:    image (unreadable)\n")
		}
	case paths.ColorValue() != "":
		fmt.Printf("Background:    color %s\n", paths.ColorValue())
	default:
		fmt.Printf("Background:    default\n")
	}

	cfg := effects.Load(effects.DefaultPath())
	enabled := 0
	for _, v := range cfg.Bools {
		if v {
			enabled++
		}
	}
	fmt.Printf("Effects:       %d/%d enabled, ambient=%s, sound=%s\n",
		enabled, len(cfg.Bools), cfg.Modes["ambient_particles"], cfg.Modes["click_sound"])

	if report.HasIssues() {
		fmt.Println("\nSome files need attention; run 'pimpmygrc check' for details.")
	}
	return nil
}
