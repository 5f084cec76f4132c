package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pimpmygrc/pimpmygrc/internal/effects"
)

// effectsCmd represents the effects command group
var effectsCmd = &cobra.Command{
	Use:   "effects",
	Short: "Configure decorative effects",
	Long: `Configure the decorative effects read by the themed drawing layer.
Boolean effects are toggled with enable/disable; ambient_particles and
click_sound take a mode value via set.`,
}

var effectsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current effects configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := effects.Load(effects.DefaultPath())

		names := make([]string, 0, len(cfg.Bools))
		for name := range cfg.Bools {
			names = append(names, name)
		}
		sort.Strings(names)

		tbl := NewTable([]string{"EFFECT", "VALUE"})
		for _, name := range names {
			value := "off"
			if cfg.Bools[name] {
				value = "on"
			}
			tbl.AddRow([]string{name, value})
		}
		tbl.AddRow([]string{"ambient_particles", cfg.Modes["ambient_particles"]})
		tbl.AddRow([]string{"click_sound", cfg.Modes["click_sound"]})
		fmt.Print(tbl.Render())
		return nil
	},
}

var effectsEnableCmd = &cobra.Command{
	Use:   "enable <effect>",
	Short: "Enable a boolean effect",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setBoolEffect(args[0], true)
	},
}

var effectsDisableCmd = &cobra.Command{
	Use:   "disable <effect>",
	Short: "Disable a boolean effect",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setBoolEffect(args[0], false)
	},
}

var effectsSetCmd = &cobra.Command{
	Use:   "set <effect> <value>",
	Short: "Set a mode effect (ambient_particles, click_sound)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := effects.DefaultPath()
		cfg := effects.Load(path)
		if err := cfg.SetMode(args[0], args[1]); err != nil {
			return err
		}
		if err := effects.Save(path, cfg); err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", args[0], args[1])
		return nil
	},
}

func setBoolEffect(name string, enabled bool) error {
	path := effects.DefaultPath()
	cfg := effects.Load(path)
	if err := cfg.SetBool(name, enabled); err != nil {
		return err
	}
	if err := effects.Save(path, cfg); err != nil {
		return err
	}
	state := "disabled"
	if enabled {
		state = "enabled"
	}
	fmt.Printf("%s %s\n", name, state)
	return nil
}

func init() {
	effectsCmd.AddCommand(effectsShowCmd)
	effectsCmd.AddCommand(effectsEnableCmd)
	effectsCmd.AddCommand(effectsDisableCmd)
	effectsCmd.AddCommand(effectsSetCmd)
}
