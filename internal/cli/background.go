package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pimpmygrc/pimpmygrc/internal/background"
)

// backgroundCmd represents the background command
var backgroundCmd = &cobra.Command{
	Use:   "background [image.png|clear]",
	Short: "Set, show or clear the canvas background image",
	Long: `Manage the user-level canvas background image. With no argument,
print the current setting. The override is independent of themes and
survives apply and restore.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBackground,
}

// backgroundColorCmd represents the background-color command
var backgroundColorCmd = &cobra.Command{
	Use:   "background-color [#RRGGBB|clear]",
	Short: "Set, show or clear the canvas background color",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBackgroundColor,
}

func runBackground(cmd *cobra.Command, args []string) error {
	paths := background.DefaultPaths()

	if len(args) == 0 {
		if !paths.HasImage() {
			fmt.Println("No background image set.")
			return nil
		}
		w, h, err := paths.ImageSize()
		if err != nil {
			return err
		}
		fmt.Printf("Background image: %s (%dx%d)\n", paths.Image, w, h)
		return nil
	}

	if args[0] == "clear" {
		removed, err := paths.ClearImage()
		if err != nil {
			return err
		}
		if removed {
			fmt.Println("Background image cleared.")
		} else {
			fmt.Println("No background image was set.")
		}
		return nil
	}

	if err := paths.SetImage(args[0]); err != nil {
		return err
	}
	fmt.Printf("Background image set from %s. Restart gnuradio-companion to see it.\n", args[0])
	return nil
}

func runBackgroundColor(cmd *cobra.Command, args []string) error {
	paths := background.DefaultPaths()

	if len(args) == 0 {
		if c := paths.ColorValue(); c != "" {
			fmt.Printf("Background color: %s\n", c)
		} else {
			fmt.Println("No background color set.")
		}
		return nil
	}

	if args[0] == "clear" {
		removed, err := paths.ClearColor()
		if err != nil {
			return err
		}
		if removed {
			fmt.Println("Background color cleared.")
		} else {
			fmt.Println("No background color was set.")
		}
		return nil
	}

	if err := paths.SetColor(args[0]); err != nil {
		return err
	}
	fmt.Printf("Background color set to %s. Restart gnuradio-companion to see it.\n", paths.ColorValue())
	return nil
}
