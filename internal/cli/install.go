package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pimpmygrc/pimpmygrc/internal/pack"
)

// installCmd represents the install command
var installCmd = &cobra.Command{
	Use:   "install <archive>",
	Short: "Install a theme pack archive",
	Long: `Unpack a theme pack into the themes directory. Supported formats:
.tar.gz, .tgz, .tar.xz, .tar.bz2, .zip. Each top-level directory in the
archive becomes a theme.`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func runInstall(cmd *cobra.Command, args []string) error {
	themes, err := pack.Install(args[0], themesDir(), logger())
	if err != nil {
		return err
	}
	fmt.Printf("Installed %d theme(s): %s\n", len(themes), strings.Join(themes, ", "))
	fmt.Printf("Apply one with: pimpmygrc apply %s\n", themes[0])
	return nil
}
