// Package cli provides the command-line interface for PimpMyGRC.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pimpmygrc/pimpmygrc/internal/hostapp"
	"github.com/pimpmygrc/pimpmygrc/internal/hostfs"
	"github.com/pimpmygrc/pimpmygrc/internal/installer"
	"github.com/pimpmygrc/pimpmygrc/internal/theme"
	"github.com/pimpmygrc/pimpmygrc/internal/version"
)

var (
	// Global flags
	flagVerbose   bool
	flagQuiet     bool
	flagThemesDir string
	flagHostDir   string
	flagConfPath  string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "pimpmygrc",
		Short: "Cosmetic theming for GNU Radio Companion",
		Long: `PimpMyGRC swaps GNU Radio Companion's rendering modules for themed
replacements. Every file is backed up before it is first touched, so a
single restore always gets you back to stock, byte for byte.

Themes change colors and chrome only; signal processing is untouched.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	registerPathFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(effectsCmd)
	rootCmd.AddCommand(backgroundCmd)
	rootCmd.AddCommand(backgroundColorCmd)
}

// registerPathFlags binds the discovery-override flags. Split out so tests
// can bind them onto a fresh flag set.
func registerPathFlags(fs *pflag.FlagSet) {
	fs.StringVar(&flagThemesDir, "themes-dir", "", "themes directory (default: data dir)")
	fs.StringVar(&flagHostDir, "host-dir", "", "host install directory (default: auto-detect)")
	fs.StringVar(&flagConfPath, "conf", "", "host grc.conf path (default: auto-detect)")
}

// logger builds the operation logger. User-facing results go to stdout with
// fmt; this logger is for the machinery and writes to stderr.
func logger() hclog.Logger {
	level := hclog.Warn
	if flagVerbose {
		level = hclog.Debug
	}
	if flagQuiet {
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "pimpmygrc",
		Level:  level,
		Output: os.Stderr,
	})
}

// dataDir is where this tool keeps its own files: themes, shared patches,
// backups and the install state.
func dataDir() string {
	if dir := os.Getenv("PIMPMYGRC_DATA"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "pimpmygrc-data")
	}
	return filepath.Join(home, ".local", "share", "pimpmygrc")
}

func themesDir() string {
	if flagThemesDir != "" {
		return flagThemesDir
	}
	return filepath.Join(dataDir(), "themes")
}

func sharedDir() string {
	return filepath.Join(dataDir(), "shared")
}

// themeStore returns the theme store for the resolved themes directory.
func themeStore() *theme.Store {
	return theme.NewStore(themesDir())
}

// hostDir resolves the host install directory from the flag or auto-detection.
func hostDir() (string, error) {
	if flagHostDir != "" {
		if !hostapp.IsInstallDir(flagHostDir) {
			return "", fmt.Errorf("%s does not look like a GRC installation (no %s)", flagHostDir, "gui/canvas/colors.py")
		}
		return flagHostDir, nil
	}
	dir := hostapp.FindInstallDir()
	if dir == "" {
		return "", fmt.Errorf("GNU Radio Companion installation not found; searched %v (use --host-dir)", hostapp.SearchedLocations())
	}
	return dir, nil
}

// confPath resolves the host config path. Empty when not found; most
// operations proceed without it.
func confPath() string {
	if flagConfPath != "" {
		return flagConfPath
	}
	return hostapp.FindConf()
}

// newInstaller wires a full installer against the real filesystem.
func newInstaller(log hclog.Logger) (*installer.Installer, error) {
	host, err := hostDir()
	if err != nil {
		return nil, err
	}

	fs := hostfs.NewOS()
	backupDir := filepath.Join(dataDir(), "backups")
	return installer.New(installer.Config{
		FS:        fs,
		Themes:    themeStore(),
		Backups:   installer.NewBackupStore(backupDir, fs, log),
		HostDir:   host,
		ConfPath:  confPath(),
		SharedDir: sharedDir(),
		StatePath: filepath.Join(dataDir(), "active_theme"),
		Logger:    log,
	}), nil
}

// warnIfHostRunning prints a warning when the host application is running.
// File swaps only take effect after a restart.
func warnIfHostRunning() {
	pids, err := hostapp.RunningPIDs()
	if err != nil || len(pids) == 0 {
		return
	}
	fmt.Fprintf(os.Stderr, "Warning: gnuradio-companion is running (pid %v); changes take effect after restart\n", pids)
}

// clearCaches removes stale host bytecode so swapped modules actually load.
func clearCaches(host string, log hclog.Logger) {
	cleared, err := hostapp.ClearBytecodeCaches(host)
	if err != nil {
		log.Warn("bytecode cache clear incomplete", "error", err)
	}
	if cleared > 0 {
		log.Debug("cleared bytecode caches", "entries", cleared)
	}
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
