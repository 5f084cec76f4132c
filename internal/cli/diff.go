package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pimpmygrc/pimpmygrc/internal/theme"
)

// diffCmd represents the diff command
var diffCmd = &cobra.Command{
	Use:   "diff <theme>",
	Short: "Show what a theme would change",
	Long: `Show a unified diff between the live host files and a theme's
replacement files, computed in-process. Nothing is modified.`,
	Args: cobra.ExactArgs(1),
	RunE: runDiff,
}

func runDiff(cmd *cobra.Command, args []string) error {
	th, err := themeStore().Get(args[0])
	if err != nil {
		return err
	}
	host, err := hostDir()
	if err != nil {
		return err
	}

	fileMap := theme.ModeFull.Files()
	changed := 0
	for _, themeRel := range sortedMapKeys(fileMap) {
		hostRel := fileMap[themeRel]
		if !th.HasFile(themeRel) {
			continue
		}
		themeContent, err := th.ReadFile(themeRel)
		if err != nil {
			return err
		}
		liveContent, err := os.ReadFile(filepath.Join(host, hostRel)) // #nosec G304 - path under host dir
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Printf("--- %s: missing on host\n", hostRel)
				continue
			}
			return fmt.Errorf("failed to read %s: %w", hostRel, err)
		}

		diff := unifiedDiff(
			"live/"+hostRel, "theme/"+themeRel,
			splitLines(string(liveContent)), splitLines(string(themeContent)))
		if len(diff) == 0 {
			if flagVerbose {
				fmt.Printf("%s: identical\n", hostRel)
			}
			continue
		}
		changed++
		fmt.Println(strings.Join(diff, "\n"))
		fmt.Println()
	}

	if changed == 0 {
		fmt.Printf("Theme '%s' matches the live files; nothing would change.\n", th.Name)
	}
	return nil
}

// unifiedDiff computes a unified diff between two line slices. Returns nil
// when the inputs are identical. Small inputs only; this is O(len(a)*len(b)).
func unifiedDiff(aName, bName string, a, b []string) []string {
	if equalLines(a, b) {
		return nil
	}

	// LCS table.
	lcs := make([][]int, len(a)+1)
	for i := range lcs {
		lcs[i] = make([]int, len(b)+1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	out := []string{"--- " + aName, "+++ " + bName}
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case i < len(a) && j < len(b) && a[i] == b[j]:
			out = append(out, " "+a[i])
			i++
			j++
		case i < len(a) && (j == len(b) || lcs[i+1][j] >= lcs[i][j+1]):
			out = append(out, "-"+a[i])
			i++
		default:
			out = append(out, "+"+b[j])
			j++
		}
	}
	return out
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sortedMapKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
