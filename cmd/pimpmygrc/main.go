// PimpMyGRC - cosmetic theming for GNU Radio Companion
//
// PimpMyGRC swaps GRC's rendering modules for themed replacements, with
// byte-for-byte restore from first-touch backups.
package main

import (
	"os"

	"github.com/pimpmygrc/pimpmygrc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
