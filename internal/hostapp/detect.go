// Package hostapp locates and inspects the host GNU Radio Companion
// installation this tool themes. It never calls into the host; it only
// finds the files the host will later load.
package hostapp

import (
	"os"
	"path/filepath"
)

// markerFile must exist under a directory for it to count as a GRC install.
const markerFile = "gui/canvas/colors.py"

// dirCandidates are the fixed install locations checked first.
var dirCandidates = []string{
	"/usr/lib/python3/dist-packages/gnuradio/grc",
	"/usr/local/lib/python3/dist-packages/gnuradio/grc",
}

// dirPatterns widen the search across python versions and packaging layouts.
var dirPatterns = []string{
	"/usr/lib/python*/dist-packages/gnuradio/grc",
	"/usr/local/lib/python*/dist-packages/gnuradio/grc",
	"/usr/lib/python*/*-packages/gnuradio/grc",
}

// confCandidates are the known locations of the host config file.
var confCandidates = []string{
	"/etc/gnuradio/conf.d/grc.conf",
	"/usr/local/etc/gnuradio/conf.d/grc.conf",
}

// FindInstallDir auto-detects the host package directory. Returns "" when
// no installation is found.
func FindInstallDir() string {
	candidates := append([]string(nil), dirCandidates...)
	for _, pattern := range dirPatterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			continue
		}
		candidates = append(candidates, matches...)
	}

	for _, dir := range candidates {
		if IsInstallDir(dir) {
			return dir
		}
	}
	return ""
}

// IsInstallDir reports whether dir looks like a GRC installation.
func IsInstallDir(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, markerFile))
	return err == nil && info.Mode().IsRegular()
}

// FindConf locates the host config file. Returns "" when not found.
func FindConf() string {
	for _, path := range confCandidates {
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

// SearchedLocations describes where detection looked, for error messages.
func SearchedLocations() []string {
	return append(append([]string(nil), dirCandidates...), dirPatterns...)
}
