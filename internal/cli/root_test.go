package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestRootHasAllCommands(t *testing.T) {
	want := []string{
		"list", "apply", "restore", "check", "status", "diff",
		"preview", "install", "effects", "background", "background-color",
		"version",
	}
	for _, name := range want {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestRestoreAliases(t *testing.T) {
	for _, alias := range []string{"reset", "default"} {
		if !restoreCmd.HasAlias(alias) {
			t.Errorf("restore should answer to %q", alias)
		}
	}
}

func TestRegisterPathFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	registerPathFlags(fs)

	for _, name := range []string{"themes-dir", "host-dir", "conf"} {
		if fs.Lookup(name) == nil {
			t.Errorf("flag %q not registered", name)
		}
	}

	if err := fs.Parse([]string{"--themes-dir", "/tmp/themes"}); err != nil {
		t.Fatal(err)
	}
	if flagThemesDir != "/tmp/themes" {
		t.Errorf("flagThemesDir = %q", flagThemesDir)
	}
	flagThemesDir = ""
}
