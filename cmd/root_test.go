package cmd

import "testing"

func TestNewRootCmdSubcommands(t *testing.T) {
	root := NewRootCmd()

	want := []string{"run", "config"}
	for _, name := range want {
		found := false
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing %q subcommand", name)
		}
	}
}

func TestRunCmdFlags(t *testing.T) {
	runCmd := newRunCmd()

	for _, name := range []string{"for", "interval", "refresh"} {
		if runCmd.Flags().Lookup(name) == nil {
			t.Errorf("run command missing --%s flag", name)
		}
	}
}
