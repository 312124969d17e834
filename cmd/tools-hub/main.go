package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/tools-hub/internal/cli"
	"github.com/CodexForgeBR/tools-hub/internal/config"
	"github.com/CodexForgeBR/tools-hub/internal/exitcode"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	a := newApp()
	rootCmd := newRootCmd(a)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.Error)
	}
	os.Exit(a.exitCode)
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tools-hub",
		Short:   "AI writing and research tools backed by Gemini",
		Long:    "tools-hub runs small AI tools against Gemini, retrying overloaded models and falling back to the next model in line.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateFlags(cmd, a.flags); err != nil {
				return err
			}
			return a.loadConfig(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Bind all CLI flags to the config
	cli.BindFlags(rootCmd, a.flags)

	// Set custom help template
	cli.SetCustomHelp(rootCmd)

	rootCmd.AddCommand(
		newRecommendCmd(a),
		newFactCheckCmd(a),
		newMockDataCmd(a),
		newHumanizeCmd(a),
		newSummarizeCmd(a),
		newGeoVisionCmd(a),
	)
	return rootCmd
}

// defaultFlags returns the values flags start from before parsing.
func defaultFlags() *config.Config {
	return config.NewDefaultConfig()
}
