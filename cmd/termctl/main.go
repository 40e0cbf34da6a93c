// Termctl is a demo and diagnostic tool for the termctl terminal
// control library.
//
// It provides an interactive viewer for inspecting decoded key and
// mouse events, a drawing demo exercising the output encoder, and a
// key-name lookup utility.
//
// Usage:
//
//	termctl [command] [flags]
//
// Running without arguments launches the event viewer.
// See 'termctl --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/termctl/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termctl",
	Short: "Terminal control diagnostics",
	Long: `Diagnostic and demo commands for the termctl library.

The event viewer shows every decoded key, mouse, and resize event as
it arrives. The draw demo exercises boxes, colors, and attributes.

If no command is specified, the event viewer launches.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitializeFromEnv()
	},
	RunE: runEvents,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("termctl %s (commit: %s)\n", version, commit)
	},
}
