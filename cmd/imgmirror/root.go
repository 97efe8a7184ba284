package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"imgmirror/pkg/ui"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"

	// Global flags
	configFile string
	logLevel   string
	noColor    bool
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands.
// Run on its own it mirrors the configured site, like the mirror command.
var rootCmd = &cobra.Command{
	Use:   "imgmirror",
	Short: "Mirror the images of a portfolio site into a local directory",
	Long: `imgmirror fetches a fixed list of pages from a site, finds every <img>
on them and downloads each distinct image once into a target directory.

Pages are processed one after another. A page or image that fails is reported
and skipped; the run always finishes with a summary line.

Configuration can be loaded from:
  - Command line flags (highest priority)
  - Environment variables (IMGMIRROR_*, also read from .env)
  - Configuration file
  - Default values (lowest priority)`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMirror,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// Interrupts cancel in-flight requests through the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.PrintError("Error", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is ./.imgmirror.yaml or $HOME/.imgmirror.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error, disabled)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	addMirrorFlags(rootCmd)

	rootCmd.SetVersionTemplate(`imgmirror {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
