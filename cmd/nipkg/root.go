// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for nipkg.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"nipkg-cli/internal/config"
	"nipkg-cli/internal/issue"
	"nipkg-cli/internal/registry"
	"nipkg-cli/internal/source"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// Verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "nipkg",
		Short: "Resolve data package names to filesystem paths",
		Long: TitleStyle.Render("nipkg") + SubtitleStyle.Render(" - Resolve data package names to filesystem paths") + `

nipkg maps installable data package names (e.g. neuroimaging template
collections) to the directories they are installed under. Mappings come
from INI source files with a [PACKAGE PATHS] section, discovered from
the system directory, configured extra directories, your user config
directory, and the NIPKG_PKG_INI environment variable.

When the same name appears in more than one source, the later (higher
precedence) source wins: env file > user dir > configured dirs > system dir.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Create a *.pkgpth file in ~/.config/nipkg/
  2. Add entries under a [PACKAGE PATHS] section
  3. Resolve packages with: nipkg resolve <name>

` + SubtitleStyle.Render("Examples:") + `
  nipkg resolve nipy-templates-0.3          Print the resolved package root
  nipkg filename nipy-templates-0.3 T1.nii  Print a file path inside the package
  nipkg list                                List all registered packages
  nipkg sources                             Show discovered source files
  nipkg config init                         Create default configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/nipkg/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(filenameCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(sourcesCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newCompletionCommand())
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	// Set custom config file path if provided via --config flag
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// Always surface config loading errors to the user
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	// Apply verbose from config if not set via flag
	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}

	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// buildRegistry discovers sources (honoring source_dirs from the loaded
// configuration) and merges them into a registry.
func buildRegistry() (*registry.Registry, error) {
	var extraDirs []string
	if cfg, err := config.Load(); err == nil && cfg != nil {
		for _, dir := range cfg.SourceDirs {
			extraDirs = append(extraDirs, string(dir))
		}
	}

	var opts []source.Option
	if len(extraDirs) > 0 {
		opts = append(opts, source.WithExtraDirs(extraDirs...))
	}
	if userDir, err := config.UserSourcesDir(); err == nil {
		opts = append(opts, source.WithUserDir(userDir))
	}

	return registry.Build(source.NewOSProvider(opts...), registry.WithLogger(log.Default()))
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
