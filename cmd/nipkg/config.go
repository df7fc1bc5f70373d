// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"nipkg-cli/internal/config"
	"nipkg-cli/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `nipkg config` command tree.
func newConfigCommand() *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage nipkg configuration",
		Long: `Manage nipkg configuration.

Configuration is stored in:
  - Linux: ~/.config/nipkg/config.cue
  - macOS: ~/Library/Application Support/nipkg/config.cue
  - Windows: %APPDATA%\nipkg\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			fmt.Print(config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig() error {
	cfg, err := config.Load()
	if err != nil {
		rendered, _ := issue.Get(issue.ConfigLoadFailedId).Render("dark")
		fmt.Fprint(os.Stderr, rendered)
		return err
	}

	fmt.Println(TitleStyle.Render("Current Configuration"))
	fmt.Println()

	cfgDir, dirErr := config.ConfigDir()
	if dirErr == nil {
		cfgPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
		if _, statErr := os.Stat(cfgPath); statErr == nil {
			fmt.Printf("%s: %s\n", NameStyle.Render("Config file"), cfgPath)
		} else {
			fmt.Printf("%s: %s\n", NameStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
		}
	} else {
		fmt.Printf("%s: %s\n", NameStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	if len(cfg.SourceDirs) > 0 {
		fmt.Printf("%s:\n", NameStyle.Render("source_dirs"))
		for _, dir := range cfg.SourceDirs {
			fmt.Printf("  - %s\n", SuccessStyle.Render(string(dir)))
		}
	} else {
		fmt.Printf("%s: %s\n", NameStyle.Render("source_dirs"), SubtitleStyle.Render("(none)"))
	}
	fmt.Printf("%s: %s\n", NameStyle.Render("ui.color_scheme"), SuccessStyle.Render(string(cfg.UI.ColorScheme)))
	fmt.Printf("%s: %s\n", NameStyle.Render("ui.verbose"), SuccessStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	fmt.Println()
	fmt.Printf("%s: %s\n", NameStyle.Render("System sources dir"), config.SystemSourcesDir())
	if userDir, userErr := config.UserSourcesDir(); userErr == nil {
		fmt.Printf("%s: %s\n", NameStyle.Render("User sources dir"), userDir)
	}

	return nil
}

func initConfig() error {
	if err := config.CreateDefaultConfig(); err != nil {
		return err
	}

	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	cfgPath := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)

	fmt.Println(SuccessStyle.Render("Configuration ready: ") + cfgPath)
	return nil
}

func showConfigPath() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	fmt.Println(filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
	return nil
}
