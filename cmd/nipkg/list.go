// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"nipkg-cli/internal/issue"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered packages",
	Long: `List all registered packages.

Shows every package name known after merging all configuration sources,
together with the path it resolves to. With --verbose, also shows which
source file each winning entry came from.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList()
	},
}

func runList() error {
	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	if len(reg.Sources()) == 0 {
		if rendered, renderErr := issue.Get(issue.NoSourcesFoundId).Render("dark"); renderErr == nil {
			fmt.Fprint(os.Stderr, rendered)
		}
		return &ExitError{Code: 1, Err: fmt.Errorf("no configuration sources found")}
	}

	names := reg.Names()
	if len(names) == 0 {
		fmt.Println(SubtitleStyle.Render("No packages registered."))
		return nil
	}

	fmt.Println(TitleStyle.Render("Registered Packages"))
	fmt.Println()
	for _, name := range names {
		entry, _ := reg.Lookup(name)
		fmt.Printf("%s -> %s\n", NameStyle.Render(string(name)), entry.Path)
		if verbose {
			fmt.Printf("  %s\n", VerboseStyle.Render(
				fmt.Sprintf("from %s (%s)", entry.Source.Path, entry.Source.Origin)))
		}
	}
	return nil
}
