// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Show discovered configuration sources",
	Long: `Show discovered configuration sources.

Lists every *.pkgpth file that would be merged, in low-to-high precedence
order: later files in the list override earlier ones for names they share.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSources()
	},
}

func runSources() error {
	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	sources := reg.Sources()
	if len(sources) == 0 {
		fmt.Println(SubtitleStyle.Render("No configuration sources found."))
		return nil
	}

	fmt.Println(TitleStyle.Render("Configuration Sources") +
		SubtitleStyle.Render(" (low-to-high precedence)"))
	fmt.Println()
	for i, src := range sources {
		fmt.Printf("%d. %s %s\n", i+1, src.Path,
			SubtitleStyle.Render("("+src.Origin.String()+")"))
	}
	return nil
}
