// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"nipkg-cli/pkg/datasource"
	"nipkg-cli/pkg/types"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <package-name>",
	Short: "Show details about a registered package",
	Long: `Show details about a registered package.

Prints the resolved path, the source file that registered it, whether the
path exists on disk, and the version the package declares in its config.ini
(when present).`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInfo(types.PackageName(args[0]))
	},
}

func runInfo(name types.PackageName) error {
	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	path, err := reg.Resolve(name)
	if err != nil {
		return reportResolveError(err)
	}
	entry, _ := reg.Lookup(name)

	fmt.Printf("%s: %s\n", NameStyle.Render("Package"), name)
	fmt.Printf("%s: %s\n", NameStyle.Render("Path"), SuccessStyle.Render(string(path)))
	fmt.Printf("%s: %s %s\n", NameStyle.Render("Source"), entry.Source.Path,
		SubtitleStyle.Render("("+entry.Source.Origin.String()+")"))

	ds, err := datasource.MakeVersioned(reg, name)
	switch {
	case err == nil:
		fmt.Printf("%s: %s\n", NameStyle.Render("Version"), ds.Version())
	default:
		var verr *datasource.VersionError
		if !errors.As(err, &verr) {
			return err
		}
		fmt.Printf("%s: %s\n", NameStyle.Render("Version"), SubtitleStyle.Render("(not declared)"))
		if verbose {
			fmt.Fprintln(os.Stderr, VerboseStyle.Render(verr.Error()))
		}
	}

	return nil
}
