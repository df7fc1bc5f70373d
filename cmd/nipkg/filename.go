// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"nipkg-cli/pkg/datasource"
	"nipkg-cli/pkg/types"

	"github.com/spf13/cobra"
)

var filenameCmd = &cobra.Command{
	Use:   "filename <package-name> [component]...",
	Short: "Build a file path inside a resolved package",
	Long: `Build a file path inside a resolved package.

Resolves the package name and joins the given path components onto the
package root. The built path is printed without checking that the file
exists, so it can name files the caller is about to create.

Examples:
  nipkg filename nipy-templates-0.3 T1 brain.nii.gz
  nipkg filename mni-icbm152 README.txt`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFilename(types.PackageName(args[0]), args[1:])
	},
}

func runFilename(name types.PackageName, components []string) error {
	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	ds, err := datasource.Make(reg, name)
	if err != nil {
		return reportResolveError(err)
	}

	fmt.Println(ds.Filename(components...))
	return nil
}
