// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"nipkg-cli/internal/issue"
	"nipkg-cli/internal/registry"
	"nipkg-cli/pkg/types"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <package-name>",
	Short: "Resolve a package name to its installed path",
	Long: `Resolve a package name to its installed path.

Prints the directory the package is registered under, after merging all
configuration sources by precedence. Fails when the name is not registered
or the registered path no longer exists on disk.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResolve(types.PackageName(args[0]))
	},
}

func runResolve(name types.PackageName) error {
	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	path, err := reg.Resolve(name)
	if err != nil {
		return reportResolveError(err)
	}

	fmt.Println(path)
	return nil
}

// reportResolveError renders the remediation card for resolution failures
// and converts them to a non-zero exit without cobra's usage noise.
func reportResolveError(err error) error {
	var nfe *registry.NotFoundError
	if errors.As(err, &nfe) {
		id := issue.PackageNotFoundId
		if nfe.Reason == registry.ReasonPathMissing {
			id = issue.PackagePathMissingId
		}
		if rendered, renderErr := issue.Get(id).Render("dark"); renderErr == nil {
			fmt.Fprint(os.Stderr, rendered)
		}
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
		return &ExitError{Code: 1, Err: err}
	}
	return err
}
