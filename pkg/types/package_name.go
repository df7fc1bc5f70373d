// SPDX-License-Identifier: MPL-2.0

// Package types holds the small typed value objects shared across the
// module (package names, filesystem paths, exit codes). It must stay a
// leaf package: it imports only the standard library so that every other
// package can depend on it without cycles.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPackageName is the sentinel error wrapped by InvalidPackageNameError.
var ErrInvalidPackageName = errors.New("invalid package name")

type (
	// PackageName identifies an installable data package, e.g.
	// "nipy-templates-0.3". Names are case-sensitive and compared exactly
	// as written in the configuration sources. A valid name must be
	// non-empty and not whitespace-only.
	PackageName string

	// InvalidPackageNameError is returned when a PackageName value is
	// empty or whitespace-only.
	InvalidPackageNameError struct {
		Value PackageName
	}
)

// String returns the string representation of the PackageName.
func (n PackageName) String() string { return string(n) }

// IsValid returns whether the PackageName is valid.
// A valid name must be non-empty and not whitespace-only.
func (n PackageName) IsValid() (bool, []error) {
	if strings.TrimSpace(string(n)) == "" {
		return false, []error{&InvalidPackageNameError{Value: n}}
	}
	return true, nil
}

// Error implements the error interface for InvalidPackageNameError.
func (e *InvalidPackageNameError) Error() string {
	return fmt.Sprintf("invalid package name %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidPackageName for errors.Is() compatibility.
func (e *InvalidPackageNameError) Unwrap() error { return ErrInvalidPackageName }
