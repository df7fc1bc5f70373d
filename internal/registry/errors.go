// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"fmt"
	"strings"

	"nipkg-cli/internal/source"
	"nipkg-cli/pkg/types"
)

// Reason enumerates why a package name failed to resolve. Callers can branch
// on it without matching error strings.
type Reason int

const (
	// ReasonUnknownName means no configuration source registers the name.
	ReasonUnknownName Reason = iota
	// ReasonPathMissing means the name is registered but the path it maps
	// to does not exist on disk.
	ReasonPathMissing
)

// String returns a human-readable reason name.
func (r Reason) String() string {
	switch r {
	case ReasonUnknownName:
		return "name not registered"
	case ReasonPathMissing:
		return "registered path missing"
	default:
		return "unknown"
	}
}

// NotFoundError is returned when a package name cannot be resolved to an
// existing path. It carries the queried name, an enumerated reason, and the
// sources that were searched, so the message can tell the user where to
// register the package.
type NotFoundError struct {
	// Name is the queried package name.
	Name types.PackageName
	// Reason says why resolution failed.
	Reason Reason
	// Path is the registered path when Reason is ReasonPathMissing.
	Path types.FilesystemPath
	// Searched lists the configuration sources consulted, low-to-high
	// precedence.
	Searched []source.Source
}

// Error implements the error interface with a self-explanatory message
// including remediation hints.
func (e *NotFoundError) Error() string {
	var msg strings.Builder

	switch e.Reason {
	case ReasonPathMissing:
		fmt.Fprintf(&msg, "data package %q: registered path %q does not exist", e.Name, e.Path)
	default:
		fmt.Fprintf(&msg, "data package %q is not registered in any configuration source", e.Name)
	}

	if len(e.Searched) > 0 {
		msg.WriteString(" (searched: ")
		for i, src := range e.Searched {
			if i > 0 {
				msg.WriteString(", ")
			}
			msg.WriteString(string(src.Path))
		}
		msg.WriteString(")")
	} else {
		msg.WriteString(" (no configuration sources found)")
	}

	switch e.Reason {
	case ReasonPathMissing:
		msg.WriteString("; re-install the package at the registered path or fix the entry in the source that defines it")
	default:
		fmt.Fprintf(&msg, "; add a [PACKAGE PATHS] entry to a %s file or set %s",
			source.SourceGlob, source.DefaultEnvVar)
	}

	return msg.String()
}
