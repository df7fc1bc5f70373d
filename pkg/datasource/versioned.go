// SPDX-License-Identifier: MPL-2.0

package datasource

import (
	"fmt"
	"strings"

	"nipkg-cli/pkg/fspath"
	"nipkg-cli/pkg/types"

	"gopkg.in/ini.v1"
)

// MetadataFileName is the per-package metadata file read by MakeVersioned,
// located at the package root.
const MetadataFileName = "config.ini"

// VersionError is returned when a package's metadata file cannot provide a
// usable version.
type VersionError struct {
	// Name is the package the version was requested for.
	Name types.PackageName
	// Path is the metadata file that was read.
	Path types.FilesystemPath
	// Cause is the underlying read or format problem, nil when the file
	// simply lacks a version key.
	Cause error
}

// Error implements the error interface.
func (e *VersionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("data package %q: reading version from %s: %v", e.Name, e.Path, e.Cause)
	}
	return fmt.Sprintf("data package %q: %s declares no version", e.Name, e.Path)
}

// Unwrap returns the underlying cause, if any.
func (e *VersionError) Unwrap() error { return e.Cause }

// VersionedDatasource is a Datasource whose package declares its version in
// a config.ini at the package root.
type VersionedDatasource struct {
	Datasource
	version string
}

// MakeVersioned resolves name through r and reads the package's declared
// version from <root>/config.ini (a top-level "version" key, outside any
// section). It fails with *VersionError when the metadata file is missing,
// unreadable, or has no version.
func MakeVersioned(r Resolver, name types.PackageName) (*VersionedDatasource, error) {
	ds, err := Make(r, name)
	if err != nil {
		return nil, err
	}

	metaPath := fspath.JoinStr(ds.root, MetadataFileName)
	f, err := ini.Load(string(metaPath))
	if err != nil {
		return nil, &VersionError{Name: name, Path: metaPath, Cause: err}
	}

	version := strings.TrimSpace(f.Section(ini.DefaultSection).Key("version").String())
	if version == "" {
		return nil, &VersionError{Name: name, Path: metaPath}
	}

	return &VersionedDatasource{Datasource: *ds, version: version}, nil
}

// Version returns the package's declared version string, e.g. "0.3.1".
func (d *VersionedDatasource) Version() string { return d.version }

// MajorMinor returns the first two dot-separated components of the version
// joined back with a dot ("0.3" for "0.3.1"). A version with fewer than two
// components is returned unchanged.
func (d *VersionedDatasource) MajorMinor() string {
	parts := strings.SplitN(d.version, ".", 3)
	if len(parts) < 2 {
		return d.version
	}
	return parts[0] + "." + parts[1]
}
