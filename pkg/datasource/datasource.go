// SPDX-License-Identifier: MPL-2.0

// Package datasource turns resolved package roots into handles that build
// paths to files inside a package, optionally exposing the package's
// declared version.
package datasource

import (
	"nipkg-cli/pkg/fspath"
	"nipkg-cli/pkg/types"
)

// Resolver maps a package name to the root path it is registered under.
// *registry.Registry satisfies it; tests can substitute a fixed map.
type Resolver interface {
	Resolve(name types.PackageName) (types.FilesystemPath, error)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(name types.PackageName) (types.FilesystemPath, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(name types.PackageName) (types.FilesystemPath, error) {
	return f(name)
}

// Datasource is a handle on one resolved data package. It is a pure path
// builder: Filename joins components without touching the filesystem, so
// callers decide whether a missing file is an error.
type Datasource struct {
	name types.PackageName
	root types.FilesystemPath
}

// Make resolves name through r and returns a datasource rooted at the
// resolved path. Resolution errors (including *registry.NotFoundError)
// pass through unchanged.
func Make(r Resolver, name types.PackageName) (*Datasource, error) {
	root, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}
	return &Datasource{name: name, root: root}, nil
}

// Name returns the package name this datasource was made for.
func (d *Datasource) Name() types.PackageName { return d.name }

// Path returns the resolved package root.
func (d *Datasource) Path() types.FilesystemPath { return d.root }

// Filename joins the given components onto the package root. With no
// components it returns the root itself. It never checks existence.
func (d *Datasource) Filename(components ...string) types.FilesystemPath {
	if len(components) == 0 {
		return d.root
	}
	return fspath.JoinStr(d.root, components...)
}
