// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"os"
	"sort"

	"nipkg-cli/internal/source"
	"nipkg-cli/pkg/types"

	"github.com/charmbracelet/log"
)

// Entry is a registered package path together with the source that defined
// it (the highest-precedence source, after merging).
type Entry struct {
	// Path is the registered package path.
	Path types.FilesystemPath
	// Source is the configuration source the winning entry came from.
	Source source.Source
}

// Registry is the resolved name->path mapping produced by merging all
// configuration sources. It is read-only after Build; concurrent Resolve
// calls on one Registry are safe.
type Registry struct {
	entries map[types.PackageName]Entry
	sources []source.Source
	logger  *log.Logger
}

// Option configures registry building.
type Option func(*Registry)

// WithLogger sets the logger used for per-source debug diagnostics
// (skipped files, entry counts).
func WithLogger(logger *log.Logger) Option {
	return func(r *Registry) { r.logger = logger }
}

// Build discovers sources through the provider and merges their entries
// into a fresh registry.
//
// Sources are iterated in provider order (low-to-high precedence) and each
// entry is inserted with overwrite, so a later source replaces same-named
// entries from earlier ones. Unreadable or unparsable sources contribute
// zero entries and are only debug-logged; they never fail the build.
func Build(p source.Provider, opts ...Option) (*Registry, error) {
	r := &Registry{
		entries: make(map[types.PackageName]Entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.Default()
	}

	sources, err := p.Sources()
	if err != nil {
		return nil, err
	}
	r.sources = sources

	for _, src := range sources {
		entries, err := parseSource(src.Path)
		if err != nil {
			r.logger.Debug("skipping unreadable source",
				"path", src.Path, "origin", src.Origin, "err", err)
			continue
		}
		for name, path := range entries {
			r.entries[name] = Entry{Path: path, Source: src}
		}
		r.logger.Debug("merged source",
			"path", src.Path, "origin", src.Origin, "entries", len(entries))
	}

	return r, nil
}

// BuildFromSources merges a pre-ordered source list into a fresh registry.
func BuildFromSources(sources []source.Source, opts ...Option) (*Registry, error) {
	return Build(&source.StaticProvider{List: sources}, opts...)
}

// Resolve returns the path registered for name.
//
// It fails with *NotFoundError when the name is absent from the merged
// registry (ReasonUnknownName) or when the registered path does not exist
// on disk at resolution time (ReasonPathMissing). The name must be valid
// (non-empty).
func (r *Registry) Resolve(name types.PackageName) (types.FilesystemPath, error) {
	if ok, errs := name.IsValid(); !ok {
		return "", errs[0]
	}

	entry, ok := r.entries[name]
	if !ok {
		return "", &NotFoundError{
			Name:     name,
			Reason:   ReasonUnknownName,
			Searched: r.Sources(),
		}
	}

	if _, err := os.Stat(string(entry.Path)); err != nil {
		return "", &NotFoundError{
			Name:     name,
			Reason:   ReasonPathMissing,
			Path:     entry.Path,
			Searched: r.Sources(),
		}
	}

	return entry.Path, nil
}

// Lookup returns the raw entry for name without checking that the path
// exists. Intended for diagnostics (e.g., listing which source won).
func (r *Registry) Lookup(name types.PackageName) (Entry, bool) {
	entry, ok := r.entries[name]
	return entry, ok
}

// Names returns all registered package names, sorted for stable output.
func (r *Registry) Names() []types.PackageName {
	names := make([]types.PackageName, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Sources returns the configuration sources that were merged, in
// low-to-high precedence order.
func (r *Registry) Sources() []source.Source {
	out := make([]source.Source, len(r.sources))
	copy(out, r.sources)
	return out
}
