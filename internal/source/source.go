// SPDX-License-Identifier: MPL-2.0

// Package source handles discovery of package-path configuration sources.
package source

import (
	"os"
	"path/filepath"

	"nipkg-cli/internal/config"
	"nipkg-cli/pkg/types"
)

const (
	// DefaultEnvVar is the environment variable naming a single source file
	// that is read with highest precedence.
	DefaultEnvVar = "NIPKG_PKG_INI"

	// SourceGlob is the filename pattern matched in source directories.
	SourceGlob = "*.pkgpth"
)

// Origin indicates where a configuration source was found.
type Origin int

const (
	// OriginSystemDir indicates a file from the fixed system directory.
	OriginSystemDir Origin = iota
	// OriginConfigDir indicates a file from a directory listed in config.cue.
	OriginConfigDir
	// OriginUserDir indicates a file from the user config directory.
	OriginUserDir
	// OriginEnvFile indicates the single file named by the environment variable.
	OriginEnvFile
)

// String returns a human-readable origin name.
func (o Origin) String() string {
	switch o {
	case OriginSystemDir:
		return "system directory"
	case OriginConfigDir:
		return "configured source directory"
	case OriginUserDir:
		return "user config directory"
	case OriginEnvFile:
		return "environment variable file"
	default:
		return "unknown"
	}
}

// Source is a discovered configuration source: one file contributing
// name->path entries under its [PACKAGE PATHS] section.
type Source struct {
	// Path is the absolute path to the source file.
	Path types.FilesystemPath
	// Origin indicates where the file was found.
	Origin Origin
}

// Provider yields configuration sources ordered low-to-high precedence.
// The registry merges them in this order with overwrite, so the last
// source wins for any name defined more than once.
type Provider interface {
	Sources() ([]Source, error)
}

// OSProvider discovers sources from the real environment: the system
// directory, any configured extra directories, the user config directory,
// and the environment-variable-named file, in that (low-to-high) order.
type OSProvider struct {
	envVar    string
	systemDir string
	userDir   string
	extraDirs []string
}

// Option configures an OSProvider.
type Option func(*OSProvider)

// WithEnvVar overrides the environment variable naming the highest-precedence
// source file.
func WithEnvVar(name string) Option {
	return func(p *OSProvider) { p.envVar = name }
}

// WithSystemDir overrides the system sources directory.
func WithSystemDir(dir string) Option {
	return func(p *OSProvider) { p.systemDir = dir }
}

// WithUserDir overrides the user sources directory.
func WithUserDir(dir string) Option {
	return func(p *OSProvider) { p.userDir = dir }
}

// WithExtraDirs adds directories (from config.cue source_dirs) searched
// between the system and user directories.
func WithExtraDirs(dirs ...string) Option {
	return func(p *OSProvider) { p.extraDirs = append(p.extraDirs, dirs...) }
}

// NewOSProvider creates a provider over the real filesystem and environment.
func NewOSProvider(opts ...Option) *OSProvider {
	p := &OSProvider{
		envVar: DefaultEnvVar,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Sources returns all discovered source files ordered low-to-high precedence:
//
//  1. system directory *.pkgpth files
//  2. configured extra directories *.pkgpth files
//  3. user config directory *.pkgpth files
//  4. the file named by the environment variable, if set and present
//
// Missing or unreadable directories contribute zero sources. The error
// return is reserved for future providers; OSProvider always returns nil.
func (p *OSProvider) Sources() ([]Source, error) {
	var sources []Source

	systemDir := p.systemDir
	if systemDir == "" {
		systemDir = config.SystemSourcesDir()
	}
	sources = append(sources, globDir(systemDir, OriginSystemDir)...)

	for _, dir := range p.extraDirs {
		sources = append(sources, globDir(dir, OriginConfigDir)...)
	}

	userDir := p.userDir
	if userDir == "" {
		if ud, err := config.UserSourcesDir(); err == nil {
			userDir = ud
		}
	}
	if userDir != "" {
		sources = append(sources, globDir(userDir, OriginUserDir)...)
	}

	if envPath := os.Getenv(p.envVar); envPath != "" {
		if info, err := os.Stat(envPath); err == nil && !info.IsDir() {
			sources = append(sources, Source{
				Path:   types.FilesystemPath(envPath),
				Origin: OriginEnvFile,
			})
		}
	}

	return sources, nil
}

// globDir returns the *.pkgpth files in dir as sources. Glob results are
// lexically sorted, so discovery order is deterministic within a directory.
func globDir(dir string, origin Origin) []Source {
	matches, err := filepath.Glob(filepath.Join(dir, SourceGlob))
	if err != nil {
		// Only possible for a malformed pattern; ours is fixed.
		return nil
	}

	var sources []Source
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		sources = append(sources, Source{
			Path:   types.FilesystemPath(match),
			Origin: origin,
		})
	}
	return sources
}

// StaticProvider returns a fixed, pre-ordered list of sources. It exists for
// dependency substitution in tests and for callers that assemble their own
// source list.
type StaticProvider struct {
	List []Source
}

// Sources returns the fixed list.
func (p *StaticProvider) Sources() ([]Source, error) {
	return p.List, nil
}
