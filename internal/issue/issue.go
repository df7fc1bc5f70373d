// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	PackageNotFoundId Id = iota + 1
	PackagePathMissingId
	SourceParseErrorId
	ConfigLoadFailedId
	NoSourcesFoundId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	packageNotFoundIssue = &Issue{
		id: PackageNotFoundId,
		mdMsg: `
# Data package not found!

The package name you asked for is not registered in any configuration source.

## Search locations (in order of precedence):
1. The file named by the NIPKG_PKG_INI environment variable
2. *.pkgpth files in your user config directory
3. *.pkgpth files in directories listed under 'source_dirs' in config.cue
4. *.pkgpth files in the system directory (/etc/nipkg)

## Things you can try:
- List the packages that are registered:
~~~
$ nipkg list
~~~

- Check for typos in the package name (names are exact, version suffix included)
- Register the package by adding an entry to a .pkgpth file:
~~~ini
[PACKAGE PATHS]
nipy-templates-0.3 = /opt/data/nipy-templates-0.3
~~~

- Or point NIPKG_PKG_INI at a file containing the entry:
~~~
$ export NIPKG_PKG_INI=/path/to/packages.pkgpth
~~~`,
	}

	packagePathMissingIssue = &Issue{
		id: PackagePathMissingId,
		mdMsg: `
# Registered path does not exist!

The package name is registered, but the path it maps to is missing on disk.

## Common causes:
- The package directory was moved or deleted after registration
- The .pkgpth entry contains a typo in the path
- The entry was written on another machine with a different layout

## Things you can try:
- Inspect which source registered the entry:
~~~
$ nipkg sources
~~~

- Re-download or re-install the data package at the registered location
- Fix the path in the .pkgpth file that defines it`,
	}

	sourceParseErrorIssue = &Issue{
		id: SourceParseErrorId,
		mdMsg: `
# Could not parse a configuration source!

A .pkgpth file was found but could not be read as INI. Unreadable sources
contribute no entries; resolution continues with the remaining sources.

## Expected format:
~~~ini
[PACKAGE PATHS]
name-of-package = /absolute/path/to/package
~~~

## Things you can try:
- Run with verbose mode to see which file was skipped:
~~~
$ nipkg --verbose sources
~~~

- Check the file for a missing [PACKAGE PATHS] section header
- Lines without '=' or with an empty name are ignored individually`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the nipkg configuration file.

## Configuration file locations:
- Linux: ~/.config/nipkg/config.cue
- macOS: ~/Library/Application Support/nipkg/config.cue
- Windows: %APPDATA%\nipkg\config.cue

## Things you can try:
- Create a default configuration:
~~~
$ nipkg config init
~~~

- Check the configuration syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/nipkg/config.cue
~~~

## Example configuration:
~~~cue
source_dirs: [
    "/srv/shared/nipkg-sources"
]

ui: {
  color_scheme: "auto"
  verbose: false
}
~~~`,
	}

	noSourcesFoundIssue = &Issue{
		id: NoSourcesFoundId,
		mdMsg: `
# No configuration sources found!

No .pkgpth files were discovered in any of the searched locations, so the
registry is empty.

## Things you can try:
- Create a user-level source file:
~~~
$ mkdir -p ~/.config/nipkg
$ cat > ~/.config/nipkg/packages.pkgpth <<'END'
[PACKAGE PATHS]
my-package-1.0 = /opt/data/my-package-1.0
END
~~~

- Or set NIPKG_PKG_INI to an existing file:
~~~
$ export NIPKG_PKG_INI=/path/to/packages.pkgpth
~~~`,
	}

	issues = map[Id]*Issue{
		packageNotFoundIssue.Id():    packageNotFoundIssue,
		packagePathMissingIssue.Id(): packagePathMissingIssue,
		sourceParseErrorIssue.Id():   sourceParseErrorIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		noSourcesFoundIssue.Id():     noSourcesFoundIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
