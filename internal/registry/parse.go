// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"fmt"
	"strings"

	"nipkg-cli/pkg/types"

	"gopkg.in/ini.v1"
)

// SectionName is the INI section holding name = path entries. Sections with
// any other name are ignored.
const SectionName = "PACKAGE PATHS"

// parseSource reads one source file and returns its name->path entries.
//
// Tolerance rules:
//   - lines without '=' or with an empty name are skipped individually
//     (ini.SkipUnrecognizableLines);
//   - a duplicate name within the file keeps the last entry
//     (ini.AllowShadows, last shadow wins);
//   - a file without a [PACKAGE PATHS] section contributes zero entries;
//   - entries with an empty path are treated as malformed and skipped.
//
// A read or parse failure is returned to the caller, which skips the file
// as a whole; it is never fatal to resolution.
func parseSource(path types.FilesystemPath) (map[types.PackageName]types.FilesystemPath, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		SkipUnrecognizableLines: true,
		AllowShadows:            true,
	}, string(path))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	sec, err := f.GetSection(SectionName)
	if err != nil {
		// No [PACKAGE PATHS] section: zero entries, not an error.
		return nil, nil
	}

	entries := make(map[types.PackageName]types.FilesystemPath)
	for _, key := range sec.Keys() {
		name := strings.TrimSpace(key.Name())
		if name == "" {
			continue
		}

		// With AllowShadows the slice holds every occurrence in file order;
		// the last one wins.
		values := key.ValueWithShadows()
		if len(values) == 0 {
			continue
		}
		value := strings.TrimSpace(values[len(values)-1])
		if value == "" {
			continue
		}

		entries[types.PackageName(name)] = types.FilesystemPath(value)
	}

	return entries, nil
}
