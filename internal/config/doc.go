// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/nipkg/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/nipkg/config.cue on macOS, %APPDATA%\nipkg\config.cue
// on Windows). The package also resolves the fixed system sources directory
// (/etc/nipkg, %PROGRAMDATA%\nipkg on Windows) that the source provider searches
// for *.pkgpth files.
//
// Configuration validation is performed against a CUE schema (config_schema.cue) to ensure
// type safety and provide clear error messages for invalid configurations.
package config
