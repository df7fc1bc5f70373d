// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidSourceDirPath is the sentinel error wrapped by InvalidSourceDirPathError.
	ErrInvalidSourceDirPath = errors.New("invalid source dir path")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// SourceDirPath represents a filesystem path to an extra directory
	// searched for *.pkgpth source files. A valid path must be non-empty
	// and not whitespace-only.
	SourceDirPath string

	// InvalidSourceDirPathError is returned when a SourceDirPath value is
	// empty or whitespace-only. It wraps ErrInvalidSourceDirPath for errors.Is().
	InvalidSourceDirPathError struct {
		Value SourceDirPath
	}

	// InvalidUIConfigError is returned when a UIConfig has invalid fields.
	// It wraps ErrInvalidUIConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// UIConfig holds UI-related configuration.
	UIConfig struct {
		// ColorScheme selects the terminal color scheme ("auto", "dark", "light").
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
		// Verbose enables verbose output by default.
		Verbose bool `mapstructure:"verbose"`
	}

	// Config is the application configuration.
	Config struct {
		// SourceDirs lists extra directories searched for *.pkgpth files.
		// They sit between the system directory and the user directory in
		// resolution precedence.
		SourceDirs []SourceDirPath `mapstructure:"source_dirs"`
		// UI holds UI-related settings.
		UI UIConfig `mapstructure:"ui"`
	}
)

// DefaultConfig returns the configuration defaults used when no config file
// is present.
func DefaultConfig() *Config {
	return &Config{
		SourceDirs: nil,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}

// String returns the string representation of the ColorScheme.
func (s ColorScheme) String() string { return string(s) }

// IsValid returns whether the ColorScheme is one of the recognized values.
func (s ColorScheme) IsValid() (bool, []error) {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: s}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (must be auto, dark, or light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the SourceDirPath.
func (p SourceDirPath) String() string { return string(p) }

// IsValid returns whether the SourceDirPath is valid.
// A valid path must be non-empty and not whitespace-only.
func (p SourceDirPath) IsValid() (bool, []error) {
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidSourceDirPathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidSourceDirPathError.
func (e *InvalidSourceDirPathError) Error() string {
	return fmt.Sprintf("invalid source dir path %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidSourceDirPath for errors.Is() compatibility.
func (e *InvalidSourceDirPathError) Unwrap() error { return ErrInvalidSourceDirPath }

// IsValid returns whether the UIConfig is valid, collecting field-level errors.
func (c UIConfig) IsValid() (bool, []error) {
	var errs []error
	if ok, fieldErrs := c.ColorScheme.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidUIConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidUIConfigError.
func (e *InvalidUIConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid UI config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidUIConfig for errors.Is() compatibility.
func (e *InvalidUIConfigError) Unwrap() error { return ErrInvalidUIConfig }

// IsValid returns whether the Config is valid, collecting field-level errors
// from all sub-components.
func (c *Config) IsValid() (bool, []error) {
	var errs []error
	for _, dir := range c.SourceDirs {
		if ok, fieldErrs := dir.IsValid(); !ok {
			errs = append(errs, fieldErrs...)
		}
	}
	if ok, fieldErrs := c.UI.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
