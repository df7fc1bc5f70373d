// SPDX-License-Identifier: MPL-2.0

package config

import "context"

var (
	// configDirOverride allows tests to override the config directory.
	// This is necessary because os.UserHomeDir() doesn't reliably respect
	// the HOME environment variable on all platforms (e.g., macOS in CI).
	configDirOverride string

	// configFilePathOverride forces Load to read a specific config file.
	// Set from the --config CLI flag.
	configFilePathOverride string

	// systemSourcesDirOverride allows tests to override the system sources
	// directory, which is otherwise a fixed platform path.
	systemSourcesDirOverride string

	// cachedConfig holds the last successfully loaded configuration for the
	// duration of the process run.
	cachedConfig *Config
)

// Reset clears test overrides and the cached configuration.
// Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
	configFilePathOverride = ""
	systemSourcesDirOverride = ""
	cachedConfig = nil
}

// SetConfigDirOverride sets a custom config directory path.
// This is primarily intended for testing to bypass os.UserHomeDir() which
// doesn't reliably respect the HOME env var on all platforms (e.g., macOS in CI).
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
	cachedConfig = nil
}

// SetConfigFilePathOverride forces configuration loading from a specific
// file. Set from the --config CLI flag before the first Load call.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
	cachedConfig = nil
}

// SetSystemSourcesDirOverride sets a custom system sources directory.
// Intended for tests; the real path is fixed per platform.
func SetSystemSourcesDirOverride(dir string) {
	systemSourcesDirOverride = dir
	cachedConfig = nil
}

// Load returns the application configuration, loading it on first use and
// caching it for subsequent calls within the process run.
func Load() (*Config, error) {
	if cachedConfig != nil {
		return cachedConfig, nil
	}

	cfg, _, err := loadWithOptions(context.Background(), LoadOptions{
		ConfigFilePath: configFilePathOverride,
		ConfigDirPath:  configDirOverride,
	})
	if err != nil {
		return nil, err
	}

	cachedConfig = cfg
	return cfg, nil
}
