// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"nipkg-cli/internal/testutil"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.SourceDirs) != 0 {
		t.Errorf("expected default source dirs to be empty, got %v", cfg.SourceDirs)
	}

	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("expected default color scheme to be auto, got %s", cfg.UI.ColorScheme)
	}

	if cfg.UI.Verbose {
		t.Error("expected default verbose to be false")
	}
}

func TestConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG behavior is only exercised on Linux")
	}

	cleanup := testutil.MustSetenv(t, "XDG_CONFIG_HOME", "/tmp/test-xdg-config")
	defer cleanup()

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}
	want := filepath.Join("/tmp/test-xdg-config", AppName)
	if dir != want {
		t.Errorf("ConfigDir() = %q, want %q", dir, want)
	}
}

func TestConfigDir_Override(t *testing.T) {
	defer Reset()
	SetConfigDirOverride("/custom/config/dir")

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}
	if dir != "/custom/config/dir" {
		t.Errorf("ConfigDir() = %q, want override", dir)
	}
}

func TestSystemSourcesDir(t *testing.T) {
	defer Reset()

	dir := SystemSourcesDir()
	if runtime.GOOS == "windows" {
		if !strings.HasSuffix(dir, AppName) {
			t.Errorf("SystemSourcesDir() = %q, want a path ending in %q", dir, AppName)
		}
	} else {
		if dir != filepath.Join("/etc", AppName) {
			t.Errorf("SystemSourcesDir() = %q, want /etc/%s", dir, AppName)
		}
	}

	SetSystemSourcesDirOverride("/custom/system")
	if got := SystemSourcesDir(); got != "/custom/system" {
		t.Errorf("SystemSourcesDir() with override = %q", got)
	}
}

func TestUserSourcesDir_MatchesConfigDir(t *testing.T) {
	defer Reset()
	SetConfigDirOverride(t.TempDir())

	cfgDir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() returned error: %v", err)
	}
	srcDir, err := UserSourcesDir()
	if err != nil {
		t.Fatalf("UserSourcesDir() returned error: %v", err)
	}
	if srcDir != cfgDir {
		t.Errorf("UserSourcesDir() = %q, want %q", srcDir, cfgDir)
	}
}

func TestLoadWithOptions_NoConfigFileUsesDefaults(t *testing.T) {
	cfg, resolvedPath, err := loadWithOptions(context.Background(), LoadOptions{
		ConfigDirPath: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("loadWithOptions() returned error: %v", err)
	}
	if resolvedPath != "" {
		t.Errorf("resolvedPath = %q, want empty (no file found)", resolvedPath)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("ColorScheme = %q, want defaults", cfg.UI.ColorScheme)
	}
}

func TestLoadWithOptions_ReadsConfigFile(t *testing.T) {
	cfgDir := t.TempDir()
	content := `
source_dirs: [
	"/srv/shared/nipkg-sources",
]

ui: {
	color_scheme: "dark"
	verbose: true
}
`
	testutil.MustWriteFile(t, filepath.Join(cfgDir, "config.cue"), []byte(content), 0o644)

	cfg, resolvedPath, err := loadWithOptions(context.Background(), LoadOptions{
		ConfigDirPath: cfgDir,
	})
	if err != nil {
		t.Fatalf("loadWithOptions() returned error: %v", err)
	}
	if resolvedPath != filepath.Join(cfgDir, "config.cue") {
		t.Errorf("resolvedPath = %q", resolvedPath)
	}
	if len(cfg.SourceDirs) != 1 || cfg.SourceDirs[0] != "/srv/shared/nipkg-sources" {
		t.Errorf("SourceDirs = %v", cfg.SourceDirs)
	}
	if cfg.UI.ColorScheme != ColorSchemeDark {
		t.Errorf("ColorScheme = %q, want dark", cfg.UI.ColorScheme)
	}
	if !cfg.UI.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestLoadWithOptions_ExplicitFileMissing(t *testing.T) {
	_, _, err := loadWithOptions(context.Background(), LoadOptions{
		ConfigFilePath: filepath.Join(t.TempDir(), "nope.cue"),
	})
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadWithOptions_InvalidCUE(t *testing.T) {
	cfgDir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(cfgDir, "config.cue"), []byte(`ui: color_scheme: 42`), 0o644)

	_, _, err := loadWithOptions(context.Background(), LoadOptions{
		ConfigDirPath: cfgDir,
	})
	if err == nil {
		t.Fatal("expected error for config violating the schema")
	}
}

func TestLoadWithOptions_UnknownField(t *testing.T) {
	cfgDir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(cfgDir, "config.cue"), []byte(`container_engine: "podman"`), 0o644)

	_, _, err := loadWithOptions(context.Background(), LoadOptions{
		ConfigDirPath: cfgDir,
	})
	if err == nil {
		t.Fatal("expected error for field not in the schema")
	}
}

func TestLoadWithOptions_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := loadWithOptions(ctx, LoadOptions{ConfigDirPath: t.TempDir()})
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
}

func TestValidateSourceDirs(t *testing.T) {
	tests := []struct {
		name    string
		dirs    []SourceDirPath
		wantErr bool
	}{
		{"empty list", nil, false},
		{"distinct entries", []SourceDirPath{"/a", "/b"}, false},
		{"duplicate entries", []SourceDirPath{"/a", "/a"}, true},
		{"duplicate after clean", []SourceDirPath{"/a/b", "/a/b/"}, true},
		{"whitespace entry", []SourceDirPath{"  "}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSourceDirs(tt.dirs)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateSourceDirs(%v) error = %v, wantErr %v", tt.dirs, err, tt.wantErr)
			}
		})
	}
}

func TestGenerateCUE_RoundTrip(t *testing.T) {
	cfgDir := t.TempDir()
	original := &Config{
		SourceDirs: []SourceDirPath{"/srv/a", "/srv/b"},
		UI: UIConfig{
			ColorScheme: ColorSchemeLight,
			Verbose:     true,
		},
	}

	testutil.MustWriteFile(t, filepath.Join(cfgDir, "config.cue"), []byte(GenerateCUE(original)), 0o644)

	loaded, _, err := loadWithOptions(context.Background(), LoadOptions{ConfigDirPath: cfgDir})
	if err != nil {
		t.Fatalf("loadWithOptions() on generated CUE returned error: %v", err)
	}
	if len(loaded.SourceDirs) != 2 || loaded.SourceDirs[0] != "/srv/a" || loaded.SourceDirs[1] != "/srv/b" {
		t.Errorf("SourceDirs = %v", loaded.SourceDirs)
	}
	if loaded.UI.ColorScheme != ColorSchemeLight || !loaded.UI.Verbose {
		t.Errorf("UI = %+v", loaded.UI)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	defer Reset()
	SetConfigDirOverride(t.TempDir())

	if err := CreateDefaultConfig(); err != nil {
		t.Fatalf("CreateDefaultConfig() returned error: %v", err)
	}

	cfgDir, _ := ConfigDir()
	if _, err := os.Stat(filepath.Join(cfgDir, "config.cue")); err != nil {
		t.Errorf("config.cue was not created: %v", err)
	}

	// Second call must be a no-op
	if err := CreateDefaultConfig(); err != nil {
		t.Errorf("CreateDefaultConfig() second call returned error: %v", err)
	}
}

func TestLoad_Caches(t *testing.T) {
	defer Reset()
	SetConfigDirOverride(t.TempDir())

	first, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	second, err := Load()
	if err != nil {
		t.Fatalf("Load() second call returned error: %v", err)
	}
	if first != second {
		t.Error("Load() should return the cached config on repeat calls")
	}
}
