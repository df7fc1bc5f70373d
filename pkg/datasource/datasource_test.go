// SPDX-License-Identifier: MPL-2.0

package datasource

import (
	"errors"
	"path/filepath"
	"testing"

	"nipkg-cli/internal/testutil"
	"nipkg-cli/pkg/types"
)

func fixedResolver(paths map[types.PackageName]types.FilesystemPath) Resolver {
	return ResolverFunc(func(name types.PackageName) (types.FilesystemPath, error) {
		path, ok := paths[name]
		if !ok {
			return "", errors.New("not registered")
		}
		return path, nil
	})
}

func TestMake_ResolvesRoot(t *testing.T) {
	t.Parallel()

	r := fixedResolver(map[types.PackageName]types.FilesystemPath{
		"demo": "/home/u/demo",
	})

	ds, err := Make(r, "demo")
	if err != nil {
		t.Fatalf("Make() returned error: %v", err)
	}
	if ds.Name() != "demo" {
		t.Errorf("Name() = %q, want demo", ds.Name())
	}
	if ds.Path() != "/home/u/demo" {
		t.Errorf("Path() = %q, want /home/u/demo", ds.Path())
	}
}

func TestMake_PropagatesResolverError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("boom")
	r := ResolverFunc(func(types.PackageName) (types.FilesystemPath, error) {
		return "", wantErr
	})

	_, err := Make(r, "demo")
	if !errors.Is(err, wantErr) {
		t.Errorf("Make() error = %v, want %v", err, wantErr)
	}
}

func TestFilename_JoinsComponents(t *testing.T) {
	t.Parallel()

	r := fixedResolver(map[types.PackageName]types.FilesystemPath{
		"demo": "/home/u/demo",
	})
	ds, err := Make(r, "demo")
	if err != nil {
		t.Fatalf("Make() returned error: %v", err)
	}

	got := ds.Filename("T1", "brain.nii.gz")
	want := types.FilesystemPath(filepath.Join("/home/u/demo", "T1", "brain.nii.gz"))
	if got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}

func TestFilename_NoComponentsReturnsRoot(t *testing.T) {
	t.Parallel()

	r := fixedResolver(map[types.PackageName]types.FilesystemPath{
		"demo": "/home/u/demo",
	})
	ds, err := Make(r, "demo")
	if err != nil {
		t.Fatalf("Make() returned error: %v", err)
	}

	if got := ds.Filename(); got != ds.Path() {
		t.Errorf("Filename() = %q, want the root %q", got, ds.Path())
	}
}

func TestFilename_DoesNotRequireExistence(t *testing.T) {
	t.Parallel()

	r := fixedResolver(map[types.PackageName]types.FilesystemPath{
		"demo": types.FilesystemPath(filepath.Join(t.TempDir(), "nothing-here")),
	})
	ds, err := Make(r, "demo")
	if err != nil {
		t.Fatalf("Make() returned error: %v", err)
	}

	got := ds.Filename("missing.nii.gz")
	if got == "" {
		t.Error("Filename() should build the path even when nothing exists there")
	}
}

func TestMakeVersioned_ReadsVersion(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(root, MetadataFileName),
		[]byte("version = 0.3.1\n"), 0o644)

	r := fixedResolver(map[types.PackageName]types.FilesystemPath{
		"demo": types.FilesystemPath(root),
	})

	ds, err := MakeVersioned(r, "demo")
	if err != nil {
		t.Fatalf("MakeVersioned() returned error: %v", err)
	}
	if ds.Version() != "0.3.1" {
		t.Errorf("Version() = %q, want 0.3.1", ds.Version())
	}
	if ds.MajorMinor() != "0.3" {
		t.Errorf("MajorMinor() = %q, want 0.3", ds.MajorMinor())
	}
}

func TestMakeVersioned_MissingMetadataFile(t *testing.T) {
	t.Parallel()

	r := fixedResolver(map[types.PackageName]types.FilesystemPath{
		"demo": types.FilesystemPath(t.TempDir()),
	})

	_, err := MakeVersioned(r, "demo")
	var verr *VersionError
	if !errors.As(err, &verr) {
		t.Fatalf("MakeVersioned() error = %v, want *VersionError", err)
	}
	if verr.Cause == nil {
		t.Error("VersionError.Cause should carry the read failure")
	}
}

func TestMakeVersioned_MissingVersionKey(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(root, MetadataFileName),
		[]byte("[other]\nkey = value\n"), 0o644)

	r := fixedResolver(map[types.PackageName]types.FilesystemPath{
		"demo": types.FilesystemPath(root),
	})

	_, err := MakeVersioned(r, "demo")
	var verr *VersionError
	if !errors.As(err, &verr) {
		t.Fatalf("MakeVersioned() error = %v, want *VersionError", err)
	}
	if verr.Cause != nil {
		t.Errorf("missing key should not carry a cause, got: %v", verr.Cause)
	}
}

func TestMajorMinor_ShortVersions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		version string
		want    string
	}{
		{"1.2.3", "1.2"},
		{"1.2", "1.2"},
		{"7", "7"},
		{"2024.1.0.5", "2024.1"},
	}

	for _, tt := range tests {
		ds := &VersionedDatasource{version: tt.version}
		if got := ds.MajorMinor(); got != tt.want {
			t.Errorf("MajorMinor(%q) = %q, want %q", tt.version, got, tt.want)
		}
	}
}
