// SPDX-License-Identifier: MPL-2.0

package fspath

import (
	"path/filepath"
	"testing"

	"nipkg-cli/pkg/types"
)

func TestJoin(t *testing.T) {
	t.Parallel()

	got := Join("a", "b", "c")
	want := types.FilesystemPath(filepath.Join("a", "b", "c"))
	if got != want {
		t.Errorf("Join() = %q, want %q", got, want)
	}
}

func TestJoinStr(t *testing.T) {
	t.Parallel()

	base := types.FilesystemPath(filepath.FromSlash("/home/u/demo"))
	got := JoinStr(base, "T1", "brain.nii.gz")
	want := types.FilesystemPath(filepath.Join(string(base), "T1", "brain.nii.gz"))
	if got != want {
		t.Errorf("JoinStr() = %q, want %q", got, want)
	}
}

func TestDir(t *testing.T) {
	t.Parallel()

	p := types.FilesystemPath(filepath.FromSlash("/a/b/c"))
	if got := Dir(p); got != types.FilesystemPath(filepath.FromSlash("/a/b")) {
		t.Errorf("Dir(%q) = %q", p, got)
	}
}

func TestClean(t *testing.T) {
	t.Parallel()

	p := types.FilesystemPath(filepath.FromSlash("/a/b/../c/"))
	if got := Clean(p); got != types.FilesystemPath(filepath.FromSlash("/a/c")) {
		t.Errorf("Clean(%q) = %q", p, got)
	}
}

func TestAbs(t *testing.T) {
	t.Parallel()

	got, err := Abs("rel")
	if err != nil {
		t.Fatalf("Abs() returned error: %v", err)
	}
	if !IsAbs(got) {
		t.Errorf("Abs(%q) = %q is not absolute", "rel", got)
	}
}
