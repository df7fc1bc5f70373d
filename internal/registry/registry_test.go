// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"errors"
	"path/filepath"
	"testing"

	"nipkg-cli/internal/source"
	"nipkg-cli/internal/testutil"
	"nipkg-cli/pkg/types"
)

func writeNamedSource(t *testing.T, name, content string) source.Source {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	testutil.MustWriteFile(t, path, []byte(content), 0o644)
	return source.Source{Path: types.FilesystemPath(path)}
}

func TestBuild_SingleSource(t *testing.T) {
	t.Parallel()

	dataDir := t.TempDir()
	src := writeNamedSource(t, "system.pkgpth",
		"[PACKAGE PATHS]\ntemplates = "+dataDir+"\n")
	src.Origin = source.OriginSystemDir

	reg, err := BuildFromSources([]source.Source{src})
	if err != nil {
		t.Fatalf("BuildFromSources() returned error: %v", err)
	}
	if reg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", reg.Len())
	}

	path, err := reg.Resolve("templates")
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	if string(path) != dataDir {
		t.Errorf("Resolve() = %q, want %q", path, dataDir)
	}
}

func TestBuild_LaterSourceOverridesEarlier(t *testing.T) {
	t.Parallel()

	systemData := t.TempDir()
	userData := t.TempDir()

	systemSrc := writeNamedSource(t, "system.pkgpth",
		"[PACKAGE PATHS]\ntemplates = "+systemData+"\n")
	systemSrc.Origin = source.OriginSystemDir
	userSrc := writeNamedSource(t, "user.pkgpth",
		"[PACKAGE PATHS]\ntemplates = "+userData+"\n")
	userSrc.Origin = source.OriginUserDir

	reg, err := BuildFromSources([]source.Source{systemSrc, userSrc})
	if err != nil {
		t.Fatalf("BuildFromSources() returned error: %v", err)
	}

	path, err := reg.Resolve("templates")
	if err != nil {
		t.Fatalf("Resolve() returned error: %v", err)
	}
	if string(path) != userData {
		t.Errorf("Resolve() = %q, want later source %q to win", path, userData)
	}

	entry, ok := reg.Lookup("templates")
	if !ok {
		t.Fatal("Lookup() should find templates")
	}
	if entry.Source.Origin != source.OriginUserDir {
		t.Errorf("winning origin = %v, want %v", entry.Source.Origin, source.OriginUserDir)
	}
}

func TestBuild_EarlierEntriesSurviveWhenNotOverridden(t *testing.T) {
	t.Parallel()

	systemData := t.TempDir()
	userData := t.TempDir()

	systemSrc := writeNamedSource(t, "system.pkgpth",
		"[PACKAGE PATHS]\natlases = "+systemData+"\n")
	userSrc := writeNamedSource(t, "user.pkgpth",
		"[PACKAGE PATHS]\ntemplates = "+userData+"\n")

	reg, err := BuildFromSources([]source.Source{systemSrc, userSrc})
	if err != nil {
		t.Fatalf("BuildFromSources() returned error: %v", err)
	}
	if reg.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", reg.Len())
	}

	if path, err := reg.Resolve("atlases"); err != nil || string(path) != systemData {
		t.Errorf("Resolve(atlases) = %q, %v; want %q from lower source", path, err, systemData)
	}
	if path, err := reg.Resolve("templates"); err != nil || string(path) != userData {
		t.Errorf("Resolve(templates) = %q, %v; want %q", path, err, userData)
	}
}

func TestBuild_PrecedenceChain(t *testing.T) {
	t.Parallel()

	systemData := t.TempDir()
	userData := t.TempDir()
	envData := t.TempDir()

	systemSrc := writeNamedSource(t, "system.pkgpth", "[PACKAGE PATHS]\n"+
		"shared = "+systemData+"\n"+
		"sysonly = "+systemData+"\n")
	systemSrc.Origin = source.OriginSystemDir
	userSrc := writeNamedSource(t, "user.pkgpth", "[PACKAGE PATHS]\n"+
		"shared = "+userData+"\n")
	userSrc.Origin = source.OriginUserDir
	envSrc := writeNamedSource(t, "env.pkgpth", "[PACKAGE PATHS]\n"+
		"shared = "+envData+"\n")
	envSrc.Origin = source.OriginEnvFile

	reg, err := BuildFromSources([]source.Source{systemSrc, userSrc, envSrc})
	if err != nil {
		t.Fatalf("BuildFromSources() returned error: %v", err)
	}

	if path, _ := reg.Resolve("shared"); string(path) != envData {
		t.Errorf("Resolve(shared) = %q, want env file %q to win", path, envData)
	}
	if path, _ := reg.Resolve("sysonly"); string(path) != systemData {
		t.Errorf("Resolve(sysonly) = %q, want system fallback %q", path, systemData)
	}
}

func TestBuild_UnreadableSourceIsSkipped(t *testing.T) {
	t.Parallel()

	dataDir := t.TempDir()
	good := writeNamedSource(t, "good.pkgpth",
		"[PACKAGE PATHS]\ntemplates = "+dataDir+"\n")
	missing := source.Source{
		Path: types.FilesystemPath(filepath.Join(t.TempDir(), "gone.pkgpth")),
	}

	reg, err := BuildFromSources([]source.Source{missing, good})
	if err != nil {
		t.Fatalf("BuildFromSources() returned error: %v", err)
	}
	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want the readable source only", reg.Len())
	}
}

func TestBuild_IsIdempotent(t *testing.T) {
	t.Parallel()

	dataDir := t.TempDir()
	src := writeNamedSource(t, "system.pkgpth",
		"[PACKAGE PATHS]\ntemplates = "+dataDir+"\n")
	sources := []source.Source{src}

	first, err := BuildFromSources(sources)
	if err != nil {
		t.Fatalf("first BuildFromSources() returned error: %v", err)
	}
	second, err := BuildFromSources(sources)
	if err != nil {
		t.Fatalf("second BuildFromSources() returned error: %v", err)
	}

	if first.Len() != second.Len() {
		t.Fatalf("Len() differs between builds: %d vs %d", first.Len(), second.Len())
	}
	p1, _ := first.Resolve("templates")
	p2, _ := second.Resolve("templates")
	if p1 != p2 {
		t.Errorf("Resolve() differs between builds: %q vs %q", p1, p2)
	}
}

func TestResolve_UnknownName(t *testing.T) {
	t.Parallel()

	reg, err := BuildFromSources(nil)
	if err != nil {
		t.Fatalf("BuildFromSources() returned error: %v", err)
	}

	_, err = reg.Resolve("missing")
	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("Resolve() error = %v, want *NotFoundError", err)
	}
	if nfe.Reason != ReasonUnknownName {
		t.Errorf("Reason = %v, want ReasonUnknownName", nfe.Reason)
	}
	if nfe.Name != "missing" {
		t.Errorf("Name = %q, want missing", nfe.Name)
	}
}

func TestResolve_RegisteredPathMissing(t *testing.T) {
	t.Parallel()

	gonePath := filepath.Join(t.TempDir(), "uninstalled")
	src := writeNamedSource(t, "system.pkgpth",
		"[PACKAGE PATHS]\ntemplates = "+gonePath+"\n")

	reg, err := BuildFromSources([]source.Source{src})
	if err != nil {
		t.Fatalf("BuildFromSources() returned error: %v", err)
	}

	_, err = reg.Resolve("templates")
	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("Resolve() error = %v, want *NotFoundError", err)
	}
	if nfe.Reason != ReasonPathMissing {
		t.Errorf("Reason = %v, want ReasonPathMissing", nfe.Reason)
	}
	if string(nfe.Path) != gonePath {
		t.Errorf("Path = %q, want %q", nfe.Path, gonePath)
	}
}

func TestResolve_InvalidName(t *testing.T) {
	t.Parallel()

	reg, err := BuildFromSources(nil)
	if err != nil {
		t.Fatalf("BuildFromSources() returned error: %v", err)
	}

	_, err = reg.Resolve("")
	if err == nil {
		t.Fatal("Resolve(\"\") should fail")
	}
	var nfe *NotFoundError
	if errors.As(err, &nfe) {
		t.Errorf("invalid name should fail validation, not lookup: %v", err)
	}
}

func TestNames_SortedAndComplete(t *testing.T) {
	t.Parallel()

	dataDir := t.TempDir()
	src := writeNamedSource(t, "system.pkgpth", "[PACKAGE PATHS]\n"+
		"zebra = "+dataDir+"\n"+
		"alpha = "+dataDir+"\n"+
		"middle = "+dataDir+"\n")

	reg, err := BuildFromSources([]source.Source{src})
	if err != nil {
		t.Fatalf("BuildFromSources() returned error: %v", err)
	}

	names := reg.Names()
	want := []types.PackageName{"alpha", "middle", "zebra"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestSources_ReturnsMergedListInOrder(t *testing.T) {
	t.Parallel()

	a := writeNamedSource(t, "a.pkgpth", "[PACKAGE PATHS]\n")
	b := writeNamedSource(t, "b.pkgpth", "[PACKAGE PATHS]\n")

	reg, err := BuildFromSources([]source.Source{a, b})
	if err != nil {
		t.Fatalf("BuildFromSources() returned error: %v", err)
	}

	sources := reg.Sources()
	if len(sources) != 2 || sources[0] != a || sources[1] != b {
		t.Errorf("Sources() = %v, want [%v %v]", sources, a, b)
	}
}
