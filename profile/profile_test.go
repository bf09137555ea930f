package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingSidecarReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "foo.cnf")

	prof := Load(src)
	if prof.NoSSA || prof.NoPinhole || prof.PrintAST {
		t.Errorf("got %+v, want all-false default for a missing sidecar", prof)
	}
}

func TestLoadParsesSidecar(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "foo.cnf")
	sidecar := filepath.Join(dir, "foo.profile.toml")

	if err := os.WriteFile(sidecar, []byte("no_ssa = true\nprint_ast = true\n"), 0o644); err != nil {
		t.Fatalf("failed to write sidecar: %s", err)
	}

	prof := Load(src)
	if !prof.NoSSA {
		t.Errorf("got NoSSA=false, want true")
	}
	if !prof.PrintAST {
		t.Errorf("got PrintAST=false, want true")
	}
	if prof.NoPinhole {
		t.Errorf("got NoPinhole=true, want false (not set in sidecar)")
	}
}

func TestSidecarPathReplacesExtension(t *testing.T) {
	got := sidecarPath("/a/b/foo.cnf")
	want := "/a/b/foo.profile.toml"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
