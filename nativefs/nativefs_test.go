package nativefs

import (
	"testing"

	"github.com/crosspath/pathfs/paths"
	"github.com/crosspath/pathfs/vfs"
)

func rootPath(t *testing.T, dir string) paths.AbsolutePath {
	t.Helper()
	p, err := paths.NewAbsolutePath(dir)
	if err != nil {
		t.Fatalf("NewAbsolutePath(%q): %v", dir, err)
	}
	return p
}

func TestCreateDirAndFileLifecycle(t *testing.T) {
	fs := New()
	dir := rootPath(t, t.TempDir())

	sub := dir.Join(paths.MustRelativePath("a/b"))
	if err := fs.CreateDir(sub); err != nil {
		t.Fatalf("CreateDir: %v", err)
	}
	if !fs.DirExists(sub) {
		t.Fatal("expected directory to exist")
	}

	file := sub.Join(paths.MustRelativePath("hello.txt"))
	if err := vfs.WriteAllText(fs, file, "hello"); err != nil {
		t.Fatalf("WriteAllText: %v", err)
	}
	if !fs.FileExists(file) {
		t.Fatal("expected file to exist")
	}

	got, err := vfs.ReadAllText(fs, file)
	if err != nil {
		t.Fatalf("ReadAllText: %v", err)
	}
	if got != "hello" {
		t.Fatalf("ReadAllText = %q, want hello", got)
	}

	if err := fs.DeleteFile(file); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	if fs.FileExists(file) {
		t.Fatal("expected file to be gone")
	}
}

func TestEnumerateFiles(t *testing.T) {
	fs := New()
	dir := rootPath(t, t.TempDir())

	for _, name := range []string{"a.txt", "b.txt", "c.md"} {
		if err := vfs.WriteAllText(fs, dir.Join(paths.MustRelativePath(name)), "x"); err != nil {
			t.Fatalf("WriteAllText(%s): %v", name, err)
		}
	}

	got, err := fs.EnumerateFiles(dir, "*.txt", false)
	if err != nil {
		t.Fatalf("EnumerateFiles: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("EnumerateFiles len = %d, want 2 (%v)", len(got), got)
	}
}

func TestDeleteDirRecursive(t *testing.T) {
	fs := New()
	dir := rootPath(t, t.TempDir())
	nested := dir.Join(paths.MustRelativePath("x/y"))
	if err := fs.CreateDir(nested); err != nil {
		t.Fatalf("CreateDir: %v", err)
	}
	if err := vfs.WriteAllText(fs, nested.Join(paths.MustRelativePath("f.txt")), "data"); err != nil {
		t.Fatalf("WriteAllText: %v", err)
	}

	if err := fs.DeleteDir(dir.Join(paths.MustRelativePath("x")), true); err != nil {
		t.Fatalf("DeleteDir: %v", err)
	}
	if fs.DirExists(nested) {
		t.Fatal("expected nested directory to be removed")
	}
}

func TestMoveFile(t *testing.T) {
	fs := New()
	dir := rootPath(t, t.TempDir())
	src := dir.Join(paths.MustRelativePath("src.txt"))
	dst := dir.Join(paths.MustRelativePath("dst.txt"))

	if err := vfs.WriteAllText(fs, src, "payload"); err != nil {
		t.Fatalf("WriteAllText: %v", err)
	}
	if err := fs.MoveFile(src, dst, false); err != nil {
		t.Fatalf("MoveFile: %v", err)
	}
	if fs.FileExists(src) {
		t.Fatal("expected source to be gone after move")
	}
	if !fs.FileExists(dst) {
		t.Fatal("expected destination to exist after move")
	}
}

func TestKnownPathTempDirectory(t *testing.T) {
	fs := New()
	p, err := fs.GetKnownPath(vfs.TempDirectory)
	if err != nil {
		t.Fatalf("GetKnownPath(Temp): %v", err)
	}
	if p.String() == "" {
		t.Fatal("expected a non-empty temp directory path")
	}
}

func TestKnownPathMappingOverride(t *testing.T) {
	fs := New()
	override := rootPath(t, t.TempDir())
	fs.Base().MapKnownPath(vfs.TempDirectory, override)

	p, err := fs.GetKnownPath(vfs.TempDirectory)
	if err != nil {
		t.Fatalf("GetKnownPath: %v", err)
	}
	if !p.Equal(override) {
		t.Fatalf("GetKnownPath = %q, want override %q", p.String(), override.String())
	}
}

func TestPathMapping(t *testing.T) {
	fs := New()
	real := rootPath(t, t.TempDir())
	virtual := paths.MustAbsolutePath("/virtual/mount")

	fs.Base().MapPath(virtual, real)

	file := virtual.Join(paths.MustRelativePath("note.txt"))
	if err := vfs.WriteAllText(fs, file, "mapped"); err != nil {
		t.Fatalf("WriteAllText through mapping: %v", err)
	}

	realFile := real.Join(paths.MustRelativePath("note.txt"))
	if !fs.FileExists(realFile) {
		t.Fatal("expected file to land at the mapped real location")
	}
}
