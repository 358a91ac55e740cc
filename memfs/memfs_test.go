package memfs

import (
	"testing"

	"github.com/crosspath/pathfs/paths"
	"github.com/crosspath/pathfs/vfs"
)

func TestCreateDirAndWriteRead(t *testing.T) {
	fs := New()
	dir := paths.MustAbsolutePath("/a/b")
	if err := fs.CreateDir(dir); err != nil {
		t.Fatalf("CreateDir: %v", err)
	}
	if !fs.DirExists(dir) {
		t.Fatal("expected directory to exist")
	}

	file := dir.Join(paths.MustRelativePath("f.txt"))
	if err := vfs.WriteAllText(fs, file, "content"); err != nil {
		t.Fatalf("WriteAllText: %v", err)
	}
	got, err := vfs.ReadAllText(fs, file)
	if err != nil {
		t.Fatalf("ReadAllText: %v", err)
	}
	if got != "content" {
		t.Fatalf("ReadAllText = %q, want content", got)
	}
}

func TestReadSnapshotIsolatedFromConcurrentWrite(t *testing.T) {
	fs := New()
	file := paths.MustAbsolutePath("/f.txt")
	if err := vfs.WriteAllText(fs, file, "original"); err != nil {
		t.Fatalf("WriteAllText: %v", err)
	}

	reader, err := fs.OpenFile(file, vfs.Open, vfs.Read)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer reader.Close()

	if err := vfs.WriteAllText(fs, file, "changed"); err != nil {
		t.Fatalf("second WriteAllText: %v", err)
	}

	buf := make([]byte, 8)
	n, _ := reader.Read(buf)
	if string(buf[:n]) != "original" {
		t.Fatalf("snapshot read = %q, want original", buf[:n])
	}
}

func TestDeleteFileRemovesEntry(t *testing.T) {
	fs := New()
	file := paths.MustAbsolutePath("/x/y.txt")
	if err := vfs.WriteAllText(fs, file, "z"); err != nil {
		t.Fatalf("WriteAllText: %v", err)
	}
	if err := fs.DeleteFile(file); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	if fs.FileExists(file) {
		t.Fatal("expected file to be gone")
	}
}

func TestEnumerateFilesRecursive(t *testing.T) {
	fs := New()
	for _, p := range []string{"/dir/a.txt", "/dir/sub/b.txt", "/dir/sub/c.md"} {
		if err := vfs.WriteAllText(fs, paths.MustAbsolutePath(p), "x"); err != nil {
			t.Fatalf("WriteAllText(%s): %v", p, err)
		}
	}
	got, err := fs.EnumerateFiles(paths.MustAbsolutePath("/dir"), "*.txt", true)
	if err != nil {
		t.Fatalf("EnumerateFiles: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("EnumerateFiles len = %d, want 2 (%v)", len(got), got)
	}
}

func TestMoveFileOverwrite(t *testing.T) {
	fs := New()
	src := paths.MustAbsolutePath("/src.txt")
	dst := paths.MustAbsolutePath("/dst.txt")
	if err := vfs.WriteAllText(fs, src, "payload"); err != nil {
		t.Fatalf("WriteAllText: %v", err)
	}
	if err := vfs.WriteAllText(fs, dst, "old"); err != nil {
		t.Fatalf("WriteAllText: %v", err)
	}
	if err := fs.MoveFile(src, dst, false); err == nil {
		t.Fatal("expected error moving onto existing destination without overwrite")
	}
	if err := fs.MoveFile(src, dst, true); err != nil {
		t.Fatalf("MoveFile with overwrite: %v", err)
	}
	if fs.FileExists(src) {
		t.Fatal("expected source to be gone")
	}
	got, err := vfs.ReadAllText(fs, dst)
	if err != nil {
		t.Fatalf("ReadAllText: %v", err)
	}
	if got != "payload" {
		t.Fatalf("ReadAllText(dst) = %q, want payload", got)
	}
}

func TestCreateNewFailsIfExists(t *testing.T) {
	fs := New()
	file := paths.MustAbsolutePath("/only-once.txt")
	h, err := fs.OpenFile(file, vfs.CreateNew, vfs.Write)
	if err != nil {
		t.Fatalf("first CreateNew: %v", err)
	}
	h.Close()
	if _, err := fs.OpenFile(file, vfs.CreateNew, vfs.Write); err == nil {
		t.Fatal("expected second CreateNew to fail")
	}
}
