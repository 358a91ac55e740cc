package readonlysource

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/crosspath/pathfs/paths"
)

func TestMemorySourceBasics(t *testing.T) {
	mount := paths.MustAbsolutePath("/mnt")
	src := NewMemorySource(mount, map[string][]byte{
		"a/file.txt": []byte("payload"),
	})

	rel := paths.MustRelativePath("a/file.txt")
	if !src.Exists(rel) {
		t.Fatal("expected entry to exist")
	}

	r, err := src.OpenRead(rel)
	if err != nil {
		t.Fatalf("OpenRead: %v", err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("data = %q, want payload", data)
	}
}

func TestMemorySourceChunkedRead(t *testing.T) {
	mount := paths.MustAbsolutePath("/mnt")
	content := make([]byte, 300)
	for i := range content {
		content[i] = byte(i)
	}
	src := NewMemorySource(mount, map[string][]byte{"big.bin": content})

	cs, err := src.GetChunkedSource(paths.MustRelativePath("big.bin"), 100)
	if err != nil {
		t.Fatalf("GetChunkedSource: %v", err)
	}
	if cs.ChunkCount() != 3 {
		t.Fatalf("ChunkCount = %d, want 3", cs.ChunkCount())
	}
	buf := make([]byte, 100)
	n, err := cs.ReadChunk(buf, 2)
	if err != nil {
		t.Fatalf("ReadChunk: %v", err)
	}
	if n != 100 || buf[0] != content[200] {
		t.Fatalf("ReadChunk(2) mismatch: n=%d first=%d want=%d", n, buf[0], content[200])
	}
}

func TestDirSourceEnumerateAndRead(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "f.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	src := NewDirSource(paths.MustAbsolutePath("/mnt"), dir)
	files, err := src.EnumerateFiles()
	if err != nil {
		t.Fatalf("EnumerateFiles: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("EnumerateFiles len = %d, want 1 (%v)", len(files), files)
	}

	rel := paths.MustRelativePath("sub/f.txt")
	if !src.Exists(rel) {
		t.Fatal("expected file to exist")
	}
	view, err := src.GetFileData(rel, 1, 3)
	if err != nil {
		t.Fatalf("GetFileData: %v", err)
	}
	if string(view.Data) != "ell" {
		t.Fatalf("GetFileData = %q, want ell", view.Data)
	}
}
