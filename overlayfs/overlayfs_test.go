package overlayfs

import (
	"testing"

	"github.com/crosspath/pathfs/memfs"
	"github.com/crosspath/pathfs/paths"
	"github.com/crosspath/pathfs/readonlysource"
	"github.com/crosspath/pathfs/vfs"
)

func newTestOverlay(files map[string][]byte) (*OverlayFS, *memfs.InMemoryFS, *readonlysource.MemorySource) {
	upstream := memfs.New()
	mount := paths.MustAbsolutePath("/mnt")
	src := readonlysource.NewMemorySource(mount, files)
	return New(upstream, []readonlysource.Source{src}), upstream, src
}

// S1 - Read fallthrough.
func TestScenarioReadFallthrough(t *testing.T) {
	o, _, _ := newTestOverlay(map[string][]byte{"a/file.txt": []byte("payload")})
	got, err := vfs.ReadAllText(o, paths.MustAbsolutePath("/mnt/a/file.txt"))
	if err != nil {
		t.Fatalf("ReadAllText: %v", err)
	}
	if got != "payload" {
		t.Fatalf("ReadAllText = %q, want payload", got)
	}
}

// S2 - Delete hides source.
func TestScenarioDeleteHidesSource(t *testing.T) {
	o, _, _ := newTestOverlay(map[string][]byte{"a/file.txt": []byte("payload")})
	p := paths.MustAbsolutePath("/mnt/a/file.txt")

	if err := o.DeleteFile(p); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	if o.FileExists(p) {
		t.Fatal("expected file to be hidden after delete")
	}
	if _, err := vfs.ReadAllText(o, p); err == nil {
		t.Fatal("expected read to fail after delete")
	}
	got, err := o.EnumerateFiles(paths.MustAbsolutePath("/mnt/a"), "*", false)
	if err != nil {
		t.Fatalf("EnumerateFiles: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no entries after delete, got %v", got)
	}
}

// S3 - Recreate clears tombstone.
func TestScenarioRecreateClearsTombstone(t *testing.T) {
	o, _, _ := newTestOverlay(map[string][]byte{"a/file.txt": []byte("payload")})
	p := paths.MustAbsolutePath("/mnt/a/file.txt")

	if err := o.DeleteFile(p); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	f, err := o.OpenFile(p, vfs.Create, vfs.Write)
	if err != nil {
		t.Fatalf("OpenFile(Create): %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if !o.FileExists(p) {
		t.Fatal("expected file to exist after recreate")
	}
	got, err := vfs.ReadAllText(o, p)
	if err != nil {
		t.Fatalf("ReadAllText: %v", err)
	}
	if got != "" {
		t.Fatalf("ReadAllText after recreate = %q, want empty", got)
	}
}

// S4 - Copy-on-write.
func TestScenarioCopyOnWrite(t *testing.T) {
	o, _, src := newTestOverlay(map[string][]byte{"a/file.txt": []byte("payload")})
	p := paths.MustAbsolutePath("/mnt/a/file.txt")

	f, err := o.OpenFile(p, vfs.OpenOrCreate, vfs.ReadWrite)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	buf := make([]byte, 7)
	n, err := f.Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(buf[:n]) != "payload" {
		t.Fatalf("Read = %q, want payload", buf[:n])
	}
	if _, err := f.Seek(0, 0); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	if _, err := f.Write([]byte("abc")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, err := vfs.ReadAllText(o, p)
	if err != nil {
		t.Fatalf("ReadAllText: %v", err)
	}
	if got[:3] != "abc" {
		t.Fatalf("ReadAllText = %q, want prefix abc", got)
	}

	rel := paths.MustRelativePath("a/file.txt")
	view, err := src.GetFileData(rel, 0, 7)
	if err != nil {
		t.Fatalf("GetFileData: %v", err)
	}
	if string(view.Data) != "payload" {
		t.Fatalf("source mutated: got %q", view.Data)
	}
}

// S5 - Enumeration union.
func TestScenarioEnumerationUnion(t *testing.T) {
	o, upstream, _ := newTestOverlay(map[string][]byte{"a/y": []byte("y")})
	if err := vfs.WriteAllText(upstream, paths.MustAbsolutePath("/mnt/b/x"), "x"); err != nil {
		t.Fatalf("WriteAllText: %v", err)
	}

	got, err := o.EnumerateFiles(paths.MustAbsolutePath("/mnt"), "*", true)
	if err != nil {
		t.Fatalf("EnumerateFiles: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("EnumerateFiles len = %d, want 2 (%v)", len(got), got)
	}
}

func TestCreateNewFailsWhenSourceHasPath(t *testing.T) {
	o, _, _ := newTestOverlay(map[string][]byte{"a/file.txt": []byte("payload")})
	p := paths.MustAbsolutePath("/mnt/a/file.txt")
	if _, err := o.OpenFile(p, vfs.CreateNew, vfs.Write); err == nil {
		t.Fatal("expected CreateNew to fail when a source already has the path")
	}
}
