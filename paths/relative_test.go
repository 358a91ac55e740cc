package paths

import "testing"

func TestRelativePathRejectsRooted(t *testing.T) {
	if _, err := NewRelativePath("/foo/bar"); err == nil {
		t.Fatal("expected error constructing RelativePath from rooted input")
	}
	if _, err := NewRelativePath(`C:\foo`); err == nil {
		t.Fatal("expected error constructing RelativePath from DOS-rooted input")
	}
}

func TestRelativePathEmpty(t *testing.T) {
	r := MustRelativePath("")
	if !r.IsEmpty() {
		t.Fatal("expected empty RelativePath")
	}
	if r.Parent().String() != "" {
		t.Fatalf("Parent() of empty = %q, want empty", r.Parent().String())
	}
}

func TestRelativePathJoinParts(t *testing.T) {
	r := MustRelativePath("a/b").Join(MustRelativePath("c/d.txt"))
	if r.String() != "a/b/c/d.txt" {
		t.Fatalf("Join = %q, want a/b/c/d.txt", r.String())
	}
	parts := r.Parts()
	want := []string{"a", "b", "c", "d.txt"}
	if len(parts) != len(want) {
		t.Fatalf("Parts() = %v, want %v", parts, want)
	}
	for i, w := range want {
		if parts[i] != w {
			t.Fatalf("Parts()[%d] = %q, want %q", i, parts[i], w)
		}
	}
}

func TestRelativePathExtensionOps(t *testing.T) {
	r := MustRelativePath("dir/file.txt")
	if r.Extension() != "txt" {
		t.Fatalf("Extension() = %q, want txt", r.Extension())
	}
	r2 := r.WithExtension("md")
	if r2.String() != "dir/file.md" {
		t.Fatalf("WithExtension = %q, want dir/file.md", r2.String())
	}
	r3 := r.AppendExtension(".bak")
	if r3.String() != "dir/file.txt.bak" {
		t.Fatalf("AppendExtension = %q, want dir/file.txt.bak", r3.String())
	}
}

func TestRelativePathCaseInsensitiveCompare(t *testing.T) {
	a := MustRelativePath("Foo/Bar.TXT")
	b := MustRelativePath("foo/bar.txt")
	if !a.Equal(b) {
		t.Fatal("expected case-insensitive equality")
	}
	if a.CanonicalKey() != b.CanonicalKey() {
		t.Fatal("expected matching canonical keys")
	}
}

func TestRelativePathToNativeSeparators(t *testing.T) {
	r := MustRelativePath("a/b/c.txt")
	if got := r.ToNativeSeparators("windows"); got != `a\b\c.txt` {
		t.Fatalf("ToNativeSeparators(windows) = %q", got)
	}
	if got := r.ToNativeSeparators("linux"); got != "a/b/c.txt" {
		t.Fatalf("ToNativeSeparators(linux) = %q", got)
	}
}
