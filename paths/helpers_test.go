package paths

import "testing"

func TestJoinRelativizeRoundTrip(t *testing.T) {
	p := MustAbsolutePath("C:/foo")
	r := MustRelativePath("bar/baz.txt")
	joined := p.Join(r)
	got, err := joined.RelativeTo(p)
	if err != nil {
		t.Fatalf("RelativeTo: %v", err)
	}
	if !got.Equal(r) {
		t.Fatalf("round trip = %q, want %q", got.String(), r.String())
	}
}

func TestParentRoundTrip(t *testing.T) {
	p := MustAbsolutePath("C:/foo/bar/baz.txt")
	got := p.Parent().Join(p.Name())
	if !got.Equal(p) {
		t.Fatalf("parent.join(name) = %q, want %q", got.String(), p.String())
	}
}

func TestParentOfNonRootIsNotRoot(t *testing.T) {
	p := MustAbsolutePath("C:/foo/bar/baz.txt")
	parent := p.Parent()
	if parent.IsRoot() {
		t.Fatalf("Parent() of %q reported as root: %q", p.String(), parent.String())
	}
	if parent.Name().String() != "bar" {
		t.Fatalf("Parent().Name() = %q, want \"bar\"", parent.Name().String())
	}
	grandparent := parent.Parent()
	if !grandparent.Equal(MustAbsolutePath("C:/foo")) {
		t.Fatalf("Parent().Parent() = %q, want \"C:/foo\"", grandparent.String())
	}
}

func TestRootParentIdempotent(t *testing.T) {
	root := MustAbsolutePath("C:/")
	if !root.Parent().Equal(root) {
		t.Fatalf("root.Parent() = %q, want itself", root.Parent().String())
	}
}

func TestInFolderSegmentBoundary(t *testing.T) {
	if InFolder("/foobar", "/foo") {
		t.Fatal("\"/foobar\" must not be in folder \"/foo\"")
	}
	if !InFolder("/foo/bar", "/foo") {
		t.Fatal("\"/foo/bar\" must be in folder \"/foo\"")
	}
	if !InFolder("/foo", "/") {
		t.Fatal("\"/foo\" must be in folder \"/\"")
	}
}

func TestCaseInsensitiveEquality(t *testing.T) {
	a := MustAbsolutePath("C:/Foo/Bar.TXT")
	b := MustAbsolutePath("c:/foo/bar.txt")
	if !a.Equal(b) {
		t.Fatal("expected case-insensitive equality")
	}
	if a.CanonicalKey() != b.CanonicalKey() {
		t.Fatal("expected matching canonical keys for case-insensitively equal paths")
	}
}

func TestRelativizeNotInFolder(t *testing.T) {
	_, err := Relativize("/bar/baz", "/foo")
	if err == nil {
		t.Fatal("expected error relativizing unrelated paths")
	}
}

func TestExtensionOps(t *testing.T) {
	p := MustAbsolutePath("/a/b/file.txt")
	if p.Extension() != "txt" {
		t.Fatalf("Extension() = %q, want txt", p.Extension())
	}
	p2 := p.WithExtension("md")
	if p2.Name().String() != "file.md" {
		t.Fatalf("WithExtension = %q, want file.md", p2.Name().String())
	}
	p3 := p.AppendExtension(".bak")
	if p3.Name().String() != "file.txt.bak" {
		t.Fatalf("AppendExtension = %q, want file.txt.bak", p3.Name().String())
	}
}

func TestGetAllParents(t *testing.T) {
	p := MustAbsolutePath("/a/b/c")
	parents := p.GetAllParents()
	want := []string{"/a/b/c", "/a/b", "/a", "/"}
	if len(parents) != len(want) {
		t.Fatalf("GetAllParents len = %d, want %d (%v)", len(parents), len(want), parents)
	}
	for i, w := range want {
		if parents[i].String() != w {
			t.Fatalf("GetAllParents[%d] = %q, want %q", i, parents[i].String(), w)
		}
	}
}

func TestMatchGlob(t *testing.T) {
	ok, err := MatchGlob("*.txt", "/a/b/file.TXT")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected case-insensitive glob match")
	}
	ok, err = MatchGlob("/a/file?.txt", "/a/file1.txt")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected ? to match single character")
	}
}
