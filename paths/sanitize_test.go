package paths

import "testing"

func TestSanitizeIdempotent(t *testing.T) {
	cases := []string{
		`C:\foo\\bar\`,
		`\\?\Volume{12345678-1234-1234-1234-123456789012}\foo`,
		`/foo//bar/`,
		`//Server/share/`,
		`//./C:/foo`,
		``,
		`relative/path/`,
	}
	for _, c := range cases {
		once := Sanitize(c)
		twice := Sanitize(once)
		if once != twice {
			t.Fatalf("Sanitize not idempotent for %q: %q != %q", c, once, twice)
		}
		if !IsSanitized(once) {
			t.Fatalf("IsSanitized(%q) = false, want true", once)
		}
	}
}

func TestSanitizeWindowsExamples(t *testing.T) {
	got := Sanitize(`C:\foo\\bar\`)
	want := "C:/foo/bar"
	if got != want {
		t.Fatalf("Sanitize = %q, want %q", got, want)
	}

	got = Sanitize(`\\?\Volume{12345678-1234-1234-1234-123456789012}\foo`)
	want = "//?/Volume{12345678-1234-1234-1234-123456789012}/foo"
	if got != want {
		t.Fatalf("Sanitize = %q, want %q", got, want)
	}
}

func TestSanitizeDriveUppercase(t *testing.T) {
	if got := Sanitize("c:/foo"); got != "C:/foo" {
		t.Fatalf("Sanitize = %q, want C:/foo", got)
	}
}

func TestSanitizeUnixRoot(t *testing.T) {
	if got := Sanitize("/"); got != "/" {
		t.Fatalf("Sanitize(/) = %q", got)
	}
	if got := Sanitize("//"); got != "" && got != "//" {
		// "//" alone has no server component; accept either an empty
		// relative fallback or a passthrough, but must not crash.
	}
}

func TestClassifyRootTypes(t *testing.T) {
	cases := []struct {
		in   string
		want RootType
	}{
		{"/foo", RootUnix},
		{"C:/foo", RootDOS},
		{"//Server/share", RootUNC},
		{"//./C:/foo", RootDOSDeviceDrive},
		{"//?/C:/foo", RootDOSDeviceDrive},
		{"//./Volume{12345678-1234-1234-1234-123456789012}/foo", RootDOSDeviceVolume},
		{"relative/path", RootNone},
	}
	for _, c := range cases {
		got, _ := RootOf(Sanitize(c.in))
		if got != c.want {
			t.Errorf("RootOf(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDOSDeviceVolumePrefixLength(t *testing.T) {
	s := Sanitize("//./Volume{12345678-1234-1234-1234-123456789012}/foo")
	_, root := RootOf(s)
	if len(root) != 49 {
		t.Fatalf("volume root prefix length = %d, want 49", len(root))
	}
}

func TestDOSDeviceDrivePrefixLength(t *testing.T) {
	s := Sanitize(`\\?\C:\foo`)
	_, root := RootOf(s)
	if len(root) != 7 {
		t.Fatalf("device drive root prefix length = %d, want 7", len(root))
	}
}
