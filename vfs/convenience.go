package vfs

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/crosspath/pathfs/paths"
)

// ReadAllBytes reads the whole contents of p, expressed purely in terms
// of OpenFile/Read/Close so every backend gets it for free.
func ReadAllBytes(fs FS, p paths.AbsolutePath) ([]byte, error) {
	f, err := fs.OpenFile(p, Open, Read)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read all bytes: %s", p.String())
	}
	return data, nil
}

// ReadAllText reads p's contents as UTF-8 text.
func ReadAllText(fs FS, p paths.AbsolutePath) (string, error) {
	data, err := ReadAllBytes(fs, p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteAllBytes replaces p's contents with data, creating the file if
// necessary.
func WriteAllBytes(fs FS, p paths.AbsolutePath, data []byte) error {
	f, err := fs.OpenFile(p, Create, Write)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return errors.Wrapf(err, "write all bytes: %s", p.String())
	}
	return nil
}

// WriteAllText replaces p's contents with text, encoded as UTF-8.
func WriteAllText(fs FS, p paths.AbsolutePath, text string) error {
	return WriteAllBytes(fs, p, []byte(text))
}

// WriteAllLines replaces p's contents with lines joined by "\n", with a
// trailing newline after the last line.
func WriteAllLines(fs FS, p paths.AbsolutePath, lines []string) error {
	f, err := fs.OpenFile(p, Create, Write)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return errors.Wrapf(err, "write all lines: %s", p.String())
		}
		if _, err := w.WriteString("\n"); err != nil {
			return errors.Wrapf(err, "write all lines: %s", p.String())
		}
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "write all lines: %s", p.String())
	}
	return nil
}
