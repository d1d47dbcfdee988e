// Package textstore persists a todo list as a plain-text file: a banner of
// '=' around the centered title, then one "<glyph> <title>" line per entry.
// Single file, human-readable. No locking; the file belongs to one process.
package textstore

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/idilsaglam/tadalist/internal/model"
)

// Extension is appended to paths that have none.
const Extension = ".txt"

var (
	// ErrRead reports an existing list file that could not be read.
	ErrRead = errors.New("read list")
	// ErrWrite reports a list file that could not be written.
	ErrWrite = errors.New("write list")
)

// NormalizePath appends Extension when the file name has no extension.
func NormalizePath(path string) string {
	if filepath.Ext(filepath.Base(path)) == "" {
		return path + Extension
	}
	return path
}

// InferTitle derives a title from the file name: the part before the first
// '.', with its first letter upper-cased. Dot files keep their whole name.
func InferTitle(path string) string {
	stem := filepath.Base(path)
	if i := strings.IndexByte(stem, '.'); i > 0 {
		stem = stem[:i]
	}
	r, size := utf8.DecodeRuneInString(stem)
	if size == 0 {
		return stem
	}
	return string(unicode.ToUpper(r)) + stem[size:]
}

// Load reads the list stored at path. A missing file is a new, empty list
// titled title, or the inferred title when title is blank. A title stored in
// the file wins over title.
func Load(path, title string) (*model.List, error) {
	path = NormalizePath(path)
	l := model.NewList(path, "")

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.SetTitle(fallbackTitle(path, title))
			return l, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()

	if err := Decode(f, l); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}
	if l.Title() == "" {
		l.SetTitle(fallbackTitle(path, title))
	}
	return l, nil
}

// Save rewrites the file behind l. An empty list is never written, so an
// existing file is left as it was.
func Save(l *model.List) error {
	if l.Len() == 0 {
		return nil
	}
	f, err := os.OpenFile(l.Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	w := bufio.NewWriter(f)
	if err := Encode(w, l); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %w", ErrWrite, l.Path(), err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %w", ErrWrite, l.Path(), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, l.Path(), err)
	}
	return nil
}

// fallbackTitle trims title the way Decode trims a stored one, so the title
// survives a save and reload unchanged.
func fallbackTitle(path, title string) string {
	if t := model.Trim(title); t != "" {
		return t
	}
	return InferTitle(path)
}
