package textstore

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/tadalist/internal/model"
)

const (
	// Width is the banner width of a saved file. It does not follow the
	// terminal.
	Width = 40

	// MaxLine bounds the bytes kept per line; the rest is dropped.
	MaxLine = 511

	GlyphDone    = "[x]"
	GlyphPending = "[ ]"
)

// glyphs recognized when decoding. The check marks are what older files
// use.
var glyphs = []struct {
	token string
	done  bool
}{
	{GlyphDone, true},
	{GlyphPending, false},
	{"✔", true},
	{"✘", false},
}

// Encode writes l in the list file format.
func Encode(w io.Writer, l *model.List) error {
	deco := strings.Repeat("=", Width)
	var b strings.Builder
	b.WriteString(deco)
	b.WriteByte('\n')
	b.WriteString(centered(l.Title(), Width))
	b.WriteByte('\n')
	b.WriteString(deco)
	b.WriteByte('\n')
	for _, e := range l.Entries() {
		if e.Done {
			b.WriteString(GlyphDone)
		} else {
			b.WriteString(GlyphPending)
		}
		b.WriteByte(' ')
		b.WriteString(e.Title)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Decode reads the list file format from r into l. The second line is the
// title; the first and third are decoration. Every following line is an
// entry.
func Decode(r io.Reader, l *model.List) error {
	br := bufio.NewReader(r)
	for n := 0; ; n++ {
		line, err := readLine(br)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch {
		case n == 1:
			l.SetTitle(model.Trim(line))
		case n < 3:
			// decoration
		default:
			e := parseEntry(line)
			l.Add(e.Title, e.Done)
		}
	}
}

// centered right-aligns s in a field of width/2 + w/2 columns, w being the
// display width of s, which puts it in the middle of a width-column banner.
func centered(s string, width int) string {
	w := ansi.StringWidth(s)
	pad := width/2 + w/2 - w
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

func parseEntry(line string) model.Entry {
	for _, g := range glyphs {
		if line == g.token || strings.HasPrefix(line, g.token+" ") {
			return model.Entry{Title: model.Trim(line[len(g.token):]), Done: g.done}
		}
	}
	// Unknown status token: it runs to the first space and counts as
	// pending.
	i := strings.IndexByte(line, ' ')
	if i < 0 {
		return model.Entry{}
	}
	return model.Entry{Title: model.Trim(line[i+1:])}
}

// readLine returns the next line without its terminator, keeping at most
// MaxLine bytes. It returns io.EOF only when nothing is left.
func readLine(br *bufio.Reader) (string, error) {
	var buf []byte
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			if err == io.EOF && buf != nil {
				return truncate(buf), nil
			}
			return "", err
		}
		if room := MaxLine - len(buf); room > 0 {
			if len(chunk) > room {
				chunk = chunk[:room]
			}
			buf = append(buf, chunk...)
		}
		if buf == nil {
			buf = []byte{}
		}
		if !isPrefix {
			return truncate(buf), nil
		}
	}
}

// truncate backs off to a rune boundary when the MaxLine cut split a
// multi-byte sequence.
func truncate(b []byte) string {
	if len(b) < MaxLine {
		return string(b)
	}
	for len(b) > 0 && !utf8.Valid(b) {
		r, _ := utf8.DecodeLastRune(b)
		if r != utf8.RuneError {
			break
		}
		b = b[:len(b)-1]
	}
	return string(b)
}
