package model

import "errors"

// ErrInvalidIndex reports a display index outside 1..Len().
var ErrInvalidIndex = errors.New("invalid index")

// Entry is one item of a list.
type Entry struct {
	Title string
	Done  bool
}

// List is the in-memory todo list: a title, the file it mirrors and its
// entries in insertion order. Display indexes are 1-based positions and are
// never stored, so removing an entry renumbers everything after it.
type List struct {
	title   string
	path    string
	entries []Entry
}

// NewList returns an empty list bound to path.
func NewList(path, title string) *List {
	return &List{path: path, title: title}
}

func (l *List) Title() string { return l.title }
func (l *List) Path() string  { return l.path }
func (l *List) Len() int      { return len(l.entries) }

// SetTitle replaces the list title.
func (l *List) SetTitle(title string) { l.title = title }

// Entries returns a copy of the entries in display order.
func (l *List) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Entry returns the entry at the 1-based index.
func (l *List) Entry(index int) (Entry, bool) {
	if !l.valid(index) {
		return Entry{}, false
	}
	return l.entries[index-1], true
}

// Add appends an entry. Empty titles are allowed.
func (l *List) Add(title string, done bool) {
	l.entries = append(l.entries, Entry{Title: title, Done: done})
}

// AddFromCommand adds a pending entry from a raw command line: the first
// byte is the command letter, the rest (trimmed) is the title.
func (l *List) AddFromCommand(raw string) {
	rest := ""
	if len(raw) > 0 {
		rest = raw[1:]
	}
	l.Add(Trim(rest), false)
}

// Delete removes the entry at the 1-based index.
func (l *List) Delete(index int) error {
	if !l.valid(index) {
		return ErrInvalidIndex
	}
	i := index - 1
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	return nil
}

// Toggle flips the done flag of the entry at the 1-based index.
func (l *List) Toggle(index int) error {
	if !l.valid(index) {
		return ErrInvalidIndex
	}
	l.entries[index-1].Done = !l.entries[index-1].Done
	return nil
}

// Counts returns how many entries are done and pending.
func (l *List) Counts() (done, pending int) {
	for _, it := range l.entries {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

// Clear drops every entry.
func (l *List) Clear() { l.entries = nil }

func (l *List) valid(index int) bool {
	return index >= 1 && index <= len(l.entries)
}
