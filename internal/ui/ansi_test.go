package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetTitleStripsControl(t *testing.T) {
	if got := SetTitle("a\ab\x1bc"); got != "\x1b]2;abc\a" {
		t.Fatalf("SetTitle = %q", got)
	}
}

func TestMoveToRow(t *testing.T) {
	tests := []struct {
		row  int
		want string
	}{
		{1, "\x1b[1;1H"},
		{17, "\x1b[17;1H"},
		{0, "\x1b[1;1H"},
		{-3, "\x1b[1;1H"},
	}
	for _, tt := range tests {
		if got := MoveToRow(tt.row); got != tt.want {
			t.Errorf("MoveToRow(%d) = %q, want %q", tt.row, got, tt.want)
		}
	}
}

func TestPrepare(t *testing.T) {
	var b bytes.Buffer
	Prepare(&b, "Groceries")
	if got, want := b.String(), "\x1b]2;Groceries\a\x1b[40m"; got != want {
		t.Fatalf("Prepare wrote %q, want %q", got, want)
	}
}

func TestRestore(t *testing.T) {
	var b bytes.Buffer
	Restore(&b)
	got := b.String()
	for _, want := range []struct{ name, seq string }{
		{"title reset", "\x1b]2;\a"},
		{"style reset", "\x1b[m"},
		{"screen clear", "\x1b[2J"},
		{"scrollback clear", "\x1b[3J"},
		{"cursor home", "\x1b[H"},
	} {
		if !strings.Contains(got, want.seq) {
			t.Errorf("Restore missing %s: %q", want.name, got)
		}
	}
	if !strings.HasSuffix(got, clearScreen) {
		t.Errorf("Restore does not end by clearing the screen: %q", got)
	}
}
