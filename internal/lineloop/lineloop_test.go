package lineloop

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/idilsaglam/tadalist/internal/model"
	"github.com/idilsaglam/tadalist/internal/session"
	"github.com/idilsaglam/tadalist/internal/termsize"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func newSession(titles ...string) (*session.Session, *int) {
	l := model.NewList("todo.txt", "Chores")
	for _, s := range titles {
		l.Add(s, false)
	}
	saves := new(int)
	return session.New(l, func(*model.List) error { *saves++; return nil }), saves
}

func TestRunScript(t *testing.T) {
	sess, saves := newSession()
	var out bytes.Buffer
	in := strings.NewReader("A sweep floor\r\nA wash dishes\n1\nD2\nnonsense\nq\nA never reached\n")

	if err := Run(context.Background(), sess, Config{In: in, Out: &out}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []model.Entry{{Title: "sweep floor", Done: true}}
	got := sess.List().Entries()
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("entries = %+v, want %+v", got, want)
	}
	if *saves != 5 {
		t.Fatalf("saves = %d, want 5", *saves)
	}
	// One frame per line read before quitting.
	if n := strings.Count(out.String(), "Chores"); n != 6 {
		t.Fatalf("frames = %d, want 6", n)
	}
}

func TestRunEOFQuits(t *testing.T) {
	sess, _ := newSession("a")
	var out bytes.Buffer
	if err := Run(context.Background(), sess, Config{In: strings.NewReader("1"), Out: &out}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if e, _ := sess.List().Entry(1); !e.Done {
		t.Fatal("last line without newline was not handled")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestRunReadError(t *testing.T) {
	sess, _ := newSession()
	err := Run(context.Background(), sess, Config{In: failingReader{}, Out: io.Discard})
	if err == nil || !strings.Contains(err.Error(), "tty gone") {
		t.Fatalf("Run err = %v", err)
	}
}

func TestRunCancelWhileBlocked(t *testing.T) {
	sess, _ := newSession()
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, sess, Config{In: pr, Out: io.Discard}) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run after cancel: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

// syncBuffer is written by Run and read by the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestResizeDefersRedraw(t *testing.T) {
	sess, _ := newSession("a")
	pr, pw := io.Pipe()
	out := &syncBuffer{}

	var mu sync.Mutex
	size := termsize.Size{Cols: 30, Rows: 20}
	sizeFn := func() termsize.Size {
		mu.Lock()
		defer mu.Unlock()
		return size
	}
	resize := make(chan struct{})

	done := make(chan error, 1)
	go func() {
		done <- Run(context.Background(), sess, Config{In: pr, Out: out, Size: sizeFn, Resize: resize})
	}()

	waitFor(t, func() bool { return strings.Count(out.String(), "Chores") == 1 })

	mu.Lock()
	size = termsize.Size{Cols: 50, Rows: 20}
	mu.Unlock()
	resize <- struct{}{}

	// Still waiting for input: no new frame yet.
	time.Sleep(50 * time.Millisecond)
	if n := strings.Count(out.String(), "Chores"); n != 1 {
		t.Fatalf("resize redrew while reading: %d frames", n)
	}

	io.WriteString(pw, "h\n")
	waitFor(t, func() bool { return strings.Count(out.String(), "Chores") == 2 })
	if !strings.Contains(out.String(), strings.Repeat("=", 50)) {
		t.Fatal("next frame did not use the new width")
	}

	io.WriteString(pw, "q\n")
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	pw.Close()
}

func TestEscapesOnlyWhenAsked(t *testing.T) {
	sess, _ := newSession("a")
	var plain, tty bytes.Buffer
	_ = Run(context.Background(), sess, Config{In: strings.NewReader("q\n"), Out: &plain})
	sess2, _ := newSession("a")
	_ = Run(context.Background(), sess2, Config{In: strings.NewReader("q\n"), Out: &tty, Escapes: true})
	if strings.Contains(plain.String(), "\033[") {
		t.Error("plain output has escapes")
	}
	if !strings.Contains(tty.String(), "\033[2J") {
		t.Error("terminal output does not clear the screen")
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
