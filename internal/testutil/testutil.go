package testutil

import (
	"fmt"
	"sync"
	"testing"

	"bookcatalog/internal/catalog"
)

// MustPlain builds a plain item or fails the test.
func MustPlain(t testing.TB, title, author string) catalog.Item {
	t.Helper()
	item, err := catalog.NewPlain(title, author)
	if err != nil {
		t.Fatalf("NewPlain(%q, %q): %v", title, author, err)
	}
	return item
}

// MustDigital builds a digital item or fails the test.
func MustDigital(t testing.TB, title, author string, sizeKB int, format string) catalog.Item {
	t.Helper()
	item, err := catalog.NewDigital(title, author, sizeKB, format)
	if err != nil {
		t.Fatalf("NewDigital(%q, %q): %v", title, author, err)
	}
	return item
}

// MustPhysical builds a physical item or fails the test.
func MustPhysical(t testing.TB, title, author string, pages int, isbn string) catalog.Item {
	t.Helper()
	item, err := catalog.NewPhysical(title, author, pages, isbn)
	if err != nil {
		t.Fatalf("NewPhysical(%q, %q): %v", title, author, err)
	}
	return item
}

// MustCatalog creates a catalog holding items in order or fails the test.
func MustCatalog(t testing.TB, name string, items ...catalog.Item) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(name)
	if err != nil {
		t.Fatalf("New(%q): %v", name, err)
	}
	for _, item := range items {
		if err := c.Add(item); err != nil {
			t.Fatalf("Add(%v): %v", item, err)
		}
	}
	return c
}

// Titles returns the titles of items in order.
func Titles(items []catalog.Item) []string {
	titles := make([]string, 0, len(items))
	for _, item := range items {
		titles = append(titles, item.Title())
	}
	return titles
}

// Entry is one message captured by RecordingLogger.
type Entry struct {
	Msg  string
	Args []any
}

// Attr returns the value logged for key, formatted with %v.
func (e Entry) Attr(key string) string {
	for i := 0; i+1 < len(e.Args); i += 2 {
		if k, ok := e.Args[i].(string); ok && k == key {
			return fmt.Sprint(e.Args[i+1])
		}
	}
	return ""
}

// RecordingLogger keeps every message it receives.
type RecordingLogger struct {
	mu      sync.Mutex
	entries []Entry
}

func (l *RecordingLogger) Info(msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{Msg: msg, Args: args})
}

func (l *RecordingLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

// Messages returns only the message text of each entry.
func (l *RecordingLogger) Messages() []string {
	entries := l.Entries()
	msgs := make([]string, len(entries))
	for i, e := range entries {
		msgs[i] = e.Msg
	}
	return msgs
}

// PanickingLogger panics on every call.
type PanickingLogger struct{}

func (PanickingLogger) Info(string, ...any) {
	panic("log sink unavailable")
}
