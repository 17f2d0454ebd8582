package storage

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

type record struct {
	Name string     `json:"name"`
	When time.Time  `json:"when"`
	Due  *time.Time `json:"due,omitempty"`
}

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTemp(t)
	due := time.Date(2026, 9, 3, 15, 0, 0, 0, time.UTC)
	in := []record{
		{Name: "dated", When: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), Due: &due},
		{Name: "undated", When: time.Date(2026, 9, 2, 11, 0, 0, 0, time.UTC)},
	}
	if err := s.Save("records", in); err != nil {
		t.Fatal(err)
	}

	var out []record
	if err := s.Load("records", &out); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", in, out)
	}
	if out[0].Due == nil || !out[0].Due.Equal(due) {
		t.Fatal("times must come back as time values, not strings")
	}
}

func TestLoadMissingKeyKeepsDefault(t *testing.T) {
	s := openTemp(t)
	out := []record{{Name: "default"}}
	if err := s.Load("absent", &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Name != "default" {
		t.Fatalf("default must survive a missing key: %+v", out)
	}
}

func TestLoadCorruptBlobKeepsDefault(t *testing.T) {
	s := openTemp(t)
	// A JSON string is a valid blob but not a valid []record.
	if err := s.Save("records", "garbage"); err != nil {
		t.Fatal(err)
	}

	out := []record{{Name: "default"}}
	if err := s.Load("records", &out); err == nil {
		t.Fatal("decode failure must be reported for logging")
	}
	if len(out) != 1 || out[0].Name != "default" {
		t.Fatalf("default must survive a corrupt blob: %+v", out)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := openTemp(t)
	if err := s.Save("k", 1); err != nil {
		t.Fatal(err)
	}
	if err := s.Save("k", 2); err != nil {
		t.Fatal(err)
	}
	var n int
	if err := s.Load("k", &n); err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("want 2, got %d", n)
	}
}

func TestRemove(t *testing.T) {
	s := openTemp(t)
	if err := s.Save("k", "v"); err != nil {
		t.Fatal(err)
	}
	if err := s.Remove("k"); err != nil {
		t.Fatal(err)
	}
	got := "default"
	if err := s.Load("k", &got); err != nil {
		t.Fatal(err)
	}
	if got != "default" {
		t.Fatalf("removed key must behave as missing, got %q", got)
	}

	if err := s.Remove("never-existed"); err != nil {
		t.Fatalf("removing a missing key must not fail: %v", err)
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save("k", "persisted"); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	var got string
	if err := s2.Load("k", &got); err != nil {
		t.Fatal(err)
	}
	if got != "persisted" {
		t.Fatalf("value must survive reopen, got %q", got)
	}
}

func TestOpenEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("empty path must fail")
	}
}
