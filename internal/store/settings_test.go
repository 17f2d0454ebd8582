package store

import (
	"testing"

	"go.uber.org/zap"

	"taskdeck/internal/task"
)

func TestSettingsDefaultsAndPersistence(t *testing.T) {
	kv := &memKV{}
	s := NewSettingsStore(kv, zap.NewNop())

	if got := s.Settings(); got != DefaultSettings() {
		t.Fatalf("want defaults, got %+v", got)
	}

	s.SetTheme(ThemeDark)
	s.SetLanguage(LangEnglish)

	reloaded := NewSettingsStore(kv, zap.NewNop())
	if got := reloaded.Settings(); got.Theme != ThemeDark || got.Language != LangEnglish {
		t.Fatalf("settings did not survive reload: %+v", got)
	}
}

func TestSettingsCorruptBlobFallsBack(t *testing.T) {
	kv := &memKV{data: map[string]string{"settings": "[["}}
	s := NewSettingsStore(kv, zap.NewNop())
	if got := s.Settings(); got != DefaultSettings() {
		t.Fatalf("want defaults on corrupt blob, got %+v", got)
	}
}

func TestCriteriaDefaultsAndNotify(t *testing.T) {
	c := NewCriteriaStore()
	if got := c.Sort(); got != task.DefaultSort() {
		t.Fatalf("want default sort, got %+v", got)
	}

	n := 0
	c.Subscribe(func() { n++ })

	st := task.StatusPending
	c.SetFilters(task.Filters{Status: &st})
	c.SetSort(task.Sort{Field: task.SortByDueDate, Order: task.Asc})
	c.Reset()

	if n != 3 {
		t.Fatalf("want 3 notifications, got %d", n)
	}
	if c.Filters().Status != nil || c.Sort() != task.DefaultSort() {
		t.Fatal("reset must restore defaults")
	}
}

func TestCriteriaSetSortFillsDefaults(t *testing.T) {
	c := NewCriteriaStore()
	c.SetSort(task.Sort{})
	if got := c.Sort(); got != task.DefaultSort() {
		t.Fatalf("empty sort must fall back to default, got %+v", got)
	}
}
