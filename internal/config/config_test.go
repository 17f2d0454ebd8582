package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DBPath != DefaultDBName {
		t.Fatalf("want default db path, got %q", cfg.DBPath)
	}
	if cfg.Keys.Add != "a" || cfg.Keys.Quit != "q" {
		t.Fatalf("default keymap wrong: %+v", cfg.Keys)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file must be written on first launch: %v", err)
	}

	// Second load reads the file it just wrote.
	again, err := LoadOrCreate(path)
	if err != nil {
		t.Fatal(err)
	}
	if again != cfg {
		t.Fatalf("reload mismatch:\n%+v\n%+v", cfg, again)
	}
}

func TestLoadOrCreateParsesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "db_path = \"custom.db\"\ndefault_sort = \"dueDate\"\n\n[keys]\nquit = \"x\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DBPath != "custom.db" || cfg.DefaultSort != "dueDate" || cfg.Keys.Quit != "x" {
		t.Fatalf("existing config not honored: %+v", cfg)
	}
}

func TestLoadOrCreateFillsEmptyPaths(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("db_path = \"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DBPath != DefaultDBName || cfg.LogPath != DefaultLogName {
		t.Fatalf("empty paths must fall back to defaults: %+v", cfg)
	}
}

func TestLoadOrCreateBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not toml ==="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrCreate(path); err == nil {
		t.Fatal("invalid toml must fail")
	}
}
