package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "taskdeck.db"
	DefaultLogName        = "taskdeck.log"
)

type Keymap struct {
	Quit      string `toml:"quit"`
	Add       string `toml:"add"`
	Up        string `toml:"up"`
	Down      string `toml:"down"`
	MoveUp    string `toml:"move_up"`
	MoveDown  string `toml:"move_down"`
	Toggle    string `toml:"toggle"`
	Delete    string `toml:"delete"`
	Duplicate string `toml:"duplicate"`
	Edit      string `toml:"edit"`
	Search    string `toml:"search"`
	Filter    string `toml:"filter"`
	Sort      string `toml:"sort"`
	Order     string `toml:"order"`
	Theme     string `toml:"theme"`
	Language  string `toml:"language"`
	Confirm   string `toml:"confirm"`
	Cancel    string `toml:"cancel"`
}

type Config struct {
	DBPath       string `toml:"db_path"`
	LogPath      string `toml:"log_path"`
	DefaultSort  string `toml:"default_sort"`
	DefaultOrder string `toml:"default_order"`
	Keys         Keymap `toml:"keys"`
}

// ResolveConfigPath prefers $XDG_CONFIG_HOME/taskdeck/config.toml and
// falls back to the working directory.
func ResolveConfigPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "taskdeck", DefaultConfigFileName)
	}
	return DefaultConfigFileName
}

func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBName
	}
	if cfg.LogPath == "" {
		cfg.LogPath = DefaultLogName
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		DBPath:       DefaultDBName,
		LogPath:      DefaultLogName,
		DefaultSort:  "createdAt",
		DefaultOrder: "desc",
		Keys: Keymap{
			Quit:      "q",
			Add:       "a",
			Up:        "k",
			Down:      "j",
			MoveUp:    "K",
			MoveDown:  "J",
			Toggle:    " ",
			Delete:    "d",
			Duplicate: "D",
			Edit:      "e",
			Search:    "/",
			Filter:    "f",
			Sort:      "s",
			Order:     "o",
			Theme:     "t",
			Language:  "L",
			Confirm:   "enter",
			Cancel:    "esc",
		},
	}
}
