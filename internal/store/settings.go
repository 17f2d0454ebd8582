package store

import (
	"go.uber.org/zap"

	"taskdeck/internal/storage"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	LangEnglish  = "en"
	LangJapanese = "ja"
)

type Settings struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

func DefaultSettings() Settings {
	return Settings{Theme: ThemeLight, Language: LangJapanese}
}

// SettingsStore persists theme and language under their own key,
// independent of the task collection.
type SettingsStore struct {
	kv       KV
	log      *zap.Logger
	settings Settings
	subs     []func()
}

func NewSettingsStore(kv KV, log *zap.Logger) *SettingsStore {
	s := &SettingsStore{kv: kv, log: log, settings: DefaultSettings()}
	if err := kv.Load(storage.SettingsKey, &s.settings); err != nil {
		log.Warn("load settings, using defaults", zap.Error(err))
		s.settings = DefaultSettings()
	}
	return s
}

func (s *SettingsStore) Settings() Settings { return s.settings }

func (s *SettingsStore) Subscribe(fn func()) {
	s.subs = append(s.subs, fn)
}

func (s *SettingsStore) SetTheme(theme string) {
	s.settings.Theme = theme
	s.persist()
	s.notify()
}

func (s *SettingsStore) SetLanguage(lang string) {
	s.settings.Language = lang
	s.persist()
	s.notify()
}

func (s *SettingsStore) persist() {
	if err := s.kv.Save(storage.SettingsKey, s.settings); err != nil {
		s.log.Warn("persist settings", zap.Error(err))
	}
}

func (s *SettingsStore) notify() {
	for _, fn := range s.subs {
		fn()
	}
}
