package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Defaults
const (
	DefaultDirName         = ".studyplay"
	FileName               = "settings.toml"
	DefaultAlarmMaxSeconds = 300
	DefaultAlarmIntervalMS = 1000
)

// Settings holds process-level options read from settings.toml. The economy
// config is not here; it lives in the persisted state.
type Settings struct {
	DataDir  string        `toml:"data_dir"`
	Language string        `toml:"language"` // en, es, fr; empty = from $LANG
	Log      LogSettings   `toml:"log"`
	Alarm    AlarmSettings `toml:"alarm"`
}

type LogSettings struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // json, text
}

type AlarmSettings struct {
	Enabled    bool `toml:"enabled"`
	MaxSeconds int  `toml:"max_seconds"`
	IntervalMS int  `toml:"interval_ms"`
}

// Default returns settings rooted in ~/.studyplay.
func Default() *Settings {
	dataDir := DefaultDirName
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, DefaultDirName)
	}
	return &Settings{
		DataDir: dataDir,
		Log: LogSettings{
			Level:  "info",
			Format: "json",
		},
		Alarm: AlarmSettings{
			Enabled:    true,
			MaxSeconds: DefaultAlarmMaxSeconds,
			IntervalMS: DefaultAlarmIntervalMS,
		},
	}
}

// DefaultPath returns ~/.studyplay/settings.toml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName, FileName), nil
}

// Load reads settings from path. A missing file yields defaults and no
// error; a malformed file yields defaults together with the error.
func Load(path string) (*Settings, error) {
	s := Default()
	if _, err := toml.DecodeFile(path, s); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	s.Validate()
	return s, nil
}

// Save writes the settings to path in TOML format.
func (s *Settings) Save(path string) error {
	s.Validate()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(s)
}

// Validate normalizes values to safe ranges.
func (s *Settings) Validate() {
	s.DataDir = expandHome(strings.TrimSpace(s.DataDir))
	if s.DataDir == "" {
		s.DataDir = Default().DataDir
	}
	s.Language = strings.ToLower(strings.TrimSpace(s.Language))

	switch strings.ToLower(s.Log.Level) {
	case "debug", "info", "warn", "error":
		s.Log.Level = strings.ToLower(s.Log.Level)
	default:
		s.Log.Level = "info"
	}
	switch strings.ToLower(s.Log.Format) {
	case "json", "text":
		s.Log.Format = strings.ToLower(s.Log.Format)
	default:
		s.Log.Format = "json"
	}

	if s.Alarm.MaxSeconds <= 0 {
		s.Alarm.MaxSeconds = DefaultAlarmMaxSeconds
	}
	if s.Alarm.IntervalMS < 100 {
		s.Alarm.IntervalMS = DefaultAlarmIntervalMS
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
