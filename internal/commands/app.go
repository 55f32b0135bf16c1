package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/balkashynov/studyplay/internal/alarm"
	"github.com/balkashynov/studyplay/internal/db"
	"github.com/balkashynov/studyplay/internal/engine"
	"github.com/balkashynov/studyplay/internal/i18n"
	"github.com/balkashynov/studyplay/internal/logging"
	"github.com/balkashynov/studyplay/internal/settings"
	"github.com/balkashynov/studyplay/internal/store"
	"github.com/balkashynov/studyplay/internal/timer"
	"github.com/balkashynov/studyplay/internal/tui"
)

// SettingsEnv overrides the settings file location
const SettingsEnv = "STUDYPLAY_SETTINGS"

var settingsPath string

// app is everything a command needs, opened once per invocation
type app struct {
	settings     *settings.Settings
	settingsPath string
	logger       *slog.Logger
	logCloser    io.Closer
	engine       *engine.Engine
	tr           *i18n.Translator
}

// resolveSettingsPath picks the flag, then the environment, then the default
func resolveSettingsPath() string {
	if settingsPath != "" {
		return settingsPath
	}
	if env := os.Getenv(SettingsEnv); env != "" {
		return env
	}
	path, err := settings.DefaultPath()
	if err != nil {
		return settings.FileName
	}
	return path
}

// openApp loads settings, opens the database and recovers any running session.
// A database that cannot be opened is not fatal: the state is kept in memory
// for this invocation.
func openApp() *app {
	path := resolveSettingsPath()
	s, settingsErr := settings.Load(path)

	logger, closer := logging.New(s)
	if settingsErr != nil {
		logger.Warn("using default settings", "error", settingsErr)
	}

	tr := i18n.New(s.Language)

	var kv store.KV
	if err := db.Initialize(s.DataDir); err != nil {
		logger.Warn("database unavailable, state will not persist", "error", err)
		fmt.Fprintln(os.Stderr, tr.T(i18n.StorageFallback))
		kv = store.NewMemoryKV()
	} else {
		kv = db.NewKVStore(db.DB)
	}

	e := engine.New(
		store.New(kv, logger),
		timer.RealClock{},
		alarm.New(s.Alarm, os.Stderr, logger),
		logger,
	)

	a := &app{
		settings:     s,
		settingsPath: path,
		logger:       logger,
		logCloser:    closer,
		engine:       e,
		tr:           tr,
	}

	out, err := e.Recover()
	switch {
	case err != nil:
		logger.Warn("session recovery failed", "error", err)
	case out != nil:
		// The countdown ran out while nothing was running
		fmt.Println(tui.OutcomeMessage(tr, out))
	}
	return a
}

// Close releases the alarm, database and log file
func (a *app) Close() {
	a.engine.Alarm().Stop()
	if err := db.Close(); err != nil {
		a.logger.Warn("failed to close database", "error", err)
	}
	a.logCloser.Close()
}

// withApp wraps a command function to open the app first
func withApp(fn func(*app, *cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		a := openApp()
		defer a.Close()
		fn(a, cmd, args)
	}
}

// printError prints a short error line, never a stack trace
func printError(err error) {
	fmt.Printf("Error: %v\n", err)
}
