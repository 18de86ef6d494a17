package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/braindump-app/braindump/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestAppDefaultsWithoutPath(t *testing.T) {
	var cfg config.App

	profile := gt.R1(cfg.Configure()).NoError(t)
	gt.Value(t, profile.Language).Equal("Turkish")
	gt.String(t, profile.NotFoundMessage).NotEqual("")
	gt.String(t, profile.ApologyMessage).NotEqual("")
}

func TestAppLoadsProfile(t *testing.T) {
	path := writeProfile(t, `
language = "English"
not_found_message = "I couldn't find that in your records."
apology_message = "Sorry, I can't answer right now."
`)

	cfg := config.NewApp(path)
	profile := gt.R1(cfg.Configure()).NoError(t)
	gt.Value(t, profile.Language).Equal("English")
	gt.Value(t, profile.NotFoundMessage).Equal("I couldn't find that in your records.")
}

func TestAppPartialProfileKeepsDefaults(t *testing.T) {
	path := writeProfile(t, `language = "English"`)

	cfg := config.NewApp(path)
	profile := gt.R1(cfg.Configure()).NoError(t)
	gt.Value(t, profile.Language).Equal("English")
	// unset fields fall back to defaults
	gt.Value(t, profile.NotFoundMessage).Equal("Kayıtlarımda buna dair bir bilgi bulamadım.")
}

func TestAppMissingFile(t *testing.T) {
	cfg := config.NewApp(filepath.Join(t.TempDir(), "nope.toml"))

	_, err := cfg.Configure()
	gt.Error(t, err).Is(config.ErrConfigNotFound)
}

func TestAppInvalidTOML(t *testing.T) {
	path := writeProfile(t, `language = [broken`)

	cfg := config.NewApp(path)
	_, err := cfg.Configure()
	gt.Error(t, err).Is(config.ErrInvalidConfig)
}

func TestAppEmptyLanguage(t *testing.T) {
	path := writeProfile(t, `language = ""`)

	cfg := config.NewApp(path)
	_, err := cfg.Configure()
	gt.Error(t, err).Is(config.ErrInvalidConfig)
}
