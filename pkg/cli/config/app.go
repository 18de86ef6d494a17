package config

import (
	"os"

	"github.com/braindump-app/braindump/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// App holds CLI flags for the deployment profile
type App struct {
	profilePath string
}

func (a *App) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "profile",
			Usage:       "Path to the TOML deployment profile (built-in defaults when empty)",
			Sources:     cli.EnvVars("BRAINDUMP_PROFILE"),
			Destination: &a.profilePath,
		},
	}
}

// ProfilePath returns the configured profile path
func (a *App) ProfilePath() string {
	return a.profilePath
}

// Configure loads the deployment profile. Missing fields fall back to
// the built-in defaults.
func (a *App) Configure() (*model.Profile, error) {
	profile := model.DefaultProfile()
	if a.profilePath == "" {
		return profile, nil
	}

	data, err := os.ReadFile(a.profilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(ErrConfigNotFound, "profile file does not exist",
				goerr.V(ConfigPathKey, a.profilePath))
		}
		return nil, goerr.Wrap(err, "failed to read profile",
			goerr.V(ConfigPathKey, a.profilePath))
	}

	if err := toml.Unmarshal(data, profile); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse profile",
			goerr.V(ConfigPathKey, a.profilePath), goerr.V("parse_error", err.Error()))
	}

	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func validateProfile(p *model.Profile) error {
	if p.Language == "" {
		return goerr.Wrap(ErrInvalidConfig, "language must not be empty")
	}
	if p.NotFoundMessage == "" {
		return goerr.Wrap(ErrInvalidConfig, "not_found_message must not be empty")
	}
	if p.ApologyMessage == "" {
		return goerr.Wrap(ErrInvalidConfig, "apology_message must not be empty")
	}
	return nil
}
