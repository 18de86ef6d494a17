package config

import (
	notionsvc "github.com/braindump-app/braindump/pkg/service/notion"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Notion holds CLI flags for the action export integration
type Notion struct {
	apiToken   string
	databaseID string
}

func (n *Notion) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "notion-api-token",
			Usage:       "Notion API token for action export",
			Sources:     cli.EnvVars("BRAINDUMP_NOTION_API_TOKEN"),
			Destination: &n.apiToken,
		},
		&cli.StringFlag{
			Name:        "notion-database-id",
			Usage:       "Notion database ID actions are exported into",
			Sources:     cli.EnvVars("BRAINDUMP_NOTION_DATABASE_ID"),
			Destination: &n.databaseID,
		},
	}
}

// IsConfigured reports whether export is possible
func (n *Notion) IsConfigured() bool {
	return n.apiToken != ""
}

// Configure returns the Notion service, or nil when no token is set.
func (n *Notion) Configure() (notionsvc.Service, error) {
	if !n.IsConfigured() {
		return nil, nil
	}
	if n.databaseID == "" {
		return nil, goerr.New("notion-database-id is required when notion-api-token is set")
	}
	return notionsvc.New(n.apiToken, n.databaseID)
}
