package config

import (
	"context"
	"log/slog"

	"github.com/braindump-app/braindump/pkg/service/gateway"
	gemsvc "github.com/braindump-app/braindump/pkg/service/gemini"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gollem/llm/gemini"
	"github.com/urfave/cli/v3"
)

// Gemini holds configuration for the Gemini model tiers
type Gemini struct {
	projectID    string
	location     string
	fastModel    string
	capableModel string
}

// Flags returns CLI flags for Gemini configuration
func (g *Gemini) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gemini-project",
			Usage:       "Google Cloud project ID for Gemini API",
			Sources:     cli.EnvVars("BRAINDUMP_GEMINI_PROJECT"),
			Destination: &g.projectID,
		},
		&cli.StringFlag{
			Name:        "gemini-location",
			Usage:       "Google Cloud location for Gemini API",
			Value:       "us-central1",
			Sources:     cli.EnvVars("BRAINDUMP_GEMINI_LOCATION"),
			Destination: &g.location,
		},
		&cli.StringFlag{
			Name:        "gemini-fast-model",
			Usage:       "Model name for the fast tier",
			Value:       "gemini-flash-latest",
			Sources:     cli.EnvVars("BRAINDUMP_GEMINI_FAST_MODEL"),
			Destination: &g.fastModel,
		},
		&cli.StringFlag{
			Name:        "gemini-capable-model",
			Usage:       "Model name for the capable tier",
			Value:       "gemini-pro-latest",
			Sources:     cli.EnvVars("BRAINDUMP_GEMINI_CAPABLE_MODEL"),
			Destination: &g.capableModel,
		},
	}
}

// LogAttrs returns log attributes for the Gemini configuration
func (g *Gemini) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("project_id", g.projectID),
		slog.String("location", g.location),
		slog.String("fast_model", g.fastModel),
		slog.String("capable_model", g.capableModel),
	}
}

// Configure creates the tiered generation gateway from the configured flags.
func (g *Gemini) Configure(ctx context.Context) (*gateway.Gateway, error) {
	if g.projectID == "" {
		return nil, goerr.New("gemini-project is required")
	}

	client, err := gemsvc.NewGenAIClient(ctx, g.projectID, g.location)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Gemini client")
	}

	fast := gemsvc.New(client, g.fastModel)
	capable := gemsvc.New(client, g.capableModel)

	return gateway.New(fast, capable), nil
}

// ConfigureEmbedding creates an embedding client for semantic search.
// Returns nil if projectID is not configured (search will be disabled).
func (g *Gemini) ConfigureEmbedding(ctx context.Context) (gollem.LLMClient, error) {
	if g.projectID == "" {
		return nil, nil
	}

	client, err := gemini.New(ctx, g.projectID, g.location)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create embedding client")
	}

	return client, nil
}
