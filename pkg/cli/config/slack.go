package config

import (
	slacksvc "github.com/braindump-app/braindump/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds CLI flags for briefing delivery
type Slack struct {
	botToken string
	channel  string
}

func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot token for morning briefings",
			Sources:     cli.EnvVars("BRAINDUMP_SLACK_BOT_TOKEN"),
			Destination: &s.botToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel for morning briefings",
			Sources:     cli.EnvVars("BRAINDUMP_SLACK_CHANNEL"),
			Destination: &s.channel,
		},
	}
}

// IsConfigured reports whether briefings can be delivered
func (s *Slack) IsConfigured() bool {
	return s.botToken != "" && s.channel != ""
}

// Configure returns the Slack service, or nil when not configured.
func (s *Slack) Configure() *slacksvc.Service {
	if !s.IsConfigured() {
		return nil
	}
	return slacksvc.New(s.botToken, s.channel)
}
