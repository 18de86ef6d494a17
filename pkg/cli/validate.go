package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/braindump-app/braindump/pkg/cli/config"
	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var appCfg config.App

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the deployment profile",
		Flags:   appCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			profile, err := appCfg.Configure()
			if err != nil {
				color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "✗ profile is invalid")
				fmt.Fprintln(os.Stderr, err.Error())
				return err
			}

			color.New(color.FgGreen, color.Bold).Println("✓ profile is valid")
			fmt.Printf("  language:  %s\n", profile.Language)
			fmt.Printf("  not found: %s\n", profile.NotFoundMessage)
			fmt.Printf("  apology:   %s\n", profile.ApologyMessage)
			return nil
		},
	}
}
