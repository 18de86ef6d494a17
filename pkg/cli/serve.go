package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/braindump-app/braindump/pkg/cli/config"
	httpctrl "github.com/braindump-app/braindump/pkg/controller/http"
	"github.com/braindump-app/braindump/pkg/service/worker"
	"github.com/braindump-app/braindump/pkg/usecase"
	"github.com/braindump-app/braindump/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var appCfg config.App
	var repoCfg config.Repository
	var geminiCfg config.Gemini
	var storageCfg config.Storage
	var slackCfg config.Slack
	var notionCfg config.Notion

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("BRAINDUMP_ADDR"),
			Destination: &addr,
		},
	}

	// Add shared config flags
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, storageCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, notionCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			profile, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load deployment profile")
			}

			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			gw, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure model gateway")
			}

			store, err := storageCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure media store")
			}

			ucOpts := []usecase.Option{
				usecase.WithProfile(profile),
			}

			embedding, err := geminiCfg.ConfigureEmbedding(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure embedding client")
			}
			if embedding != nil {
				ucOpts = append(ucOpts, usecase.WithEmbedding(embedding))
				logging.Default().Info("Semantic search enabled")
			}

			notionSvc, err := notionCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to initialize notion service")
			}
			if notionSvc != nil {
				ucOpts = append(ucOpts, usecase.WithNotion(notionSvc))
				logging.Default().Info("Notion export enabled")
			} else {
				logging.Default().Info("Notion API token not configured, action export disabled")
			}

			uc := usecase.New(repo, gw, store, ucOpts...)

			// Start morning briefing worker when Slack is configured
			var briefingWorker *worker.MorningBriefingWorker
			if slackSvc := slackCfg.Configure(); slackSvc != nil {
				briefingWorker = worker.NewMorningBriefingWorker(repo, slackSvc)
				if err := briefingWorker.Start(ctx); err != nil {
					return goerr.Wrap(err, "failed to start morning briefing worker")
				}
			} else {
				logging.Default().Info("Slack not configured, morning briefings disabled")
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 10 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("HTTP server starting", "addr", addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- goerr.Wrap(err, "HTTP server failed")
					return
				}
				errCh <- nil
			}()

			select {
			case err := <-errCh:
				if briefingWorker != nil {
					briefingWorker.Stop()
				}
				return err

			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				if briefingWorker != nil {
					briefingWorker.Stop()
				}

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shut down HTTP server")
				}
				return nil
			}
		},
	}
}
