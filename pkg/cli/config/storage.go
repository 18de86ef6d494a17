package config

import (
	"context"

	"github.com/braindump-app/braindump/pkg/domain/interfaces"
	"github.com/braindump-app/braindump/pkg/service/media"
	"github.com/braindump-app/braindump/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Storage holds CLI flags for the media upload bucket
type Storage struct {
	bucket string
}

func (s *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "media-bucket",
			Usage:       "Cloud Storage bucket for media uploads (in-memory store when empty)",
			Sources:     cli.EnvVars("BRAINDUMP_MEDIA_BUCKET"),
			Destination: &s.bucket,
		},
	}
}

// Configure returns the media store. Without a bucket the in-memory
// store is used; uploads then survive only for the process lifetime.
func (s *Storage) Configure(ctx context.Context) (interfaces.MediaStore, error) {
	if s.bucket == "" {
		logging.Default().Warn("media-bucket not configured, using in-memory media store")
		return media.NewMemory(), nil
	}

	store, err := media.NewGCS(ctx, s.bucket)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize media store", goerr.V("bucket", s.bucket))
	}

	logging.Default().Info("Using Cloud Storage media store", "bucket", s.bucket)
	return store, nil
}
