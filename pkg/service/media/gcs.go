package media

import (
	"context"
	"fmt"
	"mime"

	"cloud.google.com/go/storage"
	"github.com/braindump-app/braindump/pkg/domain/interfaces"
	"github.com/braindump-app/braindump/pkg/domain/model"
	"github.com/braindump-app/braindump/pkg/utils/safe"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// GCS stores uploaded media in a Cloud Storage bucket and hands back
// gs:// URIs, which the generation backend reads directly.
type GCS struct {
	client *storage.Client
	bucket string
}

var _ interfaces.MediaStore = &GCS{}

func NewGCS(ctx context.Context, bucket string) (*GCS, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client")
	}

	return &GCS{
		client: client,
		bucket: bucket,
	}, nil
}

func (s *GCS) Put(ctx context.Context, data []byte, mimeType string) (*model.MediaRef, error) {
	name := objectName(mimeType)

	w := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	w.ContentType = mimeType

	if _, err := w.Write(data); err != nil {
		safe.Close(ctx, w)
		return nil, goerr.Wrap(err, "failed to write media object", goerr.V("object", name))
	}
	if err := w.Close(); err != nil {
		return nil, goerr.Wrap(err, "failed to finalize media object", goerr.V("object", name))
	}

	return &model.MediaRef{
		URI:      fmt.Sprintf("gs://%s/%s", s.bucket, name),
		MIMEType: mimeType,
		Size:     int64(len(data)),
	}, nil
}

func (s *GCS) Close() error {
	return s.client.Close()
}

func objectName(mimeType string) string {
	ext := ".bin"
	if exts, err := mime.ExtensionsByType(mimeType); err == nil && len(exts) > 0 {
		ext = exts[0]
	}
	return "media/" + uuid.NewString() + ext
}
