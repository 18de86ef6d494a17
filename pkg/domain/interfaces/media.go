package interfaces

import (
	"context"

	"github.com/braindump-app/braindump/pkg/domain/model"
)

// MediaStore uploads a media payload and returns an opaque remote
// reference usable as an attachment in a generation call. Uploads are
// synchronous and happen before the gateway's retry logic; they are not
// retried with it.
type MediaStore interface {
	Put(ctx context.Context, data []byte, mimeType string) (*model.MediaRef, error)
}
