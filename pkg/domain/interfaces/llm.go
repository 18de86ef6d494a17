package interfaces

import (
	"context"

	"github.com/braindump-app/braindump/pkg/domain/model"
)

// ModelClient is a single model tier capable of turning a generation
// request into raw text. Implementations wrap one remote model by name.
type ModelClient interface {
	GenerateContent(ctx context.Context, req *model.GenerateRequest) (string, error)
}
