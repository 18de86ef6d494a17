package usecase

import (
	"context"
	"errors"

	"github.com/braindump-app/braindump/pkg/domain/interfaces"
	"github.com/braindump-app/braindump/pkg/domain/model"
	"github.com/braindump-app/braindump/pkg/domain/types"
	"github.com/braindump-app/braindump/pkg/utils/async"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"golang.org/x/sync/errgroup"
)

// ActionUseCase persists and serves extracted actions.
type ActionUseCase struct {
	repo      interfaces.Repository
	embedding gollem.LLMClient
	notion    notionExporter
}

type notionExporter interface {
	ExportAction(ctx context.Context, action *model.Action) error
}

func NewActionUseCase(repo interfaces.Repository, embedding gollem.LLMClient, notion notionExporter) *ActionUseCase {
	return &ActionUseCase{
		repo:      repo,
		embedding: embedding,
		notion:    notion,
	}
}

// SaveResult stores every action of a brain dump. Embeddings are
// computed alongside when a client is configured; embedding failures do
// not block persistence. Stored IDs are written back into the result.
func (uc *ActionUseCase) SaveResult(ctx context.Context, result *model.BrainDumpResult) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(4)

	for i := range result.Actions {
		eg.Go(func() error {
			action := &result.Actions[i]

			if uc.embedding != nil {
				if vec, err := uc.embed(ctx, action.Content); err == nil {
					action.Embedding = vec
				}
			}

			created, err := uc.repo.Action().Create(ctx, action)
			if err != nil {
				return goerr.Wrap(err, "failed to create action")
			}
			*action = *created

			uc.exportToNotion(ctx, created)
			return nil
		})
	}

	return eg.Wait()
}

func (uc *ActionUseCase) embed(ctx context.Context, text string) ([]float32, error) {
	vecs, err := uc.embedding.GenerateEmbedding(ctx, model.EmbeddingDimension, []string{text})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate embedding")
	}
	if len(vecs) == 0 {
		return nil, goerr.New("embedding response is empty")
	}

	vec := make([]float32, len(vecs[0]))
	for i, v := range vecs[0] {
		vec[i] = float32(v)
	}
	return vec, nil
}

// exportToNotion mirrors the action in the background when the user has
// connected Notion. Best effort: errors are logged, not returned.
func (uc *ActionUseCase) exportToNotion(ctx context.Context, action *model.Action) {
	if uc.notion == nil {
		return
	}

	user, err := uc.repo.User().Get(ctx)
	if err != nil || !user.NotionConnected {
		return
	}

	async.Dispatch(ctx, func(ctx context.Context) error {
		if err := uc.notion.ExportAction(ctx, action); err != nil {
			return goerr.Wrap(err, "failed to export action to notion",
				goerr.V(types.ActionIDKey, action.ID))
		}
		return nil
	})
}

func (uc *ActionUseCase) Get(ctx context.Context, id int64) (*model.Action, error) {
	action, err := uc.repo.Action().Get(ctx, id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil, goerr.Wrap(ErrActionNotFound, "no such action", goerr.V(types.ActionIDKey, id))
		}
		return nil, err
	}
	return action, nil
}

// List returns all actions, newest first.
func (uc *ActionUseCase) List(ctx context.Context) ([]*model.Action, error) {
	return uc.repo.Action().List(ctx)
}

func (uc *ActionUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Action().Delete(ctx, id); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return goerr.Wrap(ErrActionNotFound, "no such action", goerr.V(types.ActionIDKey, id))
		}
		return err
	}
	return nil
}
