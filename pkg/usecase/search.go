package usecase

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/braindump-app/braindump/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// SearchResult pairs an action with its similarity to the query.
type SearchResult struct {
	Action *model.Action `json:"action"`
	Score  float64       `json:"score"`
}

// Search ranks stored actions by embedding similarity to the query.
// Actions persisted without an embedding are skipped.
func (uc *ActionUseCase) Search(ctx context.Context, query string, limit int) ([]*SearchResult, error) {
	if uc.embedding == nil {
		return nil, goerr.Wrap(ErrSearchDisabled, "no embedding client")
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, goerr.Wrap(ErrEmptyInput, "query is empty")
	}
	if limit <= 0 {
		limit = 10
	}

	queryVec, err := uc.embed(ctx, query)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to embed query")
	}

	actions, err := uc.repo.Action().List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*SearchResult, 0, len(actions))
	for _, action := range actions {
		if len(action.Embedding) == 0 {
			continue
		}
		score := cosineSimilarity(queryVec, action.Embedding)
		results = append(results, &SearchResult{Action: action, Score: score})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
