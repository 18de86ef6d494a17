package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/braindump-app/braindump/pkg/domain/interfaces"
	"github.com/braindump-app/braindump/pkg/domain/model"
	"github.com/braindump-app/braindump/pkg/utils/errutil"
)

// contextWindow is how many recent actions the Q&A prompt may see.
const contextWindow = 50

// AnswerUseCase answers free-form questions from the user's saved
// actions. It never surfaces errors to the caller: a failed model call
// degrades to a fixed apology so the client always has text to show.
type AnswerUseCase struct {
	repo      interfaces.Repository
	generator Generator
	profile   *model.Profile
	now       func() time.Time
}

func NewAnswerUseCase(repo interfaces.Repository, generator Generator, profile *model.Profile) *AnswerUseCase {
	return &AnswerUseCase{
		repo:      repo,
		generator: generator,
		profile:   profile,
		now:       time.Now,
	}
}

func (uc *AnswerUseCase) Ask(ctx context.Context, question string) string {
	question = strings.TrimSpace(question)
	if question == "" {
		return uc.profile.NotFoundMessage
	}

	actions, err := uc.repo.Action().ListRecent(ctx, contextWindow)
	if err != nil {
		errutil.Handle(ctx, err, "failed to load actions for question")
		return uc.profile.ApologyMessage
	}
	if len(actions) == 0 {
		return uc.profile.NotFoundMessage
	}

	prompt, err := renderPrompt("answer_user.md", promptData{
		CurrentTime: formatCurrentTime(uc.now()),
		Language:    uc.profile.Language,
		Context:     flattenActions(actions),
		Question:    question,
		NotFound:    uc.profile.NotFoundMessage,
	})
	if err != nil {
		errutil.Handle(ctx, err, "failed to render question prompt")
		return uc.profile.ApologyMessage
	}

	answer, err := uc.generator.GenerateDirect(ctx, &model.GenerateRequest{
		Prompt: prompt,
	})
	if err != nil {
		errutil.Handle(ctx, err, "question answering failed")
		return uc.profile.ApologyMessage
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return uc.profile.ApologyMessage
	}
	return answer
}

func flattenActions(actions []*model.Action) string {
	lines := make([]string, 0, len(actions))
	for _, action := range actions {
		lines = append(lines, action.ContextLine())
	}
	return strings.Join(lines, "\n")
}
