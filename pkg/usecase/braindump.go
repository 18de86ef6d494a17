package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/braindump-app/braindump/pkg/domain/interfaces"
	"github.com/braindump-app/braindump/pkg/domain/model"
	"github.com/braindump-app/braindump/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// visionBackoff shortens the retry wait for media requests; uploads
// already cost the user seconds before the first model call.
const visionBackoff = 2 * time.Second

// BrainDumpUseCase turns raw input (text, audio, image) into persisted
// actions via the generation gateway.
type BrainDumpUseCase struct {
	generator Generator
	media     interfaces.MediaStore
	profile   *model.Profile
	action    *ActionUseCase
	now       func() time.Time
}

func NewBrainDumpUseCase(generator Generator, media interfaces.MediaStore, profile *model.Profile, action *ActionUseCase) *BrainDumpUseCase {
	return &BrainDumpUseCase{
		generator: generator,
		media:     media,
		profile:   profile,
		action:    action,
		now:       time.Now,
	}
}

// ProcessText extracts actions from a written or transcribed note.
func (uc *BrainDumpUseCase) ProcessText(ctx context.Context, text string) (*model.BrainDumpResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, goerr.Wrap(ErrEmptyInput, "text is empty")
	}

	instruction, err := renderPrompt("ingest_system.md", promptData{
		CurrentTime: formatCurrentTime(uc.now()),
		Language:    uc.profile.Language,
	})
	if err != nil {
		return nil, err
	}

	return uc.process(ctx, &model.GenerateRequest{
		Instruction: instruction,
		Prompt:      text,
		JSONOutput:  true,
	})
}

// ProcessAudio uploads a voice recording and extracts actions from it.
// Transcription happens inside the model call.
func (uc *BrainDumpUseCase) ProcessAudio(ctx context.Context, data []byte, mimeType string) (*model.BrainDumpResult, error) {
	if len(data) == 0 {
		return nil, goerr.Wrap(ErrEmptyInput, "audio payload is empty")
	}

	ref, err := uc.media.Put(ctx, data, mimeType)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to store audio")
	}

	instruction, err := renderPrompt("ingest_system.md", promptData{
		CurrentTime: formatCurrentTime(uc.now()),
		Language:    uc.profile.Language,
	})
	if err != nil {
		return nil, err
	}

	return uc.process(ctx, &model.GenerateRequest{
		Instruction: instruction,
		Prompt:      "Transcribe the attached recording and extract the actions.",
		Media:       ref,
		JSONOutput:  true,
		Backoff:     visionBackoff,
	})
}

// ProcessImage uploads a photo and extracts actions from its content.
func (uc *BrainDumpUseCase) ProcessImage(ctx context.Context, data []byte, mimeType string) (*model.BrainDumpResult, error) {
	if len(data) == 0 {
		return nil, goerr.Wrap(ErrEmptyInput, "image payload is empty")
	}

	ref, err := uc.media.Put(ctx, data, mimeType)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to store image")
	}

	instruction, err := renderPrompt("vision_system.md", promptData{
		CurrentTime: formatCurrentTime(uc.now()),
		Language:    uc.profile.Language,
	})
	if err != nil {
		return nil, err
	}

	return uc.process(ctx, &model.GenerateRequest{
		Instruction: instruction,
		Prompt:      "Extract the actions from the attached image.",
		Media:       ref,
		JSONOutput:  true,
		Backoff:     visionBackoff,
	})
}

func (uc *BrainDumpUseCase) process(ctx context.Context, req *model.GenerateRequest) (*model.BrainDumpResult, error) {
	raw, err := uc.generator.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	result, err := normalizeResult(raw)
	if err != nil {
		return nil, err
	}

	if err := uc.action.SaveResult(ctx, result); err != nil {
		return nil, goerr.Wrap(err, "failed to persist extracted actions")
	}

	logging.From(ctx).Info("brain dump processed",
		"actions", len(result.Actions),
		"has_media", req.Media != nil)

	return result, nil
}
