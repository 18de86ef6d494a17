package usecase

import (
	"context"

	"github.com/braindump-app/braindump/pkg/domain/interfaces"
	"github.com/braindump-app/braindump/pkg/domain/model"
	"github.com/braindump-app/braindump/pkg/service/notion"
	"github.com/m-mizutani/gollem"
)

// Generator is the tiered generation surface the use cases depend on.
type Generator interface {
	Generate(ctx context.Context, req *model.GenerateRequest) (string, error)
	GenerateDirect(ctx context.Context, req *model.GenerateRequest) (string, error)
}

type UseCases struct {
	repo      interfaces.Repository
	generator Generator
	media     interfaces.MediaStore
	profile   *model.Profile
	embedding gollem.LLMClient
	notion    notion.Service

	BrainDump *BrainDumpUseCase
	Answer    *AnswerUseCase
	Action    *ActionUseCase
	User      *UserUseCase
}

type Option func(*UseCases)

func WithProfile(profile *model.Profile) Option {
	return func(uc *UseCases) {
		uc.profile = profile
	}
}

func WithEmbedding(client gollem.LLMClient) Option {
	return func(uc *UseCases) {
		uc.embedding = client
	}
}

func WithNotion(svc notion.Service) Option {
	return func(uc *UseCases) {
		uc.notion = svc
	}
}

func New(repo interfaces.Repository, generator Generator, media interfaces.MediaStore, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:      repo,
		generator: generator,
		media:     media,
		profile:   model.DefaultProfile(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Action = NewActionUseCase(repo, uc.embedding, uc.notion)
	uc.BrainDump = NewBrainDumpUseCase(generator, media, uc.profile, uc.Action)
	uc.Answer = NewAnswerUseCase(repo, generator, uc.profile)
	uc.User = NewUserUseCase(repo)

	return uc
}
