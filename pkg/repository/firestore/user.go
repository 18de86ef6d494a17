package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/braindump-app/braindump/pkg/domain/model"
	"github.com/braindump-app/braindump/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type userRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newUserRepository(client *firestore.Client) *userRepository {
	return &userRepository{
		client: client,
	}
}

func (r *userRepository) usersCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_users"
	}
	return "users"
}

// single-user deployment: the profile always lives at one document
const userDocID = "default"

func (r *userRepository) Get(ctx context.Context) (*model.User, error) {
	docSnap, err := r.client.Collection(r.usersCollection()).Doc(userDocID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(types.ErrNotFound, "user profile not found")
		}
		return nil, goerr.Wrap(err, "failed to get user profile")
	}

	var user model.User
	if err := docSnap.DataTo(&user); err != nil {
		return nil, goerr.Wrap(err, "failed to decode user profile")
	}

	return &user, nil
}

func (r *userRepository) Save(ctx context.Context, user *model.User) (*model.User, error) {
	now := time.Now().UTC()
	saved := *user
	saved.ID = 1
	saved.UpdatedAt = now
	if saved.CreatedAt.IsZero() {
		if existing, err := r.Get(ctx); err == nil {
			saved.CreatedAt = existing.CreatedAt
		} else {
			saved.CreatedAt = now
		}
	}

	_, err := r.client.Collection(r.usersCollection()).Doc(userDocID).Set(ctx, &saved)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to save user profile")
	}

	return &saved, nil
}
