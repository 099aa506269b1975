package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/habeshadev/habesha-dating-api/internal/model"
	"github.com/habeshadev/habesha-dating-api/internal/repository"
)

// ProfileUsecase defines the interface for profile-related use cases.
type ProfileUsecase interface {
	UpsertProfile(ctx context.Context, ownerID string, params repository.UpsertProfileParams) (*model.Profile, error)
	GetProfile(ctx context.Context, ownerID string) (*model.Profile, error)
}

var ErrProfileNotFound = errors.New("profile not found")

type profileUsecase struct {
	profileRepo repository.ProfileRepository
}

func NewProfileUsecase(profileRepo repository.ProfileRepository) ProfileUsecase {
	return &profileUsecase{profileRepo: profileRepo}
}

// UpsertProfile writes the supplied fields to the caller's profile, creating
// it on first call. The owner always comes from the authenticated identity,
// never from the request payload.
func (u *profileUsecase) UpsertProfile(
	ctx context.Context,
	ownerID string,
	params repository.UpsertProfileParams,
) (*model.Profile, error) {
	owner, err := bson.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, err
	}

	return u.profileRepo.UpsertProfileByOwner(ctx, owner, params)
}

func (u *profileUsecase) GetProfile(ctx context.Context, ownerID string) (*model.Profile, error) {
	owner, err := bson.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.GetProfileByOwner(ctx, owner)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}

		return nil, err
	}

	return profile, nil
}
