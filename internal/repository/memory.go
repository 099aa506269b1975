package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/habeshadev/habesha-dating-api/internal/model"
)

// In-memory implementations of the repository interfaces. They reproduce the
// store-level guarantees the handlers rely on (unique email, atomic upsert
// per owner) and back the test suite, where no Mongo instance is available.

type userMemoryRepository struct {
	mu    sync.Mutex
	users []*model.User
}

// NewUserMemoryRepository creates an empty in-memory users store.
func NewUserMemoryRepository() UserRepository {
	return &userMemoryRepository{}
}

func (r *userMemoryRepository) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, ErrDuplicateKey
		}
	}

	user.ID = bson.NewObjectID()
	user.CreatedAt = time.Now()

	stored := *user
	r.users = append(r.users, &stored)

	return user, nil
}

func (r *userMemoryRepository) GetUser(_ context.Context, id string) (*model.User, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.ID == objectID {
			user := *existing
			return &user, nil
		}
	}

	return nil, ErrNotFound
}

func (r *userMemoryRepository) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == email {
			user := *existing
			return &user, nil
		}
	}

	return nil, ErrNotFound
}

type profileMemoryRepository struct {
	mu       sync.Mutex
	profiles map[bson.ObjectID]*model.Profile
}

// NewProfileMemoryRepository creates an empty in-memory profiles store.
func NewProfileMemoryRepository() ProfileRepository {
	return &profileMemoryRepository{profiles: make(map[bson.ObjectID]*model.Profile)}
}

func (r *profileMemoryRepository) UpsertProfileByOwner(
	_ context.Context,
	owner bson.ObjectID,
	params UpsertProfileParams,
) (*model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile, ok := r.profiles[owner]
	if !ok {
		profile = &model.Profile{
			ID:        bson.NewObjectID(),
			Owner:     owner,
			CreatedAt: time.Now(),
		}
		r.profiles[owner] = profile
	}

	if params.FirstName != nil {
		profile.FirstName = *params.FirstName
	}
	if params.Age != nil {
		profile.Age = *params.Age
	}
	if params.Gender != nil {
		profile.Gender = *params.Gender
	}
	if params.Languages != nil {
		profile.Languages = *params.Languages
	}
	if params.Culture != nil {
		profile.Culture = *params.Culture
	}
	if params.Interests != nil {
		profile.Interests = *params.Interests
	}

	result := *profile

	return &result, nil
}

func (r *profileMemoryRepository) GetProfileByOwner(_ context.Context, owner bson.ObjectID) (*model.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile, ok := r.profiles[owner]
	if !ok {
		return nil, ErrNotFound
	}

	result := *profile

	return &result, nil
}
