package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/habeshadev/habesha-dating-api/internal/model"
	"github.com/habeshadev/habesha-dating-api/internal/repository"
)

func TestUserMemoryRepository_DuplicateEmail(t *testing.T) {
	repo := repository.NewUserMemoryRepository()

	_, err := repo.CreateUser(context.Background(), &model.User{Email: "a@x.com", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = repo.CreateUser(context.Background(), &model.User{Email: "a@x.com", PasswordHash: "h2"})
	require.ErrorIs(t, err, repository.ErrDuplicateKey)
}

func TestUserMemoryRepository_Lookup(t *testing.T) {
	repo := repository.NewUserMemoryRepository()

	created, err := repo.CreateUser(context.Background(), &model.User{Email: "a@x.com", PasswordHash: "h1"})
	require.NoError(t, err)

	byEmail, err := repo.GetUserByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := repo.GetUser(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)

	_, err = repo.GetUserByEmail(context.Background(), "nobody@x.com")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfileMemoryRepository_ConcurrentUpsertsSingleRecord(t *testing.T) {
	repo := repository.NewProfileMemoryRepository()
	owner := bson.NewObjectID()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(age int) {
			defer wg.Done()

			_, err := repo.UpsertProfileByOwner(context.Background(), owner, repository.UpsertProfileParams{
				Age: &age,
			})
			assert.NoError(t, err)
		}(18 + i)
	}
	wg.Wait()

	profile, err := repo.GetProfileByOwner(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, owner, profile.Owner)
	assert.GreaterOrEqual(t, profile.Age, 18)
}
