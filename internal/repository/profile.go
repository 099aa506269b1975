package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/habeshadev/habesha-dating-api/internal/model"
)

// ProfileRepository defines the interface for profile-related database operations.
type ProfileRepository interface {
	UpsertProfileByOwner(ctx context.Context, owner bson.ObjectID, params UpsertProfileParams) (*model.Profile, error)
	GetProfileByOwner(ctx context.Context, owner bson.ObjectID) (*model.Profile, error)
}

// UpsertProfileParams defines the optional parameters for a profile upsert.
// Only the fields that are not nil will be written; fields left nil keep
// whatever value the stored document already has.
type UpsertProfileParams struct {
	FirstName *string
	Age       *int
	Gender    *string
	Languages *string
	Culture   *string
	Interests *string
}

const profileCollection = "profiles"

type profileMongoRepository struct {
	db *mongo.Database
}

// NewProfileMongoRepository creates the profiles repository and ensures the
// unique owner index exists, guaranteeing at most one profile per user.
func NewProfileMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) ProfileRepository {
	collection := db.Collection(profileCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "owner", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create profile indexes")
	}

	return &profileMongoRepository{db: db}
}

// UpsertProfileByOwner performs a single atomic find-and-modify keyed on the
// owner. Concurrent calls for the same owner can never produce two documents
// because the match, insert and update happen server-side in one operation.
func (r *profileMongoRepository) UpsertProfileByOwner(
	ctx context.Context,
	owner bson.ObjectID,
	params UpsertProfileParams,
) (*model.Profile, error) {
	updateMap := bson.M{"owner": owner}
	if params.FirstName != nil {
		updateMap["first_name"] = *params.FirstName
	}
	if params.Age != nil {
		updateMap["age"] = *params.Age
	}
	if params.Gender != nil {
		updateMap["gender"] = *params.Gender
	}
	if params.Languages != nil {
		updateMap["languages"] = *params.Languages
	}
	if params.Culture != nil {
		updateMap["culture"] = *params.Culture
	}
	if params.Interests != nil {
		updateMap["interests"] = *params.Interests
	}

	result := r.db.Collection(profileCollection).FindOneAndUpdate(
		ctx,
		bson.M{"owner": owner},
		bson.M{
			"$set":         updateMap,
			"$setOnInsert": bson.M{"created_at": time.Now()},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var profile model.Profile
	if err := result.Decode(&profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileMongoRepository) GetProfileByOwner(ctx context.Context, owner bson.ObjectID) (*model.Profile, error) {
	result := r.db.Collection(profileCollection).FindOne(ctx, bson.M{"owner": owner})
	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}

		return nil, result.Err()
	}

	var profile model.Profile
	if err := result.Decode(&profile); err != nil {
		return nil, err
	}

	return &profile, nil
}
