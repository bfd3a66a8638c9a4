package preference

import (
	"context"
	"meeting-scheduler-service/internal/app/contracts"
	"meeting-scheduler-service/internal/app/models"
	"meeting-scheduler-service/internal/pkg/constvars"
	"meeting-scheduler-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PreferenceMongoRepository struct {
	Collection *mongo.Collection
}

func NewPreferenceMongoRepository(db *mongo.Client, dbName string) contracts.PreferenceRepository {
	return newPreferenceMongoRepository(db.Database(dbName))
}

func newPreferenceMongoRepository(db *mongo.Database) *PreferenceMongoRepository {
	return &PreferenceMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionUserPreferences),
	}
}

// FindByUserID returns nil without error when the user has no stored preference.
func (r *PreferenceMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.UserPreference, error) {
	var preference models.UserPreference
	err := r.Collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&preference)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &preference, nil
}
