package documentstore

import (
	"carepulse-service/internal/pkg/constvars"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IndexSpec names an index and the collection it belongs to.
type IndexSpec struct {
	Collection string
	Model      mongo.IndexModel
}

// Indexes lists what the services rely on. The unique email index is what
// turns a concurrent duplicate user insert into a conflict.
func Indexes() []IndexSpec {
	return []IndexSpec{
		{
			Collection: constvars.MongoCollectionUsers,
			Model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("users_email_unique").SetUnique(true),
			},
		},
		{
			Collection: constvars.MongoCollectionPatients,
			Model: mongo.IndexModel{
				Keys:    bson.D{{Key: "userId", Value: 1}},
				Options: options.Index().SetName("patients_user_id"),
			},
		},
		{
			Collection: constvars.MongoCollectionAppointments,
			Model: mongo.IndexModel{
				Keys:    bson.D{{Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("appointments_created_at_desc"),
			},
		},
	}
}

// EnsureIndexes creates every index in specs. Existing indexes with the same
// definition are left alone by the server.
func EnsureIndexes(ctx context.Context, db *mongo.Database, specs []IndexSpec) ([]string, error) {
	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		name, err := db.Collection(spec.Collection).Indexes().CreateOne(ctx, spec.Model)
		if err != nil {
			return names, classifyMongoError(spec.Collection, err)
		}
		names = append(names, spec.Collection+"."+name)
	}
	return names, nil
}
