package documentstore

import (
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/exceptions"
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const mongoIDField = "_id"

type mongoStore struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewMongoStore(db *mongo.Database, logger *zap.Logger) contracts.DocumentStore {
	return &mongoStore{
		DB:  db,
		Log: logger,
	}
}

func (s *mongoStore) CreateRecord(ctx context.Context, collection string, document interface{}) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	raw, err := bson.Marshal(document)
	if err != nil {
		return "", exceptions.NewStoreUnknown(collection, err)
	}
	var fields bson.D
	err = bson.Unmarshal(raw, &fields)
	if err != nil {
		return "", exceptions.NewStoreUnknown(collection, err)
	}

	id := uuid.NewString()
	record := bson.D{{Key: mongoIDField, Value: id}}
	for _, field := range fields {
		if field.Key != mongoIDField {
			record = append(record, field)
		}
	}

	_, err = s.DB.Collection(collection).InsertOne(ctx, record)
	if err != nil {
		s.Log.Error("mongoStore.CreateRecord error inserting document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCollectionKey, collection),
			zap.Error(err),
		)
		return "", classifyMongoError(collection, err)
	}
	return id, nil
}

func (s *mongoStore) GetRecord(ctx context.Context, collection, id string, out interface{}) error {
	err := s.DB.Collection(collection).FindOne(ctx, bson.M{mongoIDField: id}).Decode(out)
	return classifyMongoError(collection, err)
}

func (s *mongoStore) QueryRecords(ctx context.Context, collection string, query contracts.Query, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	filter := bson.D{}
	for _, condition := range query.Filters {
		if values, ok := condition.Value.([]string); ok {
			filter = append(filter, bson.E{Key: condition.Field, Value: bson.M{"$in": values}})
			continue
		}
		filter = append(filter, bson.E{Key: condition.Field, Value: condition.Value})
	}

	findOptions := options.Find()
	if query.SortBy != "" {
		direction := 1
		if query.Descending {
			direction = -1
		}
		findOptions.SetSort(bson.D{{Key: query.SortBy, Value: direction}})
	}
	if query.Limit > 0 {
		findOptions.SetLimit(query.Limit)
	}

	cursor, err := s.DB.Collection(collection).Find(ctx, filter, findOptions)
	if err != nil {
		s.Log.Error("mongoStore.QueryRecords error finding documents",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCollectionKey, collection),
			zap.Error(err),
		)
		return classifyMongoError(collection, err)
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, out)
	if err != nil {
		return classifyMongoError(collection, err)
	}
	return nil
}

func (s *mongoStore) UpdateRecord(ctx context.Context, collection, id string, fields map[string]interface{}, out interface{}) error {
	if _, ok := fields[mongoIDField]; ok {
		return exceptions.NewStoreUnknown(collection, fmt.Errorf("%s cannot be updated", mongoIDField))
	}

	updateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)
	result := s.DB.Collection(collection).FindOneAndUpdate(ctx, bson.M{mongoIDField: id}, bson.M{"$set": fields}, updateOptions)
	if out == nil {
		return classifyMongoError(collection, result.Err())
	}
	return classifyMongoError(collection, result.Decode(out))
}

func (s *mongoStore) DeleteRecord(ctx context.Context, collection, id string) error {
	result, err := s.DB.Collection(collection).DeleteOne(ctx, bson.M{mongoIDField: id})
	if err != nil {
		return classifyMongoError(collection, err)
	}
	if result.DeletedCount == 0 {
		return exceptions.NewStoreNotFound(collection, fmt.Errorf("record %s", id))
	}
	return nil
}
