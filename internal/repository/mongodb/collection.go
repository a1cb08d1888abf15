package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VehicleCursor interface for mocking
type VehicleCursor interface {
	All(ctx context.Context, results interface{}) error
	Close(ctx context.Context) error
	Err() error
}

// VehicleSingleResult interface for mocking
type VehicleSingleResult interface {
	Decode(v interface{}) error
}

// VehicleCollection interface for mocking
type VehicleCollection interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (VehicleCursor, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) VehicleSingleResult
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) VehicleSingleResult
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
	CreateIndexes(ctx context.Context, models []mongo.IndexModel) ([]string, error)
}

// mongoVehicleCursor adapts *mongo.Cursor to VehicleCursor
type mongoVehicleCursor struct {
	*mongo.Cursor
}

func (m *mongoVehicleCursor) All(ctx context.Context, results interface{}) error {
	return m.Cursor.All(ctx, results)
}

func (m *mongoVehicleCursor) Close(ctx context.Context) error {
	return m.Cursor.Close(ctx)
}

func (m *mongoVehicleCursor) Err() error {
	return m.Cursor.Err()
}

// mongoVehicleSingleResult adapts *mongo.SingleResult to VehicleSingleResult
type mongoVehicleSingleResult struct {
	*mongo.SingleResult
}

func (m *mongoVehicleSingleResult) Decode(v interface{}) error {
	return m.SingleResult.Decode(v)
}

// mongoVehicleCollection adapts *mongo.Collection to VehicleCollection
type mongoVehicleCollection struct {
	*mongo.Collection
}

func (m *mongoVehicleCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (VehicleCursor, error) {
	cursor, err := m.Collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return &mongoVehicleCursor{Cursor: cursor}, nil
}

func (m *mongoVehicleCollection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) VehicleSingleResult {
	return &mongoVehicleSingleResult{SingleResult: m.Collection.FindOne(ctx, filter, opts...)}
}

func (m *mongoVehicleCollection) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) VehicleSingleResult {
	return &mongoVehicleSingleResult{SingleResult: m.Collection.FindOneAndUpdate(ctx, filter, update, opts...)}
}

func (m *mongoVehicleCollection) CreateIndexes(ctx context.Context, models []mongo.IndexModel) ([]string, error) {
	return m.Collection.Indexes().CreateMany(ctx, models)
}
