package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fleet-service/internal/domain/vehicle"
	xerrors "fleet-service/internal/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// vehicleDoc is the stored shape of a vehicle. The domain entity uses a
// hex string id; the document uses the native ObjectID.
type vehicleDoc struct {
	ID                   primitive.ObjectID    `bson:"_id,omitempty"`
	Plate                string                `bson:"plate"`
	FleetNumber          string                `bson:"fleet_number"`
	Brand                string                `bson:"brand"`
	Model                string                `bson:"model"`
	Year                 int                   `bson:"year"`
	VehicleType          vehicle.VehicleType   `bson:"vehicle_type"`
	LoadCapacityKg       float64               `bson:"load_capacity_kg"`
	VIN                  string                `bson:"vin"`
	Status               vehicle.VehicleStatus `bson:"status"`
	RegisteredAt         time.Time             `bson:"registered_at"`
	LastVerifiedAt       *time.Time            `bson:"last_verified_at,omitempty"`
	InsurancePolicy      string                `bson:"insurance_policy"`
	InsuranceValidUntil  vehicle.Date          `bson:"insurance_valid_until"`
	OdometerKm           *int64                `bson:"odometer_km,omitempty"`
	FuelType             *vehicle.FuelType     `bson:"fuel_type,omitempty"`
	FuelEfficiencyKmPerL *float64              `bson:"fuel_efficiency_km_per_l,omitempty"`
	GPSID                *string               `bson:"gps_id,omitempty"`
	HomeBase             *string               `bson:"home_base,omitempty"`
}

func toDoc(v *vehicle.Vehicle) *vehicleDoc {
	return &vehicleDoc{
		Plate:                v.Plate,
		FleetNumber:          v.FleetNumber,
		Brand:                v.Brand,
		Model:                v.Model,
		Year:                 v.Year,
		VehicleType:          v.VehicleType,
		LoadCapacityKg:       v.LoadCapacityKg,
		VIN:                  v.VIN,
		Status:               v.Status,
		RegisteredAt:         v.RegisteredAt,
		LastVerifiedAt:       v.LastVerifiedAt,
		InsurancePolicy:      v.InsurancePolicy,
		InsuranceValidUntil:  v.InsuranceValidUntil,
		OdometerKm:           v.OdometerKm,
		FuelType:             v.FuelType,
		FuelEfficiencyKmPerL: v.FuelEfficiencyKmPerL,
		GPSID:                v.GPSID,
		HomeBase:             v.HomeBase,
	}
}

func (d *vehicleDoc) toEntity() *vehicle.Vehicle {
	return &vehicle.Vehicle{
		ID:                   d.ID.Hex(),
		Plate:                d.Plate,
		FleetNumber:          d.FleetNumber,
		Brand:                d.Brand,
		Model:                d.Model,
		Year:                 d.Year,
		VehicleType:          d.VehicleType,
		LoadCapacityKg:       d.LoadCapacityKg,
		VIN:                  d.VIN,
		Status:               d.Status,
		RegisteredAt:         d.RegisteredAt,
		LastVerifiedAt:       d.LastVerifiedAt,
		InsurancePolicy:      d.InsurancePolicy,
		InsuranceValidUntil:  d.InsuranceValidUntil,
		OdometerKm:           d.OdometerKm,
		FuelType:             d.FuelType,
		FuelEfficiencyKmPerL: d.FuelEfficiencyKmPerL,
		GPSID:                d.GPSID,
		HomeBase:             d.HomeBase,
	}
}

// VehicleRepository persists vehicles in the "vehicles" collection.
type VehicleRepository struct {
	coll VehicleCollection
}

func NewVehicleRepository(db *mongo.Database) *VehicleRepository {
	return &VehicleRepository{
		coll: &mongoVehicleCollection{Collection: db.Collection("vehicles")},
	}
}

// NewVehicleRepositoryWithCollection wires an explicit collection, used
// by tests to substitute a fake.
func NewVehicleRepositoryWithCollection(coll VehicleCollection) *VehicleRepository {
	return &VehicleRepository{coll: coll}
}

func (r *VehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) (*vehicle.Vehicle, error) {
	result, err := r.coll.InsertOne(ctx, toDoc(v))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, duplicateKeyConflict(err)
		}
		return nil, fmt.Errorf("failed to insert vehicle: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	created := *v
	created.ID = oid.Hex()
	return &created, nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, xerrors.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *VehicleRepository) GetByField(ctx context.Context, field, value string) (*vehicle.Vehicle, error) {
	return r.findOne(ctx, bson.M{field: value})
}

func (r *VehicleRepository) findOne(ctx context.Context, filter bson.M) (*vehicle.Vehicle, error) {
	var doc vehicleDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, xerrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vehicle: %w", err)
	}
	return doc.toEntity(), nil
}

func (r *VehicleRepository) CheckUniqueness(ctx context.Context, plate, fleetNumber, vin string) ([]vehicle.Vehicle, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{xerrors.FieldPlate: plate},
		bson.M{xerrors.FieldFleetNumber: fleetNumber},
		bson.M{xerrors.FieldVIN: vin},
	}}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query conflicting vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []vehicleDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode conflicting vehicles: %w", err)
	}

	vehicles := make([]vehicle.Vehicle, 0, len(docs))
	for i := range docs {
		vehicles = append(vehicles, *docs[i].toEntity())
	}
	return vehicles, nil
}

func (r *VehicleRepository) List(ctx context.Context, skip, limit int64) ([]vehicle.Vehicle, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []vehicleDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode vehicles: %w", err)
	}

	vehicles := make([]vehicle.Vehicle, 0, len(docs))
	for i := range docs {
		vehicles = append(vehicles, *docs[i].toEntity())
	}
	return vehicles, nil
}

func (r *VehicleRepository) Update(ctx context.Context, id string, upd *vehicle.UpdateVehicleRequest) (*vehicle.Vehicle, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, xerrors.ErrNotFound
	}

	set := updateDocument(upd)
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc vehicleDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, xerrors.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, duplicateKeyConflict(err)
		}
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}
	return doc.toEntity(), nil
}

// updateDocument builds the $set document from the explicitly-set fields.
func updateDocument(upd *vehicle.UpdateVehicleRequest) bson.M {
	set := bson.M{}
	if upd.Plate != nil {
		set["plate"] = *upd.Plate
	}
	if upd.FleetNumber != nil {
		set["fleet_number"] = *upd.FleetNumber
	}
	if upd.Brand != nil {
		set["brand"] = *upd.Brand
	}
	if upd.Model != nil {
		set["model"] = *upd.Model
	}
	if upd.Year != nil {
		set["year"] = *upd.Year
	}
	if upd.VehicleType != nil {
		set["vehicle_type"] = *upd.VehicleType
	}
	if upd.LoadCapacityKg != nil {
		set["load_capacity_kg"] = *upd.LoadCapacityKg
	}
	if upd.VIN != nil {
		set["vin"] = *upd.VIN
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.LastVerifiedAt != nil {
		set["last_verified_at"] = *upd.LastVerifiedAt
	}
	if upd.InsurancePolicy != nil {
		set["insurance_policy"] = *upd.InsurancePolicy
	}
	if upd.InsuranceValidUntil != nil {
		set["insurance_valid_until"] = *upd.InsuranceValidUntil
	}
	if upd.OdometerKm != nil {
		set["odometer_km"] = *upd.OdometerKm
	}
	if upd.FuelType != nil {
		set["fuel_type"] = *upd.FuelType
	}
	if upd.FuelEfficiencyKmPerL != nil {
		set["fuel_efficiency_km_per_l"] = *upd.FuelEfficiencyKmPerL
	}
	if upd.GPSID != nil {
		set["gps_id"] = *upd.GPSID
	}
	if upd.HomeBase != nil {
		set["home_base"] = *upd.HomeBase
	}
	return set
}

func (r *VehicleRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return result.DeletedCount > 0, nil
}

// EnsureIndexes declares the unique single-field indexes backing the
// uniqueness invariants. The store enforces them even when the
// service-layer pre-check races.
func (r *VehicleRepository) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: xerrors.FieldPlate, Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: xerrors.FieldFleetNumber, Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: xerrors.FieldVIN, Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.CreateIndexes(ctx, models); err != nil {
		return fmt.Errorf("failed to create vehicle indexes: %w", err)
	}
	return nil
}

// duplicateKeyConflict attributes a store-level duplicate-key rejection
// to the violated field, falling back to the plate > fleet_number > vin
// priority when the index cannot be identified from the error text.
func duplicateKeyConflict(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, xerrors.FieldFleetNumber):
		return xerrors.NewConflict(xerrors.FieldFleetNumber)
	case strings.Contains(msg, xerrors.FieldVIN):
		return xerrors.NewConflict(xerrors.FieldVIN)
	default:
		return xerrors.NewConflict(xerrors.FieldPlate)
	}
}
