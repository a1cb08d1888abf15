package mongodb

import (
	"context"
	"fmt"
	"time"

	"fleet-service/internal/domain/vehicle"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeVehicleCollection is an in-memory VehicleCollection. Once
// EnsureIndexes has declared the unique indexes it rejects duplicate
// writes with the driver's duplicate-key error shape, mirroring the
// store-side enforcement the repository maps onto conflicts.
type fakeVehicleCollection struct {
	docs    []vehicleDoc
	indexes map[string]bool
}

func newFakeCollection() *fakeVehicleCollection {
	return &fakeVehicleCollection{indexes: make(map[string]bool)}
}

func dupKeyError(field string) error {
	return mongo.WriteException{WriteErrors: mongo.WriteErrors{{
		Code:    11000,
		Message: fmt.Sprintf("E11000 duplicate key error collection: vehicles_db.vehicles index: %s_1 dup key", field),
	}}}
}

func (f *fakeVehicleCollection) uniqueViolation(candidate *vehicleDoc) error {
	for i := range f.docs {
		other := &f.docs[i]
		if other.ID == candidate.ID {
			continue
		}
		if f.indexes["plate_1"] && other.Plate == candidate.Plate {
			return dupKeyError("plate")
		}
		if f.indexes["fleet_number_1"] && other.FleetNumber == candidate.FleetNumber {
			return dupKeyError("fleet_number")
		}
		if f.indexes["vin_1"] && other.VIN == candidate.VIN {
			return dupKeyError("vin")
		}
	}
	return nil
}

func (f *fakeVehicleCollection) InsertOne(_ context.Context, document interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	doc := *document.(*vehicleDoc)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if err := f.uniqueViolation(&doc); err != nil {
		return nil, err
	}
	f.docs = append(f.docs, doc)
	return &mongo.InsertOneResult{InsertedID: doc.ID}, nil
}

func (f *fakeVehicleCollection) Find(_ context.Context, filter interface{}, opts ...*options.FindOptions) (VehicleCursor, error) {
	var matched []vehicleDoc
	for i := range f.docs {
		if matchesFilter(&f.docs[i], filter.(bson.M)) {
			matched = append(matched, f.docs[i])
		}
	}

	var skip, limit int64 = 0, -1
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.Skip != nil {
			skip = *opt.Skip
		}
		if opt.Limit != nil {
			limit = *opt.Limit
		}
	}
	if skip > int64(len(matched)) {
		skip = int64(len(matched))
	}
	matched = matched[skip:]
	if limit >= 0 && int64(len(matched)) > limit {
		matched = matched[:limit]
	}

	return &fakeCursor{results: matched}, nil
}

func (f *fakeVehicleCollection) FindOne(_ context.Context, filter interface{}, _ ...*options.FindOneOptions) VehicleSingleResult {
	for i := range f.docs {
		if matchesFilter(&f.docs[i], filter.(bson.M)) {
			return &fakeSingleResult{doc: f.docs[i]}
		}
	}
	return &fakeSingleResult{err: mongo.ErrNoDocuments}
}

func (f *fakeVehicleCollection) FindOneAndUpdate(_ context.Context, filter interface{}, update interface{}, _ ...*options.FindOneAndUpdateOptions) VehicleSingleResult {
	for i := range f.docs {
		if !matchesFilter(&f.docs[i], filter.(bson.M)) {
			continue
		}
		updated := f.docs[i]
		applySet(&updated, update.(bson.M)["$set"].(bson.M))
		if err := f.uniqueViolation(&updated); err != nil {
			return &fakeSingleResult{err: err}
		}
		f.docs[i] = updated
		return &fakeSingleResult{doc: updated}
	}
	return &fakeSingleResult{err: mongo.ErrNoDocuments}
}

func (f *fakeVehicleCollection) DeleteOne(_ context.Context, filter interface{}, _ ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	for i := range f.docs {
		if matchesFilter(&f.docs[i], filter.(bson.M)) {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{DeletedCount: 0}, nil
}

func (f *fakeVehicleCollection) CreateIndexes(_ context.Context, models []mongo.IndexModel) ([]string, error) {
	names := make([]string, 0, len(models))
	for _, model := range models {
		keys := model.Keys.(bson.D)
		name := fmt.Sprintf("%s_%v", keys[0].Key, keys[0].Value)
		f.indexes[name] = true
		names = append(names, name)
	}
	return names, nil
}

func matchesFilter(doc *vehicleDoc, filter bson.M) bool {
	if or, ok := filter["$or"]; ok {
		for _, sub := range or.(bson.A) {
			if matchesFilter(doc, sub.(bson.M)) {
				return true
			}
		}
		return false
	}
	for key, want := range filter {
		switch key {
		case "_id":
			if doc.ID != want.(primitive.ObjectID) {
				return false
			}
		case "plate":
			if doc.Plate != want.(string) {
				return false
			}
		case "fleet_number":
			if doc.FleetNumber != want.(string) {
				return false
			}
		case "vin":
			if doc.VIN != want.(string) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func applySet(d *vehicleDoc, set bson.M) {
	for key, value := range set {
		switch key {
		case "plate":
			d.Plate = value.(string)
		case "fleet_number":
			d.FleetNumber = value.(string)
		case "brand":
			d.Brand = value.(string)
		case "model":
			d.Model = value.(string)
		case "year":
			d.Year = value.(int)
		case "vehicle_type":
			d.VehicleType = value.(vehicle.VehicleType)
		case "load_capacity_kg":
			d.LoadCapacityKg = value.(float64)
		case "vin":
			d.VIN = value.(string)
		case "status":
			d.Status = value.(vehicle.VehicleStatus)
		case "last_verified_at":
			t := value.(time.Time)
			d.LastVerifiedAt = &t
		case "insurance_policy":
			d.InsurancePolicy = value.(string)
		case "insurance_valid_until":
			d.InsuranceValidUntil = value.(vehicle.Date)
		case "odometer_km":
			n := value.(int64)
			d.OdometerKm = &n
		case "fuel_type":
			ft := value.(vehicle.FuelType)
			d.FuelType = &ft
		case "fuel_efficiency_km_per_l":
			e := value.(float64)
			d.FuelEfficiencyKmPerL = &e
		case "gps_id":
			s := value.(string)
			d.GPSID = &s
		case "home_base":
			s := value.(string)
			d.HomeBase = &s
		}
	}
}

type fakeCursor struct {
	results []vehicleDoc
}

func (c *fakeCursor) All(_ context.Context, results interface{}) error {
	out := results.(*[]vehicleDoc)
	*out = append(*out, c.results...)
	return nil
}

func (c *fakeCursor) Close(_ context.Context) error { return nil }
func (c *fakeCursor) Err() error                    { return nil }

type fakeSingleResult struct {
	doc vehicleDoc
	err error
}

func (r *fakeSingleResult) Decode(v interface{}) error {
	if r.err != nil {
		return r.err
	}
	*v.(*vehicleDoc) = r.doc
	return nil
}
