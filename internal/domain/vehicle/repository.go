// internal/domain/vehicle/repository.go
package vehicle

import "context"

type Repository interface {
	// Create inserts a new vehicle and returns it with the store-assigned id.
	Create(ctx context.Context, v *Vehicle) (*Vehicle, error)

	// GetByID returns xerrors.ErrNotFound for malformed or absent ids.
	GetByID(ctx context.Context, id string) (*Vehicle, error)

	// GetByField performs a single-field exact-match lookup.
	GetByField(ctx context.Context, field, value string) (*Vehicle, error)

	// CheckUniqueness returns every vehicle whose plate, fleet number or
	// VIN equals the given values (logical OR, one round trip). A single
	// vehicle can match more than one predicate; callers must test each
	// field against the returned set.
	CheckUniqueness(ctx context.Context, plate, fleetNumber, vin string) ([]Vehicle, error)

	// List returns an offset/limit scan in store-native order.
	List(ctx context.Context, skip, limit int64) ([]Vehicle, error)

	// Update applies only the explicitly-set fields. An empty update
	// returns the current record unchanged.
	Update(ctx context.Context, id string, upd *UpdateVehicleRequest) (*Vehicle, error)

	// Delete reports whether a record was removed.
	Delete(ctx context.Context, id string) (bool, error)

	// EnsureIndexes idempotently declares the unique indexes on plate,
	// fleet_number and vin. Must run once at startup before serving.
	EnsureIndexes(ctx context.Context) error
}
