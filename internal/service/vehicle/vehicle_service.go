// internal/service/vehicle/vehicle_service.go
package vehicle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleet-service/internal/domain/vehicle"
	xerrors "fleet-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type VehicleService struct {
	repo   vehicle.Repository
	logger *zap.Logger
}

func NewVehicleService(repo vehicle.Repository, logger *zap.Logger) *VehicleService {
	return &VehicleService{
		repo:   repo,
		logger: logger,
	}
}

// CreateVehicle registers a new vehicle after a single combined
// uniqueness check across plate, fleet number and VIN. Conflicts are
// reported against the first matching field in fixed priority
// plate > fleet_number > vin, even when one existing record matches
// several fields. The pre-check is advisory; a concurrent duplicate
// write is rejected by the unique indexes and surfaces as the same
// conflict taxonomy.
func (s *VehicleService) CreateVehicle(ctx context.Context, req *vehicle.CreateVehicleRequest) (*vehicle.Vehicle, error) {
	conflicts, err := s.repo.CheckUniqueness(ctx, req.Plate, req.FleetNumber, req.VIN)
	if err != nil {
		return nil, fmt.Errorf("failed to check uniqueness: %w", err)
	}

	if len(conflicts) > 0 {
		for _, c := range conflicts {
			if c.Plate == req.Plate {
				return nil, xerrors.NewConflict(xerrors.FieldPlate)
			}
		}
		for _, c := range conflicts {
			if c.FleetNumber == req.FleetNumber {
				return nil, xerrors.NewConflict(xerrors.FieldFleetNumber)
			}
		}
		for _, c := range conflicts {
			if c.VIN == req.VIN {
				return nil, xerrors.NewConflict(xerrors.FieldVIN)
			}
		}
	}

	entity := newVehicle(req)
	created, err := s.repo.Create(ctx, entity)
	if err != nil {
		if _, ok := xerrors.AsConflict(err); !ok {
			s.logger.Error("failed to create vehicle", zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("vehicle created",
		zap.String("vehicle_id", created.ID),
		zap.String("plate", created.Plate),
	)
	return created, nil
}

func newVehicle(req *vehicle.CreateVehicleRequest) *vehicle.Vehicle {
	status := req.Status
	if status == "" {
		status = vehicle.StatusActive
	}
	return &vehicle.Vehicle{
		Plate:                req.Plate,
		FleetNumber:          req.FleetNumber,
		Brand:                req.Brand,
		Model:                req.Model,
		Year:                 req.Year,
		VehicleType:          req.VehicleType,
		LoadCapacityKg:       req.LoadCapacityKg,
		VIN:                  req.VIN,
		Status:               status,
		RegisteredAt:         time.Now().UTC(),
		LastVerifiedAt:       req.LastVerifiedAt,
		InsurancePolicy:      req.InsurancePolicy,
		InsuranceValidUntil:  req.InsuranceValidUntil,
		OdometerKm:           req.OdometerKm,
		FuelType:             req.FuelType,
		FuelEfficiencyKmPerL: req.FuelEfficiencyKmPerL,
		GPSID:                req.GPSID,
		HomeBase:             req.HomeBase,
	}
}

func (s *VehicleService) GetVehicle(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *VehicleService) ListVehicles(ctx context.Context, skip, limit int64) ([]vehicle.Vehicle, error) {
	return s.repo.List(ctx, skip, limit)
}

// UpdateVehicle applies a partial update. Plate and fleet number are
// re-checked for duplicates, in that order, when they change. VIN is
// not re-checked on update; create is the only path that validates all
// three keys against existing records, the unique index still backstops
// a VIN change.
func (s *VehicleService) UpdateVehicle(ctx context.Context, id string, req *vehicle.UpdateVehicleRequest) (*vehicle.Vehicle, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Plate != nil && *req.Plate != current.Plate {
		if err := s.checkFieldAvailable(ctx, xerrors.FieldPlate, *req.Plate); err != nil {
			return nil, err
		}
	}
	if req.FleetNumber != nil && *req.FleetNumber != current.FleetNumber {
		if err := s.checkFieldAvailable(ctx, xerrors.FieldFleetNumber, *req.FleetNumber); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		// The record can vanish between the fetch and the update; keep
		// that in the same not-found taxonomy as the initial check.
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.ErrNotFound
		}
		if _, ok := xerrors.AsConflict(err); !ok {
			s.logger.Error("failed to update vehicle", zap.String("vehicle_id", id), zap.Error(err))
		}
		return nil, err
	}

	s.logger.Info("vehicle updated", zap.String("vehicle_id", updated.ID))
	return updated, nil
}

func (s *VehicleService) checkFieldAvailable(ctx context.Context, field, value string) error {
	existing, err := s.repo.GetByField(ctx, field, value)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check %s availability: %w", field, err)
	}
	if existing != nil {
		return xerrors.NewConflict(field)
	}
	return nil
}

// DeleteVehicle fetches first so "vehicle not found" is reported in the
// same taxonomy as every other operation, then removes the record.
func (s *VehicleService) DeleteVehicle(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete vehicle", zap.String("vehicle_id", id), zap.Error(err))
		return err
	}
	if !removed {
		return xerrors.ErrNotFound
	}

	s.logger.Info("vehicle deleted", zap.String("vehicle_id", id))
	return nil
}
