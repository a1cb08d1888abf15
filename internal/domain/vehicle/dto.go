package vehicle

import "time"

// CreateVehicleRequest carries the fields for registering a new vehicle.
type CreateVehicleRequest struct {
	Plate                string        `json:"plate" validate:"required,min=6,max=10,plate"`
	FleetNumber          string        `json:"fleet_number" validate:"required"`
	Brand                string        `json:"brand" validate:"required"`
	Model                string        `json:"model" validate:"required"`
	Year                 int           `json:"year" validate:"required,gte=1990"`
	VehicleType          VehicleType   `json:"vehicle_type" validate:"required,vehicle_type"`
	LoadCapacityKg       float64       `json:"load_capacity_kg" validate:"required,gt=0"`
	VIN                  string        `json:"vin" validate:"required,len=17"`
	Status               VehicleStatus `json:"status" validate:"omitempty,vehicle_status"`
	LastVerifiedAt       *time.Time    `json:"last_verified_at"`
	InsurancePolicy      string        `json:"insurance_policy" validate:"required"`
	InsuranceValidUntil  Date          `json:"insurance_valid_until" validate:"required"`
	OdometerKm           *int64        `json:"odometer_km"`
	FuelType             *FuelType     `json:"fuel_type" validate:"omitempty,fuel_type"`
	FuelEfficiencyKmPerL *float64      `json:"fuel_efficiency_km_per_l"`
	GPSID                *string       `json:"gps_id"`
	HomeBase             *string       `json:"home_base"`
}

// UpdateVehicleRequest carries a partial update. Nil fields are left
// untouched; RegisteredAt and the id are immutable and have no slot here.
type UpdateVehicleRequest struct {
	Plate                *string        `json:"plate" validate:"omitempty,min=6,max=10,plate"`
	FleetNumber          *string        `json:"fleet_number" validate:"omitempty,min=1"`
	Brand                *string        `json:"brand"`
	Model                *string        `json:"model"`
	Year                 *int           `json:"year" validate:"omitempty,gte=1990"`
	VehicleType          *VehicleType   `json:"vehicle_type" validate:"omitempty,vehicle_type"`
	LoadCapacityKg       *float64       `json:"load_capacity_kg" validate:"omitempty,gt=0"`
	VIN                  *string        `json:"vin" validate:"omitempty,len=17"`
	Status               *VehicleStatus `json:"status" validate:"omitempty,vehicle_status"`
	LastVerifiedAt       *time.Time     `json:"last_verified_at"`
	InsurancePolicy      *string        `json:"insurance_policy"`
	InsuranceValidUntil  *Date          `json:"insurance_valid_until"`
	OdometerKm           *int64         `json:"odometer_km"`
	FuelType             *FuelType      `json:"fuel_type" validate:"omitempty,fuel_type"`
	FuelEfficiencyKmPerL *float64       `json:"fuel_efficiency_km_per_l"`
	GPSID                *string        `json:"gps_id"`
	HomeBase             *string        `json:"home_base"`
}

// IsEmpty reports whether the update sets no fields at all.
func (r *UpdateVehicleRequest) IsEmpty() bool {
	return r.Plate == nil && r.FleetNumber == nil && r.Brand == nil &&
		r.Model == nil && r.Year == nil && r.VehicleType == nil &&
		r.LoadCapacityKg == nil && r.VIN == nil && r.Status == nil &&
		r.LastVerifiedAt == nil && r.InsurancePolicy == nil &&
		r.InsuranceValidUntil == nil && r.OdometerKm == nil &&
		r.FuelType == nil && r.FuelEfficiencyKmPerL == nil &&
		r.GPSID == nil && r.HomeBase == nil
}
