package vehicle

// internal/domain/vehicle/entity.go
import "time"

type VehicleType string
type VehicleStatus string
type FuelType string

const (
	TypeTractorTruck VehicleType = "TRACTOR_TRUCK"
	TypeRigidTruck   VehicleType = "RIGID_TRUCK"
	TypeTrailer      VehicleType = "TRAILER"
	TypeDolly        VehicleType = "DOLLY"

	StatusActive        VehicleStatus = "ACTIVE"
	StatusInMaintenance VehicleStatus = "IN_MAINTENANCE"
	StatusOutOfService  VehicleStatus = "OUT_OF_SERVICE"

	FuelDiesel     FuelType = "DIESEL"
	FuelNaturalGas FuelType = "NATURAL_GAS"
	FuelElectric   FuelType = "ELECTRIC"
)

func (t VehicleType) IsValid() bool {
	switch t {
	case TypeTractorTruck, TypeRigidTruck, TypeTrailer, TypeDolly:
		return true
	}
	return false
}

func (s VehicleStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusInMaintenance, StatusOutOfService:
		return true
	}
	return false
}

func (f FuelType) IsValid() bool {
	switch f {
	case FuelDiesel, FuelNaturalGas, FuelElectric:
		return true
	}
	return false
}

// Vehicle represents a fleet vehicle. Plate, FleetNumber and VIN are
// globally unique; Plate is always stored and compared in uppercase.
type Vehicle struct {
	ID                   string        `json:"id"`
	Plate                string        `json:"plate"`
	FleetNumber          string        `json:"fleet_number"`
	Brand                string        `json:"brand"`
	Model                string        `json:"model"`
	Year                 int           `json:"year"`
	VehicleType          VehicleType   `json:"vehicle_type"`
	LoadCapacityKg       float64       `json:"load_capacity_kg"`
	VIN                  string        `json:"vin"`
	Status               VehicleStatus `json:"status"`
	RegisteredAt         time.Time     `json:"registered_at"`
	LastVerifiedAt       *time.Time    `json:"last_verified_at,omitempty"`
	InsurancePolicy      string        `json:"insurance_policy"`
	InsuranceValidUntil  Date          `json:"insurance_valid_until"`
	OdometerKm           *int64        `json:"odometer_km,omitempty"`
	FuelType             *FuelType     `json:"fuel_type,omitempty"`
	FuelEfficiencyKmPerL *float64      `json:"fuel_efficiency_km_per_l,omitempty"`
	GPSID                *string       `json:"gps_id,omitempty"`
	HomeBase             *string       `json:"home_base,omitempty"`
}
