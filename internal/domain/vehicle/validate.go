package vehicle

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Plate format: 2-4 alphanumerics, optional hyphen, 2-7 alphanumerics,
// optional hyphen plus 1-3 alphanumerics. Validated after uppercasing;
// overall length is bounded separately (6-10).
var plateRegexp = regexp.MustCompile(`^[A-Z0-9]{2,4}-?[A-Z0-9]{2,7}(-[A-Z0-9]{1,3})?$`)

// Violation is one field-level constraint failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report violations under the wire (json) field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("plate", func(fl validator.FieldLevel) bool {
		return plateRegexp.MatchString(fl.Field().String())
	})
	v.RegisterValidation("vehicle_type", func(fl validator.FieldLevel) bool {
		return VehicleType(fl.Field().String()).IsValid()
	})
	v.RegisterValidation("vehicle_status", func(fl validator.FieldLevel) bool {
		return VehicleStatus(fl.Field().String()).IsValid()
	})
	v.RegisterValidation("fuel_type", func(fl validator.FieldLevel) bool {
		return FuelType(fl.Field().String()).IsValid()
	})

	return v
}

// ValidateCreate normalizes the plate to uppercase and returns the full
// list of constraint violations, empty when the request is valid.
func ValidateCreate(req *CreateVehicleRequest) []Violation {
	req.Plate = strings.ToUpper(req.Plate)
	return collectViolations(validate.Struct(req))
}

// ValidateUpdate normalizes a set plate to uppercase and validates only
// the fields present in the partial update.
func ValidateUpdate(req *UpdateVehicleRequest) []Violation {
	if req.Plate != nil {
		upper := strings.ToUpper(*req.Plate)
		req.Plate = &upper
	}
	return collectViolations(validate.Struct(req))
}

func collectViolations(err error) []Violation {
	if err == nil {
		return nil
	}
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Violation{{Field: "", Message: err.Error()}}
	}
	violations := make([]Violation, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		violations = append(violations, Violation{
			Field:   fe.Field(),
			Message: violationMessage(fe),
		})
	}
	return violations
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "plate":
		return "invalid license plate format, expected uppercase alphanumerics like AB-123-CD"
	case "vehicle_type", "vehicle_status", "fuel_type":
		return fmt.Sprintf("invalid value %q", fe.Value())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	}
	return fmt.Sprintf("failed %s constraint", fe.Tag())
}
