package user

import (
	"errors"
	"fmt"
	"strings"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/pkg/errs"
	"oja/internal/pkg/guard"
)

// VehicleType is what a courier delivers with.
type VehicleType string

const (
	VehicleMotorcycle VehicleType = "Motorcycle"
	VehicleCar        VehicleType = "Car"
	VehicleVan        VehicleType = "Van"
)

// Validate rejects vehicle types outside the enum.
func (v VehicleType) Validate() error {
	switch v {
	case VehicleMotorcycle, VehicleCar, VehicleVan:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("vehicle type", fmt.Errorf("%q is not supported", string(v)))
}

// ErrCourierProfileIsNotConstructed is returned for a zero CourierProfile.
var ErrCourierProfileIsNotConstructed = errors.New("CourierProfile must be created via NewCourierProfile")

// CourierProfile holds the attributes only a delivery person has.
type CourierProfile struct {
	vehicle      VehicleType
	licensePlate string
	nin          string
	address      string
	verified     bool
	rating       kernel.Rating
	guard        guard.ConstructorGuard
}

// NewCourierProfile registers a new, not yet verified, courier.
func NewCourierProfile(vehicle VehicleType, licensePlate, nin, address string) (CourierProfile, error) {
	return RestoreCourierProfile(vehicle, licensePlate, nin, address, false, kernel.Rating{})
}

// RestoreCourierProfile rebuilds a profile from storage.
func RestoreCourierProfile(
	vehicle VehicleType,
	licensePlate, nin, address string,
	verified bool,
	rating kernel.Rating,
) (CourierProfile, error) {
	var errList []error
	if err := vehicle.Validate(); err != nil {
		errList = append(errList, err)
	}
	if strings.TrimSpace(licensePlate) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("license plate"))
	}
	if strings.TrimSpace(nin) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("nin"))
	}
	if err := errors.Join(errList...); err != nil {
		return CourierProfile{}, err
	}

	return CourierProfile{
		vehicle:      vehicle,
		licensePlate: licensePlate,
		nin:          nin,
		address:      address,
		verified:     verified,
		rating:       rating,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate fails for the zero value.
func (p CourierProfile) Validate() error {
	return p.guard.Validate(ErrCourierProfileIsNotConstructed)
}

func (p CourierProfile) Vehicle() VehicleType { return p.vehicle }

func (p CourierProfile) LicensePlate() string { return p.licensePlate }

func (p CourierProfile) NIN() string { return p.nin }

func (p CourierProfile) Address() string { return p.address }

func (p CourierProfile) IsVerified() bool { return p.verified }

func (p CourierProfile) Rating() kernel.Rating { return p.rating }
