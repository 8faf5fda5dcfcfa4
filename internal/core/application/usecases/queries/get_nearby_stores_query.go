package queries

import (
	"errors"
	"math"

	"oja/internal/core/domain/model/kernel"
	"oja/internal/pkg/errs"
	"oja/internal/pkg/guard"
)

// MaxNearbyRadiusKm caps the search radius.
const MaxNearbyRadiusKm = 500.0

var (
	ErrGetNearbyStoresQueryIsNotConstructed = errors.New(
		"GetNearbyStoresQuery must be created via NewGetNearbyStoresQuery constructor",
	)
)

// GetNearbyStoresQuery finds stores within RadiusKm of a point, by great-circle distance.
//
// Example:
//
//	query, err := NewGetNearbyStoresQuery(kernel.MustGeoPoint(6.5244, 3.3792), 5)
//	stores, err := handler.Handle(ctx, query)
//	for _, s := range stores {
//	    fmt.Printf("%s is %.1f km away\n", s.Name, s.DistanceKm)
//	}
type GetNearbyStoresQuery struct {
	origin   kernel.GeoPoint
	radiusKm float64
	guard    guard.ConstructorGuard
}

func NewGetNearbyStoresQuery(origin kernel.GeoPoint, radiusKm float64) (GetNearbyStoresQuery, error) {
	var errList []error
	if err := origin.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("origin", err))
	}
	if math.IsNaN(radiusKm) || radiusKm <= 0 || radiusKm > MaxNearbyRadiusKm {
		errList = append(errList, errs.NewValueIsOutOfRangeError("radius km", radiusKm, 0, MaxNearbyRadiusKm))
	}
	if err := errors.Join(errList...); err != nil {
		return GetNearbyStoresQuery{}, err
	}

	return GetNearbyStoresQuery{origin: origin, radiusKm: radiusKm, guard: guard.NewConstructorGuard()}, nil
}

func (q GetNearbyStoresQuery) Origin() kernel.GeoPoint { return q.origin }

func (q GetNearbyStoresQuery) RadiusKm() float64 { return q.radiusKm }

func (q GetNearbyStoresQuery) Validate() error {
	return q.guard.Validate(ErrGetNearbyStoresQueryIsNotConstructed)
}

// GetNearbyStoresQueryResponse is one store in range, nearest first.
type GetNearbyStoresQueryResponse struct {
	ID            kernel.UUID
	Name          string
	Category      string
	Address       string
	Location      kernel.GeoPoint
	DistanceKm    float64
	RatingAverage float64
	RatingCount   int
}
