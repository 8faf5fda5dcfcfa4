package kernel

import (
	"errors"
	"fmt"
	"math"

	"oja/internal/pkg/errs"
	"oja/internal/pkg/guard"
)

const (
	// LatitudeMin and LatitudeMax bound a valid latitude in degrees.
	LatitudeMin = -90.0
	LatitudeMax = 90.0
	// LongitudeMin and LongitudeMax bound a valid longitude in degrees.
	LongitudeMin = -180.0
	LongitudeMax = 180.0

	earthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when a GeoPoint was not created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("geo point must be created via NewGeoPoint")

// GeoPoint is an immutable latitude/longitude pair in degrees. Stores use it as their
// pickup point and orders as their drop-off point; the delivery simulator moves a
// courier between the two.
//
// Example:
//
//	store, _ := kernel.NewGeoPoint(6.50, 3.30)
//	dropoff, _ := kernel.NewGeoPoint(6.60, 3.40)
//	midway := store.Interpolate(dropoff, 0.5) // GeoPoint(6.55,3.35)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint validates both coordinates and returns the point.
// Out of range coordinates are reported together.
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	p := GeoPoint{guard: guard.NewConstructorGuard()}

	if err := errors.Join(p.setLat(lat), p.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return p, nil
}

// MustGeoPoint is NewGeoPoint for compile-time constants and fixtures; it panics on invalid input.
func MustGeoPoint(lat, lng float64) GeoPoint {
	p, err := NewGeoPoint(lat, lng)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate fails for the zero value.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%g,%g)", p.lat, p.lng)
}

// Interpolate returns the point at fraction progress of the straight segment p -> to,
// applied independently to latitude and longitude. Progress is clamped to [0, 1].
// This is plain linear interpolation, not a great-circle path.
func (p GeoPoint) Interpolate(to GeoPoint, progress float64) GeoPoint {
	progress = ClampProgress(progress)
	return GeoPoint{
		lat:   p.lat + (to.lat-p.lat)*progress,
		lng:   p.lng + (to.lng-p.lng)*progress,
		guard: guard.NewConstructorGuard(),
	}
}

// DistanceKm returns the haversine (great-circle) distance between two points.
func (p GeoPoint) DistanceKm(other GeoPoint) float64 {
	lat1 := toRadians(p.lat)
	lat2 := toRadians(other.lat)
	dLat := lat2 - lat1
	dLng := toRadians(other.lng - p.lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// IsEqual compares coordinates exactly.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lng == other.lng
}

// ClampProgress limits a delivery progress value to [0, 1].
func ClampProgress(progress float64) float64 {
	return math.Max(0, math.Min(1, progress))
}

func (p *GeoPoint) setLat(lat float64) error {
	if math.IsNaN(lat) || lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("lat", lat, LatitudeMin, LatitudeMax)
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLng(lng float64) error {
	if math.IsNaN(lng) || lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("lng", lng, LongitudeMin, LongitudeMax)
	}
	p.lng = lng
	return nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
