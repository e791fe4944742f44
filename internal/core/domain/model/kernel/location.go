package kernel

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// LatitudeMin is the southern bound of a valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the northern bound of a valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the western bound of a valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the eastern bound of a valid longitude in degrees.
	LongitudeMax = 180.0

	earthRadiusKm = 6371.0
)

// ErrLocationIsNotConstructed is returned when a zero value Location is used.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation or ParseLocation constructors")

// Location is an immutable WGS84 coordinate used for pickup points, drop points and the last
// reported position of a driver. The zero value is invalid; use NewLocation or ParseLocation.
//
// Example:
//
//	pickup, err := kernel.ParseLocation("11.55,104.91")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(pickup) // Output: 11.55,104.91
type Location struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewLocation creates a Location from latitude and longitude in degrees.
//
// Parameters:
//   - lat: latitude, must be within [LatitudeMin..LatitudeMax]
//   - lng: longitude, must be within [LongitudeMin..LongitudeMax]
//
// Returns:
//   - Location: A valid location instance
//   - error: Validation error if either value is out of bounds or not a finite number
func NewLocation(lat float64, lng float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLat(lat), loc.setLng(lng)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// ParseLocation parses the "lat,lng" text form accepted by the public API, for example
// "11.55,104.91". Whitespace around either number is ignored.
func ParseLocation(raw string) (Location, error) {
	if strings.TrimSpace(raw) == "" {
		return Location{}, errs.NewValueIsRequiredError("location")
	}

	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return Location{}, errs.NewValueIsInvalidErrorWithCause(
			"location", fmt.Errorf("%q is not in lat,lng form", raw))
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Location{}, errs.NewValueIsInvalidErrorWithCause("lat", err)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Location{}, errs.NewValueIsInvalidErrorWithCause("lng", err)
	}

	return NewLocation(lat, lng)
}

// Validate checks if the Location was created by a constructor.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (l Location) Lat() float64 {
	return l.lat
}

// Lng returns the longitude in degrees.
func (l Location) Lng() float64 {
	return l.lng
}

// String renders the location in the same "lat,lng" form ParseLocation accepts.
func (l Location) String() string {
	return strconv.FormatFloat(l.lat, 'f', -1, 64) + "," + strconv.FormatFloat(l.lng, 'f', -1, 64)
}

// IsEqual reports whether both locations are constructed and point at the same coordinate.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// DistanceKm returns the great-circle (haversine) distance between two locations in
// kilometres on a spherical Earth of radius 6371 km.
//
// Example:
//
//	a, _ := kernel.NewLocation(11.55, 104.91)
//	b, _ := kernel.NewLocation(11.57, 104.93)
//	km, _ := a.DistanceKm(b) // roughly 3.1
func (l Location) DistanceKm(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dLat := toRadians(other.lat - l.lat)
	dLng := toRadians(other.lng - l.lng)
	lat1 := toRadians(l.lat)
	lat2 := toRadians(other.lat)

	h := math.Pow(math.Sin(dLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLng/2), 2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h)), nil
}

// setLat uses a pointer receiver so construction can validate field by field.
func (l *Location) setLat(lat float64) error {
	if math.IsNaN(lat) || lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("lat", lat, LatitudeMin, LatitudeMax)
	}

	l.lat = lat
	return nil
}

func (l *Location) setLng(lng float64) error {
	if math.IsNaN(lng) || lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("lng", lng, LongitudeMin, LongitudeMax)
	}

	l.lng = lng
	return nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
