package latlon

import (
	"fmt"
	"math"

	"github.com/a-bouts/nav-geo/angle"
)

const π = math.Pi

// Earth radius estimates in kilometers.
const (
	EarthPolarRadius      = 6356.78
	EarthEquatorialRadius = 6378.14
)

var (
	// EarthMeanRadius is the quadratic mean of the polar and equatorial radii.
	EarthMeanRadius = math.Sqrt((EarthPolarRadius*EarthPolarRadius + 3*EarthEquatorialRadius*EarthEquatorialRadius) / 4)

	// square of the eccentricity
	ecc2 = 1 - EarthPolarRadius*EarthPolarRadius/EarthEquatorialRadius/EarthEquatorialRadius
)

// Formula computes distances (km) and bearings (degrees) between points.
type Formula interface {
	DistanceTo(from, to LatLon) float64
	BearingTo(from, to LatLon) float64
	DistanceAndBearingTo(from, to LatLon) (float64, float64)
	Destination(from LatLon, bearing float64, distance float64) (LatLon, error)
}

// LatLon is a named place. Lat and Lon are decimal degrees validated by
// whoever builds the value.
type LatLon struct {
	Name     string    `json:"name,omitempty"`
	Lat      float64   `json:"lat"`
	Lon      float64   `json:"lon"`
	Altitude *Altitude `json:"altitude,omitempty"`
}

// NewLatLon clamps lat to [-90, 90] and normalizes lon to (-180, 180].
func NewLatLon(lat, lon float64) LatLon {
	return LatLon{Lat: angle.Latitude(lat).Degrees, Lon: angle.Longitude(lon).Degrees}
}

func (p LatLon) Latitude() angle.Angle {
	return angle.Angle{Degrees: p.Lat, Axis: angle.NorthSouth}
}

func (p LatLon) Longitude() angle.Angle {
	return angle.Angle{Degrees: p.Lon, Axis: angle.EastWest}
}

func (p LatLon) String() string {
	alt := ""
	if p.Altitude != nil {
		alt = p.Altitude.String()
	}
	return fmt.Sprintf("%s at [%s  %s] %s", orNotDefined(p.Name), p.Latitude(), p.Longitude(), alt)
}

// Altitude is an altimetric measurement.
type Altitude struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

func (a Altitude) String() string {
	if math.IsNaN(a.Value) {
		return fmt.Sprintf("NaN %s", orNotDefined(a.Unit))
	}
	return fmt.Sprintf("%7.3f %s", a.Value, orNotDefined(a.Unit))
}

func orNotDefined(s string) string {
	if s == "" {
		return "N/D"
	}
	return s
}

func toRadians(a float64) float64 {
	return a * π / 180.0
}

func toDegrees(a float64) float64 {
	return a * 180.0 / π
}
