package latlon

import (
	"errors"
	"math"

	"github.com/a-bouts/nav-geo/angle"
)

// ErrNoDestination is returned when a destination point cannot be
// computed, i.e. the resulting latitude or longitude is not a number.
var ErrNoDestination = errors.New("no destination point")

// MidPoint returns the point half-way along the great circle from from to to.
// It is not the average of latitudes and longitudes: the midpoint between
// 35°N,45°E and 35°N,135°E is around 45°N,90°E.
func MidPoint(from, to LatLon) LatLon {
	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)
	λ1 := toRadians(from.Lon)
	Δλ := toRadians(to.Lon - from.Lon)

	Bx := math.Cos(φ2) * math.Cos(Δλ)
	By := math.Cos(φ2) * math.Sin(Δλ)

	φ3 := math.Atan2(math.Sin(φ1)+math.Sin(φ2), math.Sqrt((math.Cos(φ1)+Bx)*(math.Cos(φ1)+Bx)+By*By))
	λ3 := λ1 + math.Atan2(By, math.Cos(φ1)+Bx)

	return LatLon{Lat: toDegrees(φ3), Lon: angle.Wrap180(toDegrees(λ3))}
}

// InitialBearing returns the forward azimuth at from, in [0, 360).
func InitialBearing(from, to LatLon) float64 {
	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)

	Δλ := toRadians(to.Lon - from.Lon)
	x := math.Cos(φ1)*math.Sin(φ2) - math.Sin(φ1)*math.Cos(φ2)*math.Cos(Δλ)
	y := math.Sin(Δλ) * math.Cos(φ2)

	return angle.ToBearing(math.Atan2(y, x))
}

// FinalBearing returns the bearing on arrival at to, the reverse of the
// initial bearing from to back to from.
func FinalBearing(from, to LatLon) float64 {
	return math.Mod(InitialBearing(to, from)+180, 360)
}

// Destination travels distance km from from along the great circle starting
// at bearing. It always uses EarthMeanRadius.
func Destination(from LatLon, bearing float64, distance float64) (LatLon, error) {
	φ1 := toRadians(from.Lat)
	λ1 := toRadians(from.Lon)
	θ := toRadians(bearing)

	δ := distance / EarthMeanRadius

	φ2 := math.Asin(math.Sin(φ1)*math.Cos(δ) + math.Cos(φ1)*math.Sin(δ)*math.Cos(θ))
	λ2 := λ1 + math.Atan2(math.Sin(θ)*math.Sin(δ)*math.Cos(φ1), math.Cos(δ)-math.Sin(φ1)*math.Sin(φ2))

	if math.IsNaN(φ2) || math.IsNaN(λ2) {
		return LatLon{}, ErrNoDestination
	}

	return LatLon{Lat: toDegrees(φ2), Lon: angle.Wrap180(toDegrees(λ2))}, nil
}

// below this the mercator latitude difference is treated as zero
const ψEpsilon = 1e-12

// stretched (mercator) latitude difference between φ1 and φ2
func mercatorDelta(φ1, φ2 float64) float64 {
	return math.Log(math.Tan(φ2/2+π/4) / math.Tan(φ1/2+π/4))
}

// stretch factor of a rhumb line, the length of the parallel at φ1 on an
// east-west line
func stretch(Δφ, Δψ, φ1 float64) float64 {
	if math.Abs(Δψ) > ψEpsilon {
		return Δφ / Δψ
	}
	return math.Cos(φ1)
}

// RhumbLineTo returns the distance and the constant bearing of the rhumb
// line from from to to. A rhumb line crosses all meridians at the same
// angle; it is a straight line on a Mercator map. It always uses
// EarthMeanRadius.
func RhumbLineTo(from, to LatLon) Polar {
	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)
	Δφ := φ2 - φ1
	Δλ := toRadians(to.Lon - from.Lon)

	// take the shorter rhumb across the antimeridian
	if math.Abs(Δλ) > π {
		if Δλ > 0 {
			Δλ = -(2*π - Δλ)
		} else {
			Δλ = 2*π + Δλ
		}
	}

	Δψ := mercatorDelta(φ1, φ2)
	q := stretch(Δφ, Δψ, φ1)

	δ := math.Sqrt(Δφ*Δφ + q*q*Δλ*Δλ)

	return NewPolar(δ*EarthMeanRadius, angle.ToBearing(math.Atan2(Δλ, Δψ)))
}

// RhumbDestination travels distance km from from keeping bearing. Going on
// long enough spirals towards a pole. It always uses EarthMeanRadius.
func RhumbDestination(from LatLon, bearing float64, distance float64) LatLon {
	φ1 := toRadians(from.Lat)
	λ1 := toRadians(from.Lon)
	θ := toRadians(bearing)

	δ := distance / EarthMeanRadius

	Δφ := δ * math.Cos(θ)
	φ2 := φ1 + Δφ
	λ2 := λ1

	// past a pole the way back down is the opposite meridian; only a
	// north-south line gets there, off it the longitude means nothing
	if math.Abs(φ2) > π/2 {
		if φ2 > 0 {
			φ2 = π - φ2
		} else {
			φ2 = -π - φ2
		}
		Δφ = φ2 - φ1
		λ2 += π
	}

	Δψ := mercatorDelta(φ1, φ2)
	q := stretch(Δφ, Δψ, φ1)

	Δλ := δ * math.Sin(θ) / q

	return LatLon{Lat: toDegrees(φ2), Lon: angle.Wrap180(toDegrees(λ2 + Δλ))}
}
