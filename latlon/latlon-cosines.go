package latlon

import "math"

// Cosines uses the spherical law of cosines.
type Cosines struct {
	Earth Earth
}

func (c Cosines) DistanceTo(from, to LatLon) float64 {
	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)
	Δλ := toRadians(to.Lon - from.Lon)

	// sin φ1 sin φ2 + cos φ1 cos φ2 cos Δλ, arranged around cos Δφ so that a
	// null arc gives exactly 1
	cosδ := math.Cos(φ2-φ1) - math.Cos(φ1)*math.Cos(φ2)*(1-math.Cos(Δλ))
	δ := math.Acos(math.Max(-1, math.Min(1, cosδ)))

	return δ * c.Earth.radiusBetween(from, to)
}

func (Cosines) BearingTo(from, to LatLon) float64 {
	return InitialBearing(from, to)
}

func (c Cosines) DistanceAndBearingTo(from, to LatLon) (float64, float64) {
	return c.DistanceTo(from, to), InitialBearing(from, to)
}

func (Cosines) Destination(from LatLon, bearing float64, distance float64) (LatLon, error) {
	return Destination(from, bearing, distance)
}
