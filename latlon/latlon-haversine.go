package latlon

import "math"

type Haversine struct {
	Earth Earth
}

func (h Haversine) DistanceTo(from, to LatLon) float64 {
	φ1 := toRadians(from.Lat)
	φ2 := toRadians(to.Lat)
	Δφ := φ2 - φ1

	Δλ := toRadians(to.Lon - from.Lon)

	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	// rounding overshoots 1 between antipodes
	a = math.Max(0, math.Min(1, a))
	δ := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	d := h.Earth.radiusBetween(from, to) * δ

	return d
}

func (Haversine) BearingTo(from, to LatLon) float64 {
	return InitialBearing(from, to)
}

func (h Haversine) DistanceAndBearingTo(from, to LatLon) (float64, float64) {
	return h.DistanceTo(from, to), InitialBearing(from, to)
}

func (Haversine) Destination(from LatLon, bearing float64, distance float64) (LatLon, error) {
	return Destination(from, bearing, distance)
}
