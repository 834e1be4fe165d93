package latlon

import "math"

// HalfAngle is the law of cosines rewritten with half-angle sines, which
// keeps its precision on short distances.
type HalfAngle struct {
	Earth Earth
}

func (h HalfAngle) DistanceTo(from, to LatLon) float64 {
	sΔφ := math.Sin(toRadians((from.Lat - to.Lat) / 2))
	sΔλ := math.Sin(toRadians((from.Lon - to.Lon) / 2))

	a := sΔφ*sΔφ + math.Cos(toRadians(from.Lat))*math.Cos(toRadians(to.Lat))*sΔλ*sΔλ
	a = math.Max(0, math.Min(1, a))
	δ := 2 * math.Asin(math.Sqrt(a))

	return δ * h.Earth.radiusBetween(from, to)
}

func (HalfAngle) BearingTo(from, to LatLon) float64 {
	return InitialBearing(from, to)
}

func (h HalfAngle) DistanceAndBearingTo(from, to LatLon) (float64, float64) {
	return h.DistanceTo(from, to), InitialBearing(from, to)
}

func (HalfAngle) Destination(from LatLon, bearing float64, distance float64) (LatLon, error) {
	return Destination(from, bearing, distance)
}
