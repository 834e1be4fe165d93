package latlon

// Rhumb follows lines of constant bearing.
type Rhumb struct{}

func (Rhumb) DistanceTo(from, to LatLon) float64 {
	return RhumbLineTo(from, to).Distance
}

func (Rhumb) BearingTo(from, to LatLon) float64 {
	return RhumbLineTo(from, to).Bearing
}

func (Rhumb) DistanceAndBearingTo(from, to LatLon) (float64, float64) {
	p := RhumbLineTo(from, to)
	return p.Distance, p.Bearing
}

func (Rhumb) Destination(from LatLon, bearing float64, distance float64) (LatLon, error) {
	return RhumbDestination(from, bearing, distance), nil
}
