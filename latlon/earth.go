package latlon

import "math"

// Earth selects the radius used by the great-circle distance formulas.
// With CorrectRadius the radius follows the latitude on an ellipsoid of
// revolution (Snyder, Map Projections - A Working Manual, p24), otherwise
// EarthMeanRadius is used everywhere.
type Earth struct {
	CorrectRadius bool
}

// Radius returns the Earth radius in kilometers at latitude lat (degrees).
func (e Earth) Radius(lat float64) float64 {
	if !e.CorrectRadius {
		return EarthMeanRadius
	}
	c := math.Cos(toRadians(lat))
	return EarthPolarRadius / math.Sqrt(1-ecc2*c*c)
}

// radius at the latitude of the midpoint between from and to
func (e Earth) radiusBetween(from, to LatLon) float64 {
	return e.Radius(MidPoint(from, to).Lat)
}
