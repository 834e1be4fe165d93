package latlon

import (
	"fmt"
	"sync"
)

// Navigator runs the navigation functions against one radius setting.
// The setting may be changed while other goroutines use the Navigator.
type Navigator struct {
	lock  sync.RWMutex
	earth Earth
}

type Option func(*Navigator)

// WithCorrectRadius sets whether distances use the radius at the midpoint
// latitude (the default) or EarthMeanRadius.
func WithCorrectRadius(v bool) Option {
	return func(n *Navigator) {
		n.earth.CorrectRadius = v
	}
}

func New(opts ...Option) *Navigator {
	n := &Navigator{earth: Earth{CorrectRadius: true}}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Navigator) SetCorrectRadius(v bool) {
	n.lock.Lock()
	n.earth.CorrectRadius = v
	n.lock.Unlock()
}

func (n *Navigator) CorrectRadius() bool {
	return n.Earth().CorrectRadius
}

// Earth returns a copy of the current radius setting.
func (n *Navigator) Earth() Earth {
	n.lock.RLock()
	defer n.lock.RUnlock()
	return n.earth
}

func (n *Navigator) EarthRadius(lat float64) float64 {
	return n.Earth().Radius(lat)
}

func (n *Navigator) MidPoint(from, to LatLon) LatLon {
	return MidPoint(from, to)
}

// Distance uses the spherical law of cosines.
func (n *Navigator) Distance(from, to LatLon) float64 {
	return Cosines{Earth: n.Earth()}.DistanceTo(from, to)
}

func (n *Navigator) HalfAngleDistance(from, to LatLon) float64 {
	return HalfAngle{Earth: n.Earth()}.DistanceTo(from, to)
}

func (n *Navigator) HaversineDistance(from, to LatLon) float64 {
	return Haversine{Earth: n.Earth()}.DistanceTo(from, to)
}

func (n *Navigator) InitialBearing(from, to LatLon) float64 {
	return InitialBearing(from, to)
}

func (n *Navigator) FinalBearing(from, to LatLon) float64 {
	return FinalBearing(from, to)
}

func (n *Navigator) Destination(from LatLon, bearing float64, distance float64) (LatLon, error) {
	return Destination(from, bearing, distance)
}

func (n *Navigator) RhumbLineTo(from, to LatLon) Polar {
	return RhumbLineTo(from, to)
}

func (n *Navigator) RhumbDestination(from LatLon, bearing float64, distance float64) LatLon {
	return RhumbDestination(from, bearing, distance)
}

// Formula returns the named formula bound to the current radius setting:
// one of "cosines", "half-angle", "haversine" or "rhumb".
func (n *Navigator) Formula(name string) (Formula, error) {
	if name == "rhumb" {
		return Rhumb{}, nil
	}
	f, ok := Formulas(n.Earth())[name]
	if !ok {
		return nil, fmt.Errorf("unknown formula %q", name)
	}
	return f, nil
}

// Formulas returns the great-circle formulas by name, all using earth.
func Formulas(earth Earth) map[string]Formula {
	return map[string]Formula{
		"cosines":    Cosines{Earth: earth},
		"half-angle": HalfAngle{Earth: earth},
		"haversine":  Haversine{Earth: earth},
	}
}
