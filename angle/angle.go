package angle

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Axis tells which direction an angle measures.
type Axis uint8

const (
	Bearing Axis = iota
	NorthSouth
	EastWest
)

// "against zero" tolerance used when picking a cardinal suffix
const eps = 1e-9

var ErrSuffix = errors.New("unknown cardinal point")

// Angle is a signed measurement in degrees along an axis.
type Angle struct {
	Degrees float64
	Axis    Axis
}

// Latitude clamps x to [-90, 90].
func Latitude(x float64) Angle {
	return Angle{Degrees: math.Max(-90, math.Min(90, x)), Axis: NorthSouth}
}

// Longitude normalizes x to (-180, 180].
func Longitude(x float64) Angle {
	return Angle{Degrees: Wrap180(x), Axis: EastWest}
}

// FromDMS builds an angle from degrees, minutes and seconds. The suffix
// gives the sign: S and W are negative, N and E positive. An empty suffix
// keeps the sign of d.
func FromDMS(axis Axis, d, m int, s float64, suffix string) (Angle, error) {
	x := Rational(d, m, s)
	if suffix != "" {
		negative, err := axis.negative(suffix)
		if err != nil {
			return Angle{}, err
		}
		x = math.Abs(x)
		if negative {
			x = -x
		}
	}
	switch axis {
	case NorthSouth:
		return Latitude(x), nil
	case EastWest:
		return Longitude(x), nil
	}
	return Angle{Degrees: x, Axis: axis}, nil
}

// ParseDMS is FromDMS on textual fields, as typed on a command line.
func ParseDMS(axis Axis, d, m, s, suffix string) (Angle, error) {
	di, err := strconv.Atoi(d)
	if err != nil {
		return Angle{}, fmt.Errorf("degrees %q: %w", d, err)
	}
	mi, err := strconv.Atoi(m)
	if err != nil {
		return Angle{}, fmt.Errorf("minutes %q: %w", m, err)
	}
	sf, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Angle{}, fmt.Errorf("seconds %q: %w", s, err)
	}
	return FromDMS(axis, di, mi, sf, suffix)
}

func (axis Axis) negative(suffix string) (bool, error) {
	switch s := strings.ToUpper(suffix); {
	case axis == NorthSouth && s == "N", axis == EastWest && s == "E":
		return false, nil
	case axis == NorthSouth && s == "S", axis == EastWest && s == "W":
		return true, nil
	}
	return false, fmt.Errorf("%w %q", ErrSuffix, suffix)
}

func (a Angle) Radians() float64 {
	return a.Degrees * math.Pi / 180
}

// String renders the angle in DMS followed by its cardinal point.
func (a Angle) String() string {
	var pos, neg byte
	switch a.Axis {
	case NorthSouth:
		pos, neg = 'N', 'S'
	case EastWest:
		pos, neg = 'E', 'W'
	default:
		return DMS(a.Degrees)
	}
	c := pos
	if math.Abs(a.Degrees) > eps && a.Degrees < 0 {
		c = neg
	}
	return fmt.Sprintf("%s %c", DMS(a.Degrees), c)
}

// Rational returns d° m' s" as decimal degrees signed like d.
func Rational(d, m int, s float64) float64 {
	sign := 1.0
	if d < 0 {
		sign = -1
	}
	return sign * (math.Abs(float64(d)) + (math.Abs(float64(m))+math.Abs(s)/60)/60)
}

// ToBearing maps an azimuth in radians to degrees clockwise from north.
func ToBearing(x float64) float64 {
	return math.Mod(x*180/math.Pi+360, 360)
}

// Wrap360 normalizes d into [0, 360).
func Wrap360(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Wrap180 normalizes d into (-180, 180].
func Wrap180(d float64) float64 {
	if -180 < d && d <= 180 {
		return d
	}
	d = math.Mod(d+180, 360)
	if d <= 0 {
		d += 360
	}
	return d - 180
}

// DMS renders |x| as degrees, minutes and seconds without cardinal point.
func DMS(x float64) string {
	x = math.Abs(x)
	// shift by one second so truncation does not turn 59.9999" into 59"
	x += 1 / 3600.0
	d := int(x)
	x = (x - float64(d)) * 60
	m := int(x)
	x = (x - float64(m)) * 60
	x = math.Abs(x - 1)

	s := fmt.Sprintf("%06.3f", x)
	j := len(s) - 1
	for j > 1 && s[j] < '1' {
		j--
	}
	s = s[:j+1]

	return fmt.Sprintf("%02d° %02d’ %s”", d, m, s)
}
