package angle

import (
	"errors"
	"math"
	"testing"
)

func TestDMS(t *testing.T) {
	tests := []struct {
		x    float64
		want string
	}{
		{0, "00° 00’ 00”"},
		{90, "90° 00’ 00”"},
		{-0.5, "00° 30’ 00”"},
		{45.25, "45° 15’ 00”"},
		{Rational(46, 38, 9), "46° 38’ 09”"},
		{328.5999295631817, "328° 36’ 00.254”"},
		{116.72185980258678, "116° 43’ 18.695”"},
	}
	for _, tt := range tests {
		if s := DMS(tt.x); s != tt.want {
			t.Errorf("DMS(%f) = %q; want %q", tt.x, s, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	lat, err := FromDMS(NorthSouth, 23, 32, 52, "S")
	if err != nil {
		t.Fatalf("FromDMS: %v", err)
	}
	if s := lat.String(); s != "23° 32’ 52” S" {
		t.Errorf("lat.String() = %q; want %q", s, "23° 32’ 52” S")
	}

	lon, err := FromDMS(EastWest, 47, 3, 39, "w")
	if err != nil {
		t.Fatalf("FromDMS: %v", err)
	}
	if s := lon.String(); s != "47° 03’ 39” W" {
		t.Errorf("lon.String() = %q; want %q", s, "47° 03’ 39” W")
	}

	if s := Longitude(-1e-12).String(); s != "00° 00’ 00” E" {
		t.Errorf("Longitude(-1e-12).String() = %q; want E suffix", s)
	}
	if s := (Angle{Degrees: 45.25}).String(); s != "45° 15’ 00”" {
		t.Errorf("bearing String() = %q; want no suffix", s)
	}
}

func TestFromDMS(t *testing.T) {
	a, err := FromDMS(NorthSouth, 22, 54, 21, "S")
	if err != nil {
		t.Fatalf("FromDMS: %v", err)
	}
	if math.Abs(a.Degrees+22.905833333333334) > 1e-12 {
		t.Errorf("FromDMS(22 54 21 S) = %f; want -22.905833", a.Degrees)
	}

	a, err = FromDMS(EastWest, 2, 30, 0, "E")
	if err != nil {
		t.Fatalf("FromDMS: %v", err)
	}
	if a.Degrees != 2.5 {
		t.Errorf("FromDMS(2 30 0 E) = %f; want 2.5", a.Degrees)
	}

	a, err = FromDMS(EastWest, -2, 30, 0, "")
	if err != nil {
		t.Fatalf("FromDMS: %v", err)
	}
	if a.Degrees != -2.5 {
		t.Errorf("FromDMS(-2 30 0) = %f; want -2.5", a.Degrees)
	}

	if _, err := FromDMS(NorthSouth, 10, 0, 0, "W"); !errors.Is(err, ErrSuffix) {
		t.Errorf("FromDMS(10 0 0 W) on latitude error = %v; want ErrSuffix", err)
	}
}

func TestParseDMS(t *testing.T) {
	a, err := ParseDMS(EastWest, "46", "38", "9", "W")
	if err != nil {
		t.Fatalf("ParseDMS: %v", err)
	}
	if math.Abs(a.Degrees+46.63583333333333) > 1e-12 {
		t.Errorf("ParseDMS(46 38 9 W) = %f; want -46.635833", a.Degrees)
	}

	if _, err := ParseDMS(EastWest, "x", "38", "9", "W"); err == nil {
		t.Errorf("ParseDMS(x 38 9 W) want error")
	}
	if _, err := ParseDMS(EastWest, "46", "38", "9.a", "W"); err == nil {
		t.Errorf("ParseDMS(46 38 9.a W) want error")
	}
}

func TestLatitudeClamp(t *testing.T) {
	if a := Latitude(91); a.Degrees != 90 {
		t.Errorf("Latitude(91) = %f; want 90", a.Degrees)
	}
	if a := Latitude(-100); a.Degrees != -90 {
		t.Errorf("Latitude(-100) = %f; want -90", a.Degrees)
	}
	if a := Latitude(math.NaN()); !math.IsNaN(a.Degrees) {
		t.Errorf("Latitude(NaN) = %f; want NaN", a.Degrees)
	}
}

func TestWrap180(t *testing.T) {
	tests := []struct{ d, want float64 }{
		{0, 0},
		{180, 180},
		{-180, 180},
		{190, -170},
		{-190, 170},
		{540, 180},
		{-45, -45},
	}
	for _, tt := range tests {
		if a := Wrap180(tt.d); a != tt.want {
			t.Errorf("Wrap180(%f) = %f; want %f", tt.d, a, tt.want)
		}
	}
}

func TestWrap360(t *testing.T) {
	a := Wrap360(-1.0)
	if a != 359.0 {
		t.Errorf("Wrap360(-1) = %f; want 359.0", a)
	}
	b := Wrap360(361.0)
	if b != 1.0 {
		t.Errorf("Wrap360(361.0) = %f; want 1.0", b)
	}
	c := Wrap360(-721.0)
	if c != 359.0 {
		t.Errorf("Wrap360(-721.0) = %f; want 359.0", c)
	}
}

func TestToBearing(t *testing.T) {
	if b := ToBearing(-math.Pi / 2); math.Abs(b-270) > 1e-9 {
		t.Errorf("ToBearing(-π/2) = %f; want 270", b)
	}
	if b := ToBearing(math.Pi); math.Abs(b-180) > 1e-9 {
		t.Errorf("ToBearing(π) = %f; want 180", b)
	}
}
