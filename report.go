package main

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/a-bouts/nav-geo/angle"
	"github.com/a-bouts/nav-geo/latlon"
)

const usage = `
Usage: nav-geo [flags] place_X latitude_X longitude_X place_Y latitude_Y longitude_Y

Each coordinate in degrees, minutes, seconds and direction e.g.:

    nav-geo SP 23 32 52 S 46 38 9 W CPS 22 54 21 S 47 3 39 W

`

// parsePlaces reads two places from 18 arguments: name, then degrees,
// minutes, seconds and direction for latitude and for longitude.
func parsePlaces(args []string) (latlon.LatLon, latlon.LatLon, error) {
	if len(args) != 18 {
		return latlon.LatLon{}, latlon.LatLon{}, fmt.Errorf("want 18 arguments, got %d", len(args))
	}
	x, err := parsePlace(args[:9])
	if err != nil {
		return latlon.LatLon{}, latlon.LatLon{}, err
	}
	y, err := parsePlace(args[9:])
	if err != nil {
		return latlon.LatLon{}, latlon.LatLon{}, err
	}
	return x, y, nil
}

func parsePlace(args []string) (latlon.LatLon, error) {
	lat, err := angle.ParseDMS(angle.NorthSouth, args[1], args[2], args[3], args[4])
	if err != nil {
		return latlon.LatLon{}, fmt.Errorf("%s latitude: %w", args[0], err)
	}
	lon, err := angle.ParseDMS(angle.EastWest, args[5], args[6], args[7], args[8])
	if err != nil {
		return latlon.LatLon{}, fmt.Errorf("%s longitude: %w", args[0], err)
	}
	return latlon.LatLon{Name: args[0], Lat: lat.Degrees, Lon: lon.Degrees}, nil
}

func report(w io.Writer, n *latlon.Navigator, x, y latlon.LatLon) {
	p := message.NewPrinter(language.English)

	fmt.Fprintf(w, "\nNavigator API Usage Demonstration.\n")

	dist := n.Distance(x, y)
	fmt.Fprintf(w, "\nDistance from %s to %s is %s km.\n", x, y, p.Sprintf("%.3f", dist))

	fmt.Fprintf(w, "\nMidPoint is %s\n", n.MidPoint(x, y))

	brg := n.InitialBearing(x, y)
	fmt.Fprintf(w, "\nInitial bearing is %s.\n", angle.DMS(brg))

	fmt.Fprintf(w, "\nRhumb destination Point: %s\n", n.RhumbDestination(x, brg, dist))

	brg = n.FinalBearing(x, y)
	fmt.Fprintf(w, "\nFinal bearing is %s.\n\n", angle.DMS(brg))

	r := n.RhumbLineTo(x, y)
	r.Name = "Rhumb lines coordinate"
	fmt.Fprintf(w, "%s\n\n", r)
}
