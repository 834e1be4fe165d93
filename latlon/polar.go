package latlon

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/a-bouts/nav-geo/angle"
)

var printer = message.NewPrinter(language.English)

// Polar locates a place by distance (km) and bearing (degrees) from a
// reference point.
type Polar struct {
	Name     string  `json:"name,omitempty"`
	Distance float64 `json:"distance"`
	Bearing  float64 `json:"bearing"`
}

// NewPolar normalizes bearing into [0, 360).
func NewPolar(distance, bearing float64) Polar {
	return Polar{Distance: distance, Bearing: angle.Wrap360(bearing)}
}

func (p Polar) String() string {
	return fmt.Sprintf("%s at [%s km  %s]", orNotDefined(p.Name), printer.Sprintf("%.3f", p.Distance), angle.DMS(p.Bearing))
}
