package lcbspec

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownOrbitClass is returned when an orbit class code is not one
	// of OrbitClasses.
	ErrUnknownOrbitClass = errors.New("unknown orbit class")

	// ErrUnknownPlanet is returned when a planet name is not one of Planets.
	ErrUnknownPlanet = errors.New("unknown planet")
)

// Planet is one row of the fixed planet table.
type Planet struct {
	Name             string
	Climate          string
	Temperature      string
	DefiningFeatures string
	RingExists       bool
	RingColor        string
	RingWidth        float64
}

// OrbitClass is one row of the fixed orbit class table.
type OrbitClass struct {
	Code     string
	Size     float64
	Location string
}

// Planets is the fixed planet table. Declaration order determines the
// planet_key of each entry.
var Planets = []Planet{
	{"Mercury", "Extreme heat and extreme cold", "100-700K", "Slow rotation, relativistic effects", false, "", 0},
	{"Venus", "Sweltering hot", "737K", "Acid rain, toxic atmosphere", false, "", 0},
	{"Earth", "Extremely variable", "248-318K", "Lush forests, deserts, oceans", false, "", 0},
	{"Mars", "Windy and dry", "133-294K", "Dry rivers, polar ice caps", false, "", 0},
	{"Jupiter", "Invariantly stormy", "123K", "Great Red Spot, hexagonal pole storm", false, "", 0},
	{"Saturn", "Extremely windy", "97K", "Rings", true, "Brown and Gold", 73},
	{"Uranus", "Cold and windy", "59K", "Lopsided rotation and rings", true, "Dark Gray", 3},
	{"Neptune", "Colder and windier", "48K", "Farthest from the Sun, ice giant", true, "Red", 100},
}

// OrbitClasses is the fixed orbit class table. Declaration order determines
// the orbit_class_key of each entry.
var OrbitClasses = []OrbitClass{
	{"AMO", 999, "Near-Earth asteroid orbits similar to that of 1221 Amor"},
	{"APO", 999, "Near-Earth asteroid orbits which cross the Earth's orbit similar to that of 1862 Apollo"},
	{"AST", 0, "Asteroids orbits not matching any defined orbit class"},
	{"ATE", 999, "Near-Earth asteroid orbits similar to that of 2062 Aten"},
	{"CEN", 999, "Objects with orbits between Jupiter and Neptune"},
	{"IEO", 999, "An asteroid orbit contained entirely within the orbit of Earth"},
	{"IMB", 999, "Asteroids within the Inner Main-Belt"},
	{"MBA", 999, "Asteroids within the Main-Belt"},
	{"MCA", 999, "Asteroids that cross the orbit of Mars"},
	{"OMB", 999, "Asteroids within the Outer Main-Belt"},
	{"TJN", 999, "Asteroids trapped within Jupiter's L4/L5 Lagrange points"},
	{"TNO", 999, "Objects with orbits outside Neptune"},
	{"HTC", 999, "Halley-type comets"},
	{"ETC", 999, "Encke-type comets"},
	{"JFC", 999, "Jupiter-family comets"},
	{"CTC", 999, "Chiron-type comets"},
}

const (
	// MeteorOrbitClass is the orbit class recorded for meteors, which have
	// no orbit class in their source data.
	MeteorOrbitClass = "AST"

	// MeteorPlanet is the planet meteors are recorded against.
	MeteorPlanet = "Earth"
)

// OrbitClassKey returns the orbit_class_key of an orbit class code: one plus
// the code's position in OrbitClasses. Matching ignores case and surrounding
// whitespace.
func OrbitClassKey(code string) (int64, error) {
	code = strings.TrimSpace(code)
	for i, oc := range OrbitClasses {
		if strings.EqualFold(oc.Code, code) {
			return int64(i + 1), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownOrbitClass, code)
}

// PlanetKey returns the planet_key of a planet name: one plus the name's
// position in Planets. Matching ignores case and surrounding whitespace.
func PlanetKey(name string) (int64, error) {
	name = strings.TrimSpace(name)
	for i, p := range Planets {
		if strings.EqualFold(p.Name, name) {
			return int64(i + 1), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownPlanet, name)
}
