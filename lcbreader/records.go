package lcbreader

import (
	"io/fs"

	"github.com/andrewkroh/go-celestial-db/internal/errs"
)

// SmallBody is one accepted row of an asteroid or comet source.
type SmallBody struct {
	Name       string  // designation stripped
	Diameter   float64 // kilometres
	OrbitClass string  // raw orbit class code, resolved by the loader
	Line       int
}

// Moon is one accepted row of the moon source.
type Moon struct {
	Name   string
	Radius float64 // kilometres
	GM     float64 // gravitational parameter (or mass) as given
	Planet string  // raw planet name, resolved by the loader
	Line   int
}

// Meteor is one accepted row of the meteor source.
type Meteor struct {
	Name   string
	MassKg float64
	Line   int
}

var smallBodyColumns = []column{{"full_name"}, {"diameter"}, {"class"}}

// ReadSmallBodies reads an asteroid or comet source with the columns
// full_name, diameter and class.
func ReadSmallBodies(fsys fs.FS, path string, opts ...Option) ([]SmallBody, Stats, error) {
	return readRows(fsys, path, smallBodyColumns, func(r row) (SmallBody, error) {
		diameter, err := ParseQuantity(r.get("diameter"), LengthUnits)
		if err != nil {
			return SmallBody{}, errs.Wrap(errs.ErrKindInvalidRow, "diameter", err)
		}
		return SmallBody{
			Name:       CleanDesignatedName(r.get("full_name")),
			Diameter:   diameter,
			OrbitClass: r.get("class"),
			Line:       r.line,
		}, nil
	}, opts)
}

var moonColumns = []column{{"name"}, {"radius"}, {"gm", "mass"}, {"planet"}}

// ReadMoons reads the moon source with the columns name, radius, gm (or
// mass) and planet.
func ReadMoons(fsys fs.FS, path string, opts ...Option) ([]Moon, Stats, error) {
	return readRows(fsys, path, moonColumns, func(r row) (Moon, error) {
		radius, err := ParseQuantity(r.get("radius"), LengthUnits)
		if err != nil {
			return Moon{}, errs.Wrap(errs.ErrKindInvalidRow, "radius", err)
		}
		gm, err := ParseNumber(r.get("gm"))
		if err != nil {
			return Moon{}, errs.Wrap(errs.ErrKindInvalidRow, "gm", err)
		}
		return Moon{
			Name:   r.get("name"),
			Radius: radius,
			GM:     gm,
			Planet: r.get("planet"),
			Line:   r.line,
		}, nil
	}, opts)
}

var meteorColumns = []column{{"name"}, {"mass"}}

// ReadMeteors reads the meteor source with the columns Name and Mass. Mass
// values carry a unit ("21 g", "1.2 kg") and are normalised to kilograms.
func ReadMeteors(fsys fs.FS, path string, opts ...Option) ([]Meteor, Stats, error) {
	return readRows(fsys, path, meteorColumns, func(r row) (Meteor, error) {
		mass, err := ParseQuantity(r.get("mass"), MassUnits)
		if err != nil {
			return Meteor{}, errs.Wrap(errs.ErrKindInvalidRow, "mass", err)
		}
		return Meteor{
			Name:   r.get("name"),
			MassKg: mass,
			Line:   r.line,
		}, nil
	}, opts)
}
