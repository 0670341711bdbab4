package lcbsql

import (
	"github.com/andrewkroh/go-celestial-db/internal/sqlgen"
)

// Table names of DefaultCatalog.
const (
	TableOrbitClass    = "orbit_class"
	TablePlanet        = "planet"
	TableConstellation = "constellation"
	TableSmallBody     = "small_body"
	TableAsteroid      = "asteroid"
	TableComet         = "comet"
	TableMeteor        = "meteor"
	TableMoon          = "moon"
)

// DefaultCatalog declares every table of the database. Its order is the
// creation order.
var DefaultCatalog = sqlgen.Catalog{
	Tables: []sqlgen.TableSpec{
		{
			Name:       TableOrbitClass,
			PrimaryKey: true,
			Fields: []sqlgen.Field{
				{Name: "name", Type: sqlgen.Text},
				{Name: "size", Type: sqlgen.Real},
				{Name: "location", Type: sqlgen.Text},
			},
		},
		{
			Name:       TablePlanet,
			PrimaryKey: true,
			Fields: []sqlgen.Field{
				{Name: "name", Type: sqlgen.Text},
				{Name: "climate", Type: sqlgen.Text},
				{Name: "temperature", Type: sqlgen.Text},
				{Name: "defining_features", Type: sqlgen.Text},
				{Name: "ring_exists", Type: sqlgen.Boolean},
				{Name: "ring_color", Type: sqlgen.Text},
				{Name: "ring_width", Type: sqlgen.Real},
			},
		},
		{
			Name:       TableConstellation,
			PrimaryKey: true,
			Fields: []sqlgen.Field{
				{Name: "name", Type: sqlgen.Text},
				{Name: "stars", Type: sqlgen.Integer},
			},
		},
		{
			Name:       TableSmallBody,
			PrimaryKey: true,
			Fields: []sqlgen.Field{
				{Name: "name", Type: sqlgen.Text},
				{Name: "size", Type: sqlgen.Real},
			},
			Foreign: []string{TableOrbitClass},
		},
		{
			Name: TableAsteroid,
			Fields: []sqlgen.Field{
				{Name: "has_solid_composition", Type: sqlgen.Boolean},
				{Name: "minerals", Type: sqlgen.Text},
			},
			Foreign: []string{TableSmallBody},
		},
		{
			Name: TableComet,
			Fields: []sqlgen.Field{
				{Name: "has_ice", Type: sqlgen.Boolean},
				{Name: "has_dust", Type: sqlgen.Boolean},
				{Name: "has_tail", Type: sqlgen.Boolean},
			},
			Foreign: []string{TableSmallBody},
		},
		{
			Name: TableMeteor,
			Fields: []sqlgen.Field{
				{Name: "lifespan", Type: sqlgen.Integer},
			},
			Foreign: []string{TablePlanet, TableSmallBody},
		},
		{
			Name: TableMoon,
			Fields: []sqlgen.Field{
				{Name: "name", Type: sqlgen.Text},
				{Name: "size", Type: sqlgen.Real},
				{Name: "distance", Type: sqlgen.Real},
			},
			Foreign: []string{TablePlanet},
		},
	},
}

// Creates holds the compiled DDL of DefaultCatalog in catalog order.
var Creates = sqlgen.MustCompile(DefaultCatalog)

// TableSchemas returns the CREATE TABLE statements for all tables in
// creation order.
func TableSchemas() []string {
	out := make([]string, len(Creates))
	copy(out, Creates)
	return out
}
