package lcbsql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/andrewkroh/go-celestial-db/internal/sqlgen"
)

// DBTX is satisfied by *sql.DB, *sql.Tx, *sql.Conn and the loader's
// statement cache.
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// Queries runs the typed inserts of DefaultCatalog.
type Queries struct {
	db DBTX
}

// New returns Queries bound to db.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Insert statements bind their arguments in sqlgen.InsertColumns order.
var (
	insertOrbitClass = sqlgen.MustInsertSQL(DefaultCatalog, TableOrbitClass)
	insertPlanet     = sqlgen.MustInsertSQL(DefaultCatalog, TablePlanet)
	insertSmallBody  = sqlgen.MustInsertSQL(DefaultCatalog, TableSmallBody)
	insertAsteroid   = sqlgen.MustInsertSQL(DefaultCatalog, TableAsteroid)
	insertComet      = sqlgen.MustInsertSQL(DefaultCatalog, TableComet)
	insertMeteor     = sqlgen.MustInsertSQL(DefaultCatalog, TableMeteor)
	insertMoon       = sqlgen.MustInsertSQL(DefaultCatalog, TableMoon)
)

type InsertOrbitClassParams struct {
	Name     string
	Size     float64
	Location string
}

// InsertOrbitClass inserts an orbit class and returns its orbit_class_key.
func (q *Queries) InsertOrbitClass(ctx context.Context, arg InsertOrbitClassParams) (int64, error) {
	return lastInsertID(q.db.ExecContext(ctx, insertOrbitClass, arg.Name, arg.Size, arg.Location))
}

type InsertPlanetParams struct {
	Name             string
	Climate          string
	Temperature      string
	DefiningFeatures string
	RingExists       bool
	RingColor        string
	RingWidth        float64
}

// InsertPlanet inserts a planet and returns its planet_key.
func (q *Queries) InsertPlanet(ctx context.Context, arg InsertPlanetParams) (int64, error) {
	return lastInsertID(q.db.ExecContext(ctx, insertPlanet,
		arg.Name,
		arg.Climate,
		arg.Temperature,
		arg.DefiningFeatures,
		boolToInt(arg.RingExists),
		arg.RingColor,
		arg.RingWidth,
	))
}

type InsertSmallBodyParams struct {
	Name          string
	Size          float64
	OrbitClassKey int64
}

// InsertSmallBody inserts a small body and returns its small_body_key.
func (q *Queries) InsertSmallBody(ctx context.Context, arg InsertSmallBodyParams) (int64, error) {
	return lastInsertID(q.db.ExecContext(ctx, insertSmallBody, arg.Name, arg.Size, arg.OrbitClassKey))
}

type InsertAsteroidParams struct {
	HasSolidComposition bool
	Minerals            string
	SmallBodyKey        int64
}

func (q *Queries) InsertAsteroid(ctx context.Context, arg InsertAsteroidParams) error {
	_, err := q.db.ExecContext(ctx, insertAsteroid,
		boolToInt(arg.HasSolidComposition),
		arg.Minerals,
		arg.SmallBodyKey,
	)
	return err
}

type InsertCometParams struct {
	HasIce       bool
	HasDust      bool
	HasTail      bool
	SmallBodyKey int64
}

func (q *Queries) InsertComet(ctx context.Context, arg InsertCometParams) error {
	_, err := q.db.ExecContext(ctx, insertComet,
		boolToInt(arg.HasIce),
		boolToInt(arg.HasDust),
		boolToInt(arg.HasTail),
		arg.SmallBodyKey,
	)
	return err
}

type InsertMeteorParams struct {
	Lifespan     int64
	PlanetKey    int64
	SmallBodyKey int64
}

func (q *Queries) InsertMeteor(ctx context.Context, arg InsertMeteorParams) error {
	_, err := q.db.ExecContext(ctx, insertMeteor, arg.Lifespan, arg.PlanetKey, arg.SmallBodyKey)
	return err
}

type InsertMoonParams struct {
	Name      string
	Size      float64
	Distance  float64
	PlanetKey int64
}

func (q *Queries) InsertMoon(ctx context.Context, arg InsertMoonParams) error {
	_, err := q.db.ExecContext(ctx, insertMoon, arg.Name, arg.Size, arg.Distance, arg.PlanetKey)
	return err
}

// CountRows returns the number of rows in a table of DefaultCatalog.
func (q *Queries) CountRows(ctx context.Context, table string) (int64, error) {
	if _, ok := DefaultCatalog.Table(table); !ok {
		return 0, fmt.Errorf("unknown table %q", table)
	}
	var n int64
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n)
	return n, err
}

func lastInsertID(res sql.Result, err error) (int64, error) {
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
