package lcbsql

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/andrewkroh/go-celestial-db/internal/errs"
	"github.com/andrewkroh/go-celestial-db/lcbreader"
	"github.com/andrewkroh/go-celestial-db/lcbspec"
)

// Sources names the CSV files, relative to the fs.FS given to Write. An
// empty name skips that source.
type Sources struct {
	Comets    string
	Asteroids string
	Moons     string
	Meteors   string
}

// DefaultSources returns the standard data file names.
func DefaultSources() Sources {
	return Sources{
		Comets:    "comet.csv",
		Asteroids: "asteroid.csv",
		Moons:     "moon.csv",
		Meteors:   "meteor.csv",
	}
}

// Option configures the behavior of Write.
type Option func(*writeConfig)

type writeConfig struct {
	rand    *rand.Rand
	log     zerolog.Logger
	sources Sources
}

// WithRand sets the random source used for the synthesized asteroid,
// comet and meteor attributes. A seeded source makes the output
// reproducible.
func WithRand(r *rand.Rand) Option {
	return func(c *writeConfig) {
		c.rand = r
	}
}

// WithLogger sets the logger that receives progress at info level and
// skipped rows at debug level. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *writeConfig) {
		c.log = log
	}
}

// WithSources overrides the CSV file names.
func WithSources(s Sources) Option {
	return func(c *writeConfig) {
		c.sources = s
	}
}

// Report summarises a completed load.
type Report struct {
	// Inserted counts rows per table.
	Inserted map[string]int

	// Sources holds the reader statistics per CSV file. Moons dropped for
	// an unknown planet are included in Skipped.
	Sources map[string]lcbreader.Stats
}

// Skipped returns the total number of dropped source rows.
func (r *Report) Skipped() int {
	n := 0
	for _, s := range r.Sources {
		n += s.Skipped
	}
	return n
}

// Write creates every table of DefaultCatalog and loads the fixed tables
// and the CSV sources found in fsys. Everything after table creation runs
// in one transaction; any error rolls it back and is returned. The tables
// must not already exist.
func Write(ctx context.Context, db *sql.DB, fsys fs.FS, opts ...Option) (*Report, error) {
	cfg := &writeConfig{
		log:     zerolog.Nop(),
		sources: DefaultSources(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rand == nil {
		cfg.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	// Foreign key enforcement is per connection, so the pragma, the DDL
	// and the transaction share one.
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindDatabase, "acquiring connection", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return nil, errs.Wrap(errs.ErrKindDatabase, "enabling foreign keys", err)
	}

	for i, ddl := range Creates {
		if _, err := conn.ExecContext(ctx, ddl); err != nil {
			return nil, errs.Wrap(errs.ErrKindDatabase, "creating table "+DefaultCatalog.Tables[i].Name, err)
		}
		cfg.log.Info().Str("table", DefaultCatalog.Tables[i].Name).Msg("created table")
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindDatabase, "beginning transaction", err)
	}
	defer tx.Rollback()

	cache := newStmtCache(tx)
	defer cache.close()

	l := &loader{
		q:             New(cache),
		fsys:          fsys,
		cfg:           cfg,
		nextSmallBody: 1,
		report: &Report{
			Inserted: make(map[string]int, len(DefaultCatalog.Tables)),
			Sources:  make(map[string]lcbreader.Stats),
		},
	}

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"orbit classes", l.writeOrbitClasses},
		{"planets", l.writePlanets},
		{"comets", l.writeComets},
		{"asteroids", l.writeAsteroids},
		{"meteors", l.writeMeteors},
		{"moons", l.writeMoons},
	}
	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			return nil, fmt.Errorf("loading %s: %w", step.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, errs.Wrap(errs.ErrKindDatabase, "committing", err)
	}
	return l.report, nil
}

// loader carries the state of one Write call.
type loader struct {
	q      *Queries
	fsys   fs.FS
	cfg    *writeConfig
	report *Report

	// nextSmallBody is the key the next small_body row receives.
	nextSmallBody int64
}

func (l *loader) writeOrbitClasses(ctx context.Context) error {
	for _, oc := range lcbspec.OrbitClasses {
		_, err := l.q.InsertOrbitClass(ctx, InsertOrbitClassParams{
			Name:     oc.Code,
			Size:     oc.Size,
			Location: oc.Location,
		})
		if err != nil {
			return errs.Wrap(errs.ErrKindDatabase, "inserting orbit class "+oc.Code, err)
		}
		l.report.Inserted[TableOrbitClass]++
	}
	return nil
}

func (l *loader) writePlanets(ctx context.Context) error {
	for _, p := range lcbspec.Planets {
		_, err := l.q.InsertPlanet(ctx, InsertPlanetParams{
			Name:             p.Name,
			Climate:          p.Climate,
			Temperature:      p.Temperature,
			DefiningFeatures: p.DefiningFeatures,
			RingExists:       p.RingExists,
			RingColor:        p.RingColor,
			RingWidth:        p.RingWidth,
		})
		if err != nil {
			return errs.Wrap(errs.ErrKindDatabase, "inserting planet "+p.Name, err)
		}
		l.report.Inserted[TablePlanet]++
	}
	return nil
}

func (l *loader) writeComets(ctx context.Context) error {
	return l.writeSmallBodies(ctx, l.cfg.sources.Comets, func(key int64) error {
		tr := lcbspec.NewCometTraits(l.cfg.rand)
		if err := l.q.InsertComet(ctx, InsertCometParams{
			HasIce:       tr.HasIce,
			HasDust:      tr.HasDust,
			HasTail:      tr.HasTail,
			SmallBodyKey: key,
		}); err != nil {
			return err
		}
		l.report.Inserted[TableComet]++
		return nil
	})
}

func (l *loader) writeAsteroids(ctx context.Context) error {
	return l.writeSmallBodies(ctx, l.cfg.sources.Asteroids, func(key int64) error {
		tr := lcbspec.NewAsteroidTraits(l.cfg.rand)
		if err := l.q.InsertAsteroid(ctx, InsertAsteroidParams{
			HasSolidComposition: tr.HasSolidComposition,
			Minerals:            tr.Minerals,
			SmallBodyKey:        key,
		}); err != nil {
			return err
		}
		l.report.Inserted[TableAsteroid]++
		return nil
	})
}

// writeSmallBodies inserts one small_body row per accepted record of path,
// followed by the dependent row written by insertDependent.
func (l *loader) writeSmallBodies(ctx context.Context, path string, insertDependent func(key int64) error) error {
	if path == "" {
		return nil
	}
	bodies, stats, err := lcbreader.ReadSmallBodies(l.fsys, path, l.skipHook())
	if err != nil {
		return err
	}
	l.report.Sources[path] = stats

	for _, b := range bodies {
		classKey, err := lcbspec.OrbitClassKey(b.OrbitClass)
		if err != nil {
			return errs.Wrap(errs.ErrKindConstraint, fmt.Sprintf("%s line %d", path, b.Line), err)
		}
		key, err := l.insertSmallBody(ctx, b.Name, b.Diameter, classKey)
		if err != nil {
			return err
		}
		if err := insertDependent(key); err != nil {
			return errs.Wrap(errs.ErrKindDatabase, fmt.Sprintf("%s line %d", path, b.Line), err)
		}
	}

	l.logSource(path, stats)
	return nil
}

const metresPerKm = 1000.0

func (l *loader) writeMeteors(ctx context.Context) error {
	path := l.cfg.sources.Meteors
	if path == "" {
		return nil
	}
	meteors, stats, err := lcbreader.ReadMeteors(l.fsys, path, l.skipHook())
	if err != nil {
		return err
	}
	l.report.Sources[path] = stats

	classKey, err := lcbspec.OrbitClassKey(lcbspec.MeteorOrbitClass)
	if err != nil {
		return errs.Wrap(errs.ErrKindConstraint, "meteor orbit class", err)
	}
	planetKey, err := lcbspec.PlanetKey(lcbspec.MeteorPlanet)
	if err != nil {
		return errs.Wrap(errs.ErrKindConstraint, "meteor planet", err)
	}

	for _, m := range meteors {
		// small_body.size is in kilometres for every source.
		key, err := l.insertSmallBody(ctx, m.Name, lcbspec.RadiusFromMass(m.MassKg)/metresPerKm, classKey)
		if err != nil {
			return err
		}
		err = l.q.InsertMeteor(ctx, InsertMeteorParams{
			Lifespan:     int64(lcbspec.Lifespan(l.cfg.rand, m.MassKg)),
			PlanetKey:    planetKey,
			SmallBodyKey: key,
		})
		if err != nil {
			return errs.Wrap(errs.ErrKindDatabase, fmt.Sprintf("%s line %d", path, m.Line), err)
		}
		l.report.Inserted[TableMeteor]++
	}

	l.logSource(path, stats)
	return nil
}

func (l *loader) writeMoons(ctx context.Context) error {
	path := l.cfg.sources.Moons
	if path == "" {
		return nil
	}
	moons, stats, err := lcbreader.ReadMoons(l.fsys, path, l.skipHook())
	if err != nil {
		return err
	}

	for _, m := range moons {
		planetKey, err := lcbspec.PlanetKey(m.Planet)
		if err != nil {
			stats.Accepted--
			stats.Skipped++
			l.cfg.log.Debug().Str("source", path).Int("line", m.Line).Err(err).Msg("skipping row")
			continue
		}
		err = l.q.InsertMoon(ctx, InsertMoonParams{
			Name:      m.Name,
			Size:      m.Radius,
			Distance:  m.GM,
			PlanetKey: planetKey,
		})
		if err != nil {
			return errs.Wrap(errs.ErrKindDatabase, fmt.Sprintf("%s line %d", path, m.Line), err)
		}
		l.report.Inserted[TableMoon]++
	}

	l.report.Sources[path] = stats
	l.logSource(path, stats)
	return nil
}

// insertSmallBody inserts a small_body row and checks that it received the
// key the loader expects.
func (l *loader) insertSmallBody(ctx context.Context, name string, size float64, orbitClassKey int64) (int64, error) {
	want := l.nextSmallBody
	got, err := l.q.InsertSmallBody(ctx, InsertSmallBodyParams{
		Name:          name,
		Size:          size,
		OrbitClassKey: orbitClassKey,
	})
	if err != nil {
		return 0, errs.Wrap(errs.ErrKindDatabase, fmt.Sprintf("inserting small body %q", name), err)
	}
	if got != want {
		return 0, errs.Newf(errs.ErrKindConstraint, "small body %q received key %d, expected %d", name, got, want)
	}
	l.nextSmallBody++
	l.report.Inserted[TableSmallBody]++
	return want, nil
}

func (l *loader) skipHook() lcbreader.Option {
	return lcbreader.WithSkipHook(func(path string, line int, err error) {
		l.cfg.log.Debug().Str("source", path).Int("line", line).Err(err).Msg("skipping row")
	})
}

func (l *loader) logSource(path string, stats lcbreader.Stats) {
	l.cfg.log.Info().
		Str("source", path).
		Int("rows", stats.Rows).
		Int("accepted", stats.Accepted).
		Int("skipped", stats.Skipped).
		Msg("loaded source")
}
