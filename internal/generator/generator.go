// Package generator builds the database snapshot: it replaces the output
// file, opens it with the SQLite driver and runs the loader over the data
// directory.
package generator

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/andrewkroh/go-celestial-db/internal/config"
	"github.com/andrewkroh/go-celestial-db/internal/errs"
	"github.com/andrewkroh/go-celestial-db/internal/logger"
	"github.com/andrewkroh/go-celestial-db/lcbsql"
)

// Config holds all configuration for a generator run.
type Config struct {
	Output  string         // SQLite file to recreate
	DataDir string         // directory holding the CSV sources
	Sources lcbsql.Sources // file names inside DataDir
	Seed    *uint64        // fixed seed for synthesized attributes; nil draws one
}

// FromConfig converts the command configuration.
func FromConfig(c *config.Config) Config {
	return Config{
		Output:  c.Output,
		DataDir: c.DataDir,
		Sources: lcbsql.Sources{
			Comets:    c.Files.Comets,
			Asteroids: c.Files.Asteroids,
			Moons:     c.Files.Moons,
			Meteors:   c.Files.Meteors,
		},
		Seed: c.Seed,
	}
}

// Run executes the full snapshot pipeline. On failure the output file is
// removed so that no partial database is left behind.
func Run(ctx context.Context, cfg Config, log *logger.Logger) (report *lcbsql.Report, err error) {
	if log == nil {
		log = logger.Nop()
	}

	// 1. Remove the stale snapshot.
	if err := removeIfExists(cfg.Output); err != nil {
		return nil, fmt.Errorf("removing stale output: %w", err)
	}
	log.Debugf("cleared output path %s", cfg.Output)

	// 2. Check the data directory.
	if info, err := os.Stat(cfg.DataDir); err != nil {
		return nil, errs.Wrap(errs.ErrKindSource, "data directory", err)
	} else if !info.IsDir() {
		return nil, errs.Newf(errs.ErrKindSource, "data directory %s is not a directory", cfg.DataDir)
	}
	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}

	// 3. Open the database.
	db, err := sql.Open("sqlite", cfg.Output+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindDatabase, "opening "+cfg.Output, err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = errs.Wrap(errs.ErrKindDatabase, "closing "+cfg.Output, cerr)
		}
		if err != nil {
			if rerr := removeIfExists(cfg.Output); rerr != nil {
				log.Error("removing partial output", rerr)
			}
			report = nil
		}
	}()

	// 4. Load.
	loadLog := log.With().Str("output", cfg.Output).Logger()
	opts := []lcbsql.Option{
		lcbsql.WithLogger(loadLog.Zerolog()),
		lcbsql.WithSources(cfg.Sources),
	}
	if cfg.Seed != nil {
		opts = append(opts, lcbsql.WithRand(rand.New(rand.NewPCG(*cfg.Seed, *cfg.Seed))))
	}
	report, err = lcbsql.Write(ctx, db, os.DirFS(cfg.DataDir), opts...)
	if err != nil {
		return nil, err
	}

	log.Infof("wrote %s: %d small bodies, %d moons, %d rows skipped",
		cfg.Output, report.Inserted[lcbsql.TableSmallBody], report.Inserted[lcbsql.TableMoon], report.Skipped())
	if n := report.Skipped(); n > 0 {
		log.Warnf("%d source rows were skipped; rerun with -v to list them", n)
	}
	return report, nil
}

func removeIfExists(path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
