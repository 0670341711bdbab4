// Package lcbreader reads the CSV datasets of the Local Celestial Bodies
// database into typed, cleaned records.
//
// Each source file must start with a header row; columns are located by
// header name, ignoring case and surrounding whitespace. A missing file, an
// unreadable CSV, or a missing required column is a source error and aborts
// the read. Individual rows that cannot be used are dropped instead: a row
// with an empty value, a row shorter than the header, a number that does not
// parse, or an unknown unit. Dropped rows are counted in [Stats] and can be
// observed with [WithSkipHook].
package lcbreader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/andrewkroh/go-celestial-db/internal/errs"
)

// Stats summarises one source file.
type Stats struct {
	Rows     int // data rows read, excluding the header
	Accepted int // rows converted into records
	Skipped  int // rows dropped by the skip-row policy
}

// Option configures the behavior of the Read functions.
type Option func(*config)

type config struct {
	skipHook func(path string, line int, err error)
}

// WithSkipHook registers a callback invoked for every dropped row with the
// source path, the row's line number and the reason.
func WithSkipHook(fn func(path string, line int, err error)) Option {
	return func(c *config) {
		c.skipHook = fn
	}
}

// column is a required column. Any of the names may appear in the header;
// the first one found is used.
type column []string

// row gives access to one CSV record by column name.
type row struct {
	values []string
	index  map[string]int // required column name → record index
	line   int
}

func (r row) get(name string) string {
	return strings.TrimSpace(r.values[r.index[name]])
}

// readRows opens path in fsys, binds the required columns from the header
// and converts every usable row with parse. Columns are looked up in parse
// by their first alias.
func readRows[T any](fsys fs.FS, path string, required []column, parse func(row) (T, error), opts []Option) ([]T, Stats, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	var stats Stats

	f, err := fsys.Open(path)
	if err != nil {
		return nil, stats, errs.Wrap(errs.ErrKindSource, "opening "+path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, stats, errs.New(errs.ErrKindSource, path+": missing header row")
		}
		return nil, stats, errs.Wrap(errs.ErrKindSource, "reading header of "+path, err)
	}

	index, err := bindColumns(header, required)
	if err != nil {
		return nil, stats, errs.Wrap(errs.ErrKindSource, path, err)
	}

	var out []T
	for {
		values, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, errs.Wrap(errs.ErrKindSource, "reading "+path, err)
		}
		stats.Rows++
		line, _ := cr.FieldPos(0)

		rec, err := convertRow(values, len(header), index, line, parse)
		if err != nil {
			if !errs.IsInvalidRow(err) {
				return nil, stats, fmt.Errorf("%s line %d: %w", path, line, err)
			}
			stats.Skipped++
			if cfg.skipHook != nil {
				cfg.skipHook(path, line, err)
			}
			continue
		}
		stats.Accepted++
		out = append(out, rec)
	}

	return out, stats, nil
}

func convertRow[T any](values []string, width int, index map[string]int, line int, parse func(row) (T, error)) (T, error) {
	var zero T
	if len(values) < width {
		return zero, errs.Newf(errs.ErrKindInvalidRow, "%d of %d values present", len(values), width)
	}
	for i, v := range values {
		if strings.TrimSpace(v) == "" {
			return zero, errs.Newf(errs.ErrKindInvalidRow, "empty value in column %d", i+1)
		}
	}
	return parse(row{values: values, index: index, line: line})
}

// bindColumns maps each required column's primary name to its position in
// the header.
func bindColumns(header []string, required []column) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := positions[h]; !dup {
			positions[h] = i
		}
	}

	index := make(map[string]int, len(required))
	for _, col := range required {
		found := false
		for _, alias := range col {
			if pos, ok := positions[strings.ToLower(alias)]; ok {
				index[col[0]] = pos
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("missing column %q in header %v", strings.Join(col, "|"), header)
		}
	}
	return index, nil
}
