package sqlgen

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/andrewkroh/go-celestial-db/internal/errs"
)

var identRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Validate checks the catalog for defects that would produce invalid DDL or
// an unloadable schema: bad or duplicate names, references to undeclared
// tables, self references, and dependency cycles. All defects are reported
// as errs.ErrKindSchema.
func (c Catalog) Validate() error {
	if len(c.Tables) == 0 {
		return errs.New(errs.ErrKindSchema, "catalog has no tables")
	}

	declared := make(map[string]TableSpec, len(c.Tables))
	for _, t := range c.Tables {
		if !identRe.MatchString(t.Name) {
			return errs.Newf(errs.ErrKindSchema, "invalid table name %q", t.Name)
		}
		if _, dup := declared[t.Name]; dup {
			return errs.Newf(errs.ErrKindSchema, "table %q declared more than once", t.Name)
		}
		declared[t.Name] = t
	}

	for _, t := range c.Tables {
		if err := validateTable(t, declared); err != nil {
			return err
		}
	}

	if _, err := DependencyOrder(c); err != nil {
		return err
	}
	return nil
}

func validateTable(t TableSpec, declared map[string]TableSpec) error {
	columns := make(map[string]string) // column → origin
	claim := func(col, origin string) error {
		if prev, ok := columns[col]; ok {
			return errs.Newf(errs.ErrKindSchema, "table %q: column %q from %s collides with %s", t.Name, col, origin, prev)
		}
		columns[col] = origin
		return nil
	}

	if t.PrimaryKey {
		if err := claim(t.KeyColumn(), "primary key"); err != nil {
			return err
		}
	}

	for _, f := range t.Fields {
		if !identRe.MatchString(f.Name) {
			return errs.Newf(errs.ErrKindSchema, "table %q: invalid field name %q", t.Name, f.Name)
		}
		if !f.Type.Valid() {
			return errs.Newf(errs.ErrKindSchema, "table %q: field %q has no valid type", t.Name, f.Name)
		}
		if err := claim(f.Name, "field"); err != nil {
			return err
		}
	}

	for _, ft := range t.Foreign {
		if ft == t.Name {
			return errs.Newf(errs.ErrKindSchema, "table %q references itself", t.Name)
		}
		ref, ok := declared[ft]
		if !ok {
			return errs.Newf(errs.ErrKindSchema, "table %q references undeclared table %q", t.Name, ft)
		}
		if !ref.PrimaryKey {
			return errs.Newf(errs.ErrKindSchema, "table %q references %q, which has no %s column", t.Name, ft, ref.KeyColumn())
		}
		if err := claim(KeyColumn(ft), "foreign table "+ft); err != nil {
			return err
		}
	}
	return nil
}

// DependencyOrder returns table names in dependency order (referenced tables
// before the tables referencing them) using Kahn's algorithm. Ties are broken
// by catalog position so the result is deterministic. References to
// undeclared tables are ignored here; Validate reports them.
func DependencyOrder(c Catalog) ([]string, error) {
	position := make(map[string]int, len(c.Tables))
	for i, t := range c.Tables {
		position[t.Name] = i
	}

	inDegree := make(map[string]int, len(c.Tables))
	dependents := make(map[string][]string, len(c.Tables))
	for _, t := range c.Tables {
		inDegree[t.Name] += 0
		for _, ft := range t.Foreign {
			if _, ok := position[ft]; !ok {
				continue
			}
			inDegree[t.Name]++
			dependents[ft] = append(dependents[ft], t.Name)
		}
	}

	var queue []string
	for _, t := range c.Tables {
		if inDegree[t.Name] == 0 {
			queue = append(queue, t.Name)
		}
	}

	byPosition := func(a, b string) int { return position[a] - position[b] }

	result := make([]string, 0, len(c.Tables))
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node)

		for _, dep := range dependents[node] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
				slices.SortFunc(queue, byPosition)
			}
		}
	}

	if len(result) != len(c.Tables) {
		var cyclic []string
		for _, t := range c.Tables {
			if inDegree[t.Name] > 0 {
				cyclic = append(cyclic, t.Name)
			}
		}
		return nil, errs.Newf(errs.ErrKindSchema, "foreign key cycle between tables: %s", strings.Join(cyclic, ", "))
	}
	return result, nil
}

// mustDeclare is used by generators that index into the catalog by name.
func mustDeclare(c Catalog, name string) TableSpec {
	t, ok := c.Table(name)
	if !ok {
		panic(fmt.Sprintf("sqlgen: table %q is not declared in the catalog", name))
	}
	return t
}
