package sqlgen

import (
	"fmt"
	"strings"
)

// InsertColumns returns the columns an INSERT into t binds, in order:
// declared fields followed by foreign key columns. The surrogate key is
// left to the database.
func InsertColumns(t TableSpec) []string {
	var names []string
	for _, col := range ResolveColumns(t) {
		if col.PK {
			continue
		}
		names = append(names, col.Name)
	}
	return names
}

// InsertSQL returns a parameterized INSERT statement for t. Arguments must
// be bound in InsertColumns order.
func InsertSQL(t TableSpec) string {
	cols := InsertColumns(t)

	quoted := make([]string, len(cols))
	placeholders := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = quoteName(c)
		placeholders[i] = "?"
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);",
		t.Name, strings.Join(quoted, ", "), strings.Join(placeholders, ", "))
}

// MustInsertSQL returns the INSERT statement for a table declared in c. It
// panics if the table is missing.
func MustInsertSQL(c Catalog, table string) string {
	return InsertSQL(mustDeclare(c, table))
}

// sqlNameToGoName converts a SQL table name (e.g. "orbit_class") to a Go
// identifier (e.g. "OrbitClass").
func sqlNameToGoName(sqlName string) string {
	parts := strings.Split(sqlName, "_")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		b.WriteString(string(runes))
	}
	return b.String()
}
