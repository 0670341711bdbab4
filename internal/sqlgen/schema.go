package sqlgen

import (
	"fmt"
	"strings"
)

// sqliteReservedWords contains SQL keywords that must be quoted when used
// as column names.
var sqliteReservedWords = map[string]bool{
	"abort": true, "action": true, "add": true, "after": true, "all": true,
	"alter": true, "analyze": true, "and": true, "as": true, "asc": true,
	"attach": true, "autoincrement": true, "before": true, "begin": true,
	"between": true, "by": true, "cascade": true, "case": true, "cast": true,
	"check": true, "collate": true, "column": true, "commit": true,
	"conflict": true, "constraint": true, "create": true, "cross": true,
	"current": true, "current_date": true, "current_time": true,
	"current_timestamp": true, "database": true, "default": true,
	"deferrable": true, "deferred": true, "delete": true, "desc": true,
	"detach": true, "distinct": true, "do": true, "drop": true, "each": true,
	"else": true, "end": true, "escape": true, "except": true, "exclude": true,
	"exclusive": true, "exists": true, "explain": true, "fail": true,
	"filter": true, "first": true, "following": true, "for": true,
	"foreign": true, "from": true, "full": true, "glob": true, "group": true,
	"groups": true, "having": true, "if": true, "ignore": true,
	"immediate": true, "in": true, "index": true, "indexed": true,
	"initially": true, "inner": true, "insert": true, "instead": true,
	"intersect": true, "into": true, "is": true, "isnull": true, "join": true,
	"key": true, "last": true, "left": true, "like": true, "limit": true,
	"match": true, "natural": true, "no": true, "not": true, "nothing": true,
	"notnull": true, "null": true, "nulls": true, "of": true, "offset": true,
	"on": true, "or": true, "order": true, "others": true, "outer": true,
	"over": true, "partition": true, "plan": true, "pragma": true,
	"preceding": true, "primary": true, "query": true, "raise": true,
	"range": true, "recursive": true, "references": true, "regexp": true,
	"reindex": true, "release": true, "rename": true, "replace": true,
	"restrict": true, "right": true, "rollback": true, "row": true,
	"rows": true, "savepoint": true, "select": true, "set": true,
	"table": true, "temp": true, "temporary": true, "then": true, "ties": true,
	"to": true, "transaction": true, "trigger": true, "unbounded": true,
	"union": true, "unique": true, "update": true, "using": true,
	"vacuum": true, "values": true, "view": true, "virtual": true,
	"when": true, "where": true, "window": true, "with": true, "without": true,
}

// quoteName returns the name quoted with double quotes if it's a reserved
// SQL word, otherwise returns it unchanged.
func quoteName(name string) string {
	if sqliteReservedWords[strings.ToLower(name)] {
		return `"` + name + `"`
	}
	return name
}

// Compile validates the catalog and returns one CREATE TABLE statement per
// table, in catalog order. The output depends only on the catalog, so the
// same catalog always yields identical DDL.
func Compile(c Catalog) ([]string, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	stmts := make([]string, 0, len(c.Tables))
	for _, t := range c.Tables {
		stmts = append(stmts, generateCreateTable(t))
	}
	return stmts, nil
}

// MustCompile is like Compile but panics on a catalog defect. It is meant
// for catalogs that are fixed at build time.
func MustCompile(c Catalog) []string {
	stmts, err := Compile(c)
	if err != nil {
		panic(fmt.Sprintf("sqlgen: compiling catalog: %v", err))
	}
	return stmts
}

// GenerateSchemaSQL joins the compiled statements into schema.sql content.
func GenerateSchemaSQL(stmts []string) string {
	var b strings.Builder
	for i, s := range stmts {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s)
		b.WriteString("\n")
	}
	return b.String()
}

func generateCreateTable(t TableSpec) string {
	cols := ResolveColumns(t)

	var clauses []string
	for _, col := range cols {
		var b strings.Builder
		b.WriteString(quoteName(col.Name))
		b.WriteString(" ")
		b.WriteString(col.SQLType)

		if col.PK {
			b.WriteString(" PRIMARY KEY")
			if col.AutoInc {
				b.WriteString(" AUTOINCREMENT")
			}
		}
		if col.NotNull && !col.PK {
			b.WriteString(" NOT NULL")
		}
		clauses = append(clauses, b.String())
	}

	// Table constraints must follow every column definition.
	for _, col := range cols {
		if col.FK == "" {
			continue
		}
		clauses = append(clauses, fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s(%s)",
			quoteName(col.Name), col.FK, quoteName(KeyColumn(col.FK))))
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("CREATE TABLE %s (\n  ", t.Name))
	b.WriteString(strings.Join(clauses, ",\n  "))
	b.WriteString("\n);")
	return b.String()
}
