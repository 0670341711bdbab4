package sqlgen

// ColumnDef describes a single SQL column or table constraint target derived
// from a catalog table.
type ColumnDef struct {
	Name    string // SQL column name
	SQLType string // INTEGER, NUMERIC, REAL, TEXT
	NotNull bool
	PK      bool   // PRIMARY KEY
	AutoInc bool   // AUTOINCREMENT
	FK      string // referenced table name (e.g. "small_body")
}

// SQLType maps a semantic field type to its column type. The target store
// has no distinct boolean type, so booleans and integers share the untyped
// numeric affinity.
func SQLType(t FieldType) string {
	switch t {
	case Real:
		return "REAL"
	case Text:
		return "TEXT"
	default:
		return "NUMERIC"
	}
}

// ResolveColumns produces the column definitions of a table in DDL order:
// surrogate key, declared fields, then foreign key columns.
func ResolveColumns(t TableSpec) []ColumnDef {
	cols := make([]ColumnDef, 0, len(t.Fields)+len(t.Foreign)+1)

	if t.PrimaryKey {
		cols = append(cols, ColumnDef{
			Name:    t.KeyColumn(),
			SQLType: "INTEGER",
			NotNull: true,
			PK:      true,
			AutoInc: true,
		})
	}

	for _, f := range t.Fields {
		cols = append(cols, ColumnDef{
			Name:    f.Name,
			SQLType: SQLType(f.Type),
		})
	}

	for _, ft := range t.Foreign {
		cols = append(cols, ColumnDef{
			Name:    KeyColumn(ft),
			SQLType: "INTEGER",
			NotNull: true,
			FK:      ft,
		})
	}

	return cols
}
