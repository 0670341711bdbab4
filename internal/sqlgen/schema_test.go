package sqlgen

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/andrewkroh/go-celestial-db/internal/errs"
)

// testCatalog mirrors the shape of the production catalog with a reduced
// field set.
func testCatalog() Catalog {
	return Catalog{Tables: []TableSpec{
		{Name: "orbit_class", Fields: []Field{{"name", Text}, {"size", Real}, {"location", Text}}, PrimaryKey: true},
		{Name: "planet", Fields: []Field{{"name", Text}, {"ring_exists", Boolean}, {"ring_width", Real}}, PrimaryKey: true},
		{Name: "small_body", Fields: []Field{{"name", Text}, {"size", Real}}, PrimaryKey: true, Foreign: []string{"orbit_class"}},
		{Name: "comet", Fields: []Field{{"has_ice", Boolean}}, Foreign: []string{"small_body"}},
		{Name: "meteor", Fields: []Field{{"lifespan", Integer}}, Foreign: []string{"planet", "small_body"}},
	}}
}

func TestCompile(t *testing.T) {
	stmts, err := Compile(testCatalog())
	if err != nil {
		t.Fatal(err)
	}
	if len(stmts) != 5 {
		t.Fatalf("got %d statements, want 5", len(stmts))
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "primary key and foreign key",
			got:  stmts[2],
			want: "CREATE TABLE small_body (\n" +
				"  small_body_key INTEGER PRIMARY KEY AUTOINCREMENT,\n" +
				"  name TEXT,\n" +
				"  size REAL,\n" +
				"  orbit_class_key INTEGER NOT NULL,\n" +
				"  FOREIGN KEY (orbit_class_key) REFERENCES orbit_class(orbit_class_key)\n" +
				");",
		},
		{
			name: "no primary key",
			got:  stmts[3],
			want: "CREATE TABLE comet (\n" +
				"  has_ice NUMERIC,\n" +
				"  small_body_key INTEGER NOT NULL,\n" +
				"  FOREIGN KEY (small_body_key) REFERENCES small_body(small_body_key)\n" +
				");",
		},
		{
			name: "constraints follow all columns",
			got:  stmts[4],
			want: "CREATE TABLE meteor (\n" +
				"  lifespan NUMERIC,\n" +
				"  planet_key INTEGER NOT NULL,\n" +
				"  small_body_key INTEGER NOT NULL,\n" +
				"  FOREIGN KEY (planet_key) REFERENCES planet(planet_key),\n" +
				"  FOREIGN KEY (small_body_key) REFERENCES small_body(small_body_key)\n" +
				");",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", tt.got, tt.want)
			}
		})
	}
}

func TestCompilePreservesCatalogOrder(t *testing.T) {
	cat := testCatalog()
	stmts, err := Compile(cat)
	if err != nil {
		t.Fatal(err)
	}
	for i, tbl := range cat.Tables {
		prefix := "CREATE TABLE " + tbl.Name + " ("
		if !strings.HasPrefix(stmts[i], prefix) {
			t.Errorf("statement %d = %q, want prefix %q", i, stmts[i][:30], prefix)
		}
	}
}

func TestSQLType(t *testing.T) {
	tests := []struct {
		in   FieldType
		want string
	}{
		{Real, "REAL"},
		{Text, "TEXT"},
		{Boolean, "NUMERIC"},
		{Integer, "NUMERIC"},
	}
	for _, tt := range tests {
		if got := SQLType(tt.in); got != tt.want {
			t.Errorf("SQLType(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuoteReservedColumn(t *testing.T) {
	cat := Catalog{Tables: []TableSpec{
		{Name: "event", Fields: []Field{{"order", Integer}, {"name", Text}}, PrimaryKey: true},
	}}
	stmts, err := Compile(cat)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stmts[0], `"order" NUMERIC`) {
		t.Errorf("reserved column not quoted:\n%s", stmts[0])
	}
	if got := InsertSQL(cat.Tables[0]); got != `INSERT INTO event ("order", name) VALUES (?, ?);` {
		t.Errorf("InsertSQL() = %s", got)
	}
}

func TestCompileRejectsDefects(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
		wantErr string
	}{
		{
			name:    "empty",
			catalog: Catalog{},
			wantErr: "no tables",
		},
		{
			name: "self reference",
			catalog: Catalog{Tables: []TableSpec{
				{Name: "moon", PrimaryKey: true, Foreign: []string{"moon"}},
			}},
			wantErr: "references itself",
		},
		{
			name: "undeclared table",
			catalog: Catalog{Tables: []TableSpec{
				{Name: "moon", Foreign: []string{"planet"}},
			}},
			wantErr: `undeclared table "planet"`,
		},
		{
			name: "referenced table has no key",
			catalog: Catalog{Tables: []TableSpec{
				{Name: "asteroid", Fields: []Field{{"minerals", Text}}},
				{Name: "sample", Foreign: []string{"asteroid"}},
			}},
			wantErr: "has no asteroid_key column",
		},
		{
			name: "cycle",
			catalog: Catalog{Tables: []TableSpec{
				{Name: "a", PrimaryKey: true, Foreign: []string{"c"}},
				{Name: "b", PrimaryKey: true, Foreign: []string{"a"}},
				{Name: "c", PrimaryKey: true, Foreign: []string{"b"}},
			}},
			wantErr: "cycle between tables: a, b, c",
		},
		{
			name: "duplicate table",
			catalog: Catalog{Tables: []TableSpec{
				{Name: "planet", PrimaryKey: true},
				{Name: "planet", PrimaryKey: true},
			}},
			wantErr: "declared more than once",
		},
		{
			name: "duplicate field",
			catalog: Catalog{Tables: []TableSpec{
				{Name: "planet", Fields: []Field{{"name", Text}, {"name", Text}}},
			}},
			wantErr: `column "name"`,
		},
		{
			name: "field collides with key column",
			catalog: Catalog{Tables: []TableSpec{
				{Name: "planet", Fields: []Field{{"planet_key", Integer}}, PrimaryKey: true},
			}},
			wantErr: "collides with primary key",
		},
		{
			name: "duplicate foreign table",
			catalog: Catalog{Tables: []TableSpec{
				{Name: "planet", PrimaryKey: true},
				{Name: "moon", Foreign: []string{"planet", "planet"}},
			}},
			wantErr: `column "planet_key"`,
		},
		{
			name: "missing field type",
			catalog: Catalog{Tables: []TableSpec{
				{Name: "planet", Fields: []Field{{Name: "name"}}},
			}},
			wantErr: "no valid type",
		},
		{
			name: "invalid table name",
			catalog: Catalog{Tables: []TableSpec{
				{Name: "Small Body"},
			}},
			wantErr: "invalid table name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.catalog)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errs.IsSchema(err) {
				t.Errorf("expected schema error kind, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustCompile(Catalog{Tables: []TableSpec{{Name: "x", Foreign: []string{"x"}}}})
}

func TestDependencyOrder(t *testing.T) {
	// Declared out of dependency order on purpose.
	cat := Catalog{Tables: []TableSpec{
		{Name: "meteor", Foreign: []string{"planet", "small_body"}},
		{Name: "small_body", PrimaryKey: true, Foreign: []string{"orbit_class"}},
		{Name: "planet", PrimaryKey: true},
		{Name: "orbit_class", PrimaryKey: true},
	}}

	got, err := DependencyOrder(cat)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"planet", "orbit_class", "small_body", "meteor"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("DependencyOrder() = %v, want %v", got, want)
	}

	// Catalog order is irrelevant to SQLite for FK declarations, so the
	// out-of-order catalog still compiles.
	if _, err := Compile(cat); err != nil {
		t.Errorf("Compile() error: %v", err)
	}
}

func TestInsertSQL(t *testing.T) {
	cat := testCatalog()
	tests := []struct {
		table string
		want  string
	}{
		{"orbit_class", "INSERT INTO orbit_class (name, size, location) VALUES (?, ?, ?);"},
		{"small_body", "INSERT INTO small_body (name, size, orbit_class_key) VALUES (?, ?, ?);"},
		{"meteor", "INSERT INTO meteor (lifespan, planet_key, small_body_key) VALUES (?, ?, ?);"},
	}
	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			if got := MustInsertSQL(cat, tt.table); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCompiledDDLExecutes(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		t.Fatal(err)
	}

	cat := testCatalog()
	for _, ddl := range MustCompile(cat) {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			t.Fatalf("executing %q: %v", ddl, err)
		}
	}

	// The first generated key is 1.
	res, err := db.ExecContext(ctx, MustInsertSQL(cat, "orbit_class"), "AST", 0.0, "Asteroids")
	if err != nil {
		t.Fatal(err)
	}
	if id, _ := res.LastInsertId(); id != 1 {
		t.Errorf("first orbit_class_key = %d, want 1", id)
	}

	// A dangling reference violates the generated constraint.
	_, err = db.ExecContext(ctx, MustInsertSQL(cat, "small_body"), "Ceres", 939.4, 99)
	if err == nil {
		t.Fatal("expected foreign key violation")
	}
}

func TestSqlNameToGoName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"orbit_class", "OrbitClass"},
		{"planet", "Planet"},
		{"small_body", "SmallBody"},
		{"a__b", "AB"},
	}
	for _, tt := range tests {
		if got := sqlNameToGoName(tt.in); got != tt.want {
			t.Errorf("sqlNameToGoName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
