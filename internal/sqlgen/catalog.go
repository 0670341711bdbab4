package sqlgen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// FieldType is the semantic type of a catalog field.
type FieldType int

const (
	Boolean FieldType = iota + 1
	Integer
	Real
	Text
)

var fieldTypeNames = map[FieldType]string{
	Boolean: "boolean",
	Integer: "integer",
	Real:    "real",
	Text:    "text",
}

func (t FieldType) String() string {
	if name, ok := fieldTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("FieldType(%d)", int(t))
}

// Valid reports whether t is one of the declared field types.
func (t FieldType) Valid() bool {
	_, ok := fieldTypeNames[t]
	return ok
}

// ParseFieldType converts a type name (boolean, integer, real, text) into a
// FieldType.
func ParseFieldType(s string) (FieldType, error) {
	for t, name := range fieldTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown field type %q (must be boolean, integer, real, or text)", s)
}

// UnmarshalYAML implements [yaml.Unmarshaler] for FieldType.
func (t *FieldType) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected field type scalar, got YAML kind %d", node.Line, node.Kind)
	}
	ft, err := ParseFieldType(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*t = ft
	return nil
}

// MarshalYAML implements [yaml.Marshaler] for FieldType.
func (t FieldType) MarshalYAML() (any, error) {
	return t.String(), nil
}

// Field is one typed column of a catalog table.
type Field struct {
	Name string    `yaml:"name"`
	Type FieldType `yaml:"type"`
}

// TableSpec declares one table of the catalog.
type TableSpec struct {
	// Name is the SQL table name.
	Name string `yaml:"name"`

	// Fields are the data columns in declaration order.
	Fields []Field `yaml:"fields"`

	// PrimaryKey adds a "{name}_key" auto-incrementing primary key.
	PrimaryKey bool `yaml:"primary_key"`

	// Foreign lists referenced tables. Each adds a required
	// "{foreign}_key" column and a FOREIGN KEY constraint.
	Foreign []string `yaml:"foreign"`
}

// KeyColumn returns the surrogate key column name of the table.
func (t TableSpec) KeyColumn() string {
	return KeyColumn(t.Name)
}

// KeyColumn returns the surrogate key column name for a table name.
func KeyColumn(table string) string {
	return table + "_key"
}

// Catalog is the ordered set of table declarations. Order is significant:
// tables are compiled in slice order.
type Catalog struct {
	Tables []TableSpec `yaml:"tables"`
}

// Table returns the table declaration with the given name.
func (c Catalog) Table(name string) (TableSpec, bool) {
	for _, t := range c.Tables {
		if t.Name == name {
			return t, true
		}
	}
	return TableSpec{}, false
}

// Names returns the table names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.Tables))
	for i, t := range c.Tables {
		names[i] = t.Name
	}
	return names
}

// LoadCatalog reads and parses a YAML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	cat, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return cat, nil
}

// ParseCatalog decodes a YAML catalog. Unknown keys are rejected.
func ParseCatalog(data []byte) (*Catalog, error) {
	var cat Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cat); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if len(cat.Tables) == 0 {
		return nil, fmt.Errorf("no tables defined")
	}
	return &cat, nil
}
