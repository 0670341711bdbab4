package sqlgen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all configuration for a SQL generator run.
type Config struct {
	TablesFile  string   // Path to a YAML catalog; empty uses Catalog
	Catalog     *Catalog // Built-in catalog used when TablesFile is empty
	OutputDir   string   // Output directory for generated files
	PackageName string   // Go package name
}

// Run executes the full SQL generation pipeline.
func Run(cfg Config) error {
	// 1. Load the catalog.
	cat := cfg.Catalog
	if cfg.TablesFile != "" {
		var err error
		cat, err = LoadCatalog(cfg.TablesFile)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
	}
	if cat == nil {
		return fmt.Errorf("no catalog: set a tables file or a built-in catalog")
	}

	// 2. Compile. This also validates the catalog.
	stmts, err := Compile(*cat)
	if err != nil {
		return fmt.Errorf("compiling catalog: %w", err)
	}

	// 3. Create output directory.
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	// 4. Generate schema.sql.
	if err := os.WriteFile(filepath.Join(cfg.OutputDir, "schema.sql"), []byte(GenerateSchemaSQL(stmts)), 0o644); err != nil {
		return fmt.Errorf("writing schema.sql: %w", err)
	}

	// 5. Generate tables.go.
	pkgName := cfg.PackageName
	if pkgName == "" {
		pkgName = "lcbschema"
	}
	var buf bytes.Buffer
	if err := EmitGo(&buf, pkgName, *cat); err != nil {
		return fmt.Errorf("generating tables.go: %w", err)
	}
	if err := os.WriteFile(filepath.Join(cfg.OutputDir, "tables.go"), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing tables.go: %w", err)
	}

	return nil
}
