// Command gensql compiles a table catalog into schema.sql and a Go file of
// table names and CREATE TABLE statements. Without -tables it compiles the
// built-in catalog of the celestial bodies database.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/andrewkroh/go-celestial-db/internal/sqlgen"
	"github.com/andrewkroh/go-celestial-db/lcbsql"
)

func main() {
	cfg := sqlgen.Config{Catalog: &lcbsql.DefaultCatalog}

	flag.StringVar(&cfg.TablesFile, "tables", "", "Path to a tables.yml catalog (default: built-in catalog)")
	flag.StringVar(&cfg.OutputDir, "output", "lcbschema", "Output directory for generated files")
	flag.StringVar(&cfg.PackageName, "package", "lcbschema", "Go package name for generated files")
	flag.Parse()

	if err := sqlgen.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
