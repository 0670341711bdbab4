package sqlgen

import (
	"fmt"
	"io"

	"github.com/dave/jennifer/jen"
)

// EmitGo writes a Go source file for package pkg containing the table name
// constants, the CREATE TABLE and INSERT statements of the catalog, and a
// Creates slice in catalog order.
func EmitGo(w io.Writer, pkg string, c Catalog) error {
	stmts, err := Compile(c)
	if err != nil {
		return err
	}

	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by gensql. DO NOT EDIT.")

	f.Comment("Table names.")
	f.Const().DefsFunc(func(g *jen.Group) {
		for _, t := range c.Tables {
			g.Id("Table" + sqlNameToGoName(t.Name)).Op("=").Lit(t.Name)
		}
	})
	f.Line()

	for i, t := range c.Tables {
		goName := sqlNameToGoName(t.Name)
		f.Commentf("Create%s creates the %s table.", goName, t.Name)
		f.Const().Id("Create" + goName).Op("=").Lit(stmts[i])
		f.Line()
		f.Commentf("Insert%s inserts one %s row. Bind order: %v.", goName, t.Name, InsertColumns(t))
		f.Const().Id("Insert" + goName).Op("=").Lit(InsertSQL(t))
		f.Line()
	}

	f.Comment("Creates holds the CREATE TABLE statements in catalog order.")
	f.Var().Id("Creates").Op("=").Index().String().ValuesFunc(func(g *jen.Group) {
		for _, t := range c.Tables {
			g.Id("Create" + sqlNameToGoName(t.Name))
		}
	})

	if err := f.Render(w); err != nil {
		return fmt.Errorf("rendering %s: %w", pkg, err)
	}
	return nil
}
