// Package lcbsql loads the Local Celestial Bodies dataset into a SQLite
// database. It compiles [DefaultCatalog] into CREATE TABLE statements,
// derives typed insert queries from the same catalog, and inserts the fixed
// orbit-class and planet tables followed by the CSV sources read with
// lcbreader.
//
// The primary entry point is [Write], which creates the tables and loads
// everything in a single transaction. [TableSchemas] returns the DDL.
//
// Rows are inserted in dependency order. Asteroid, comet and meteor rows
// share the surrogate key of the small_body row inserted just before them;
// the loader tracks that key as a running counter and fails if the database
// assigns a different one.
//
// This package imports only [database/sql] and does not depend on any
// SQLite driver. The consumer must import a driver (e.g. modernc.org/sqlite)
// and pass a *sql.DB.
package lcbsql
