// Command orbit_class_count is an example of reading a database built by
// lcbgen. It prints the number of small bodies in each orbit class. It is not
// part of the build pipeline.
package main

import (
	"cmp"
	"database/sql"
	"fmt"
	"log"
	"os"
	"slices"
	"text/tabwriter"

	_ "modernc.org/sqlite"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <lcb.db>\n", os.Args[0])
		os.Exit(1)
	}

	db, err := sql.Open("sqlite", "file:"+os.Args[1]+"?mode=ro")
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT o.name, o.location, COUNT(s.small_body_key)
FROM orbit_class o
LEFT JOIN small_body s USING (orbit_class_key)
GROUP BY o.orbit_class_key`)
	if err != nil {
		log.Fatal(err)
	}
	defer rows.Close()

	type entry struct {
		code     string
		location string
		count    int
	}
	var entries []entry
	for rows.Next() {
		var e entry
		if err := rows.Scan(&e.code, &e.location, &e.count); err != nil {
			log.Fatal(err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		log.Fatal(err)
	}

	// Sort by count descending, then by code.
	slices.SortFunc(entries, func(a, b entry) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return cmp.Compare(a.code, b.code)
	})

	total := 0
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "CLASS\tBODIES\tLOCATION\n")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", e.code, e.count, e.location)
		total += e.count
	}
	fmt.Fprintf(tw, "\t\t\n")
	fmt.Fprintf(tw, "TOTAL\t%d\t\n", total)
	tw.Flush()
}
