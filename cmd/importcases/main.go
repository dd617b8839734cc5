// Command importcases converts a case intake Excel workbook into a SQL
// seed file for the cases table. The first sheet is read row by row;
// the expected columns are case number, client, base type, subtype,
// state, last update (YYYY-MM-DD), description and attorney.
// Usage: go run ./cmd/importcases intake.xlsx
// Output: db/seeds/cases.sql
package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"lexconnect/internal/domain"
)

type caseRow struct {
	caseNumber   string
	clientName   string
	baseType     string
	subtype      string
	state        string
	lastUpdate   string
	description  string
	attorneyName string
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: importcases <workbook.xlsx>")
	}
	xlsxPath := os.Args[1]
	outPath := "db/seeds/cases.sql"

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	var cases []caseRow
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		r, err := parseRow(row)
		if err != nil {
			log.Printf("skipping row %d: %v", i+1, err)
			continue
		}
		cases = append(cases, r)
	}
	if len(cases) == 0 {
		return fmt.Errorf("no importable rows in %q", xlsxPath)
	}
	log.Printf("%s: %d cases", sheet, len(cases))

	if err := os.MkdirAll("db/seeds", 0o755); err != nil {
		return fmt.Errorf("create seeds dir: %w", err)
	}
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	fmt.Fprintf(out, "-- Case seed data generated from %s.\n", xlsxPath)
	fmt.Fprintf(out, "-- %d cases.\n", len(cases))
	fmt.Fprintln(out, "BEGIN;")
	for i, c := range cases {
		fmt.Fprintf(out,
			"INSERT INTO cases (id, case_number, client_name, base_type, subtype, state, last_update, description, attorney_name) VALUES ('CASO%03d', %s, %s, %s, %s, %s, %s, %s, %s);\n",
			i+1, q(c.caseNumber), q(c.clientName), q(c.baseType), q(c.subtype),
			q(c.state), q(c.lastUpdate), q(c.description), q(c.attorneyName))
	}
	fmt.Fprintln(out, "COMMIT;")

	log.Printf("wrote %s", outPath)
	return nil
}

func parseRow(row []string) (caseRow, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	r := caseRow{
		caseNumber:   cell(0),
		clientName:   cell(1),
		baseType:     strings.ToLower(cell(2)),
		subtype:      cell(3),
		state:        strings.ToLower(cell(4)),
		lastUpdate:   cell(5),
		description:  cell(6),
		attorneyName: cell(7),
	}
	if r.caseNumber == "" || r.clientName == "" {
		return caseRow{}, fmt.Errorf("missing case number or client")
	}
	if !domain.ValidCaseBaseTypes[domain.CaseBaseType(r.baseType)] {
		return caseRow{}, fmt.Errorf("unknown base type %q", r.baseType)
	}
	if !domain.ValidCaseStates[domain.CaseState(r.state)] {
		return caseRow{}, fmt.Errorf("unknown state %q", r.state)
	}
	if _, err := time.Parse(domain.DateLayout, r.lastUpdate); err != nil {
		return caseRow{}, fmt.Errorf("invalid last update %q", r.lastUpdate)
	}
	return r, nil
}

func q(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
