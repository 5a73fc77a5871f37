// Package core provides the business logic for importing archived monthly
// statistics from a spreadsheet CSV export into PostgreSQL.
//
// The package has no knowledge of configuration sources or process setup; it
// can be driven by the importer command, by tests, or by any other caller that
// can hand it a pgx connection and an io.Reader.
//
// # Pipeline
//
// An import is a single linear pass:
//
//  1. [NewCSVReader] decodes the input (UTF-8, optional BOM) into rows.
//  2. [ResolveMonths] turns the header row into month numbers.
//  3. For every data row, [Classify] maps the row label to a canonical
//     category and optional subcategory.
//  4. For every month cell, [ParseAmount] turns a Polish-formatted amount
//     ("1 234,50") into a decimal, or reports no value.
//  5. [Importer.Write] inserts each [Record] with [InsertRecord] inside one
//     transaction and commits once at the end.
//
// # Error Handling
//
// Cells that cannot be parsed are skipped silently and counted in
// [ImportResult.Skipped]. Everything else (unreadable CSV, missing header,
// connection, insert or commit failures) aborts the run without committing.
// [MapError] turns such errors into a [UserMessage] with a support code:
//
//   - DB001-DB099: Database errors (missing table, auth, constraints)
//   - FILE001-FILE099: Input file errors (missing, malformed, empty)
//   - IMP001-IMP099: Import run errors (cancelled, timed out)
package core
