package report

import "fmt"

// SchemaError means the report as a whole cannot be processed: no identity
// column, or no recognizable timestamp format. Raised before any ticket is
// ingested.
type SchemaError struct {
	Msg string
}

func (e SchemaError) Error() string {
	return fmt.Sprintf("bad report schema: %s", e.Msg)
}

// DataError means a row held a value the resolved schema cannot explain,
// such as a malformed id or a date that breaks the inferred format.
// Inconsistent rows indicate a bad export, so the whole run aborts rather
// than skipping the row.
type DataError struct {
	Row int
	Msg string
}

func (e DataError) Error() string {
	return fmt.Sprintf("bad report data (row %d): %s", e.Row, e.Msg)
}

// EmptyReportError means the report held a header but zero data rows.
type EmptyReportError struct {
	Filename string
}

func (e EmptyReportError) Error() string {
	return fmt.Sprintf("report %s has no ticket rows", e.Filename)
}
