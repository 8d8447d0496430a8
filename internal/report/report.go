package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tdxplot/tdxplot/internal/tdx"
)

// Report is one TDX ticket export: the raw rows plus the schema resolved
// from its first data row.
type Report struct {
	Filename string

	schema  *Schema
	records []Record
	aliases map[string]string
}

// Load reads a CSV ticket export from disk. The diagnosis aliases table
// maps canonical labels to display names and may be nil.
func Load(path string, aliases map[string]string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening report: %w", err)
	}
	defer f.Close()
	return New(f, path, aliases)
}

// New reads a CSV ticket export from r. The header row supplies the column
// names; the first data row drives schema resolution.
func New(r io.Reader, filename string, aliases map[string]string) (*Report, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, fmt.Errorf("reading report %s: %w", filename, err)
	}
	if len(records) == 0 {
		return nil, EmptyReportError{Filename: filename}
	}

	schema, err := ResolveSchema(records[0])
	if err != nil {
		return nil, err
	}

	slog.Info("report loaded", "filename", filename, "rows", len(records), "timeFormat", schema.TimeFormat)
	return &Report{
		Filename: filename,
		schema:   schema,
		records:  records,
		aliases:  aliases,
	}, nil
}

// Schema exposes the resolved schema so callers can refuse queries the
// report cannot answer.
func (r *Report) Schema() *Schema {
	return r.schema
}

// Populate normalizes every row into a Ticket and registers it with the
// organization. Any row failure aborts the whole ingestion; no partial
// organization is usable afterward.
func (r *Report) Populate(org *tdx.Organization) error {
	for i, rec := range r.records {
		t, err := r.normalize(rec, i+1, org)
		if err != nil {
			return err
		}
		if err := org.AddTicket(t); err != nil {
			return err
		}
	}
	slog.Info("organization populated",
		"tickets", len(org.Tickets),
		"buildings", len(org.Buildings),
		"users", len(org.UsersInOrder()),
		"groups", len(org.Groups),
		"departments", len(org.Departments))
	return nil
}

// normalize converts one raw row into a fully-typed Ticket, resolving
// relational fields through the organization's registries.
func (r *Report) normalize(rec Record, row int, org *tdx.Organization) (*tdx.Ticket, error) {
	s := r.schema

	idText := s.value(rec, FieldID)
	if idText == "" {
		return nil, DataError{Row: row, Msg: "missing ticket id"}
	}
	id, err := strconv.Atoi(strings.TrimSpace(idText))
	if err != nil {
		return nil, DataError{Row: row, Msg: fmt.Sprintf("ticket id %q is not an integer", idText)}
	}

	created, err := r.parseStamp(s.value(rec, FieldCreated), row)
	if err != nil {
		return nil, err
	}
	modified, err := r.parseStamp(s.value(rec, FieldModified), row)
	if err != nil {
		return nil, err
	}

	requestor, err := org.GetOrCreateUser(
		s.value(rec, FieldRequestorEmail),
		s.value(rec, FieldRequestorName),
		s.value(rec, FieldRequestorPhone))
	if err != nil {
		return nil, err
	}

	return &tdx.Ticket{
		Id:               id,
		Title:            s.value(rec, FieldTitle),
		ResponsibleGroup: org.GetOrCreateGroup(s.value(rec, FieldRespGroup)),
		Requestor:        requestor,
		Department:       org.GetOrCreateDepartment(s.value(rec, FieldDepartment)),
		Room:             org.GetOrCreateRoom(s.value(rec, FieldBuilding), s.value(rec, FieldRoom)),
		Created:          created,
		Modified:         modified,
		Diagnoses:        tdx.ParseDiagnoses(s.value(rec, FieldDiagnoses), r.aliases),
		DiagnosesNote:    s.value(rec, FieldDiagnosesNote),
		Status:           s.value(rec, FieldStatus),
	}, nil
}

// parseStamp parses a timestamp with the schema's inferred format. Blank
// is fine (the field stays zero); a value the format rejects means the
// export mixes formats, which aborts the run.
func (r *Report) parseStamp(text string, row int) (time.Time, error) {
	if text == "" {
		return time.Time{}, nil
	}
	if r.schema.TimeFormat == "" {
		return time.Time{}, DataError{Row: row, Msg: "date value present but no time format was resolved"}
	}
	t, err := time.Parse(r.schema.TimeFormat, text)
	if err != nil {
		return time.Time{}, DataError{Row: row, Msg: fmt.Sprintf("time %q does not match report format %q", text, r.schema.TimeFormat)}
	}
	return t, nil
}

// readRecords consumes the CSV once, returning one Record per data row.
// A UTF-8 BOM on the first header cell is stripped; TDX exports carry one.
func readRecords(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header row: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(records)+2, err)
		}
		rec := make(Record, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = strings.TrimSpace(row[i])
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
