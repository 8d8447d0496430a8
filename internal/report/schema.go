package report

import (
	"log/slog"
	"time"
)

// Record is one raw report row: column name to string value.
type Record map[string]string

// Field is a canonical ticket attribute name, independent of which report
// template produced the file.
type Field string

const (
	FieldID             Field = "id"
	FieldTitle          Field = "title"
	FieldRespGroup      Field = "respgroup"
	FieldRequestorName  Field = "requestorname"
	FieldRequestorEmail Field = "requestoremail"
	FieldRequestorPhone Field = "requestorphone"
	FieldDepartment     Field = "department"
	FieldBuilding       Field = "building"
	FieldRoom           Field = "room"
	FieldCreated        Field = "created"
	FieldModified       Field = "modified"
	FieldStatus         Field = "status"
	FieldDiagnoses      Field = "diagnoses"
	FieldDiagnosesNote  Field = "diagnosesnote"
)

// fieldAliases maps each canonical field to its acceptable column names,
// newest report template first. Older files keep working when TDX renames
// a header; matching on a legacy name is logged as an advisory.
var fieldAliases = map[Field][]string{
	FieldID:             {"ID"},
	FieldTitle:          {"Title"},
	FieldRespGroup:      {"Resp Group"},
	FieldRequestorName:  {"Requestor"},
	FieldRequestorEmail: {"Requestor Email"},
	FieldRequestorPhone: {"Requestor Phone"},
	FieldDepartment:     {"Acct/Dept"},
	FieldBuilding:       {"Location", "Class Support Building"},
	FieldRoom:           {"Location Room", "Room number"},
	FieldCreated:        {"Created"},
	FieldModified:       {"Modified"},
	FieldStatus:         {"Status"},
	FieldDiagnoses:      {"Diagnoses"},
	FieldDiagnosesNote:  {"Diagnoses Note"},
}

// fieldOrder fixes the resolution order so advisories log consistently.
var fieldOrder = []Field{
	FieldID, FieldTitle, FieldRespGroup, FieldRequestorName,
	FieldRequestorEmail, FieldRequestorPhone, FieldDepartment,
	FieldBuilding, FieldRoom, FieldCreated, FieldModified, FieldStatus,
	FieldDiagnoses, FieldDiagnosesNote,
}

// timeLayouts are the accepted timestamp formats, tried in order: ISO, US,
// short-year US, European dotted, short-year European, each in a 24-hour
// and a 12-hour variant. Unpadded layout elements also accept zero-padded
// values.
var timeLayouts = []string{
	"2006-01-02 15:04",
	"1/2/2006 15:04",
	"1/2/06 15:04",
	"2.1.2006 15:04",
	"2.1.06 15:04",
	"2006-01-02 3:04 PM",
	"1/2/2006 3:04 PM",
	"1/2/06 3:04 PM",
	"2.1.2006 3:04 PM",
	"2.1.06 3:04 PM",
}

// dateLayouts are the accepted date-only formats for term bounds given on
// the command line.
var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"1/2/06",
	"2.1.2006",
	"2.1.06",
}

// Schema is what one sample row reveals about a report file: which
// canonical fields its columns cover and how its timestamps are formatted.
type Schema struct {
	// Columns maps each present canonical field to the raw column name
	// that carries it.
	Columns map[Field]string
	// TimeFormat is the Go layout for Created/Modified values, empty when
	// the report has no date columns at all.
	TimeFormat string
}

// Has reports whether the canonical field was present in the sample row.
func (s *Schema) Has(f Field) bool {
	_, ok := s.Columns[f]
	return ok
}

// value reads the canonical field from a record via the resolved column.
func (s *Schema) value(rec Record, f Field) string {
	col, ok := s.Columns[f]
	if !ok {
		return ""
	}
	return rec[col]
}

// ResolveSchema inspects one sample record, assumed representative of the
// whole file, and determines the columns present and the timestamp format.
// A missing id column is fatal; other missing fields only restrict which
// queries the report can answer. A date column whose sample value matches
// no known format is fatal.
func ResolveSchema(sample Record) (*Schema, error) {
	s := &Schema{Columns: make(map[Field]string)}

	var missing []Field
	for _, field := range fieldOrder {
		aliases := fieldAliases[field]
		matched := false
		for i, col := range aliases {
			if sample[col] == "" {
				continue
			}
			s.Columns[field] = col
			if i > 0 {
				slog.Warn("report uses a legacy column name", "field", field, "column", col, "preferred", aliases[0])
			}
			matched = true
			break
		}
		if !matched {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		slog.Warn("report is missing standard fields, expect limited query support", "fields", missing)
	}

	if !s.Has(FieldID) {
		return nil, SchemaError{Msg: "no ticket id column found"}
	}

	timeText := s.value(sample, FieldCreated)
	if timeText == "" {
		timeText = s.value(sample, FieldModified)
	}
	if timeText == "" {
		// no date columns; date-dependent queries are refused later
		return s, nil
	}
	for _, layout := range timeLayouts {
		if _, err := time.Parse(layout, timeText); err == nil {
			s.TimeFormat = layout
			return s, nil
		}
	}
	return nil, SchemaError{Msg: "time " + timeText + " matches no known format"}
}

// ParseDate parses a date-only string such as a term bound, trying each
// accepted format in order.
func ParseDate(text string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, text); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
