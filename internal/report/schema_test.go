package report

import (
	"errors"
	"testing"
)

func sampleRecord() Record {
	return Record{
		"ID":              "12345",
		"Title":           "Projector not turning on",
		"Resp Group":      "USS-Classrooms",
		"Requestor":       "Joe Average",
		"Requestor Email": "joe@uo.edu",
		"Requestor Phone": "5551234",
		"Acct/Dept":       "Physics",
		"Location":        "Lillis",
		"Location Room":   "101",
		"Created":         "2023-04-03 10:00",
		"Modified":        "2023-04-04 11:30",
		"Status":          "Closed",
		"Diagnoses":       "Projector",
		"Diagnoses Note":  "lamp burned out",
	}
}

func TestResolveSchema(t *testing.T) {
	t.Run("full modern header", func(t *testing.T) {
		s, err := ResolveSchema(sampleRecord())
		if err != nil {
			t.Fatalf("ResolveSchema: %v", err)
		}
		for _, f := range fieldOrder {
			if !s.Has(f) {
				t.Errorf("field %s not resolved", f)
			}
		}
		if s.TimeFormat != "2006-01-02 15:04" {
			t.Errorf("TimeFormat = %q, want ISO layout", s.TimeFormat)
		}
	})

	t.Run("legacy column names still resolve", func(t *testing.T) {
		rec := sampleRecord()
		delete(rec, "Location")
		delete(rec, "Location Room")
		rec["Class Support Building"] = "Lillis"
		rec["Room number"] = "101"

		s, err := ResolveSchema(rec)
		if err != nil {
			t.Fatalf("ResolveSchema: %v", err)
		}
		if got := s.Columns[FieldBuilding]; got != "Class Support Building" {
			t.Errorf("building column = %q, want Class Support Building", got)
		}
		if got := s.Columns[FieldRoom]; got != "Room number" {
			t.Errorf("room column = %q, want Room number", got)
		}
	})

	t.Run("current name preferred over legacy", func(t *testing.T) {
		rec := sampleRecord()
		rec["Class Support Building"] = "Chapman"

		s, err := ResolveSchema(rec)
		if err != nil {
			t.Fatalf("ResolveSchema: %v", err)
		}
		if got := s.Columns[FieldBuilding]; got != "Location" {
			t.Errorf("building column = %q, want Location", got)
		}
	})

	t.Run("missing id is fatal", func(t *testing.T) {
		rec := sampleRecord()
		delete(rec, "ID")

		_, err := ResolveSchema(rec)
		var se SchemaError
		if !errors.As(err, &se) {
			t.Fatalf("ResolveSchema error = %v, want SchemaError", err)
		}
	})

	t.Run("other missing fields only narrow the schema", func(t *testing.T) {
		rec := Record{"ID": "12345", "Title": "Projector not turning on"}
		s, err := ResolveSchema(rec)
		if err != nil {
			t.Fatalf("ResolveSchema: %v", err)
		}
		if s.Has(FieldBuilding) || s.Has(FieldCreated) {
			t.Error("fields absent from the sample resolved anyway")
		}
		if s.TimeFormat != "" {
			t.Errorf("TimeFormat = %q, want empty for a dateless report", s.TimeFormat)
		}
	})

	t.Run("time format falls back to modified", func(t *testing.T) {
		rec := sampleRecord()
		delete(rec, "Created")

		s, err := ResolveSchema(rec)
		if err != nil {
			t.Fatalf("ResolveSchema: %v", err)
		}
		if s.TimeFormat != "2006-01-02 15:04" {
			t.Errorf("TimeFormat = %q, want format inferred from Modified", s.TimeFormat)
		}
	})

	t.Run("unrecognized time format is fatal", func(t *testing.T) {
		rec := sampleRecord()
		rec["Created"] = "third of April"

		_, err := ResolveSchema(rec)
		var se SchemaError
		if !errors.As(err, &se) {
			t.Fatalf("ResolveSchema error = %v, want SchemaError", err)
		}
	})
}

func TestTimeFormatInference(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"2023-04-03 10:00", "2006-01-02 15:04"},
		{"4/3/2023 10:00", "1/2/2006 15:04"},
		{"04/03/2023 10:00", "1/2/2006 15:04"},
		{"4/3/23 10:00", "1/2/06 15:04"},
		{"3.4.2023 10:00", "2.1.2006 15:04"},
		{"3.4.23 10:00", "2.1.06 15:04"},
		{"4/3/2023 1:05 PM", "1/2/2006 3:04 PM"},
		{"4/3/23 1:05 PM", "1/2/06 3:04 PM"},
	}
	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			rec := sampleRecord()
			rec["Created"] = tc.value
			rec["Modified"] = tc.value

			s, err := ResolveSchema(rec)
			if err != nil {
				t.Fatalf("ResolveSchema: %v", err)
			}
			if s.TimeFormat != tc.want {
				t.Errorf("TimeFormat = %q, want %q", s.TimeFormat, tc.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"2023-04-03", true},
		{"4/3/2023", true},
		{"04/03/2023", true},
		{"4/3/23", true},
		{"3.4.2023", true},
		{"third of April", false},
		{"", false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			d, ok := ParseDate(tc.in)
			if ok != tc.ok {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			}
			if ok && d.IsZero() {
				t.Errorf("ParseDate(%q) returned the zero time with ok = true", tc.in)
			}
		})
	}
}
