package tdx

import (
	"strings"
	"unicode"
)

// Diagnosis is a normalized label for a ticket's classroom-support problem
// category. Labels are compared on their canonical form so that
// "Cable--HDMI" and "cable hdmi" are the same diagnosis. Unknown labels
// pass through unaliased; there is no fixed enumeration.
type Diagnosis struct {
	// Canonical is the case-folded, alphabetic-only form used for equality.
	Canonical string
	// Display is the alias-table display name if one matched, else the raw
	// label as it appeared in the report.
	Display string
}

// NewDiagnosis builds a Diagnosis from a raw label. The aliases table maps
// canonical forms to display names; a nil or non-matching table leaves the
// raw label as the display name.
func NewDiagnosis(raw string, aliases map[string]string) Diagnosis {
	d := Diagnosis{
		Canonical: CanonicalDiagnosis(raw),
		Display:   strings.TrimSpace(raw),
	}
	if display, ok := aliases[d.Canonical]; ok {
		d.Display = display
	}
	return d
}

// CanonicalDiagnosis lowercases a label and strips every non-letter rune.
func CanonicalDiagnosis(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// ParseDiagnoses splits a comma-separated diagnosis field into Diagnoses,
// dropping empty segments. An empty field yields nil.
func ParseDiagnoses(field string, aliases map[string]string) []Diagnosis {
	var out []Diagnosis
	for _, part := range strings.Split(field, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, NewDiagnosis(part, aliases))
	}
	return out
}

func diagnosisSet(ds []Diagnosis) map[string]bool {
	set := make(map[string]bool, len(ds))
	for _, d := range ds {
		set[d.Canonical] = true
	}
	return set
}
