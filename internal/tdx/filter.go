package tdx

import "time"

// Criterion names a filter in a Criteria bundle so callers can disable it
// for one FilterTickets call without mutating the shared bundle.
type Criterion string

const (
	CriterionTermStart  Criterion = "termstart"
	CriterionTermEnd    Criterion = "termend"
	CriterionBuilding   Criterion = "building"
	CriterionRequestors Criterion = "requestors"
	CriterionDiagnoses  Criterion = "diagnoses"
)

// Criteria is the resolved options bundle consumed by the filter and the
// query methods. The CLI layer is responsible for turning raw strings into
// these typed fields (dates parsed, building and requestors resolved
// against the Organization) before the core sees them.
//
// Diagnoses and AndDiagnoses are mutually exclusive: Diagnoses matches a
// ticket whose diagnosis set intersects it (OR), AndDiagnoses only a
// ticket whose diagnosis set contains all of it (AND).
type Criteria struct {
	TermStart time.Time
	TermEnd   time.Time
	Weeks     int

	Building   *Building
	Requestors map[*User]bool

	Diagnoses    []Diagnosis
	AndDiagnoses []Diagnosis

	// Head and Tail crop the rendered output; they are consumed by the
	// renderer, never by FilterTickets.
	Head int
	Tail int
}

// FilterTickets returns the tickets passing every active, non-excluded
// criterion, preserving input order. TermEnd is inclusive of its whole
// calendar day: the bound is advanced to the start of the next day before
// comparing against stored timestamps.
func FilterTickets(tickets []*Ticket, c Criteria, exclude ...Criterion) []*Ticket {
	skip := make(map[Criterion]bool, len(exclude))
	for _, e := range exclude {
		skip[e] = true
	}

	termStart := c.TermStart
	if skip[CriterionTermStart] {
		termStart = time.Time{}
	}
	termEnd := c.TermEnd
	if skip[CriterionTermEnd] {
		termEnd = time.Time{}
	}
	if !termEnd.IsZero() {
		termEnd = termEnd.AddDate(0, 0, 1)
	}
	building := c.Building
	if skip[CriterionBuilding] {
		building = nil
	}
	requestors := c.Requestors
	if skip[CriterionRequestors] {
		requestors = nil
	}

	var want map[string]bool
	var andMode bool
	if !skip[CriterionDiagnoses] {
		switch {
		case len(c.AndDiagnoses) > 0:
			want = diagnosisSet(c.AndDiagnoses)
			andMode = true
		case len(c.Diagnoses) > 0:
			want = diagnosisSet(c.Diagnoses)
		}
	}

	var filtered []*Ticket
	for _, t := range tickets {
		if building != nil && t.Room.Building != building {
			continue
		}
		if len(requestors) > 0 && !requestors[t.Requestor] {
			continue
		}
		if !termStart.IsZero() && t.Created.Before(termStart) {
			continue
		}
		if !termEnd.IsZero() && !t.Created.Before(termEnd) {
			continue
		}
		if want != nil && !diagnosesMatch(t.Diagnoses, want, andMode) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

func diagnosesMatch(have []Diagnosis, want map[string]bool, andMode bool) bool {
	if andMode {
		haveSet := diagnosisSet(have)
		for canonical := range want {
			if !haveSet[canonical] {
				return false
			}
		}
		return true
	}
	for _, d := range have {
		if want[d.Canonical] {
			return true
		}
	}
	return false
}
