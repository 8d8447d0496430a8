package tdx

import (
	"errors"
	"log/slog"
	"time"
)

// DefaultWeeks is the span of a per-week query when neither a week count
// nor a term end is given.
const DefaultWeeks = 11

type WeekCount struct {
	Week  time.Time
	Count int
}

type BuildingCount struct {
	Building *Building
	Count    int
}

type RoomCount struct {
	Room  *Room
	Count int
}

type RequestorCount struct {
	Requestor *User
	Count     int
}

// PerWeek counts tickets per calendar week. Every week from the first to
// the last appears in the result, zero counts included, so downstream
// charts show gaps. The first week is the term start (or the earliest
// ticket) snapped to its Monday; the last week comes from the week count
// if given, else the term end, else a default 11-week span.
func (o *Organization) PerWeek(c Criteria) ([]WeekCount, error) {
	var firstWeek time.Time
	if !c.TermStart.IsZero() {
		firstWeek = c.TermStart
	} else {
		for _, t := range o.ticketOrder {
			if t.Created.IsZero() {
				continue
			}
			if firstWeek.IsZero() || t.Created.Before(firstWeek) {
				firstWeek = t.Created
			}
		}
	}
	if firstWeek.IsZero() {
		return nil, errors.New("no term start given and no ticket has a created date")
	}
	firstWeek = Monday(firstWeek)
	slog.Debug("per-week term resolved", "firstWeek", firstWeek.Format("2006-01-02"))

	var lastWeek time.Time
	switch {
	case c.Weeks > 0:
		lastWeek = firstWeek.AddDate(0, 0, (c.Weeks-1)*7)
	case !c.TermEnd.IsZero():
		lastWeek = Monday(c.TermEnd)
	default:
		slog.Debug("using default term length", "weeks", DefaultWeeks)
		lastWeek = firstWeek.AddDate(0, 0, (DefaultWeeks-1)*7)
	}

	var counts []WeekCount
	index := make(map[time.Time]int)
	for week := firstWeek; !week.After(lastWeek); week = week.AddDate(0, 0, 7) {
		index[week] = len(counts)
		counts = append(counts, WeekCount{Week: week})
	}

	// term boundaries are handled by the week buckets themselves
	filtered := FilterTickets(o.ticketOrder, c, CriterionTermStart, CriterionTermEnd)
	for _, t := range filtered {
		if t.Created.IsZero() {
			continue
		}
		if i, ok := index[Monday(t.Created)]; ok {
			counts[i].Count++
		}
	}
	return counts, nil
}

// PerBuilding counts matching tickets per building. Buildings with no
// matching tickets still appear with a zero count.
func (o *Organization) PerBuilding(c Criteria) []BuildingCount {
	var counts []BuildingCount
	for _, b := range o.buildingOrder {
		n := 0
		for _, r := range b.roomOrder {
			n += len(FilterTickets(r.Tickets, c))
		}
		counts = append(counts, BuildingCount{Building: b, Count: n})
	}
	return counts
}

// PerRoom counts matching tickets per room. With a building criterion only
// that building's rooms are visited, and the criterion is excluded from
// the inner filter since the iteration already guarantees it.
func (o *Organization) PerRoom(c Criteria) []RoomCount {
	var counts []RoomCount
	if c.Building != nil {
		for _, r := range c.Building.roomOrder {
			counts = append(counts, RoomCount{Room: r, Count: len(FilterTickets(r.Tickets, c, CriterionBuilding))})
		}
		return counts
	}
	for _, b := range o.buildingOrder {
		for _, r := range b.roomOrder {
			counts = append(counts, RoomCount{Room: r, Count: len(FilterTickets(r.Tickets, c))})
		}
	}
	return counts
}

// PerRequestor counts matching tickets per registered user.
func (o *Organization) PerRequestor(c Criteria) []RequestorCount {
	var counts []RequestorCount
	for _, u := range o.userOrder {
		counts = append(counts, RequestorCount{Requestor: u, Count: len(FilterTickets(u.Tickets, c))})
	}
	return counts
}

// ShowTickets returns the filtered ticket list itself, in ingestion order.
func (o *Organization) ShowTickets(c Criteria) []*Ticket {
	return FilterTickets(o.ticketOrder, c)
}

// Monday returns midnight of the Monday preceding or equal to the given
// date. Pure calendar arithmetic on the date part; the time of day is
// discarded first so DST shifts cannot move the result across a day.
func Monday(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	for t.Weekday() != time.Monday {
		t = t.AddDate(0, 0, -1)
	}
	return t
}
