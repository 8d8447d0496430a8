package tdx

import (
	"testing"
	"time"
)

func TestMonday(t *testing.T) {
	tests := []struct {
		desc string
		in   time.Time
		want time.Time
	}{
		{"monday maps to itself", date(2023, 4, 3), date(2023, 4, 3)},
		{"tuesday snaps back one day", date(2023, 4, 11), date(2023, 4, 10)},
		{"sunday snaps back six days", date(2023, 4, 9), date(2023, 4, 3)},
		{"time of day is discarded", time.Date(2023, 4, 3, 17, 30, 0, 0, time.UTC), date(2023, 4, 3)},
		{"snap crosses a month boundary", date(2023, 5, 3), date(2023, 5, 1)},
		{"snap crosses a year boundary", date(2023, 1, 1), date(2022, 12, 26)},
	}
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			if got := Monday(tc.in); !got.Equal(tc.want) {
				t.Errorf("Monday(%s) = %s, want %s",
					tc.in.Format("2006-01-02 15:04"), got.Format("2006-01-02"), tc.want.Format("2006-01-02"))
			}
		})
	}
}

// perWeekFixture ingests tickets dated 2023-04-03, 2023-04-03 and
// 2023-04-11: two in the week of April 3rd, one in the week of April 10th.
func perWeekFixture(t *testing.T) *Organization {
	t.Helper()
	org := NewOrganization()
	for i, d := range []time.Time{date(2023, 4, 3), date(2023, 4, 3), date(2023, 4, 11)} {
		tk := newTestTicket(org, i+1, "ticket", "Lillis", "101", "joe@joe.com", d)
		if err := org.AddTicket(tk); err != nil {
			t.Fatalf("AddTicket: %v", err)
		}
	}
	return org
}

func TestPerWeek(t *testing.T) {
	t.Run("default span from earliest ticket", func(t *testing.T) {
		org := perWeekFixture(t)
		weeks, err := org.PerWeek(Criteria{})
		if err != nil {
			t.Fatalf("PerWeek: %v", err)
		}
		if len(weeks) != DefaultWeeks {
			t.Fatalf("PerWeek returned %d weeks, want %d", len(weeks), DefaultWeeks)
		}
		wantCounts := []int{2, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0}
		for i, w := range weeks {
			wantWeek := date(2023, 4, 3).AddDate(0, 0, i*7)
			if !w.Week.Equal(wantWeek) {
				t.Errorf("weeks[%d].Week = %s, want %s", i, w.Week.Format("2006-01-02"), wantWeek.Format("2006-01-02"))
			}
			if w.Count != wantCounts[i] {
				t.Errorf("weeks[%d].Count = %d, want %d", i, w.Count, wantCounts[i])
			}
		}
	})

	t.Run("term start snapped to its monday", func(t *testing.T) {
		org := perWeekFixture(t)
		// a Wednesday term start still buckets from the preceding Monday
		weeks, err := org.PerWeek(Criteria{TermStart: date(2023, 4, 5), Weeks: 2})
		if err != nil {
			t.Fatalf("PerWeek: %v", err)
		}
		if len(weeks) != 2 {
			t.Fatalf("PerWeek returned %d weeks, want 2", len(weeks))
		}
		if !weeks[0].Week.Equal(date(2023, 4, 3)) {
			t.Errorf("first week = %s, want 2023-04-03", weeks[0].Week.Format("2006-01-02"))
		}
		if weeks[0].Count != 2 || weeks[1].Count != 1 {
			t.Errorf("counts = [%d, %d], want [2, 1]", weeks[0].Count, weeks[1].Count)
		}
	})

	t.Run("week count takes precedence over term end", func(t *testing.T) {
		org := perWeekFixture(t)
		weeks, err := org.PerWeek(Criteria{Weeks: 1})
		if err != nil {
			t.Fatalf("PerWeek: %v", err)
		}
		if len(weeks) != 1 {
			t.Fatalf("PerWeek returned %d weeks, want 1", len(weeks))
		}
		// the April 11th ticket falls outside the single bucket
		if weeks[0].Count != 2 {
			t.Errorf("weeks[0].Count = %d, want 2", weeks[0].Count)
		}
	})

	t.Run("term end bounds the last week", func(t *testing.T) {
		org := perWeekFixture(t)
		weeks, err := org.PerWeek(Criteria{TermEnd: date(2023, 4, 12)})
		if err != nil {
			t.Fatalf("PerWeek: %v", err)
		}
		if len(weeks) != 2 {
			t.Fatalf("PerWeek returned %d weeks, want 2", len(weeks))
		}
		if weeks[1].Count != 1 {
			t.Errorf("weeks[1].Count = %d, want 1", weeks[1].Count)
		}
	})

	t.Run("other criteria still filter within buckets", func(t *testing.T) {
		org := perWeekFixture(t)
		tk := newTestTicket(org, 99, "elsewhere", "Chapman", "1", "ann@uo.edu", date(2023, 4, 4))
		if err := org.AddTicket(tk); err != nil {
			t.Fatalf("AddTicket: %v", err)
		}
		weeks, err := org.PerWeek(Criteria{Building: org.LookupBuilding("Lillis"), Weeks: 2})
		if err != nil {
			t.Fatalf("PerWeek: %v", err)
		}
		if weeks[0].Count != 2 || weeks[1].Count != 1 {
			t.Errorf("counts = [%d, %d], want [2, 1]", weeks[0].Count, weeks[1].Count)
		}
	})

	t.Run("no dates anywhere is an error", func(t *testing.T) {
		org := NewOrganization()
		tk := newTestTicket(org, 1, "undated", "Lillis", "101", "joe@joe.com", time.Time{})
		if err := org.AddTicket(tk); err != nil {
			t.Fatalf("AddTicket: %v", err)
		}
		if _, err := org.PerWeek(Criteria{}); err == nil {
			t.Error("PerWeek succeeded with no term start and no dated tickets")
		}
	})
}

func TestPerBuilding(t *testing.T) {
	org := filterFixture(t)

	counts := org.PerBuilding(Criteria{})
	if len(counts) != 2 {
		t.Fatalf("PerBuilding returned %d buildings, want 2", len(counts))
	}
	if counts[0].Building.Name != "Lillis" || counts[0].Count != 3 {
		t.Errorf("counts[0] = %s/%d, want Lillis/3", counts[0].Building.Name, counts[0].Count)
	}
	if counts[1].Building.Name != "Chapman" || counts[1].Count != 2 {
		t.Errorf("counts[1] = %s/%d, want Chapman/2", counts[1].Building.Name, counts[1].Count)
	}

	t.Run("buildings with no matches keep a zero row", func(t *testing.T) {
		counts := org.PerBuilding(Criteria{TermStart: date(2023, 4, 15)})
		if counts[0].Count != 0 {
			t.Errorf("Lillis count = %d, want 0", counts[0].Count)
		}
		if counts[1].Count != 2 {
			t.Errorf("Chapman count = %d, want 2", counts[1].Count)
		}
	})
}

func TestPerRoom(t *testing.T) {
	org := filterFixture(t)

	t.Run("scoped to one building", func(t *testing.T) {
		c := Criteria{Building: org.LookupBuilding("Lillis")}
		counts := org.PerRoom(c)
		if len(counts) != 2 {
			t.Fatalf("PerRoom returned %d rooms, want 2", len(counts))
		}
		if counts[0].Room.Identifier != "101" || counts[0].Count != 2 {
			t.Errorf("counts[0] = %s/%d, want 101/2", counts[0].Room.Identifier, counts[0].Count)
		}
		if counts[1].Room.Identifier != "203" || counts[1].Count != 1 {
			t.Errorf("counts[1] = %s/%d, want 203/1", counts[1].Room.Identifier, counts[1].Count)
		}
	})

	t.Run("unscoped visits every room", func(t *testing.T) {
		counts := org.PerRoom(Criteria{})
		if len(counts) != 4 {
			t.Fatalf("PerRoom returned %d rooms, want 4", len(counts))
		}
	})
}

func TestPerRequestor(t *testing.T) {
	org := filterFixture(t)

	counts := org.PerRequestor(Criteria{})
	if len(counts) != 2 {
		t.Fatalf("PerRequestor returned %d users, want 2", len(counts))
	}
	if counts[0].Requestor.Email != "joe@joe.com" || counts[0].Count != 3 {
		t.Errorf("counts[0] = %s/%d, want joe@joe.com/3", counts[0].Requestor.Email, counts[0].Count)
	}
	if counts[1].Requestor.Email != "ann@uo.edu" || counts[1].Count != 2 {
		t.Errorf("counts[1] = %s/%d, want ann@uo.edu/2", counts[1].Requestor.Email, counts[1].Count)
	}
}

func TestShowTickets(t *testing.T) {
	org := filterFixture(t)

	got := org.ShowTickets(Criteria{Building: org.LookupBuilding("Chapman")})
	assertIds(t, got, 4, 5)
}
