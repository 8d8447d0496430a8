package render

import (
	"fmt"
	"sort"

	"github.com/tdxplot/tdxplot/internal/tdx"
)

// Bar is one labeled count in a chart, in final display order.
type Bar struct {
	Label string
	Count int
}

// PerWeekBars labels week buckets as "W<n> <mm/dd>", with the year on the
// first bar. Bars stay in temporal order unless the output will be cropped
// by head or tail, in which case the largest counts come first.
func PerWeekBars(weeks []tdx.WeekCount, c tdx.Criteria) []Bar {
	bars := make([]Bar, 0, len(weeks))
	for i, w := range weeks {
		label := fmt.Sprintf("W%d %s", i+1, w.Week.Format("01/02"))
		if i == 0 {
			label += w.Week.Format(" 2006")
		}
		bars = append(bars, Bar{Label: label, Count: w.Count})
	}
	if c.Head > 0 || c.Tail > 0 {
		sortByCount(bars)
	}
	return Crop(bars, c)
}

// PerBuildingBars orders buildings by descending ticket count.
func PerBuildingBars(counts []tdx.BuildingCount, c tdx.Criteria) []Bar {
	bars := make([]Bar, 0, len(counts))
	for _, bc := range counts {
		bars = append(bars, Bar{Label: bc.Building.Name, Count: bc.Count})
	}
	sortByCount(bars)
	return Crop(bars, c)
}

// PerRoomBars orders rooms by descending ticket count, labeling each with
// its building name and room identifier.
func PerRoomBars(counts []tdx.RoomCount, c tdx.Criteria) []Bar {
	bars := make([]Bar, 0, len(counts))
	for _, rc := range counts {
		bars = append(bars, Bar{
			Label: fmt.Sprintf("%s %s", rc.Room.Building.Name, rc.Room.Identifier),
			Count: rc.Count,
		})
	}
	sortByCount(bars)
	return Crop(bars, c)
}

// PerRequestorBars orders requestors by descending ticket count.
func PerRequestorBars(counts []tdx.RequestorCount, c tdx.Criteria) []Bar {
	bars := make([]Bar, 0, len(counts))
	for _, rc := range counts {
		bars = append(bars, Bar{Label: rc.Requestor.Name, Count: rc.Count})
	}
	sortByCount(bars)
	return Crop(bars, c)
}

// Crop keeps the first Head or last Tail bars. Order is preserved; callers
// decide the ordering before cropping.
func Crop(bars []Bar, c tdx.Criteria) []Bar {
	if c.Head > 0 && c.Head < len(bars) {
		return bars[:c.Head]
	}
	if c.Tail > 0 && c.Tail < len(bars) {
		return bars[len(bars)-c.Tail:]
	}
	return bars
}

func sortByCount(bars []Bar) {
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Count > bars[j].Count })
}
