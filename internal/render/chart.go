package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tdxplot/tdxplot/internal/tdx"
)

const (
	defaultColor = "gray"
	maxBarWidth  = 50
)

// DefaultTitles are the chart titles used when no name override is given.
var DefaultTitles = map[tdx.QueryType]string{
	tdx.QueryPerWeek:      "Tickets per Week",
	tdx.QueryPerBuilding:  "Tickets per Building",
	tdx.QueryPerRoom:      "Tickets per Room",
	tdx.QueryPerRequestor: "Tickets per Requestor",
	tdx.QueryShowTickets:  "Tickets",
}

// Colors maps the accepted --color names to terminal colors.
var Colors = map[string]lipgloss.Color{
	"white":  lipgloss.Color("15"),
	"black":  lipgloss.Color("0"),
	"gray":   lipgloss.Color("8"),
	"yellow": lipgloss.Color("3"),
	"red":    lipgloss.Color("1"),
	"blue":   lipgloss.Color("4"),
	"green":  lipgloss.Color("2"),
	"brown":  lipgloss.Color("94"),
	"pink":   lipgloss.Color("13"),
	"orange": lipgloss.Color("208"),
	"purple": lipgloss.Color("5"),
}

// ColorNames lists the accepted --color values for flag help.
func ColorNames() []string {
	return []string{"white", "black", "gray", "yellow", "red", "blue", "green", "brown", "pink", "orange", "purple"}
}

// Options holds the cosmetic settings for a chart.
type Options struct {
	// Title overrides the query type's default title.
	Title string
	// Color is one of the Colors keys; blank falls back to gray.
	Color string
	// QueryType selects the default title.
	QueryType tdx.QueryType
	// Plain disables ANSI styling for --nographics output.
	Plain bool
}

// Chart renders bars as a horizontal bar chart with a title line, one bar
// per row, bar lengths scaled to the largest count, and the count printed
// after each bar. Zero-count bars still get a row so gaps stay visible.
func Chart(bars []Bar, opts Options) string {
	var b strings.Builder
	b.WriteString(titleLine(opts))
	b.WriteString("\n\n")

	if len(bars) == 0 {
		b.WriteString("No data to display.\n")
		return b.String()
	}

	labelWidth := 0
	maxCount := 0
	for _, bar := range bars {
		if len(bar.Label) > labelWidth {
			labelWidth = len(bar.Label)
		}
		if bar.Count > maxCount {
			maxCount = bar.Count
		}
	}

	barStyle := lipgloss.NewStyle().Foreground(colorFor(opts.Color))
	for _, bar := range bars {
		width := 0
		if maxCount > 0 {
			width = bar.Count * maxBarWidth / maxCount
		}
		blocks := strings.Repeat("█", width)
		if !opts.Plain {
			blocks = barStyle.Render(blocks)
		}
		fmt.Fprintf(&b, "%-*s │%s %d\n", labelWidth, bar.Label, blocks, bar.Count)
	}
	return b.String()
}

// TicketList renders a filtered listing, one ticket block per match, for
// the tickets query.
func TicketList(tickets []*tdx.Ticket, opts Options) string {
	var b strings.Builder
	b.WriteString(titleLine(opts))
	fmt.Fprintf(&b, "\n\n%d matching tickets\n", len(tickets))
	for _, t := range tickets {
		b.WriteString("\n")
		b.WriteString(t.String())
		b.WriteString("\n")
	}
	return b.String()
}

func titleLine(opts Options) string {
	title := opts.Title
	if title == "" {
		title = DefaultTitles[opts.QueryType]
	}
	if opts.Plain {
		return title
	}
	return lipgloss.NewStyle().Bold(true).Render(title)
}

func colorFor(name string) lipgloss.Color {
	if c, ok := Colors[name]; ok {
		return c
	}
	return Colors[defaultColor]
}
