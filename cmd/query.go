package cmd

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"github.com/tdxplot/tdxplot/internal/render"
	"github.com/tdxplot/tdxplot/internal/report"
	"github.com/tdxplot/tdxplot/internal/tdx"
	"github.com/tdxplot/tdxplot/internal/tui"
)

func newQueryCmd(use, short string) *cobra.Command {
	qt := tdx.QueryType(use)
	return &cobra.Command{
		Use:   use + " [report.csv]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := opts.Report
			if len(args) == 1 {
				filename = args[0]
			}
			return runQuery(qt, filename)
		},
	}
}

func runQuery(qt tdx.QueryType, filename string) error {
	if err := checkFile(filename); err != nil {
		return err
	}
	if err := opts.validate(qt); err != nil {
		return err
	}

	var (
		rep *report.Report
		org *tdx.Organization
		err error
	)
	load := func() {
		rep, err = report.Load(filename, opts.DiagnosisAliases)
		if err != nil {
			return
		}
		if err = rep.Schema().CheckQuery(qt); err != nil {
			return
		}
		org = tdx.NewOrganization()
		err = rep.Populate(org)
	}
	if opts.NoGraphics {
		load()
	} else {
		_ = spinner.New().Title("Reading report...").Action(load).Run()
	}
	if err != nil {
		return err
	}

	criteria, err := opts.resolveCriteria(org)
	if err != nil {
		return err
	}

	content, err := runAndRender(qt, org, criteria)
	if err != nil {
		return err
	}

	if opts.NoGraphics {
		fmt.Println(content)
		return nil
	}
	return tui.Show(chartTitle(qt), content)
}

func runAndRender(qt tdx.QueryType, org *tdx.Organization, c tdx.Criteria) (string, error) {
	ro := render.Options{
		Title:     opts.Name,
		Color:     opts.Color,
		QueryType: qt,
		Plain:     opts.NoGraphics,
	}

	var bars []render.Bar
	switch qt {
	case tdx.QueryPerWeek:
		weeks, err := org.PerWeek(c)
		if err != nil {
			return "", fmt.Errorf("running per-week query: %w", err)
		}
		bars = render.PerWeekBars(weeks, c)
	case tdx.QueryPerBuilding:
		bars = render.PerBuildingBars(org.PerBuilding(c), c)
	case tdx.QueryPerRoom:
		bars = render.PerRoomBars(org.PerRoom(c), c)
	case tdx.QueryPerRequestor:
		bars = render.PerRequestorBars(org.PerRequestor(c), c)
	case tdx.QueryShowTickets:
		tickets := org.ShowTickets(c)
		slog.Info("query complete", "querytype", qt, "matches", len(tickets))
		return render.TicketList(tickets, ro), nil
	default:
		return "", fmt.Errorf("unknown query type %q", qt)
	}

	slog.Info("query complete", "querytype", qt, "bars", len(bars))
	return render.Chart(bars, ro), nil
}

func chartTitle(qt tdx.QueryType) string {
	if opts.Name != "" {
		return opts.Name
	}
	return render.DefaultTitles[qt]
}
