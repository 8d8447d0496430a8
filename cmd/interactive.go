package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/tdxplot/tdxplot/internal/tdx"
)

// runInteractive collects a query through a form when tdxplot is run with
// no subcommand.
func runInteractive(args []string) error {
	filename := opts.Report
	if len(args) == 1 {
		filename = args[0]
	}

	queryType := string(tdx.QueryPerWeek)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Report file").
				Placeholder("tickets.csv").
				Validate(requiredInput).
				Value(&filename),
			huh.NewSelect[string]().
				Title("Query type").
				Options(
					huh.NewOption("Tickets per week", string(tdx.QueryPerWeek)),
					huh.NewOption("Tickets per building", string(tdx.QueryPerBuilding)),
					huh.NewOption("Tickets per room", string(tdx.QueryPerRoom)),
					huh.NewOption("Tickets per requestor", string(tdx.QueryPerRequestor)),
					huh.NewOption("List tickets", string(tdx.QueryShowTickets)),
				).
				Value(&queryType),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Term start (optional, e.g. 2023-04-03)").
				Value(&opts.TermStart),
			huh.NewInput().
				Title("Term end (optional)").
				Value(&opts.TermEnd),
			huh.NewInput().
				Title("Building filter (optional, required for per-room)").
				Value(&opts.Building),
		),
	).WithShowHelp(false).WithTheme(huh.ThemeBase16())

	if err := form.Run(); err != nil {
		return fmt.Errorf("running query form: %w", err)
	}

	return runQuery(tdx.QueryType(queryType), filename)
}

// Validator for required huh Input fields
func requiredInput(s string) error {
	if s == "" {
		return errors.New("field is required")
	}
	return nil
}
