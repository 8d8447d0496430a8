package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tdxplot/tdxplot/internal/render"
	"github.com/tdxplot/tdxplot/internal/report"
	"github.com/tdxplot/tdxplot/internal/tdx"
)

// Options is the raw options bundle collected from flags and the config
// file. Entity references stay strings here; resolveCriteria turns them
// into typed Criteria against a populated organization.
type Options struct {
	Report string `mapstructure:"report" json:"report"`

	TermStart string `mapstructure:"termstart" json:"termstart"`
	TermEnd   string `mapstructure:"termend" json:"termend"`
	Weeks     int    `mapstructure:"weeks" json:"weeks"`
	Building  string `mapstructure:"building" json:"building"`

	RequestorEmail string `mapstructure:"requestor-email" json:"requestor-email"`
	RequestorName  string `mapstructure:"requestor-name" json:"requestor-name"`
	RequestorPhone string `mapstructure:"requestor-phone" json:"requestor-phone"`

	Diagnoses    []string `mapstructure:"diagnoses" json:"diagnoses"`
	AndDiagnoses []string `mapstructure:"and-diagnoses" json:"and-diagnoses"`

	Head int `mapstructure:"head" json:"head"`
	Tail int `mapstructure:"tail" json:"tail"`

	Name       string `mapstructure:"name" json:"name"`
	Color      string `mapstructure:"color" json:"color"`
	NoGraphics bool   `mapstructure:"nographics" json:"nographics"`

	// DiagnosisAliases maps canonical diagnosis labels to display names.
	// Config-file only; no flag.
	DiagnosisAliases map[string]string `mapstructure:"diagnosis_aliases" json:"diagnosis_aliases"`
}

func addFilterFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringP("termstart", "t", "", "exclude tickets before this date (calendar week for perweek)")
	f.StringP("termend", "e", "", "exclude tickets after this date (calendar week for perweek)")
	f.IntP("weeks", "w", 0, "number of weeks in the term for perweek")
	f.StringP("building", "b", "", "building filter")
	f.String("requestor-email", "", "requestor filter: email")
	f.String("requestor-name", "", "requestor filter: name")
	f.String("requestor-phone", "", "requestor filter: phone")
	f.StringSlice("diagnoses", nil, "match tickets with any of these diagnoses")
	f.StringSlice("and-diagnoses", nil, "match tickets with all of these diagnoses")
	f.Int("head", 0, "show only the first N bars")
	f.Int("tail", 0, "show only the last N bars")
	f.StringP("name", "n", "", "chart title")
	f.StringP("color", "c", "", "chart color, one of: "+strings.Join(render.ColorNames(), ", "))
}

// checkFile verifies the report path exists and is a CSV.
func checkFile(filename string) error {
	if filename == "" {
		return errors.New("no report file given")
	}
	if _, err := os.Stat(filename); err != nil {
		return fmt.Errorf("report file %s not found", filename)
	}
	if !strings.EqualFold(filepath.Ext(filename), ".csv") {
		return fmt.Errorf("report file %s is not a CSV", filename)
	}
	return nil
}

// validate enforces the flag rules that depend on the query type.
func (o *Options) validate(qt tdx.QueryType) error {
	if qt != tdx.QueryPerWeek && o.Weeks != 0 {
		return errors.New("cannot pass --weeks without the perweek query")
	}
	if o.Weeks < 0 {
		return errors.New("--weeks must be at least 1")
	}
	if o.Weeks > 0 && o.TermEnd != "" {
		return errors.New("cannot pass --weeks and --termend simultaneously")
	}
	if qt == tdx.QueryPerRoom && o.Building == "" {
		return errors.New("perroom needs a building, pass --building BUILDING_NAME")
	}
	if qt == tdx.QueryPerBuilding && o.Building != "" {
		return errors.New("cannot filter to a single building in a perbuilding query")
	}
	if o.Head > 0 && o.Tail > 0 {
		return errors.New("cannot pass --head and --tail simultaneously")
	}
	if o.Head < 0 || o.Tail < 0 {
		return errors.New("--head and --tail must be positive")
	}
	if len(o.Diagnoses) > 0 && len(o.AndDiagnoses) > 0 {
		return errors.New("cannot pass --diagnoses and --and-diagnoses simultaneously")
	}
	if o.Color != "" {
		if _, ok := render.Colors[o.Color]; !ok {
			return fmt.Errorf("unknown color %q, use one of: %s", o.Color, strings.Join(render.ColorNames(), ", "))
		}
	}
	return nil
}

// resolveCriteria turns the raw options into typed criteria, resolving the
// building and requestor filters against the populated organization.
func (o *Options) resolveCriteria(org *tdx.Organization) (tdx.Criteria, error) {
	var c tdx.Criteria

	if o.TermStart != "" {
		d, ok := report.ParseDate(o.TermStart)
		if !ok {
			return c, fmt.Errorf("term start date %q not recognized, try yyyy-mm-dd", o.TermStart)
		}
		c.TermStart = d
	}
	if o.TermEnd != "" {
		d, ok := report.ParseDate(o.TermEnd)
		if !ok {
			return c, fmt.Errorf("term end date %q not recognized, try yyyy-mm-dd", o.TermEnd)
		}
		c.TermEnd = d
	}
	c.Weeks = o.Weeks

	if o.Building != "" {
		b := org.LookupBuilding(o.Building)
		if b == nil {
			return c, fmt.Errorf("no building %q found in report", o.Building)
		}
		c.Building = b
	}

	if o.RequestorEmail != "" || o.RequestorName != "" || o.RequestorPhone != "" {
		users := org.LookupUsers(o.RequestorEmail, o.RequestorName, o.RequestorPhone)
		if len(users) == 0 {
			return c, errors.New("no requestor matching the given email/name/phone found in report")
		}
		c.Requestors = make(map[*tdx.User]bool, len(users))
		for _, u := range users {
			c.Requestors[u] = true
		}
	}

	for _, label := range o.Diagnoses {
		c.Diagnoses = append(c.Diagnoses, tdx.NewDiagnosis(label, o.DiagnosisAliases))
	}
	for _, label := range o.AndDiagnoses {
		c.AndDiagnoses = append(c.AndDiagnoses, tdx.NewDiagnosis(label, o.DiagnosisAliases))
	}

	c.Head = o.Head
	c.Tail = o.Tail
	return c, nil
}
