package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/MCH-512/crewsphere-sub000/internal/clock"
	"github.com/MCH-512/crewsphere-sub000/internal/ftl"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (text, json, yaml)", s)
	}
}

// Write renders v in the given format.
func Write(w io.Writer, f Format, v View) error {
	switch f {
	case FormatJSON:
		return JSON(w, v)
	case FormatYAML:
		return YAML(w, v)
	default:
		return Text(w, v)
	}
}

func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Text prints the result for a terminal.
func Text(w io.Writer, v View) error {
	fmt.Fprintf(w, "Duty: report %s, %d sector(s), %s\n\n", v.ReportTime, v.Sectors, v.Acclimatisation)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Base FDP:\t%s\n", v.BaseFDP)
	fmt.Fprintf(tw, "  Sector reduction:\t%s\n", v.SectorReduction)
	fmt.Fprintf(tw, "  FDP after sectors:\t%s\n", v.FDPAfterSectors)
	fmt.Fprintf(tw, "  WOCL infringed:\t%s\n", yesNo(v.WOCLInfringed))
	fmt.Fprintf(tw, "  Final FDP:\t%s\n", v.FinalFDP)
	fmt.Fprintf(tw, "  Latest on-block:\t%s\n", v.LatestPermissibleTime)
	if v.ExtensionEligible {
		fmt.Fprintf(tw, "  Extension:\teligible, up to %s\n", v.ExtendedFDP)
	} else {
		fmt.Fprintf(tw, "  Extension:\tnot eligible\n")
	}
	fmt.Fprintf(tw, "  Minimum rest:\t%s\n", v.MinimumRest)
	if err := tw.Flush(); err != nil {
		return err
	}

	if f := v.Feasibility; f != nil {
		verdict := "FEASIBLE"
		relation := "margin"
		if !f.IsFeasible {
			verdict = "NOT FEASIBLE"
			relation = "over by"
		}
		_, err := fmt.Fprintf(w, "\nProposed arrival %s: planned FDP %s, %s (%s %s)\n",
			f.ProposedArrivalTime, f.PlannedFDP, verdict, relation, f.Difference)
		return err
	}
	return nil
}

// Tables prints every limit table as band and FDP columns.
func Tables(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, nt := range ftl.Tables() {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s\n", nt.State)
		fmt.Fprintf(tw, "  Report\tBase FDP\n")
		for _, e := range nt.Entries {
			fmt.Fprintf(tw, "  %s\t%s\n", e.Band, clock.FormatDuration(e.FDP))
		}
	}
	return tw.Flush()
}

// TableView is the document form of one limit table.
type TableView struct {
	Acclimatisation ftl.Acclimatisation `json:"acclimatisation" yaml:"acclimatisation"`
	Entries         []TableEntryView    `json:"entries" yaml:"entries"`
}

type TableEntryView struct {
	From       string `json:"from" yaml:"from"`
	To         string `json:"to" yaml:"to"`
	Wraps      bool   `json:"wraps_midnight" yaml:"wraps_midnight"`
	FDP        string `json:"fdp" yaml:"fdp"`
	FDPMinutes int    `json:"fdp_minutes" yaml:"fdp_minutes"`
}

func TableViews() []TableView {
	tables := ftl.Tables()
	out := make([]TableView, 0, len(tables))
	for _, nt := range tables {
		tv := TableView{Acclimatisation: nt.State, Entries: make([]TableEntryView, 0, len(nt.Entries))}
		for _, e := range nt.Entries {
			tv.Entries = append(tv.Entries, TableEntryView{
				From:       clock.FormatClock(e.Band.Start),
				To:         clock.FormatClock(e.Band.End),
				Wraps:      e.Band.Wraps(),
				FDP:        clock.FormatDuration(e.FDP),
				FDPMinutes: int(e.FDP),
			})
		}
		out = append(out, tv)
	}
	return out
}

// ShareDescription is a one-line summary for link previews.
func ShareDescription(v View) string {
	s := fmt.Sprintf("Report %s, %d sector(s), %s: FDP %s, latest on-block %s, rest %s.",
		v.ReportTime, v.Sectors, v.Acclimatisation, v.FinalFDP, v.LatestPermissibleTime, v.MinimumRest)
	if v.WOCLInfringed {
		s += " WOCL infringed."
	}
	if f := v.Feasibility; f != nil {
		if f.IsFeasible {
			s += fmt.Sprintf(" Arrival %s feasible.", f.ProposedArrivalTime)
		} else {
			s += fmt.Sprintf(" Arrival %s not feasible.", f.ProposedArrivalTime)
		}
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
