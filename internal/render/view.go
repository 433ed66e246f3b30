// Package render turns engine results into what people and callers read:
// aligned text for the terminal, JSON and YAML documents.
package render

import (
	"github.com/MCH-512/crewsphere-sub000/internal/clock"
	"github.com/MCH-512/crewsphere-sub000/internal/ftl"
)

// View is the output contract. Durations appear both as HH:MM and as minutes.
type View struct {
	ReportTime      string              `json:"report_time" yaml:"report_time"`
	Sectors         int                 `json:"sectors" yaml:"sectors"`
	Acclimatisation ftl.Acclimatisation `json:"acclimatisation" yaml:"acclimatisation"`

	BaseFDP                string `json:"base_fdp" yaml:"base_fdp"`
	BaseFDPMinutes         int    `json:"base_fdp_minutes" yaml:"base_fdp_minutes"`
	SectorReduction        string `json:"sector_reduction" yaml:"sector_reduction"`
	SectorReductionMinutes int    `json:"sector_reduction_minutes" yaml:"sector_reduction_minutes"`
	FDPAfterSectors        string `json:"fdp_after_sectors" yaml:"fdp_after_sectors"`
	FDPAfterSectorsMinutes int    `json:"fdp_after_sectors_minutes" yaml:"fdp_after_sectors_minutes"`
	WOCLInfringed          bool   `json:"wocl_infringed" yaml:"wocl_infringed"`
	FinalFDP               string `json:"final_fdp" yaml:"final_fdp"`
	FinalFDPMinutes        int    `json:"final_fdp_minutes" yaml:"final_fdp_minutes"`
	LatestPermissibleTime  string `json:"latest_permissible_time" yaml:"latest_permissible_time"`
	ExtensionEligible      bool   `json:"extension_eligible" yaml:"extension_eligible"`
	ExtendedFDP            string `json:"extended_fdp" yaml:"extended_fdp"`
	ExtendedFDPMinutes     int    `json:"extended_fdp_minutes" yaml:"extended_fdp_minutes"`
	MinimumRest            string `json:"minimum_rest" yaml:"minimum_rest"`
	MinimumRestMinutes     int    `json:"minimum_rest_minutes" yaml:"minimum_rest_minutes"`

	Feasibility *FeasibilityView `json:"feasibility,omitempty" yaml:"feasibility,omitempty"`
}

type FeasibilityView struct {
	ProposedArrivalTime string `json:"proposed_arrival_time" yaml:"proposed_arrival_time"`
	PlannedFDP          string `json:"planned_fdp" yaml:"planned_fdp"`
	PlannedFDPMinutes   int    `json:"planned_fdp_minutes" yaml:"planned_fdp_minutes"`
	IsFeasible          bool   `json:"is_feasible" yaml:"is_feasible"`
	Difference          string `json:"difference" yaml:"difference"`
	DifferenceMinutes   int    `json:"difference_minutes" yaml:"difference_minutes"`
}

// NewView pairs an input with its result.
func NewView(in ftl.DutyInput, res ftl.DutyResult) View {
	v := View{
		ReportTime:      clock.FormatClock(in.ReportTime),
		Sectors:         in.Sectors,
		Acclimatisation: in.Acclimatisation,

		BaseFDP:                clock.FormatDuration(res.BaseFDP),
		BaseFDPMinutes:         int(res.BaseFDP),
		SectorReduction:        clock.FormatDuration(res.SectorReduction),
		SectorReductionMinutes: int(res.SectorReduction),
		FDPAfterSectors:        clock.FormatDuration(res.FDPAfterSectors),
		FDPAfterSectorsMinutes: int(res.FDPAfterSectors),
		WOCLInfringed:          res.WOCLInfringed,
		FinalFDP:               clock.FormatDuration(res.FinalFDP),
		FinalFDPMinutes:        int(res.FinalFDP),
		LatestPermissibleTime:  res.LatestPermissibleTime(),
		ExtensionEligible:      res.ExtensionEligible,
		ExtendedFDP:            clock.FormatDuration(res.ExtendedFDP),
		ExtendedFDPMinutes:     int(res.ExtendedFDP),
		MinimumRest:            clock.FormatDuration(res.MinimumRest),
		MinimumRestMinutes:     int(res.MinimumRest),
	}
	if f := res.Feasibility; f != nil && in.ProposedArrival != nil {
		v.Feasibility = &FeasibilityView{
			ProposedArrivalTime: clock.FormatClock(*in.ProposedArrival),
			PlannedFDP:          clock.FormatDuration(f.PlannedFDP),
			PlannedFDPMinutes:   int(f.PlannedFDP),
			IsFeasible:          f.IsFeasible,
			Difference:          clock.FormatDuration(f.DifferenceMinutes),
			DifferenceMinutes:   int(f.DifferenceMinutes),
		}
	}
	return v
}
