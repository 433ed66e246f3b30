// Package ftl computes flight duty period limits for a single duty: base
// FDP by report time, sector reduction, the WOCL cap, extension, minimum
// rest and the feasibility of a planned arrival.
//
// Compute is pure. It may be called concurrently and as often as inputs change.
package ftl

import (
	"fmt"

	"github.com/MCH-512/crewsphere-sub000/internal/clock"
)

const (
	MinSectors = 1
	MaxSectors = 10

	freeSectors        = 2
	sectorReduction    = clock.Minutes(30)
	woclCap            = clock.Minutes(11 * 60)
	extensionMaxSector = 4
	extension          = clock.Minutes(60)

	restFloorAcclimatised    = clock.Minutes(12 * 60)
	restFloorNotAcclimatised = clock.Minutes(10 * 60)
)

// WOCL is the window of circadian low, 02:00-05:59 on the report day.
var WOCL = clock.Interval{Start: 120, End: 359}

// DutyInput is a validated request. ProposedArrival is optional.
type DutyInput struct {
	ReportTime      clock.Minutes
	ProposedArrival *clock.Minutes
	Sectors         int
	Acclimatisation Acclimatisation
}

// Validate rejects values Compute cannot work with.
func (in DutyInput) Validate() error {
	if in.ReportTime < 0 || in.ReportTime >= clock.MinutesPerDay {
		return fmt.Errorf("%w: report time %d outside 0..1439", ErrInvalidInput, in.ReportTime)
	}
	if in.ProposedArrival != nil && (*in.ProposedArrival < 0 || *in.ProposedArrival >= clock.MinutesPerDay) {
		return fmt.Errorf("%w: proposed arrival %d outside 0..1439", ErrInvalidInput, *in.ProposedArrival)
	}
	if in.Sectors < MinSectors || in.Sectors > MaxSectors {
		return fmt.Errorf("%w: %w: %d not in %d..%d", ErrInvalidInput, ErrSectorCountOutOfRange, in.Sectors, MinSectors, MaxSectors)
	}
	if !in.Acclimatisation.valid() {
		return fmt.Errorf("%w: %w: %d", ErrInvalidInput, ErrUnknownAcclimatisation, int(in.Acclimatisation))
	}
	return nil
}

// Feasibility compares a planned duty against the final FDP.
type Feasibility struct {
	PlannedFDP        clock.Minutes
	IsFeasible        bool
	DifferenceMinutes clock.Minutes
}

// DutyResult holds every computed quantity. Durations are minutes;
// LatestPermissible is a minute-of-day.
type DutyResult struct {
	BaseFDP           clock.Minutes
	SectorReduction   clock.Minutes
	FDPAfterSectors   clock.Minutes
	WOCLInfringed     bool
	FinalFDP          clock.Minutes
	LatestPermissible clock.Minutes
	ExtensionEligible bool
	ExtendedFDP       clock.Minutes
	MinimumRest       clock.Minutes
	Feasibility       *Feasibility
}

// LatestPermissibleTime renders the latest on-block time as a clock value.
func (r DutyResult) LatestPermissibleTime() string {
	return clock.FormatClock(r.LatestPermissible)
}

// NegativeFDP reports that the sector reduction exceeded the base FDP.
// The value is left unclamped; no rule set here defines a floor.
func (r DutyResult) NegativeFDP() bool {
	return r.FDPAfterSectors < 0
}

// Compute runs the limit calculation. It fails only on input that
// Validate rejects. A limit table gap panics with ErrTableLookupMiss.
func Compute(in DutyInput) (DutyResult, error) {
	if err := in.Validate(); err != nil {
		return DutyResult{}, err
	}

	base, ok := LookupBaseFDP(in.ReportTime, tableFor(in.Acclimatisation))
	if !ok {
		panic(fmt.Errorf("%w: %s %s", ErrTableLookupMiss, in.Acclimatisation, clock.FormatClock(in.ReportTime)))
	}

	res := DutyResult{
		BaseFDP:         base,
		SectorReduction: reductionFor(in.Sectors),
	}
	res.FDPAfterSectors = res.BaseFDP - res.SectorReduction

	duty := clock.Interval{Start: in.ReportTime, End: in.ReportTime + res.FDPAfterSectors}
	res.WOCLInfringed = clock.OverlapsDaily(duty, WOCL)

	res.FinalFDP = res.FDPAfterSectors
	if res.WOCLInfringed {
		res.FinalFDP = min(res.FDPAfterSectors, woclCap)
	}
	res.LatestPermissible = clock.OfDay(in.ReportTime + res.FinalFDP)

	res.ExtensionEligible = in.Sectors <= extensionMaxSector
	if res.ExtensionEligible {
		res.ExtendedFDP = res.FinalFDP + extension
	}

	res.MinimumRest = max(restFloor(in.Acclimatisation), res.FinalFDP)

	if in.ProposedArrival != nil {
		res.Feasibility = feasibility(in.ReportTime, *in.ProposedArrival, res.FinalFDP)
	}
	return res, nil
}

func reductionFor(sectors int) clock.Minutes {
	return clock.Minutes(max(0, sectors-freeSectors)) * sectorReduction
}

func restFloor(a Acclimatisation) clock.Minutes {
	switch a {
	case Acclimatised:
		return restFloorAcclimatised
	case NotAcclimatised:
		return restFloorNotAcclimatised
	}
	panic(fmt.Sprintf("ftl: no rest floor for %v", a))
}

func feasibility(report, arrival, final clock.Minutes) *Feasibility {
	planned := clock.Forward(report, arrival) - report
	diff := planned - final
	if diff < 0 {
		diff = -diff
	}
	return &Feasibility{
		PlannedFDP:        planned,
		IsFeasible:        planned <= final,
		DifferenceMinutes: diff,
	}
}
