package ftl

import (
	"errors"
	"testing"

	"github.com/MCH-512/crewsphere-sub000/internal/clock"
)

func mustInput(t *testing.T, report string, sectors int, a Acclimatisation, arrival string) DutyInput {
	t.Helper()
	in := DutyInput{
		ReportTime:      clock.MustParse(report),
		Sectors:         sectors,
		Acclimatisation: a,
	}
	if arrival != "" {
		m := clock.MustParse(arrival)
		in.ProposedArrival = &m
	}
	return in
}

func TestComputeScenarios(t *testing.T) {
	tests := []struct {
		name       string
		in         DutyInput
		base       string
		reduction  string
		after      string
		wocl       bool
		final      string
		latest     string
		eligible   bool
		extended   string
		rest       string
		planned    string
		feasible   bool
		difference string
	}{
		{
			name:      "day report acclimatised two sectors",
			in:        mustInput(t, "08:00", 2, Acclimatised, ""),
			base:      "13:00",
			reduction: "00:00",
			after:     "13:00",
			final:     "13:00",
			latest:    "21:00",
			eligible:  true,
			extended:  "14:00",
			rest:      "13:00",
		},
		{
			name:      "late report not acclimatised crosses next day WOCL",
			in:        mustInput(t, "23:00", 3, NotAcclimatised, ""),
			base:      "09:15",
			reduction: "00:30",
			after:     "08:45",
			wocl:      true,
			final:     "08:45",
			latest:    "07:45",
			eligible:  true,
			extended:  "09:45",
			rest:      "10:00",
		},
		{
			name:       "arrival before report wraps to next day",
			in:         mustInput(t, "22:00", 2, Acclimatised, "04:00"),
			base:       "10:45",
			reduction:  "00:00",
			after:      "10:45",
			wocl:       true,
			final:      "10:45",
			latest:     "08:45",
			eligible:   true,
			extended:   "11:45",
			rest:       "12:00",
			planned:    "06:00",
			feasible:   true,
			difference: "04:45",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compute(tt.in)
			if err != nil {
				t.Fatalf("compute: %v", err)
			}
			checkDuration(t, "base", res.BaseFDP, tt.base)
			checkDuration(t, "reduction", res.SectorReduction, tt.reduction)
			checkDuration(t, "after sectors", res.FDPAfterSectors, tt.after)
			if res.WOCLInfringed != tt.wocl {
				t.Fatalf("wocl=%v, want %v", res.WOCLInfringed, tt.wocl)
			}
			checkDuration(t, "final", res.FinalFDP, tt.final)
			if got := res.LatestPermissibleTime(); got != tt.latest {
				t.Fatalf("latest=%s, want %s", got, tt.latest)
			}
			if res.ExtensionEligible != tt.eligible {
				t.Fatalf("eligible=%v, want %v", res.ExtensionEligible, tt.eligible)
			}
			checkDuration(t, "extended", res.ExtendedFDP, tt.extended)
			checkDuration(t, "rest", res.MinimumRest, tt.rest)

			if tt.planned == "" {
				if res.Feasibility != nil {
					t.Fatalf("unexpected feasibility %+v", res.Feasibility)
				}
				return
			}
			if res.Feasibility == nil {
				t.Fatal("expected feasibility")
			}
			checkDuration(t, "planned", res.Feasibility.PlannedFDP, tt.planned)
			if res.Feasibility.IsFeasible != tt.feasible {
				t.Fatalf("feasible=%v, want %v", res.Feasibility.IsFeasible, tt.feasible)
			}
			checkDuration(t, "difference", res.Feasibility.DifferenceMinutes, tt.difference)
		})
	}
}

func checkDuration(t *testing.T, field string, got clock.Minutes, want string) {
	t.Helper()
	if s := clock.FormatDuration(got); s != want {
		t.Fatalf("%s=%s, want %s", field, s, want)
	}
}

func TestTablesCoverEveryMinute(t *testing.T) {
	for _, nt := range Tables() {
		for m := clock.Minutes(0); m < clock.MinutesPerDay; m++ {
			matches := 0
			for _, e := range nt.Entries {
				if e.Band.Contains(m) {
					matches++
				}
			}
			if matches != 1 {
				t.Fatalf("%s %s: %d entries match, want exactly 1", nt.State, clock.FormatClock(m), matches)
			}
			fdp, ok := LookupBaseFDP(m, nt.Entries)
			if !ok || fdp == 0 {
				t.Fatalf("%s %s: lookup=%d ok=%v", nt.State, clock.FormatClock(m), fdp, ok)
			}
		}
	}
}

func TestLookupBaseFDPReportsGap(t *testing.T) {
	table := DutyLimitTable{entry("06:00", "17:59", "12:00")}
	if _, ok := LookupBaseFDP(clock.MustParse("18:00"), table); ok {
		t.Fatal("expected a miss outside the only band")
	}
	fdp, ok := LookupBaseFDP(clock.MustParse("17:59"), table)
	if !ok || fdp != 720 {
		t.Fatalf("lookup=%d ok=%v, want 720 true", fdp, ok)
	}
}

func TestLookupFirstMatchWins(t *testing.T) {
	table := DutyLimitTable{
		entry("06:00", "12:00", "13:00"),
		entry("12:00", "18:00", "11:00"),
	}
	fdp, _ := LookupBaseFDP(clock.MustParse("12:00"), table)
	if fdp != 780 {
		t.Fatalf("lookup=%d, want 780 from the first band", fdp)
	}
}

func TestFDPAfterSectorsNonIncreasing(t *testing.T) {
	for _, a := range []Acclimatisation{Acclimatised, NotAcclimatised} {
		for m := clock.Minutes(0); m < clock.MinutesPerDay; m += 15 {
			prev := clock.Minutes(1 << 30)
			for n := MinSectors; n <= MaxSectors; n++ {
				res, err := Compute(DutyInput{ReportTime: m, Sectors: n, Acclimatisation: a})
				if err != nil {
					t.Fatalf("compute: %v", err)
				}
				if res.FDPAfterSectors > prev {
					t.Fatalf("%s %s sectors=%d: fdp rose from %d to %d", a, clock.FormatClock(m), n, prev, res.FDPAfterSectors)
				}
				prev = res.FDPAfterSectors
			}
		}
	}
}

func TestCappingAndFeasibilityInvariants(t *testing.T) {
	for _, a := range []Acclimatisation{Acclimatised, NotAcclimatised} {
		for m := clock.Minutes(0); m < clock.MinutesPerDay; m += 10 {
			for n := MinSectors; n <= MaxSectors; n++ {
				arrival := clock.OfDay(m + 600)
				if n%2 == 0 {
					arrival = clock.OfDay(m + 13*60)
				}
				in := DutyInput{ReportTime: m, Sectors: n, Acclimatisation: a, ProposedArrival: &arrival}
				res, err := Compute(in)
				if err != nil {
					t.Fatalf("compute: %v", err)
				}
				if res.FinalFDP > res.FDPAfterSectors {
					t.Fatalf("final %d exceeds after-sectors %d", res.FinalFDP, res.FDPAfterSectors)
				}
				if !res.WOCLInfringed && res.FinalFDP != res.FDPAfterSectors {
					t.Fatalf("cap applied without WOCL infringement at %s", clock.FormatClock(m))
				}
				if res.WOCLInfringed && res.FinalFDP > woclCap {
					t.Fatalf("final %d above WOCL cap", res.FinalFDP)
				}
				if res.MinimumRest < res.FinalFDP || res.MinimumRest < restFloor(a) {
					t.Fatalf("rest %d below duty %d or floor", res.MinimumRest, res.FinalFDP)
				}
				if res.ExtensionEligible != (n <= 4) {
					t.Fatalf("eligible=%v for %d sectors", res.ExtensionEligible, n)
				}

				f := res.Feasibility
				if f.IsFeasible != (f.PlannedFDP <= res.FinalFDP) {
					t.Fatalf("feasible=%v planned=%d final=%d", f.IsFeasible, f.PlannedFDP, res.FinalFDP)
				}
				diff := f.PlannedFDP - res.FinalFDP
				if diff < 0 {
					diff = -diff
				}
				if f.DifferenceMinutes != diff {
					t.Fatalf("difference=%d, want %d", f.DifferenceMinutes, diff)
				}
				if f.PlannedFDP < 0 || f.PlannedFDP >= clock.MinutesPerDay {
					t.Fatalf("planned %d outside one rolling day", f.PlannedFDP)
				}
			}
		}
	}
}

func TestWOCLCapBinds(t *testing.T) {
	// 05:45 acclimatised is 12:45 and overlaps the WOCL's last minutes.
	res, err := Compute(mustInput(t, "05:45", 1, Acclimatised, ""))
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if !res.WOCLInfringed {
		t.Fatal("expected WOCL infringement")
	}
	checkDuration(t, "after sectors", res.FDPAfterSectors, "12:45")
	checkDuration(t, "final", res.FinalFDP, "11:00")
	if got := res.LatestPermissibleTime(); got != "16:45" {
		t.Fatalf("latest=%s, want 16:45", got)
	}
}

func TestWOCLEndIsNotInfringedByReportAtWindowEnd(t *testing.T) {
	res, err := Compute(mustInput(t, "05:59", 2, Acclimatised, ""))
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if res.WOCLInfringed {
		t.Fatal("a duty reporting at 05:59 only touches the window end")
	}
}

func TestExtensionNotEligibleAboveFourSectors(t *testing.T) {
	res, err := Compute(mustInput(t, "08:00", 5, Acclimatised, ""))
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if res.ExtensionEligible || res.ExtendedFDP != 0 {
		t.Fatalf("eligible=%v extended=%d, want false 0", res.ExtensionEligible, res.ExtendedFDP)
	}
	checkDuration(t, "reduction", res.SectorReduction, "01:30")
	checkDuration(t, "final", res.FinalFDP, "11:30")
}

func TestInfeasibleArrival(t *testing.T) {
	res, err := Compute(mustInput(t, "08:00", 2, Acclimatised, "22:30"))
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	f := res.Feasibility
	if f.IsFeasible {
		t.Fatal("14:30 planned against 13:00 must be infeasible")
	}
	checkDuration(t, "planned", f.PlannedFDP, "14:30")
	checkDuration(t, "difference", f.DifferenceMinutes, "01:30")
}

func TestArrivalEqualToReportIsZeroLengthDuty(t *testing.T) {
	res, err := Compute(mustInput(t, "08:00", 2, Acclimatised, "08:00"))
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if res.Feasibility.PlannedFDP != 0 || !res.Feasibility.IsFeasible {
		t.Fatalf("feasibility=%+v, want zero planned and feasible", res.Feasibility)
	}
}

func TestReductionIsNotClamped(t *testing.T) {
	// No table in use is short enough to go negative with ten sectors;
	// the arithmetic itself must still not clamp.
	if got := reductionFor(10); got != 240 {
		t.Fatalf("reduction for 10 sectors=%d, want 240", got)
	}
	res := DutyResult{BaseFDP: 180, SectorReduction: reductionFor(10)}
	res.FDPAfterSectors = res.BaseFDP - res.SectorReduction
	if !res.NegativeFDP() || res.FDPAfterSectors != -60 {
		t.Fatalf("after sectors=%d negative=%v, want -60 true", res.FDPAfterSectors, res.NegativeFDP())
	}
	for _, nt := range Tables() {
		for _, e := range nt.Entries {
			if e.FDP-reductionFor(MaxSectors) < 0 {
				t.Fatalf("%s %s would go negative", nt.State, e.Band)
			}
		}
	}
}

func TestComputeRejectsOutOfBoundInput(t *testing.T) {
	arrival := clock.Minutes(1440)
	tests := []struct {
		name string
		in   DutyInput
		want error
	}{
		{"report past midnight", DutyInput{ReportTime: 1440, Sectors: 1}, ErrInvalidInput},
		{"negative report", DutyInput{ReportTime: -1, Sectors: 1}, ErrInvalidInput},
		{"arrival out of range", DutyInput{ReportTime: 0, Sectors: 1, ProposedArrival: &arrival}, ErrInvalidInput},
		{"zero sectors", DutyInput{ReportTime: 0, Sectors: 0}, ErrSectorCountOutOfRange},
		{"eleven sectors", DutyInput{ReportTime: 0, Sectors: 11}, ErrSectorCountOutOfRange},
		{"unknown state", DutyInput{ReportTime: 0, Sectors: 1, Acclimatisation: Acclimatisation(7)}, ErrUnknownAcclimatisation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err=%v, want %v", err, tt.want)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("err=%v, want it to wrap ErrInvalidInput", err)
			}
		})
	}
}

func TestTableForPanicsOnUnknownState(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	TableFor(Acclimatisation(9))
}

func TestTablesCannotBeModifiedByCallers(t *testing.T) {
	for _, nt := range Tables() {
		for i := range nt.Entries {
			nt.Entries[i].FDP = 0
			nt.Entries[i].Band = clock.Range{Start: 1, End: 2}
		}
	}
	table := TableFor(Acclimatised)
	table[0].Band = clock.Range{Start: 1, End: 2}
	table[0].FDP = 0

	res, err := Compute(mustInput(t, "08:00", 2, Acclimatised, ""))
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if res.BaseFDP != clock.MustParse("13:00") {
		t.Fatalf("base FDP=%s after caller edits, want 13:00", res.BaseFDP)
	}
	if got := TableFor(Acclimatised)[0]; got.FDP == 0 {
		t.Fatalf("first acclimatised entry changed: %+v", got)
	}
}
