package ftl

import (
	"fmt"
	"slices"

	"github.com/MCH-512/crewsphere-sub000/internal/clock"
)

// LimitEntry maps a report-time band to the base FDP allowed for it.
type LimitEntry struct {
	Band clock.Range
	FDP  clock.Minutes
}

// DutyLimitTable is scanned in order; the first matching band wins.
type DutyLimitTable []LimitEntry

func entry(start, end string, fdp string) LimitEntry {
	return LimitEntry{Band: clock.NewRange(start, end), FDP: clock.MustParse(fdp)}
}

var acclimatisedTable = DutyLimitTable{
	entry("06:00", "13:29", "13:00"),
	entry("13:30", "13:59", "12:45"),
	entry("14:00", "14:29", "12:30"),
	entry("14:30", "14:59", "12:15"),
	entry("15:00", "15:29", "12:00"),
	entry("15:30", "15:59", "11:45"),
	entry("16:00", "16:29", "11:30"),
	entry("16:30", "16:59", "11:15"),
	entry("17:00", "21:59", "11:00"),
	entry("22:00", "04:59", "10:45"),
	entry("05:00", "05:14", "12:00"),
	entry("05:15", "05:29", "12:15"),
	entry("05:30", "05:44", "12:30"),
	entry("05:45", "05:59", "12:45"),
}

var notAcclimatisedTable = DutyLimitTable{
	entry("06:00", "13:59", "11:00"),
	entry("14:00", "17:59", "10:30"),
	entry("18:00", "21:59", "10:00"),
	entry("22:00", "05:59", "09:15"),
}

// TableFor returns a copy of the fixed limit table for a.
func TableFor(a Acclimatisation) DutyLimitTable {
	return slices.Clone(tableFor(a))
}

func tableFor(a Acclimatisation) DutyLimitTable {
	switch a {
	case Acclimatised:
		return acclimatisedTable
	case NotAcclimatised:
		return notAcclimatisedTable
	}
	panic(fmt.Sprintf("ftl: no limit table for %v", a))
}

// Tables lists every state with its table, in display order.
func Tables() []NamedTable {
	return []NamedTable{
		{State: Acclimatised, Entries: TableFor(Acclimatised)},
		{State: NotAcclimatised, Entries: TableFor(NotAcclimatised)},
	}
}

type NamedTable struct {
	State   Acclimatisation
	Entries DutyLimitTable
}

// LookupBaseFDP returns the FDP of the first band containing report.
// ok is false only when the table has a gap.
func LookupBaseFDP(report clock.Minutes, table DutyLimitTable) (fdp clock.Minutes, ok bool) {
	for _, e := range table {
		if e.Band.Contains(report) {
			return e.FDP, true
		}
	}
	return 0, false
}
