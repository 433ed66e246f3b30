package ftl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MCH-512/crewsphere-sub000/internal/clock"
)

// Request is the caller-facing form of a duty: clock values as HH:MM
// strings, an empty ProposedArrivalTime meaning none.
type Request struct {
	ReportTime          string `json:"report_time" yaml:"report_time"`
	ProposedArrivalTime string `json:"proposed_arrival_time,omitempty" yaml:"proposed_arrival_time,omitempty"`
	Sectors             int    `json:"sectors" yaml:"sectors"`
	Acclimatisation     string `json:"acclimatisation" yaml:"acclimatisation"`
}

// ParseRequest validates r and converts it into a DutyInput.
func ParseRequest(r Request) (DutyInput, error) {
	report, err := clock.Parse(r.ReportTime)
	if err != nil {
		return DutyInput{}, fmt.Errorf("report time: %w", err)
	}

	var arrival *clock.Minutes
	if strings.TrimSpace(r.ProposedArrivalTime) != "" {
		a, err := clock.Parse(r.ProposedArrivalTime)
		if err != nil {
			return DutyInput{}, fmt.Errorf("proposed arrival time: %w", err)
		}
		arrival = &a
	}

	if r.Sectors < MinSectors || r.Sectors > MaxSectors {
		return DutyInput{}, fmt.Errorf("%w: %d not in %d..%d", ErrSectorCountOutOfRange, r.Sectors, MinSectors, MaxSectors)
	}

	acc, err := ParseAcclimatisation(r.Acclimatisation)
	if err != nil {
		return DutyInput{}, err
	}

	return DutyInput{
		ReportTime:      report,
		ProposedArrival: arrival,
		Sectors:         r.Sectors,
		Acclimatisation: acc,
	}, nil
}

// Calculate parses r and computes its limits.
func Calculate(r Request) (DutyInput, DutyResult, error) {
	in, err := ParseRequest(r)
	if err != nil {
		return DutyInput{}, DutyResult{}, err
	}
	res, err := Compute(in)
	if err != nil {
		return DutyInput{}, DutyResult{}, err
	}
	return in, res, nil
}

// IsInputError reports whether err comes from caller input rather than a defect.
func IsInputError(err error) bool {
	for _, target := range []error{ErrInvalidTimeFormat, ErrSectorCountOutOfRange, ErrUnknownAcclimatisation, ErrInvalidInput} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
