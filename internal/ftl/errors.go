package ftl

import (
	"errors"

	"github.com/MCH-512/crewsphere-sub000/internal/clock"
)

var (
	ErrInvalidTimeFormat      = clock.ErrInvalidTimeFormat
	ErrSectorCountOutOfRange  = errors.New("sector count out of range")
	ErrUnknownAcclimatisation = errors.New("unknown acclimatisation state")
	ErrInvalidInput           = errors.New("invalid duty input")

	// ErrTableLookupMiss means a limit table has a gap. It is raised as a
	// panic, never returned.
	ErrTableLookupMiss = errors.New("no limit table entry for report time")
)
