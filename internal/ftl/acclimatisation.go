package ftl

import (
	"fmt"
	"strings"
)

// Acclimatisation is whether the crew member's body clock matches local time.
type Acclimatisation int

const (
	Acclimatised Acclimatisation = iota
	NotAcclimatised
)

func (a Acclimatisation) String() string {
	switch a {
	case Acclimatised:
		return "acclimatised"
	case NotAcclimatised:
		return "not_acclimatised"
	default:
		return fmt.Sprintf("Acclimatisation(%d)", int(a))
	}
}

// ParseAcclimatisation accepts the wire names; case and surrounding space are ignored.
func ParseAcclimatisation(s string) (Acclimatisation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "acclimatised":
		return Acclimatised, nil
	case "not_acclimatised":
		return NotAcclimatised, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAcclimatisation, s)
	}
}

func (a Acclimatisation) valid() bool {
	return a == Acclimatised || a == NotAcclimatised
}

func (a Acclimatisation) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAcclimatisation, int(a))
	}
	return []byte(a.String()), nil
}

func (a *Acclimatisation) UnmarshalText(b []byte) error {
	v, err := ParseAcclimatisation(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
