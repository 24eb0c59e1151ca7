package galaxy

import (
	"fmt"
	"strings"
)

// Mode selects how a step is executed. It is chosen once at startup.
type Mode int

const (
	ModeSingle Mode = iota
	ModeParallel
)

var modeNames = map[Mode]string{
	ModeSingle:   "single",
	ModeParallel: "parallel",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps "single" or "parallel" (case insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return ModeSingle, nil
	case "parallel":
		return ModeParallel, nil
	}
	return 0, fmt.Errorf("%w: %q (want single or parallel)", ErrUnknownMode, s)
}

// ModeNames lists the accepted mode strings.
func ModeNames() []string {
	return []string{ModeSingle.String(), ModeParallel.String()}
}
