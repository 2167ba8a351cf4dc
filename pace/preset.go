package pace

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownPreset is returned by ParsePreset for names it does not know.
var ErrUnknownPreset = errors.New("pace: unknown speed preset")

// Preset names a step interval.
type Preset int

const (
	// Fast waits 30ms between steps.
	Fast Preset = iota + 1
	// Normal waits 100ms between steps.
	Normal
	// Slow waits 250ms between steps.
	Slow
)

// DefaultPreset applies when no speed has been chosen.
const DefaultPreset = Normal

var intervals = map[Preset]time.Duration{
	Fast:   30 * time.Millisecond,
	Normal: 100 * time.Millisecond,
	Slow:   250 * time.Millisecond,
}

// Presets lists every preset from fastest to slowest.
func Presets() []Preset {
	return []Preset{Fast, Normal, Slow}
}

// Interval returns the step delay for p. Unknown values get the default.
func (p Preset) Interval() time.Duration {
	if d, ok := intervals[p]; ok {
		return d
	}
	return intervals[DefaultPreset]
}

func (p Preset) String() string {
	switch p {
	case Fast:
		return "fast"
	case Normal:
		return "normal"
	case Slow:
		return "slow"
	default:
		return fmt.Sprintf("preset(%d)", int(p))
	}
}

// ParsePreset maps "fast", "normal" or "slow" (case-insensitive) to a Preset.
// An empty name selects DefaultPreset. Any other name also yields
// DefaultPreset, together with ErrUnknownPreset so callers may report it.
func ParsePreset(name string) (Preset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return DefaultPreset, nil
	case "fast":
		return Fast, nil
	case "normal":
		return Normal, nil
	case "slow":
		return Slow, nil
	default:
		return DefaultPreset, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}
