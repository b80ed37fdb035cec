package domain

import (
	"encoding/json"
	"fmt"
)

// SwingTier is the five-level swing potential scale, ordered from most stable
// to most volatile.
type SwingTier int

const (
	TierVeryLow SwingTier = iota
	TierLow
	TierMedium
	TierHigh
	TierVeryHigh
)

// Swing thresholds in percentage points of leading-candidate share shift.
// A delta below the threshold falls in the tier named by the constant.
const (
	SwingLowThreshold      = 3.0
	SwingMediumThreshold   = 8.0
	SwingHighThreshold     = 15.0
	SwingVeryHighThreshold = 25.0
)

// ClassifySwing maps an absolute leading-share shift (percentage points) to a
// swing tier. Monotonic: a larger delta never yields a lower tier.
func ClassifySwing(deltaPP float64) SwingTier {
	switch {
	case deltaPP < SwingLowThreshold:
		return TierVeryLow
	case deltaPP < SwingMediumThreshold:
		return TierLow
	case deltaPP < SwingHighThreshold:
		return TierMedium
	case deltaPP < SwingVeryHighThreshold:
		return TierHigh
	default:
		return TierVeryHigh
	}
}

var tierNames = [...]string{"Very Low", "Low", "Medium", "High", "Very High"}

func (t SwingTier) String() string {
	if t < TierVeryLow || t > TierVeryHigh {
		return fmt.Sprintf("SwingTier(%d)", int(t))
	}
	return tierNames[t]
}

// ParseSwingTier converts a display name ("Very High") back to its tier.
func ParseSwingTier(s string) (SwingTier, error) {
	for i, name := range tierNames {
		if name == s {
			return SwingTier(i), nil
		}
	}
	return TierVeryLow, fmt.Errorf("unknown swing tier %q", s)
}

// MarshalJSON encodes the tier as its display name.
func (t SwingTier) MarshalJSON() ([]byte, error) {
	if t < TierVeryLow || t > TierVeryHigh {
		return nil, fmt.Errorf("invalid swing tier %d", int(t))
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a display name into a tier.
func (t *SwingTier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	tier, err := ParseSwingTier(s)
	if err != nil {
		return err
	}
	*t = tier
	return nil
}
