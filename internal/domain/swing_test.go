package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySwing(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
		want  SwingTier
	}{
		{"zero delta", 0, TierVeryLow},
		{"just under low threshold", 2.99, TierVeryLow},
		{"at low threshold", 3.0, TierLow},
		{"mid low band", 5.5, TierLow},
		{"at medium threshold", 8.0, TierMedium},
		{"mid medium band", 12.0, TierMedium},
		{"at high threshold", 15.0, TierHigh},
		{"mid high band", 20.0, TierHigh},
		{"at very high threshold", 25.0, TierVeryHigh},
		{"landslide flip", 48.3, TierVeryHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySwing(tt.delta))
		})
	}
}

func TestClassifySwingMonotonic(t *testing.T) {
	prev := ClassifySwing(0)
	for delta := 0.0; delta <= 60; delta += 0.25 {
		tier := ClassifySwing(delta)
		assert.GreaterOrEqual(t, tier, prev, "delta %.2f", delta)
		prev = tier
	}
}

func TestSwingTierString(t *testing.T) {
	assert.Equal(t, "Very Low", TierVeryLow.String())
	assert.Equal(t, "Low", TierLow.String())
	assert.Equal(t, "Medium", TierMedium.String())
	assert.Equal(t, "High", TierHigh.String())
	assert.Equal(t, "Very High", TierVeryHigh.String())
	assert.Equal(t, "SwingTier(9)", SwingTier(9).String())
}

func TestParseSwingTier(t *testing.T) {
	t.Run("all display names round-trip", func(t *testing.T) {
		for tier := TierVeryLow; tier <= TierVeryHigh; tier++ {
			parsed, err := ParseSwingTier(tier.String())
			require.NoError(t, err)
			assert.Equal(t, tier, parsed)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := ParseSwingTier("Extreme")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Extreme")
	})
}

func TestSwingTierJSON(t *testing.T) {
	t.Run("marshals as display name", func(t *testing.T) {
		data, err := json.Marshal(TierVeryHigh)
		require.NoError(t, err)
		assert.Equal(t, `"Very High"`, string(data))
	})

	t.Run("unmarshals display name", func(t *testing.T) {
		var tier SwingTier
		require.NoError(t, json.Unmarshal([]byte(`"Medium"`), &tier))
		assert.Equal(t, TierMedium, tier)
	})

	t.Run("rejects out-of-range tier", func(t *testing.T) {
		_, err := json.Marshal(SwingTier(7))
		require.Error(t, err)
	})

	t.Run("rejects unknown name", func(t *testing.T) {
		var tier SwingTier
		require.Error(t, json.Unmarshal([]byte(`"Huge"`), &tier))
	})
}
