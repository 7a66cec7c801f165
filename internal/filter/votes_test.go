package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soft-boni/admin-panel-venue-proximity/internal/domain"
)

func TestVotePercentage(t *testing.T) {
	tests := []struct {
		name              string
		open, close       int
		wantOpen, wantCls int
	}{
		{"no votes", 0, 0, 0, 0},
		{"blue moon", 45, 12, 79, 21},
		{"only open", 10, 0, 100, 0},
		{"half up", 1, 7, 13, 88},
		{"even split", 1, 1, 50, 50},
		{"thirds", 1, 2, 33, 67},
		{"sixths", 1, 5, 17, 83},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotOpen, gotClose := VotePercentage(tt.open, tt.close)
			assert.Equal(t, tt.wantOpen, gotOpen)
			assert.Equal(t, tt.wantCls, gotClose)
		})
	}
}

func TestVotePercentageIsNotNormalized(t *testing.T) {
	// 1/8 = 12.5% and 7/8 = 87.5% both round up.
	openPct, closePct := VotePercentage(1, 7)
	assert.Equal(t, 101, openPct+closePct)
}

func TestVoteBandBoundaries(t *testing.T) {
	assert.True(t, BandLow.Contains(20))
	assert.False(t, BandMedium.Contains(20))
	assert.True(t, BandMedium.Contains(21))
	assert.True(t, BandMedium.Contains(50))
	assert.False(t, BandHigh.Contains(50))
	assert.True(t, BandHigh.Contains(51))
	assert.True(t, BandAll.Contains(0))
}

func TestParseVoteBand(t *testing.T) {
	b, err := ParseVoteBand("")
	require.NoError(t, err)
	assert.Equal(t, BandAll, b)

	b, err = ParseVoteBand("medium")
	require.NoError(t, err)
	assert.Equal(t, BandMedium, b)

	_, err = ParseVoteBand("huge")
	assert.ErrorIs(t, err, domain.ErrUnknownValue)
}
