package filter

import (
	"fmt"
	"math"

	"github.com/soft-boni/admin-panel-venue-proximity/internal/domain"
)

// VoteBand groups venues by the number of votes received today.
type VoteBand string

const (
	BandAll    VoteBand = All
	BandHigh   VoteBand = "high"
	BandMedium VoteBand = "medium"
	BandLow    VoteBand = "low"
)

func ParseVoteBand(s string) (VoteBand, error) {
	if isAll(s) {
		return BandAll, nil
	}

	b := VoteBand(s)
	switch b {
	case BandHigh, BandMedium, BandLow:
		return b, nil
	case BandAll:
	}

	return "", fmt.Errorf("%w: vote band %q", domain.ErrUnknownValue, s)
}

// Contains reports whether a daily vote total falls in the band:
// high > 50, medium in (20, 50], low <= 20.
func (b VoteBand) Contains(total int) bool {
	switch b {
	case BandHigh:
		return total > 50
	case BandMedium:
		return total > 20 && total <= 50
	case BandLow:
		return total <= 20
	case BandAll:
		return true
	}
	return true
}

// ByVotes returns the vote band predicate, or nil for BandAll.
func ByVotes(b VoteBand) Predicate[domain.Venue] {
	if b == BandAll || b == "" {
		return nil
	}
	return func(v domain.Venue) bool {
		return b.Contains(v.TodayVotes())
	}
}

// VotePercentage returns the open and close shares of today's votes as whole
// percentages. Each share is rounded half up on its own, so the pair may add
// up to 99 or 101. Both are 0 when nobody voted.
func VotePercentage(openCount, closeCount int) (openPct, closePct int) {
	total := openCount + closeCount
	if total == 0 {
		return 0, 0
	}

	return percent(openCount, total), percent(closeCount, total)
}

func percent(n, total int) int {
	return int(math.Round(float64(n) / float64(total) * 100))
}
