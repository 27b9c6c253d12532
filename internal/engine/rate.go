// Package engine implements the rate and engagement estimation engine: the
// pure calculators that turn a creator's platform, audience size, niche and
// engagement numbers into sponsorship rates, engagement quality reports,
// posting-time recommendations and pitch emails.
//
// Every function here is deterministic, side-effect free and safe for
// concurrent use. Validation happens at the entry points; the scoring math
// itself is total.
package engine

import (
	"fmt"
	"math"
	"strings"
)

// Dollars per 1000 followers, per platform.
var platformBaseRates = map[string]float64{
	PlatformInstagram: 10,
	PlatformTikTok:    8,
	PlatformYouTube:   20,
	PlatformTwitter:   5,
}

// defaultBaseRate applies when the platform is unrecognized. Silent
// degradation, not an error; changing this to a failure would be a behavior
// regression for existing callers.
const defaultBaseRate = 10

var nicheMultipliers = map[string]float64{
	"finance":       1.8,
	"business":      1.6,
	"tech":          1.4,
	"beauty":        1.3,
	"fitness":       1.2,
	"lifestyle":     1.0,
	"entertainment": 0.9,
	"gaming":        1.1,
}

const defaultNicheMultiplier = 1.0

// Range bounds around the point estimate. The product surfaces a range, not
// a single number.
const (
	minRateFactor = 0.8
	maxRateFactor = 1.3
)

// contentTypeMultipliers maps platform -> ordered list of content formats
// with their multiplier over the base post rate.
var contentTypeMultipliers = map[string][]struct {
	Name       string
	Multiplier float64
}{
	PlatformInstagram: {
		{"Feed Post", 1.0},
		{"Reel", 1.5},
		{"Story (3 frames)", 0.5},
		{"Carousel", 1.2},
		{"Live Stream (30 min)", 2.0},
	},
	PlatformTikTok: {
		{"Standard Video", 1.0},
		{"Series (3 videos)", 2.5},
		{"Live", 1.8},
		{"Branded Effect", 3.0},
	},
	PlatformYouTube: {
		{"Dedicated Video", 1.0},
		{"Integration (60-90s)", 0.5},
		{"Short", 0.4},
		{"Series (3 videos)", 2.7},
	},
	PlatformTwitter: {
		{"Single Tweet", 1.0},
		{"Thread", 1.8},
		{"Spaces Co-host", 1.5},
	},
}

// EstimateRate converts a creator's platform, follower count, niche and
// engagement rate into a sponsorship rate range.
//
// Unknown platforms and niches fall back to the documented defaults.
// Followers below zero are rejected with ErrInvalidFollowerCount rather than
// producing a negative range.
func EstimateRate(platform string, followers int64, niche string, engagementRatePercent float64) (RateEstimate, error) {
	if followers < 0 {
		return RateEstimate{}, fmt.Errorf("estimate rate: %w: %d", ErrInvalidFollowerCount, followers)
	}

	baseRate, ok := platformBaseRates[normalizeKey(platform)]
	if !ok {
		baseRate = defaultBaseRate
	}

	nicheMult, ok := nicheMultipliers[normalizeKey(niche)]
	if !ok {
		nicheMult = defaultNicheMultiplier
	}

	bonus := engagementBonus(engagementRatePercent)

	estimated := float64(followers) / 1000 * baseRate * nicheMult * bonus

	return RateEstimate{
		MinRate: int64(math.Floor(estimated * minRateFactor)),
		MaxRate: int64(math.Ceil(estimated * maxRateFactor)),
		Breakdown: RateBreakdown{
			BaseRate:        baseRate,
			NicheMultiplier: nicheMult,
			EngagementBonus: bonus,
		},
	}, nil
}

// engagementBonus is a tiered step function over the engagement rate.
// Thresholds are strict inequalities, evaluated in order; first match wins.
func engagementBonus(ratePercent float64) float64 {
	switch {
	case ratePercent > 5:
		return 1.3
	case ratePercent > 3:
		return 1.15
	case ratePercent < 1:
		return 0.7
	default:
		return 1.0
	}
}

// ContentTypeBreakdown scales an estimate across the platform's content
// formats. An unrecognized platform yields an empty breakdown.
func ContentTypeBreakdown(platform string, est RateEstimate) []ContentRate {
	formats, ok := contentTypeMultipliers[normalizeKey(platform)]
	if !ok {
		return nil
	}

	out := make([]ContentRate, 0, len(formats))
	for _, f := range formats {
		out = append(out, ContentRate{
			ContentType: f.Name,
			MinRate:     int64(math.Round(float64(est.MinRate) * f.Multiplier)),
			MaxRate:     int64(math.Round(float64(est.MaxRate) * f.Multiplier)),
		})
	}
	return out
}

// Niches returns the niche keys with explicit multipliers, for UI pickers.
func Niches() []string {
	out := make([]string, 0, len(nicheMultipliers))
	for k := range nicheMultipliers {
		out = append(out, k)
	}
	return out
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
