package engine

import (
	"fmt"
	"math"
)

// Insight messages are fixed strings keyed off independent threshold checks.
const (
	insightComments      = "Strong comment activity - your audience is invested enough to talk back."
	insightShares        = "High share rate: content is resonating beyond your existing audience."
	insightFakeFollowers = "Engagement is far below follower count; audience may include inactive or purchased followers."
	insightViews         = "Views are outpacing followers - content is reaching well beyond your follower base."
	insightPremium       = "Engagement is in sponsorship-premium territory; lead with this number in brand pitches."
	insightDefault       = "Engagement is within the typical range for your audience size."
)

// AnalyzeEngagement scores audience interaction density for an account.
//
// followers must be positive; zero would divide by zero and is rejected with
// ErrInvalidFollowerCount. views is optional - pass nil when the platform
// does not report views, and the view-based insight is skipped rather than
// treated as zero.
func AnalyzeEngagement(followers, likes, comments, shares int64, views *int64) (EngagementReport, error) {
	if followers <= 0 {
		return EngagementReport{}, fmt.Errorf("analyze engagement: %w: %d", ErrInvalidFollowerCount, followers)
	}

	f := float64(followers)
	rate := round2(float64(likes+comments+shares) / f * 100)

	ratios := EngagementRatios{
		Likes:    round2(float64(likes) / f * 100),
		Comments: round2(float64(comments) / f * 100),
		Shares:   round2(float64(shares) / f * 100),
	}

	report := EngagementReport{
		EngagementRatePercent: rate,
		QualityTier:           qualityTier(rate),
		FakeFollowerRisk:      fakeFollowerRisk(rate, followers),
		ViralPotentialPercent: viralPotential(rate, likes, comments, shares),
		Ratios:                ratios,
	}

	if ratios.Comments > 0.5 {
		report.Insights = append(report.Insights, insightComments)
	}
	if ratios.Shares > 0.2 {
		report.Insights = append(report.Insights, insightShares)
	}
	if report.FakeFollowerRisk == RiskHigh {
		report.Insights = append(report.Insights, insightFakeFollowers)
	}
	if views != nil && *views > followers*2 {
		report.Insights = append(report.Insights, insightViews)
	}
	if rate > 5 {
		report.Insights = append(report.Insights, insightPremium)
	}
	if len(report.Insights) == 0 {
		report.Insights = []string{insightDefault}
	}

	return report, nil
}

// qualityTier buckets the engagement rate, most specific threshold first.
func qualityTier(ratePercent float64) QualityTier {
	switch {
	case ratePercent > 6:
		return TierViralPotential
	case ratePercent > 4:
		return TierExcellent
	case ratePercent > 2:
		return TierGood
	case ratePercent < 1:
		return TierNeedsWork
	default:
		return TierAverage
	}
}

// fakeFollowerRisk flags large accounts with implausibly low engagement.
func fakeFollowerRisk(ratePercent float64, followers int64) FakeFollowerRisk {
	switch {
	case ratePercent < 0.5 && followers > 10000:
		return RiskHigh
	case ratePercent < 1 && followers > 50000:
		return RiskMedium
	default:
		return RiskLow
	}
}

// viralPotential is a bounded heuristic: 15x the engagement rate, plus a
// bonus when shares outpace comments and when comments run above a tenth of
// likes. Always in [0,100].
func viralPotential(ratePercent float64, likes, comments, shares int64) int {
	score := math.Min(100, ratePercent*15)
	if shares > comments {
		score += 10
	}
	if float64(comments) > float64(likes)*0.1 {
		score += 10
	}
	score = math.Min(100, math.Max(0, score))
	return int(math.Round(score))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
