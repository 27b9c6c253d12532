package engine

// Platform identifiers accepted by the estimator. Unknown values are not an
// error; lookups fall back to documented defaults.
const (
	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
	PlatformYouTube   = "youtube"
	PlatformTwitter   = "twitter"
)

// RateBreakdown exposes the factors that produced an estimate.
type RateBreakdown struct {
	BaseRate        float64 `json:"base_rate"`
	NicheMultiplier float64 `json:"niche_multiplier"`
	EngagementBonus float64 `json:"engagement_bonus"`
}

// RateEstimate is a sponsorship rate range in whole display units.
// MinRate <= MaxRate always holds for valid inputs.
type RateEstimate struct {
	MinRate   int64         `json:"min_rate"`
	MaxRate   int64         `json:"max_rate"`
	Breakdown RateBreakdown `json:"breakdown"`
}

// ContentRate is the estimated range for a single content format.
type ContentRate struct {
	ContentType string `json:"content_type"`
	MinRate     int64  `json:"min_rate"`
	MaxRate     int64  `json:"max_rate"`
}

// QualityTier classifies engagement rate against industry thresholds.
type QualityTier string

const (
	TierNeedsWork      QualityTier = "needs_work"
	TierAverage        QualityTier = "average"
	TierGood           QualityTier = "good"
	TierExcellent      QualityTier = "excellent"
	TierViralPotential QualityTier = "viral_potential"
)

// FakeFollowerRisk flags accounts whose engagement is implausibly low for
// their follower count.
type FakeFollowerRisk string

const (
	RiskLow    FakeFollowerRisk = "low"
	RiskMedium FakeFollowerRisk = "medium"
	RiskHigh   FakeFollowerRisk = "high"
)

// EngagementRatios are per-metric percentages of follower count.
type EngagementRatios struct {
	Likes    float64 `json:"likes"`
	Comments float64 `json:"comments"`
	Shares   float64 `json:"shares"`
}

// EngagementReport is the full output of the engagement classifier.
type EngagementReport struct {
	EngagementRatePercent float64          `json:"engagement_rate_percent"`
	QualityTier           QualityTier      `json:"quality_tier"`
	FakeFollowerRisk      FakeFollowerRisk `json:"fake_follower_risk"`
	ViralPotentialPercent int              `json:"viral_potential_percent"`
	Ratios                EngagementRatios `json:"ratios"`
	Insights              []string         `json:"insights"`
}

// TimeSlotScore is one scored posting slot. Score is in [0,100].
type TimeSlotScore struct {
	Weekday string `json:"weekday"`
	Hour    int    `json:"hour"`
	Score   int    `json:"score"`
}

// WeeklySchedule is the scored posting heatmap for one platform/niche pair,
// ordered by weekday (Monday first) then hour. Zero-score slots are omitted.
type WeeklySchedule struct {
	Platform string          `json:"platform"`
	Niche    string          `json:"niche"`
	Slots    []TimeSlotScore `json:"slots"`
	Best     TimeSlotScore   `json:"best"`
}

// PitchRequest carries everything the pitch composer substitutes into the
// outreach template. BrandName and RateCardURL are optional.
type PitchRequest struct {
	DisplayName           string       `json:"display_name"`
	Platform              string       `json:"platform"`
	Niche                 string       `json:"niche"`
	Followers             int64        `json:"followers"`
	EngagementRatePercent float64      `json:"engagement_rate_percent"`
	Rates                 RateEstimate `json:"rates"`
	BrandName             string       `json:"brand_name,omitempty"`
	RateCardURL           string       `json:"rate_card_url,omitempty"`
}
