package domain

import "time"

// DealStage enumerates the pipeline states of a brand deal.
type DealStage string

const (
	DealLead        DealStage = "lead"
	DealPitched     DealStage = "pitched"
	DealNegotiating DealStage = "negotiating"
	DealWon         DealStage = "won"
	DealLost        DealStage = "lost"
)

// validDealTransitions maps each stage to the stages it may move to.
// Terminal stages have no exits; reopening a lost deal means creating a new
// one so the pipeline history stays honest.
var validDealTransitions = map[DealStage][]DealStage{
	DealLead:        {DealPitched, DealLost},
	DealPitched:     {DealNegotiating, DealWon, DealLost},
	DealNegotiating: {DealWon, DealLost},
}

// Deal is one sponsorship opportunity moving through the pipeline.
type Deal struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	BrandName   string    `json:"brand_name" db:"brand_name"`
	ContactName string    `json:"contact_name" db:"contact_name"`
	Email       string    `json:"email" db:"email"`
	Stage       DealStage `json:"stage" db:"stage"`
	Value       int64     `json:"value" db:"value"`
	Notes       string    `json:"notes" db:"notes"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// IsTerminal returns true if the deal is in a final state.
func (d *Deal) IsTerminal() bool {
	return d.Stage == DealWon || d.Stage == DealLost
}

// CanTransitionTo reports whether a stage change is allowed.
func (d *Deal) CanTransitionTo(next DealStage) bool {
	for _, s := range validDealTransitions[d.Stage] {
		if s == next {
			return true
		}
	}
	return false
}

// PipelineSummary aggregates a creator's deal pipeline for the dashboard.
type PipelineSummary struct {
	TotalDeals    int             `json:"total_deals"`
	OpenDeals     int             `json:"open_deals"`
	WonDeals      int             `json:"won_deals"`
	OpenValue     int64           `json:"open_value"`
	WonValue      int64           `json:"won_value"`
	StageCounts   map[string]int  `json:"stage_counts"`
}
