package models

import "time"

// Assessment represents one energy efficiency evaluation for a property
type Assessment struct {
	ID               string         `json:"id"`
	Owner            string         `json:"owner"`
	Address          string         `json:"address"`
	AssessmentDate   time.Time      `json:"assessment_date"`
	EfficiencyRating float64        `json:"efficiency_rating"`
	Recommendations  string         `json:"recommendations"`
	CostSavings      float64        `json:"cost_savings"` // estimated annual savings in dollars
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        *time.Time     `json:"updated_at,omitempty"` // nil until the first update
	UsageHistory     []UsageReading `json:"usage_history"`
}

// UsageReading is a single consumption data point recorded against an assessment
type UsageReading struct {
	Timestamp   time.Time `json:"timestamp"`
	Consumption float64   `json:"consumption"` // kWh
}

// AssessmentPayload holds the caller-supplied fields for create and update
type AssessmentPayload struct {
	Address          string  `json:"address"`
	EfficiencyRating float64 `json:"efficiency_rating"`
	Recommendations  string  `json:"recommendations"`
	CostSavings      float64 `json:"cost_savings"`
}

// Clone returns a deep copy so callers can't mutate stored state through
// the returned record
func (a Assessment) Clone() Assessment {
	cp := a
	if a.UpdatedAt != nil {
		t := *a.UpdatedAt
		cp.UpdatedAt = &t
	}
	if a.UsageHistory != nil {
		cp.UsageHistory = make([]UsageReading, len(a.UsageHistory))
		copy(cp.UsageHistory, a.UsageHistory)
	}
	return cp
}
