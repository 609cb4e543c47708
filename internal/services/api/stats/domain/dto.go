// Package domain holds DTOs for stats http and service contracts
package domain

// Query window and filters kept small and explicit
// Dates are ISO8601 days, inclusive on both ends

// TimeRange defines a start and end day for queries
type TimeRange struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02" example:"2026-08-01"`
	End   string `json:"end" validate:"required,datetime=2006-01-02" example:"2026-08-31"`
}

// ByLanguageInput buckets entries by detected language
type ByLanguageInput struct {
	Range TimeRange `json:"range"`
	// optional filters
	Source string `json:"source,omitempty" validate:"omitempty,oneof=api import stream" example:"api"`
}

// ByLanguageRow represents one language bucket
type ByLanguageRow struct {
	Language      string  `json:"language" example:"hinglish"`
	Entries       int64   `json:"entries" example:"420"`
	AvgConfidence float64 `json:"avg_confidence" example:"0.81"`
}

// Daily volume

// DailyInput is the input for daily volume buckets
type DailyInput struct {
	Range    TimeRange `json:"range"`
	Language string    `json:"language,omitempty" validate:"omitempty,oneof=english hindi hinglish unknown" example:"hinglish"`
}

// DailyRow represents one day and language bucket
type DailyRow struct {
	Day      string `json:"day" example:"2026-08-01"`
	Language string `json:"language" example:"hinglish"`
	Entries  int64  `json:"entries" example:"42"`
}

// Confidence histogram

// ConfidenceInput is the input for the confidence histogram
type ConfidenceInput struct {
	Range    TimeRange `json:"range"`
	Language string    `json:"language,omitempty" validate:"omitempty,oneof=english hindi hinglish unknown" example:"hindi"`
}

// ConfidenceRow is one histogram bucket, 0.1 wide
type ConfidenceRow struct {
	Bucket  string `json:"bucket" example:"0.8-0.9"`
	Entries int64  `json:"entries" example:"9"`
}

// Low-confidence review queue size

// LowConfidenceInput is the input for the low-confidence count
type LowConfidenceInput struct {
	Range    TimeRange `json:"range"`
	Ceiling  float64   `json:"ceiling,omitempty" validate:"omitempty,gt=0,lte=1" example:"0.5"`
	Language string    `json:"language,omitempty" validate:"omitempty,oneof=english hindi hinglish unknown" example:"unknown"`
}

// LowConfidenceResponse reports how many entries sit under the ceiling
type LowConfidenceResponse struct {
	Ceiling float64 `json:"ceiling" example:"0.5"`
	Entries int64   `json:"entries" example:"17"`
}
