// Package domain holds DTOs for entries http and service contracts
package domain

// SubmitInput is one journal entry to store and classify
type SubmitInput struct {
	UserID string `json:"user_id,omitempty" validate:"omitempty,max=64" example:"u-204"`
	Text   string `json:"text" validate:"required,min=1,max=2000" example:"aaj gym skip kiya, bahut thakan thi"`
}

// SubmitResponse echoes the stored entry with its classification
type SubmitResponse struct {
	ID              string  `json:"id"`
	Script          string  `json:"script" example:"latin"`
	Language        string  `json:"language" example:"hinglish"`
	Confidence      float64 `json:"confidence" example:"0.83"`
	DetectorVersion int     `json:"detector_version" example:"2"`
	CreatedAt       string  `json:"created_at" example:"2026-08-03T13:00:00Z"`
}

// RecentInput filters the recent entries listing
type RecentInput struct {
	UserID   string `json:"user_id,omitempty" validate:"omitempty,max=64" example:"u-204"`
	Language string `json:"language,omitempty" validate:"omitempty,oneof=english hindi hinglish unknown" example:"hinglish"`
	Limit    int    `json:"limit,omitempty" validate:"omitempty,min=1,max=200" example:"50"`
}

// RecentRow is one entry joined to its newest classification result.
// Result fields are zero values for entries never classified
type RecentRow struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id,omitempty"`
	Text            string  `json:"text"`
	Source          string  `json:"source" example:"api"`
	Script          string  `json:"script,omitempty" example:"latin"`
	Language        string  `json:"language,omitempty" example:"hinglish"`
	Confidence      float64 `json:"confidence,omitempty" example:"0.83"`
	DetectorVersion int     `json:"detector_version,omitempty" example:"2"`
	CreatedAt       string  `json:"created_at"`
}
