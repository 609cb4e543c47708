// Package domain holds DTOs for the ad-hoc classify API
package domain

import "lipi/internal/core/classifier"

// ClassifyInput is one ad-hoc text to classify. Nothing is stored
type ClassifyInput struct {
	Text string `json:"text" validate:"required,max=2000" example:"kal raat se pet dard ho raha hai"`
}

// ClassifyResponse is the verdict for one text
type ClassifyResponse struct {
	Script          string               `json:"script" example:"latin"`
	Language        string               `json:"language" example:"hinglish"`
	Confidence      float64              `json:"confidence" example:"0.83"`
	DetectorVersion int                  `json:"detector_version" example:"2"`
	Evidence        *classifier.Evidence `json:"evidence,omitempty"`
	Cached          bool                 `json:"cached,omitempty"`
}

// BatchInput classifies several texts in one call
type BatchInput struct {
	Texts []string `json:"texts" validate:"required,min=1,max=100,dive,required,max=2000"`
}

// BatchResponse pairs each input text with its verdict, input order preserved
type BatchResponse struct {
	Results []ClassifyResponse `json:"results"`
}
