// Package domain defines the types and interfaces for the results service
package domain

import (
	"encoding/json"
	"time"
)

// ResultWrite is one classification result to persist
type ResultWrite struct {
	EntryID         string // uuid
	Script          string
	Language        string
	Confidence      float64
	DetectorVersion int
	Evidence        json.RawMessage // advisory; may be nil
	CreatedAt       time.Time
}

// Row is the stored result view shared across consumers
type Row struct {
	EntryID         string
	Script          string
	Language        string
	Confidence      float64
	DetectorVersion int
	Evidence        json.RawMessage
	CreatedAt       time.Time
}

// AfterKey is used for keyset pagination over (created_at, entry_id)
type AfterKey struct {
	CreatedAt time.Time
	EntryID   string // uuid
}

// LowConfidenceInput selects results under a confidence ceiling for review
type LowConfidenceInput struct {
	Ceiling  float64 // exclusive; defaults to 0.5 in the service
	Language string  // optional filter
	After    AfterKey
	Limit    int
}
