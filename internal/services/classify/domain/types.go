// Package domain defines the core types and interfaces for the classify service
package domain

import "time"

// BatchInput controls one batch run over pending entries
type BatchInput struct {
	Stale    bool // re-classify entries stamped by older detector versions
	PageSize int
	Workers  int
	DryRun   bool
}

// Stats summarizes a batch run
type Stats struct {
	Scanned int
	Written int
	Skipped int // empty-text rows
}

// EntryEvent is the Kafka payload for a submitted entry (stream mode in)
type EntryEvent struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	Text      string    `json:"text"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// ResultEvent is the Kafka payload emitted per classification (stream mode out)
type ResultEvent struct {
	EntryID         string  `json:"entry_id"`
	Script          string  `json:"script"`
	Language        string  `json:"language"`
	Confidence      float64 `json:"confidence"`
	DetectorVersion int     `json:"detector_version"`
}
