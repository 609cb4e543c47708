// Package domain defines the types and ports for the backfill import
package domain

import "time"

// Record is one JSONL input line. Only Text is required; a missing ID is
// generated at insert
type Record struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"user_id,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Echo is one JSONL output line, written when the run echoes results
type Echo struct {
	ID              string  `json:"id"`
	Script          string  `json:"script"`
	Language        string  `json:"language"`
	Confidence      float64 `json:"confidence"`
	DetectorVersion int     `json:"detector_version"`
}

// Report summarizes one import run
type Report struct {
	Lines      int // total lines seen
	Imported   int // entries written
	Malformed  int // lines skipped (bad JSON or empty text)
	Classified int // results written (when classify enabled)
}

// RunInput controls one import run
type RunInput struct {
	Classify bool // classify inline and write results
	DryRun   bool // parse and validate only, write nothing
}
