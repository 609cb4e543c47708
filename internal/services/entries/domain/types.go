// Package domain defines core types and interfaces for journal entries
package domain

import "time"

// Entry is one stored journal entry
type Entry struct {
	ID        string // uuid
	UserID    string
	Text      string // raw text as submitted
	TextNorm  string // normalized form, populated at insert
	Source    string // "api" | "import" | "stream"
	CreatedAt time.Time
}

// NewEntry is the insert payload. ID is optional; a uuid is generated when
// empty. CreatedAt defaults to now
type NewEntry struct {
	ID        string
	UserID    string
	Text      string
	Source    string
	CreatedAt time.Time
}

// AfterKey supports stable keyset pagination over (created_at, id)
type AfterKey struct {
	CreatedAt time.Time
	ID        string // uuid
}

// ListInput defines the input parameters for listing entries
type ListInput struct {
	Since time.Time // inclusive; zero = unbounded
	Until time.Time // exclusive; zero = unbounded
	After AfterKey  // zero value = from start
	Limit int       // hard-capped in service

	// Optional filters (ANDed)
	UserID string
	Source string
}

// PendingInput selects entries that still need classification
type PendingInput struct {
	Version int      // current detector version
	Stale   bool     // false: no result at all; true: no result at >= Version
	After   AfterKey // keyset cursor
	Limit   int
}
