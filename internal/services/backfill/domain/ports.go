package domain

import (
	"context"
	"io"

	clsdom "lipi/internal/services/classify/domain"
	entdom "lipi/internal/services/entries/domain"
	resdom "lipi/internal/services/results/domain"
)

// RunnerPort is the public port exposed by the backfill module
type RunnerPort interface {
	// Run imports JSONL records from in; echo is optional (nil disables it)
	Run(ctx context.Context, in io.Reader, echo io.Writer, opts RunInput) (Report, error)
}

// Ports names the upstream dependencies the module is wired with. Results and
// Classifier may be nil when the run never classifies inline
type Ports struct {
	Entries    entdom.WriterPort
	Results    resdom.WriterPort
	Classifier clsdom.ClassifyPort
}
