package module

import (
	"context"

	classifydom "lipi/internal/services/api/classify/domain"
	classifysvc "lipi/internal/services/api/classify/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptClassifyPort adapts the classify API service to the domain port interface
type adaptClassifyPort struct{ svc classifysvc.Service }

// Classify returns the verdict for one text
func (a adaptClassifyPort) Classify(
	ctx context.Context,
	in classifydom.ClassifyInput,
) (classifydom.ClassifyResponse, error) {
	return a.svc.Classify(ctx, in)
}

// ClassifyBatch classifies several texts in one call
func (a adaptClassifyPort) ClassifyBatch(
	ctx context.Context,
	in classifydom.BatchInput,
) (classifydom.BatchResponse, error) {
	return a.svc.ClassifyBatch(ctx, in)
}
