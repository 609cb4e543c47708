// Package service layers a result cache over the core classifier for the API
package service

import (
	"context"

	"lipi/internal/core/classifier"
	"lipi/internal/core/normalize"
	"lipi/internal/platform/cache"
	"lipi/internal/platform/metrics"
	"lipi/internal/services/api/classify/domain"
	clsdom "lipi/internal/services/classify/domain"
)

// Service defines the service contract for ad-hoc classification
type Service interface{ domain.ServicePort }

// Svc implements the Service interface. Cache and Metrics are optional;
// the nil-safe cache means call sites never branch on wiring
type Svc struct {
	Cls     clsdom.ClassifyPort
	Cache   *cache.Cache
	Metrics *metrics.Metrics
	Version int
}

// New creates a new ad-hoc classify service
func New(cls clsdom.ClassifyPort, rd *cache.Cache, version int) *Svc {
	if cls == nil {
		panic("classify.Service requires a non nil ClassifyPort")
	}
	if version <= 0 {
		version = classifier.Version
	}
	return &Svc{Cls: cls, Cache: rd, Version: version}
}

// cached is the cache payload; evidence is rebuilt cheaply so only the
// verdict is stored
type cached struct {
	Script     string  `json:"s"`
	Language   string  `json:"l"`
	Confidence float64 `json:"c"`
	Version    int     `json:"v"`
}

// Classify returns the verdict for one text, consulting the cache first.
// The key is the normalized text so trivial formatting differences share
// one cache slot
func (s *Svc) Classify(ctx context.Context, in domain.ClassifyInput) (domain.ClassifyResponse, error) {
	key := s.Cache.Key("classify", normalize.Fold(in.Text))

	var hit cached
	if s.Cache.Get(ctx, key, &hit) && hit.Version == s.Version {
		if s.Metrics != nil {
			s.Metrics.CacheHitsTotal.Inc()
		}
		return domain.ClassifyResponse{
			Script:          hit.Script,
			Language:        hit.Language,
			Confidence:      hit.Confidence,
			DetectorVersion: hit.Version,
			Cached:          true,
		}, nil
	}
	if s.Metrics != nil {
		s.Metrics.CacheMissesTotal.Inc()
	}

	res := s.Cls.Classify(ctx, in.Text)
	out := domain.ClassifyResponse{
		Script:          string(res.Script),
		Language:        string(res.Language),
		Confidence:      res.Confidence,
		DetectorVersion: s.Version,
		Evidence:        &res.Evidence,
	}
	s.Cache.Set(ctx, key, cached{
		Script:     out.Script,
		Language:   out.Language,
		Confidence: out.Confidence,
		Version:    out.DetectorVersion,
	})
	return out, nil
}

// ClassifyBatch classifies several texts, input order preserved
func (s *Svc) ClassifyBatch(ctx context.Context, in domain.BatchInput) (domain.BatchResponse, error) {
	out := domain.BatchResponse{Results: make([]domain.ClassifyResponse, 0, len(in.Texts))}
	for _, text := range in.Texts {
		if err := ctx.Err(); err != nil {
			return domain.BatchResponse{}, err
		}
		res, err := s.Classify(ctx, domain.ClassifyInput{Text: text})
		if err != nil {
			return domain.BatchResponse{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
