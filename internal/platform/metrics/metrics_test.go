package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lipi/internal/platform/testkit"
)

func TestNew_RegistersAndScrapes(t *testing.T) {
	m := New()
	m.ObserveClassify("hinglish", "latin", 0.0002)
	m.ObserveClassify("english", "latin", 0.0001)
	m.SetLexiconSizes(100, 100, 7)
	m.CacheHitsTotal.Inc()
	m.EntriesWrittenTotal.Add(3)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("scrape status = %d", rr.Code)
	}
	body := rr.Body.String()
	testkit.MustContain(t, body, `lipi_classify_total{language="hinglish",script="latin"} 1`)
	testkit.MustContain(t, body, `lipi_lexicon_entries{set="patterns"} 7`)
	testkit.MustContain(t, body, "lipi_cache_hits_total 1")
	testkit.MustContain(t, body, "lipi_entries_written_total 3")
}

func TestNew_IndependentRegistries(t *testing.T) {
	// two instances must not collide on registration
	testkit.MustNotPanic(t, func() {
		_ = New()
		_ = New()
	})
}

func TestHTTPMiddleware_CountsRequests(t *testing.T) {
	m := New()
	h := m.HTTPMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/classify", nil))
	if rr.Code != http.StatusTeapot {
		t.Fatalf("status = %d", rr.Code)
	}

	scrape := httptest.NewRecorder()
	m.Handler().ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	testkit.MustContain(
		t,
		scrape.Body.String(),
		`lipi_http_requests_total{method="GET",path="/api/v1/classify",status="418"} 1`,
	)
}
