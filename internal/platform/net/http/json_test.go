package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type classifyIn struct {
	Text string `json:"text" validate:"required"`
}

func TestJSONHandler_Success(t *testing.T) {
	t.Parallel()

	h := JSONHandler[classifyIn](func(_ *http.Request, in classifyIn) (any, error) {
		return map[string]string{"language": "hinglish", "text": in.Text}, nil
	})

	req := httptest.NewRequest(http.MethodPost, "/classify", bytes.NewBufferString(`{"text":"chalo shuru karte hain"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `"language":"hinglish"`) {
		t.Fatalf("body %q missing classification", body)
	}
}

func TestJSONHandler_BindError(t *testing.T) {
	t.Parallel()

	h := JSONHandler[classifyIn](func(_ *http.Request, _ classifyIn) (any, error) {
		t.Fatal("handler should not be called on bind error")
		return nil, nil
	})

	req := httptest.NewRequest(http.MethodPost, "/classify", bytes.NewBufferString(`{`)) // invalid JSON
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h(rr, req)

	if rr.Code == http.StatusOK {
		t.Fatalf("expected non-200 on bind error, got %d", rr.Code)
	}
	if !strings.Contains(strings.ToLower(rr.Body.String()), "error") {
		t.Fatalf("expected error text in body, got %q", rr.Body.String())
	}
}

func TestJSONHandler_ValidationError(t *testing.T) {
	t.Parallel()

	h := JSONHandler[classifyIn](func(_ *http.Request, _ classifyIn) (any, error) {
		t.Fatal("handler should not be called when validation fails")
		return nil, nil
	})

	req := httptest.NewRequest(http.MethodPost, "/classify", bytes.NewBufferString(`{"text":""}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on missing text, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "text") {
		t.Fatalf("expected the failing field in body, got %q", rr.Body.String())
	}
}

func TestJSONHandler_HandlerError(t *testing.T) {
	t.Parallel()

	h := JSONHandler[classifyIn](func(_ *http.Request, _ classifyIn) (any, error) {
		return nil, errors.New("detector unavailable")
	})

	req := httptest.NewRequest(http.MethodPost, "/classify", bytes.NewBufferString(`{"text":"theek hai"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h(rr, req)

	if rr.Code == http.StatusOK {
		t.Fatalf("expected non-200 on handler error, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "detector unavailable") {
		t.Fatalf("expected error message in body, got %q", rr.Body.String())
	}
}
