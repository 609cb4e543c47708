package httpkit

import (
	"net/http"
	"testing"
)

func TestJSONSugarMountsHandlers(t *testing.T) {
	type submitIn struct {
		Text string `json:"text"`
	}

	cases := []struct {
		name  string
		mount func(r Router)
		verb  string
		path  string
	}{
		{
			name: "GetJSON",
			mount: func(r Router) {
				GetJSON[submitIn](r, "/entries/recent", func(*http.Request, submitIn) (any, error) { return "ok", nil })
			},
			verb: "GET", path: "/entries/recent",
		},
		{
			name: "PostJSON",
			mount: func(r Router) {
				PostJSON[submitIn](r, "/entries", func(*http.Request, submitIn) (any, error) { return "ok", nil })
			},
			verb: "POST", path: "/entries",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := &fakeRouter{}
			tc.mount(r)
			if len(r.verbCalls) != 1 {
				t.Fatalf("expected 1 registration, got %d", len(r.verbCalls))
			}
			rec := r.verbCalls[0]
			if rec.verb != tc.verb || rec.path != tc.path {
				t.Fatalf("expected %s %s, got %s %s", tc.verb, tc.path, rec.verb, rec.path)
			}
			if rec.ph == nil {
				t.Fatalf("expected non-nil handler")
			}
		})
	}
}

func TestBodylessSugarMountsHandlers(t *testing.T) {
	cases := []struct {
		name  string
		mount func(r Router)
		verb  string
		path  string
	}{
		{
			name: "Get",
			mount: func(r Router) {
				Get(r, "/health", func(*http.Request) (any, error) { return "ok", nil })
			},
			verb: "GET", path: "/health",
		},
		{
			name: "Post",
			mount: func(r Router) {
				Post(r, "/classify/batch", func(*http.Request) (any, error) { return "ok", nil })
			},
			verb: "POST", path: "/classify/batch",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := &fakeRouter{}
			tc.mount(r)
			if len(r.verbCalls) != 1 {
				t.Fatalf("expected 1 registration, got %d", len(r.verbCalls))
			}
			rec := r.verbCalls[0]
			if rec.verb != tc.verb || rec.path != tc.path {
				t.Fatalf("expected %s %s, got %s %s", tc.verb, tc.path, rec.verb, rec.path)
			}
			if rec.ph == nil {
				t.Fatalf("expected non-nil handler")
			}
		})
	}
}
