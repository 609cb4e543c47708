package ch

import (
	"context"
	"strings"
	"testing"
)

// TestOpen_BadDSN rejects malformed DSNs before dialing
func TestOpen_BadDSN(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), Config{URL: "://not-a-dsn"})
	if err == nil {
		t.Fatalf("Open expected error for malformed DSN")
	}
	if !strings.Contains(err.Error(), "parse dsn") {
		t.Fatalf("Open error = %v, want parse dsn failure", err)
	}
}

// TestInsert_EmptyBatchIsNoOp returns nil without touching the connection
func TestInsert_EmptyBatchIsNoOp(t *testing.T) {
	t.Parallel()

	cl := &CH{}
	if err := cl.Insert(context.Background(), "events", nil); err != nil {
		t.Fatalf("Insert of zero rows should be a no-op, got %v", err)
	}
}

// TestNilConnection guards all entry points
func TestNilConnection(t *testing.T) {
	t.Parallel()

	cl := &CH{}
	if err := cl.Ping(context.Background()); err == nil {
		t.Fatalf("Ping on nil connection expected error")
	}
	if _, err := cl.Query(context.Background(), "SELECT 1"); err == nil {
		t.Fatalf("Query on nil connection expected error")
	}
	if err := cl.Insert(context.Background(), "events", [][]any{{1}}); err == nil {
		t.Fatalf("Insert on nil connection expected error")
	}
	if err := cl.Close(); err != nil {
		t.Fatalf("Close on nil connection should be nil, got %v", err)
	}
}

// TestBuildClientInfo carries role and build tag
func TestBuildClientInfo(t *testing.T) {
	t.Parallel()

	info := BuildClientInfo("classify", "v1.2.3")
	if len(info.Products) == 0 {
		t.Fatalf("expected products in client info")
	}
	var sawRole, sawTag bool
	for _, p := range info.Products {
		if p.Name == "role" && p.Version == "classify" {
			sawRole = true
		}
		if p.Name == "lipi" && p.Version == "v1.2.3" {
			sawTag = true
		}
	}
	if !sawRole || !sawTag {
		t.Fatalf("client info missing role/tag: %+v", info.Products)
	}
}
