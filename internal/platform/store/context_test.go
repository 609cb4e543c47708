package store

import (
	"context"
	"testing"
)

// TestUserID_SetAndGet sets a user id and retrieves it
func TestUserID_SetAndGet(t *testing.T) {
	t.Parallel()

	base := context.Background()
	ctx := WithUser(base, "u1")

	id, ok := UserID(ctx)
	if !ok {
		t.Fatalf("UserID not found")
	}
	if id != "u1" {
		t.Fatalf("UserID mismatch got=%q want=%q", id, "u1")
	}
}

// TestUserID_EmptyString reports false when empty string is stored
func TestUserID_EmptyString(t *testing.T) {
	t.Parallel()

	ctx := WithUser(context.Background(), "")

	id, ok := UserID(ctx)
	if ok {
		t.Fatalf("UserID ok should be false for empty value")
	}
	if id != "" {
		t.Fatalf("UserID should be empty got=%q", id)
	}
}

// TestUserID_NotPresent returns false on base context
func TestUserID_NotPresent(t *testing.T) {
	t.Parallel()

	id, ok := UserID(context.Background())
	if ok || id != "" {
		t.Fatalf("UserID should be absent on base context")
	}
}

// TestUserID_NoLeak ensures adding value returns a new ctx and base has no value
func TestUserID_NoLeak(t *testing.T) {
	t.Parallel()

	base := context.Background()
	_ = WithUser(base, "u1")

	id, ok := UserID(base)
	if ok || id != "" {
		t.Fatalf("base context should not have user value")
	}
}

// TestRequestID_SetAndGet sets a request id and retrieves it
func TestRequestID_SetAndGet(t *testing.T) {
	t.Parallel()

	base := context.Background()
	ctx := WithRequestID(base, "lipi-api/req-0001")

	id, ok := RequestID(ctx)
	if !ok {
		t.Fatalf("RequestID not found")
	}
	if id != "lipi-api/req-0001" {
		t.Fatalf("RequestID mismatch got=%q want=%q", id, "lipi-api/req-0001")
	}
}

// TestRequestID_EmptyString reports false when empty string is stored
func TestRequestID_EmptyString(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "")

	id, ok := RequestID(ctx)
	if ok {
		t.Fatalf("RequestID ok should be false for empty value")
	}
	if id != "" {
		t.Fatalf("RequestID should be empty got=%q", id)
	}
}

// TestRequestID_NotPresent returns false on base context
func TestRequestID_NotPresent(t *testing.T) {
	t.Parallel()

	id, ok := RequestID(context.Background())
	if ok || id != "" {
		t.Fatalf("RequestID should be absent on base context")
	}
}

// TestKeys_Isolation ensures user and request keys do not collide
func TestKeys_Isolation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctx = WithUser(ctx, "u1")
	ctx = WithRequestID(ctx, "lipi-api/req-0001")

	uid, uok := UserID(ctx)
	req, rok := RequestID(ctx)

	if !uok || uid != "u1" {
		t.Fatalf("UserID mismatch uok=%v uid=%q", uok, uid)
	}
	if !rok || req != "lipi-api/req-0001" {
		t.Fatalf("RequestID mismatch rok=%v req=%q", rok, req)
	}
}
