package auth

import (
	"testing"
	"time"
)

func testIssuer() *Issuer {
	return NewIssuer([]byte("test-secret"), 15*time.Minute, 7*24*time.Hour)
}

func TestIssuePairAndVerify(t *testing.T) {
	i := testIssuer()
	pair, err := i.IssuePair("user-123")
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Fatal("expected both tokens to be set")
	}

	uid, err := i.Verify(pair.Access, TypeAccess)
	if err != nil {
		t.Fatalf("verify access: %v", err)
	}
	if uid != "user-123" {
		t.Fatalf("expected user-123, got %q", uid)
	}

	uid, err = i.Verify(pair.Refresh, TypeRefresh)
	if err != nil {
		t.Fatalf("verify refresh: %v", err)
	}
	if uid != "user-123" {
		t.Fatalf("expected user-123, got %q", uid)
	}
}

func TestVerify_RejectsWrongType(t *testing.T) {
	i := testIssuer()
	pair, err := i.IssuePair("user-123")
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}

	if _, err := i.Verify(pair.Refresh, TypeAccess); err == nil {
		t.Fatal("refresh token accepted as access token")
	}
	if _, err := i.Verify(pair.Access, TypeRefresh); err == nil {
		t.Fatal("access token accepted as refresh token")
	}
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	i := testIssuer()
	pair, err := i.IssuePair("user-123")
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}

	other := NewIssuer([]byte("other-secret"), time.Minute, time.Hour)
	if _, err := other.Verify(pair.Access, TypeAccess); err == nil {
		t.Fatal("token signed with a different secret was accepted")
	}
}

func TestVerify_RejectsExpired(t *testing.T) {
	i := NewIssuer([]byte("test-secret"), -time.Minute, time.Hour)
	token, err := i.IssueAccess("user-123")
	if err != nil {
		t.Fatalf("issue access: %v", err)
	}
	if _, err := i.Verify(token, TypeAccess); err == nil {
		t.Fatal("expired token was accepted")
	}
}

func TestVerify_RejectsGarbage(t *testing.T) {
	i := testIssuer()
	if _, err := i.Verify("not-a-jwt", TypeAccess); err == nil {
		t.Fatal("garbage token was accepted")
	}
}
