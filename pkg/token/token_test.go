package token_test

import (
	"testing"

	"github.com/jfcardenas/panapp/pkg/token"
)

func TestRoundTrip(t *testing.T) {
	signed, err := token.Generate("user-1", "ana")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := token.Validate(signed)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("expected user-1, got %s", claims.UserID)
	}
	if claims.Username != "ana" {
		t.Errorf("expected ana, got %s", claims.Username)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	signed, err := token.Generate("user-1", "ana")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := token.Validate(signed + "x"); err == nil {
		t.Error("expected tampered token to be rejected")
	}
}

func TestGarbageRejected(t *testing.T) {
	if _, err := token.Validate("not-a-token"); err == nil {
		t.Error("expected garbage to be rejected")
	}
}
