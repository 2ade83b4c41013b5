package token

import (
	"testing"

	"github.com/applytrack/server/internal/models"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	signer := NewSigner("test-secret")

	types := "JobSeeker,Analyst"
	u := &models.User{
		UserID:    42,
		Name:      "Test User",
		Email:     "test@example.com",
		Role:      models.RoleRegular,
		UserTypes: &types,
	}

	raw, err := signer.Sign(u)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := signer.Verify(raw)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("userID = %d, want 42", claims.UserID)
	}
	if claims.Role != models.RoleRegular {
		t.Fatalf("role = %s, want Regular", claims.Role)
	}
	if claims.UserTypes == nil || *claims.UserTypes != types {
		t.Fatalf("userTypes not carried through")
	}
	if claims.Email != "test@example.com" || claims.Name != "Test User" {
		t.Fatalf("email/name not carried through")
	}
	if claims.ExpiresAt == nil {
		t.Fatalf("expected an expiry")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	u := &models.User{UserID: 1, Role: models.RoleRegular}

	raw, err := NewSigner("secret-a").Sign(u)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := NewSigner("secret-b").Verify(raw); err == nil {
		t.Fatalf("expected verification to fail with wrong secret")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	if _, err := NewSigner("s").Verify("not.a.token"); err == nil {
		t.Fatalf("expected garbage token to fail")
	}
}
