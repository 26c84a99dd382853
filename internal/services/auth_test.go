package services

import (
	"testing"
)

func TestGenerateRefreshToken(t *testing.T) {
	token, hash, err := generateRefreshToken()
	if err != nil {
		t.Fatalf("generateRefreshToken() returned error: %v", err)
	}
	if token == "" {
		t.Error("token should not be empty")
	}
	if hash == "" {
		t.Error("hash should not be empty")
	}
	if token == hash {
		t.Error("the stored hash must differ from the raw token")
	}
	if hash != hashRefreshToken(token) {
		t.Error("hash should be deterministic over the raw token")
	}
}

func TestGenerateRefreshToken_Unique(t *testing.T) {
	t1, _, err1 := generateRefreshToken()
	t2, _, err2 := generateRefreshToken()
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if t1 == t2 {
		t.Error("consecutive tokens should not collide")
	}
}

func TestHashRefreshToken_FixedWidth(t *testing.T) {
	for _, input := range []string{"", "a", "some-long-refresh-token-value"} {
		hash := hashRefreshToken(input)
		if len(hash) != 64 {
			t.Errorf("hashRefreshToken(%q) length = %d, expected 64 hex chars", input, len(hash))
		}
	}
}

func TestLoginRequest_DefaultAuthType(t *testing.T) {
	req := LoginRequest{
		Username: "user",
		Password: "pass",
	}

	if req.AuthType != "" {
		t.Errorf("AuthType should be empty by default, got %q", req.AuthType)
	}
}
