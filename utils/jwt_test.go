package utils

import (
	"strings"
	"testing"
	"time"

	"trimly/config"
)

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("shop-1", time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	shopID, err := ExtractShopIDFromToken(token)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if shopID != "shop-1" {
		t.Errorf("expected shop-1, got %s", shopID)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("shop-1", -time.Minute)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := ExtractShopIDFromToken(token); err == nil {
		t.Fatal("expired token should be rejected")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("shop-1", time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]
	if _, err := ExtractShopIDFromToken(tampered); err == nil {
		t.Fatal("tampered token should be rejected")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	token, err := GenerateToken("shop-1", time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	config.AppConfig.JWTSecret = "other-secret"
	defer func() { config.AppConfig.JWTSecret = "test-secret" }()
	if _, err := ExtractShopIDFromToken(token); err == nil {
		t.Fatal("token signed with a different secret should be rejected")
	}
}
