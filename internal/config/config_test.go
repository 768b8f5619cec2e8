package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Ebay.BaseURL != "https://svcs.ebay.com/services/search/FindingService/v1" {
		t.Errorf("default Finding API URL = %q", cfg.Ebay.BaseURL)
	}
	if cfg.Ebay.Timeout <= 0 {
		t.Errorf("eBay timeout should default positive, got %v", cfg.Ebay.Timeout)
	}
	if cfg.Server.RateLimitBurst <= 0 {
		t.Errorf("rate limit burst should default positive, got %d", cfg.Server.RateLimitBurst)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("EBAY_APP_ID", "override-app-id")
	t.Setenv("EBAY_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Ebay.AppID != "override-app-id" {
		t.Errorf("AppID = %q, want override-app-id", cfg.Ebay.AppID)
	}
	if cfg.Ebay.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", cfg.Ebay.Timeout)
	}
}
