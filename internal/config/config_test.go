package config

import "testing"

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got: %v", err)
	}
}

func TestValidateRejectsBadCDCBounds(t *testing.T) {
	cfg := Default()
	cfg.Engine.CDCMinSize = 1000
	cfg.Engine.CDCMaxSize = 500
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for cdc_max_size <= cdc_min_size")
	}
}

func TestApplyEnvOverridesPort(t *testing.T) {
	t.Setenv("ISCC_SERVER_PORT", ":9999")
	cfg := Default()
	cfg.applyEnvOverrides()
	if cfg.Server.Port != ":9999" {
		t.Fatalf("expected port override, got %q", cfg.Server.Port)
	}
}
