package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfig_SandboxDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	for _, key := range []string{"SEED_BALANCE", "CONFIRMATION_MIN_DELAY_MS", "CONFIRMATION_MAX_DELAY_MS", "CONFIRMATION_SUCCESS_RATE"} {
		unsetEnvWithCleanup(t, key)
	}

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.SeedBalance != 50000 {
		t.Fatalf("expected default seed balance 50000, got %f", cfg.SeedBalance)
	}
	if cfg.ConfirmationMinDelayMs != 2000 || cfg.ConfirmationMaxDelayMs != 3000 {
		t.Fatalf("expected default confirmation delay 2000-3000ms, got %d-%d", cfg.ConfirmationMinDelayMs, cfg.ConfirmationMaxDelayMs)
	}
	if cfg.ConfirmationSuccessRate != 0.95 {
		t.Fatalf("expected default confirmation success rate 0.95, got %f", cfg.ConfirmationSuccessRate)
	}
}

func TestLoadConfig_CoercesOutOfRangeSuccessRate(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	setEnvWithCleanup(t, "CONFIRMATION_SUCCESS_RATE", "1.5")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.ConfirmationSuccessRate != 0.95 {
		t.Fatalf("expected out-of-range rate to fall back to 0.95, got %f", cfg.ConfirmationSuccessRate)
	}
}

func TestLoadConfig_ClampsInvertedConfirmationDelays(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	setEnvWithCleanup(t, "CONFIRMATION_MIN_DELAY_MS", "5000")
	setEnvWithCleanup(t, "CONFIRMATION_MAX_DELAY_MS", "1000")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.ConfirmationMaxDelayMs != cfg.ConfirmationMinDelayMs {
		t.Fatalf("expected max delay clamped to min, got min=%d max=%d", cfg.ConfirmationMinDelayMs, cfg.ConfirmationMaxDelayMs)
	}
}

func TestLoadConfig_PortOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	setEnvWithCleanup(t, "SERVER_PORT", "8085")
	setEnvWithCleanup(t, "PORT", "9090")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.ServerPort != "9090" {
		t.Fatalf("expected PORT to override SERVER_PORT, got %q", cfg.ServerPort)
	}
}

func setEnvWithCleanup(t *testing.T, key string, value string) {
	t.Helper()
	prev, hadPrev := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set env %s: %v", key, err)
	}
	t.Cleanup(func() {
		if hadPrev {
			os.Setenv(key, prev)
		} else {
			os.Unsetenv(key)
		}
	})
}

func unsetEnvWithCleanup(t *testing.T, key string) {
	t.Helper()
	prev, hadPrev := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset env %s: %v", key, err)
	}
	t.Cleanup(func() {
		if hadPrev {
			os.Setenv(key, prev)
		}
	})
}
