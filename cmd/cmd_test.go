package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/spigell/smart-recruit/internal/api"

	"github.com/spf13/viper"
)

func TestColorizeScoreKeepsText(t *testing.T) {
	tests := []struct {
		score  float64
		expect string
	}{
		{score: 82, expect: "82%"},
		{score: 55.5, expect: "55.5%"},
		{score: 10, expect: "10%"},
	}

	for _, tt := range tests {
		if got := colorizeScore(tt.score); !strings.Contains(got, tt.expect) {
			t.Fatalf("expected %q in %q", tt.expect, got)
		}
	}
}

func TestLabels(t *testing.T) {
	offers := offerLabels([]api.Offer{{ID: 3, Title: "Dev Go", Salary: 45000}})
	if len(offers) != 1 || offers[0] != "#3 Dev Go (45 000)" {
		t.Fatalf("unexpected offer labels: %q", offers)
	}

	candidates := candidateLabels([]api.Candidate{{ID: 7, Name: "Amina", Email: "amina@example.com"}})
	if len(candidates) != 1 || candidates[0] != "#7 Amina <amina@example.com>" {
		t.Fatalf("unexpected candidate labels: %q", candidates)
	}
}

func TestGetConfigDefaults(t *testing.T) {
	config, err := getConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.Listen != ":8080" {
		t.Fatalf("expected :8080, got %q", config.Listen)
	}
	if config.RequestTimeout != 10*time.Second || config.HealthInterval != 30*time.Second {
		t.Fatalf("unexpected durations: %+v", config)
	}
	if config.NotificationTTL != 4*time.Second {
		t.Fatalf("expected 4s notification ttl, got %s", config.NotificationTTL)
	}
	if config.Analysis == nil || config.Analysis.RefreshOptions {
		t.Fatalf("expected options to be cached by default")
	}
	if config.Gemini == nil || config.Gemini.Model != "gemini-2.0-flash" {
		t.Fatalf("unexpected gemini config: %+v", config.Gemini)
	}
}

func TestGetConfigFromEnv(t *testing.T) {
	t.Setenv("SMART_RECRUIT_REQUEST_TIMEOUT", "3s")
	t.Setenv("SMART_RECRUIT_ANALYSIS_REFRESH_OPTIONS", "true")
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	config, err := getConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if config.RequestTimeout != 3*time.Second {
		t.Fatalf("expected 3s, got %s", config.RequestTimeout)
	}
	if !config.Analysis.RefreshOptions {
		t.Fatalf("expected refresh-options from env")
	}
}

func TestNewAPIClientAppliesConfig(t *testing.T) {
	t.Setenv(tokenEnv, "secret")

	client, err := newAPIClient(&Config{
		APIURL:         "http://api.local/api/",
		UserAgent:      "tests",
		RequestTimeout: 2 * time.Second,
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.APIURL != "http://api.local/api" || client.UserAgent != "tests" || client.HTTPClient.Timeout != 2*time.Second {
		t.Fatalf("config not applied: %+v", client)
	}
}
