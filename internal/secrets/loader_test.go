package secrets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeSecret(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing secret: %v", err)
	}
	return path
}

func TestLoadPrecedence(t *testing.T) {
	t.Setenv("SMART_RECRUIT_TEST_TOKEN", "  from-env ")

	tests := []struct {
		name   string
		src    Source
		expect string
	}{
		{
			name:   "file wins",
			src:    Source{File: writeSecret(t, "from-file\n"), Env: "SMART_RECRUIT_TEST_TOKEN", Value: "inline"},
			expect: "from-file",
		},
		{
			name:   "env before value",
			src:    Source{Env: "SMART_RECRUIT_TEST_TOKEN", Value: "inline"},
			expect: "from-env",
		},
		{
			name:   "unset env falls back to value",
			src:    Source{Env: "SMART_RECRUIT_TEST_MISSING", Value: " inline "},
			expect: "inline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(Source{Name: "api token", File: filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Fatalf("expected an error for a missing file")
	}

	if _, err := Load(Source{Name: "api token", File: writeSecret(t, "  \n"), Value: "inline"}); err == nil {
		t.Fatalf("an empty file must not fall back to the inline value")
	}

	_, err := Load(Source{Name: "api token"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestOptional(t *testing.T) {
	got, err := Optional(Source{Name: "api token"})
	if err != nil || got != "" {
		t.Fatalf("expected an empty secret without error, got %q, %v", got, err)
	}

	if _, err := Optional(Source{File: filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Fatalf("a broken file must still fail")
	}
}
