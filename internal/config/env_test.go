package config

import (
	"testing"
	"time"
)

func TestEnvOrDefault(t *testing.T) {
	const key = "GAMEDAY_TEST_STRING"
	if got := envOrDefault(key, "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	t.Setenv(key, "value")
	if got := envOrDefault(key, "fallback"); got != "value" {
		t.Fatalf("expected value, got %q", got)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	const key = "GAMEDAY_TEST_DURATION"
	if got := durationEnvOrDefault(key, time.Minute); got != time.Minute {
		t.Fatalf("expected default, got %v", got)
	}
	t.Setenv(key, "250ms")
	if got := durationEnvOrDefault(key, time.Minute); got != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", got)
	}
	t.Setenv(key, "-3s")
	if got := durationEnvOrDefault(key, time.Minute); got != time.Minute {
		t.Fatalf("negative duration should fall back, got %v", got)
	}
	t.Setenv(key, "soon")
	if got := durationEnvOrDefault(key, time.Minute); got != time.Minute {
		t.Fatalf("garbage should fall back, got %v", got)
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	const key = "GAMEDAY_TEST_INT"
	if got := intEnvOrDefault(key, 7); got != 7 {
		t.Fatalf("expected default, got %d", got)
	}
	t.Setenv(key, "12")
	if got := intEnvOrDefault(key, 7); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
	t.Setenv(key, "0")
	if got := intEnvOrDefault(key, 7); got != 7 {
		t.Fatalf("non-positive should fall back, got %d", got)
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	const key = "GAMEDAY_TEST_BOOL"
	cases := map[string]bool{
		"1": true, "true": true, "YES": true,
		"0": false, "false": false, "No": false,
	}
	for raw, want := range cases {
		t.Setenv(key, raw)
		if got := boolEnvOrDefault(key, !want); got != want {
			t.Fatalf("boolEnvOrDefault(%q) = %v, want %v", raw, got, want)
		}
	}
	t.Setenv(key, "maybe")
	if got := boolEnvOrDefault(key, true); got != true {
		t.Fatal("unparseable value should fall back")
	}
}
