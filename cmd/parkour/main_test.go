package main

import (
	"io"
	"testing"
)

func TestPort(t *testing.T) {
	tests := []struct {
		addr     string
		expected string
	}{
		{":23235", "23235"},
		{"0.0.0.0:2222", "2222"},
		{"[::1]:22", "22"},
		{"nonsense", "nonsense"},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			if got := port(tt.addr); got != tt.expected {
				t.Errorf("port(%q) = %q, expected %q", tt.addr, got, tt.expected)
			}
		})
	}
}

func TestLoadGameConfigRejectsUnknownDifficulty(t *testing.T) {
	flagDifficulty = "nightmare"
	defer func() { flagDifficulty = "" }()

	if _, _, err := loadGameConfig(); err == nil {
		t.Error("loadGameConfig() should reject an unknown difficulty")
	}
}

func TestNewLoggerLevel(t *testing.T) {
	tests := []struct {
		level string
		ok    bool
	}{
		{"debug", true},
		{"warn", true},
		{"loud", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			flagLogLevel = tt.level
			defer func() { flagLogLevel = "info" }()

			_, closeFn, err := newLogger(io.Discard, "test")
			if (err == nil) != tt.ok {
				t.Fatalf("newLogger() error = %v, expected ok %v", err, tt.ok)
			}
			if closeFn != nil {
				closeFn()
			}
		})
	}
}
