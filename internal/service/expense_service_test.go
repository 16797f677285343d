package service

import (
	"testing"
	"time"
)

func TestNormalizeAmountString(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"2499", "2499.00", false},
		{"99.9", "99.90", false},
		{"0", "0.00", false},
		{"-5", "", true},
		{"abc", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeAmountString(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("normalizeAmountString(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("normalizeAmountString(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseRequestDate(t *testing.T) {
	got, err := parseRequestDate("2026-08-15")
	if err != nil {
		t.Fatalf("parseRequestDate() error = %v", err)
	}
	want := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseRequestDate() = %v, want %v", got, want)
	}

	if _, err := parseRequestDate("15-08-2026"); err == nil {
		t.Error("parseRequestDate() accepted an unsupported layout")
	}

	rfc := "2026-08-15T10:30:00Z"
	got, err = parseRequestDate(rfc)
	if err != nil {
		t.Fatalf("parseRequestDate(%q) error = %v", rfc, err)
	}
	if got.Hour() != 10 || got.Minute() != 30 {
		t.Errorf("parseRequestDate(%q) = %v", rfc, got)
	}
}
