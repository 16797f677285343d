package parser

import (
	"testing"

	"spendlens/internal/models"

	"go.uber.org/zap"
)

func TestSplitNotation(t *testing.T) {
	tests := []struct {
		raw     string
		pattern string
		flags   string
	}{
		{`/foo/i`, "foo", "i"},
		{`/foo\/bar/im`, `foo\/bar`, "im"},
		{`/foo/`, "foo", ""},
		{`bare`, "bare", ""},
		{` /spaced/i `, "spaced", "i"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			pattern, flags := splitNotation(tt.raw)
			if pattern != tt.pattern || flags != tt.flags {
				t.Errorf("splitNotation(%q) = (%q, %q), want (%q, %q)",
					tt.raw, pattern, flags, tt.pattern, tt.flags)
			}
		})
	}
}

func TestCompilePattern(t *testing.T) {
	re, err := compilePattern(`/hello/i`)
	if err != nil {
		t.Fatalf("compilePattern() error = %v", err)
	}
	if !re.MatchString("say HELLO there") {
		t.Error("compiled pattern is not case-insensitive")
	}

	// Bare patterns are case-insensitive too.
	re, err = compilePattern(`world`)
	if err != nil {
		t.Fatalf("compilePattern() error = %v", err)
	}
	if !re.MatchString("WORLD") {
		t.Error("bare pattern is not case-insensitive")
	}

	if _, err := compilePattern(`/((unbalanced/i`); err == nil {
		t.Error("compilePattern() accepted an invalid regex")
	}
	if _, err := compilePattern(``); err == nil {
		t.Error("compilePattern() accepted an empty pattern")
	}
}

func TestCompilePatternCache(t *testing.T) {
	a, err := compilePattern(`/cached/i`)
	if err != nil {
		t.Fatalf("compilePattern() error = %v", err)
	}
	b, err := compilePattern(`/cached/i`)
	if err != nil {
		t.Fatalf("compilePattern() error = %v", err)
	}
	if a != b {
		t.Error("compilePattern() recompiled a cached pattern")
	}
}

func TestValidatePatterns(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid list", `["/foo/i","bar"]`, false},
		{"empty list", `[]`, false},
		{"not json", `foo`, true},
		{"wrong element type", `[1,2]`, true},
		{"bad regex", `["/((unbalanced/i"]`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePatterns(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePatterns(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
		})
	}
}

func TestValidateKeywords(t *testing.T) {
	if err := ValidateKeywords(`["food","dining"]`); err != nil {
		t.Errorf("ValidateKeywords() error = %v", err)
	}
	if err := ValidateKeywords(`{"food":1}`); err == nil {
		t.Error("ValidateKeywords() accepted a JSON object")
	}
}

func TestCompileRules(t *testing.T) {
	patterns := []models.BankPattern{
		{
			BankName:       "Active Bank",
			Domain:         "activebank",
			AmountPatterns: `["/Rs\\s*([0-9]+)/i"]`,
			IsActive:       "true",
		},
		{
			BankName: "Inactive Bank",
			Domain:   "inactivebank",
			IsActive: "false",
		},
		{
			BankName:       "Broken Bank",
			Domain:         "brokenbank",
			AmountPatterns: `["/((unbalanced/i","/Rs\\s*([0-9]+)/i"]`,
			IsActive:       "true",
		},
	}

	rules := compileRules(patterns, zap.NewNop())
	if len(rules) != 2 {
		t.Fatalf("compileRules() produced %d rules, want 2", len(rules))
	}
	if rules[0].name != "Active Bank" || rules[1].name != "Broken Bank" {
		t.Errorf("unexpected rule order: %q, %q", rules[0].name, rules[1].name)
	}
	if len(rules[0].amount) != 1 {
		t.Errorf("active rule has %d amount patterns, want 1", len(rules[0].amount))
	}

	// The bad entry is skipped, the good one survives.
	if len(rules[1].amount) != 1 {
		t.Errorf("broken rule has %d amount patterns, want 1", len(rules[1].amount))
	}
}
