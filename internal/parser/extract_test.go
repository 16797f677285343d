package parser

import (
	"testing"
	"time"
)

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"rupee symbol", "paid ₹1,250.50 at store", "1250.50"},
		{"rs prefix", "Rs. 500 debited from account", "500.00"},
		{"inr prefix", "INR 99.99 spent on card", "99.99"},
		{"labelled amount", "amount: 2000 towards bill", "2000.00"},
		{"debited of", "debited of Rs 1,00,000.00 from account", "100000.00"},
		{"no amount", "your statement is ready", ""},
		{"bare number ignored", "order 12345 confirmed", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractAmount(tt.text, nil); got != tt.want {
				t.Errorf("extractAmount(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"2,499.00", "2499.00", true},
		{"500", "500.00", true},
		{" 99.9 ", "99.90", true},
		{"abc", "", false},
		{"-10", "", false},
	}

	for _, tt := range tests {
		got, ok := normalizeAmount(tt.raw)
		if got != tt.want || ok != tt.ok {
			t.Errorf("normalizeAmount(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseDateString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *time.Time
	}{
		{"day first slash", "15/08/2026", datePtr(2026, 8, 15)},
		{"day first dash", "5-3-2026", datePtr(2026, 3, 5)},
		{"two digit year", "15/08/26", datePtr(2026, 8, 15)},
		{"textual month", "15 Aug 2026", datePtr(2026, 8, 15)},
		{"iso shape", "2026-08-15", datePtr(2026, 8, 15)},
		{"impossible day", "31-02-2026", nil},
		{"month out of range", "15-13-2026", nil},
		{"pivot below floor", "15/08/99", nil},
		{"year before floor", "15/08/2019", nil},
		{"garbage", "soonish", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseDateString(tt.in)
			switch {
			case got == nil && tt.want == nil:
			case got == nil || tt.want == nil:
				t.Errorf("parseDateString(%q) = %v, want %v", tt.in, got, tt.want)
			case !got.Equal(*tt.want):
				t.Errorf("parseDateString(%q) = %v, want %v", tt.in, *got, *tt.want)
			}
		})
	}
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestExtractDate(t *testing.T) {
	text := "Rs 500 debited on 15-08-2026 at 14:32"
	got := extractDate(text, nil)
	if got == nil {
		t.Fatal("extractDate() = nil, want date")
	}
	want := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("extractDate() = %v, want %v", *got, want)
	}

	got = extractDate("Merchant: Swiggy Date: 15-01-2024", nil)
	if got == nil {
		t.Fatal("extractDate() = nil, want labeled date")
	}
	want = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("extractDate() = %v, want %v", *got, want)
	}

	if got := extractDate("Rs 500 debited today", nil); got != nil {
		t.Errorf("extractDate() = %v, want nil", *got)
	}
}

func TestExtractPaymentMethod(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"upi via pattern", "paid using UPI to merchant", "UPI"},
		{"debit card", "paid using debit card at store", "Debit Card"},
		{"credit card", "spent via credit card", "Credit Card"},
		{"net banking", "transferred through net banking", "Net Banking"},
		{"wallet", "paid via wallet balance", "Wallet"},
		{"card heuristic", "Card ending 1234 was used at store", "Card"},
		{"upi heuristic", "UPI ref no 1234567890", "UPI"},
		{"nothing", "payment completed successfully", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractPaymentMethod(tt.text, nil); got != tt.want {
				t.Errorf("extractPaymentMethod(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
