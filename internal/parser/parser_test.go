package parser

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"spendlens/internal/models"

	"go.uber.org/zap"
)

// fakeStore returns canned configuration and can simulate fetch failures.
type fakeStore struct {
	patterns   []models.BankPattern
	categories []models.Category
	err        error
}

func (s *fakeStore) GetBankPatterns(ctx context.Context) ([]models.BankPattern, error) {
	return s.patterns, s.err
}

func (s *fakeStore) GetCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories, s.err
}

func newTestParser(store Store) *Parser {
	return New(store, zap.NewNop())
}

func TestParseEmailDebitCard(t *testing.T) {
	p := newTestParser(&fakeStore{})

	parsed, err := p.ParseEmail(context.Background(),
		"Transaction alert",
		"Rs. 2,499.00 has been debited from your account for payment to AMAZON BD on 15-08-2026 using UPI",
		"alerts@hdfcbank.net",
		nil,
	)
	if err != nil {
		t.Fatalf("ParseEmail() error = %v", err)
	}
	if parsed == nil {
		t.Fatal("ParseEmail() = nil, want transaction")
	}

	if parsed.Amount != "2499.00" {
		t.Errorf("Amount = %q, want %q", parsed.Amount, "2499.00")
	}
	if parsed.Merchant != "Amazon" {
		t.Errorf("Merchant = %q, want %q", parsed.Merchant, "Amazon")
	}
	if parsed.Category != "Shopping" {
		t.Errorf("Category = %q, want %q", parsed.Category, "Shopping")
	}
	if parsed.PaymentMethod != "UPI" {
		t.Errorf("PaymentMethod = %q, want %q", parsed.PaymentMethod, "UPI")
	}
	want := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	if !parsed.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", parsed.Date, want)
	}
}

func TestParseEmailLabeledFields(t *testing.T) {
	p := newTestParser(&fakeStore{})
	emailDate := time.Date(2026, time.August, 20, 9, 30, 0, 0, time.UTC)

	parsed, err := p.ParseEmail(context.Background(),
		"Transaction Alert: Rs. 1,250.00 debited",
		"Merchant: Swiggy\nPayment Mode: UPI\nDate: 15-01-2024",
		"alerts@hdfcbank.com",
		&emailDate,
	)
	if err != nil {
		t.Fatalf("ParseEmail() error = %v", err)
	}
	if parsed == nil {
		t.Fatal("ParseEmail() = nil, want transaction")
	}

	if parsed.Amount != "1250.00" {
		t.Errorf("Amount = %q, want %q", parsed.Amount, "1250.00")
	}
	if parsed.Merchant != "Swiggy" {
		t.Errorf("Merchant = %q, want %q", parsed.Merchant, "Swiggy")
	}
	if parsed.Category != "Food & Dining" {
		t.Errorf("Category = %q, want %q", parsed.Category, "Food & Dining")
	}
	if parsed.PaymentMethod != "UPI" {
		t.Errorf("PaymentMethod = %q, want %q", parsed.PaymentMethod, "UPI")
	}
	// The labeled body date must win over the email date and the clock.
	want := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	if !parsed.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", parsed.Date, want)
	}
}

func TestParseEmailNegatives(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		body    string
		sender  string
	}{
		{
			name:    "credit transaction",
			subject: "Credit alert",
			body:    "Your account has been credited with Rs. 5,000.00 salary",
			sender:  "alerts@hdfcbank.net",
		},
		{
			name:    "unknown sender",
			subject: "Transaction alert",
			body:    "Rs. 500.00 debited for payment to SWIGGY on 15-08-2026",
			sender:  "newsletter@example.com",
		},
		{
			name:    "empty sender",
			subject: "Transaction alert",
			body:    "Rs. 500.00 debited for payment to SWIGGY",
			sender:  "",
		},
		{
			name:    "no amount",
			subject: "Transaction alert",
			body:    "A purchase was made at AMAZON BD today",
			sender:  "alerts@hdfcbank.net",
		},
		{
			name:    "no merchant",
			subject: "Transaction alert",
			body:    "Rs. 100.00 debited from your account",
			sender:  "alerts@hdfcbank.net",
		},
	}

	p := newTestParser(&fakeStore{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := p.ParseEmail(context.Background(), tt.subject, tt.body, tt.sender, nil)
			if err != nil {
				t.Fatalf("ParseEmail() error = %v", err)
			}
			if parsed != nil {
				t.Errorf("ParseEmail() = %+v, want nil", parsed)
			}
		})
	}
}

func TestParseEmailStoreError(t *testing.T) {
	p := newTestParser(&fakeStore{err: errors.New("connection refused")})

	_, err := p.ParseEmail(context.Background(),
		"Transaction alert",
		"Rs. 500.00 debited for payment to SWIGGY",
		"alerts@hdfcbank.net",
		nil,
	)
	if err == nil {
		t.Fatal("ParseEmail() error = nil, want fetch error")
	}
}

func TestParseEmailDatePrecedence(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	emailDate := time.Date(2026, time.August, 20, 9, 30, 0, 0, time.UTC)
	bodyDate := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		body      string
		emailDate *time.Time
		want      time.Time
	}{
		{
			name:      "body date wins over email date",
			body:      "Rs. 500.00 debited for payment to SWIGGY on 15-08-2026",
			emailDate: &emailDate,
			want:      bodyDate,
		},
		{
			name:      "email date when body has none",
			body:      "Rs. 500.00 debited for payment to SWIGGY",
			emailDate: &emailDate,
			want:      emailDate,
		},
		{
			name:      "current time as last resort",
			body:      "Rs. 500.00 debited for payment to SWIGGY",
			emailDate: nil,
			want:      now,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(&fakeStore{})
			p.now = func() time.Time { return now }

			parsed, err := p.ParseEmail(context.Background(), "Alert", tt.body, "alerts@hdfcbank.net", tt.emailDate)
			if err != nil {
				t.Fatalf("ParseEmail() error = %v", err)
			}
			if parsed == nil {
				t.Fatal("ParseEmail() = nil, want transaction")
			}
			if !parsed.Date.Equal(tt.want) {
				t.Errorf("Date = %v, want %v", parsed.Date, tt.want)
			}
		})
	}
}

func TestParseEmailConfiguredDomainsWin(t *testing.T) {
	p := newTestParser(&fakeStore{patterns: DefaultBankPatterns()})

	body := "Rs. 500.00 debited for payment to SWIGGY on 15-08-2026"

	// hdfcbank is a configured domain.
	parsed, err := p.ParseEmail(context.Background(), "Alert", body, "alerts@hdfcbank.net", nil)
	if err != nil {
		t.Fatalf("ParseEmail() error = %v", err)
	}
	if parsed == nil {
		t.Fatal("configured domain rejected")
	}

	// paytm is only in the built-in list, which does not apply once active
	// patterns exist.
	parsed, err = p.ParseEmail(context.Background(), "Alert", body, "alerts@paytm.com", nil)
	if err != nil {
		t.Fatalf("ParseEmail() error = %v", err)
	}
	if parsed != nil {
		t.Errorf("unconfigured domain accepted: %+v", parsed)
	}
}

func TestParseEmailMalformedConfigDegrades(t *testing.T) {
	store := &fakeStore{
		patterns: []models.BankPattern{{
			BankName:              "Broken Bank",
			Domain:                "mybank",
			AmountPatterns:        "not json",
			MerchantPatterns:      `["/merchant[:\\s]+((unbalanced/i"]`,
			DatePatterns:          "",
			PaymentMethodPatterns: "",
			IsActive:              "true",
		}},
	}
	p := newTestParser(store)

	// The rule still matches the sender; extraction falls back to the
	// built-in batteries.
	parsed, err := p.ParseEmail(context.Background(),
		"Alert",
		"Rs. 750.00 debited for payment to ZOMATO on 10-08-2026",
		"alerts@mybank.in",
		nil,
	)
	if err != nil {
		t.Fatalf("ParseEmail() error = %v", err)
	}
	if parsed == nil {
		t.Fatal("ParseEmail() = nil, want transaction via fallback patterns")
	}
	if parsed.Merchant != "Zomato" {
		t.Errorf("Merchant = %q, want %q", parsed.Merchant, "Zomato")
	}
	if parsed.Category != "Food & Dining" {
		t.Errorf("Category = %q, want %q", parsed.Category, "Food & Dining")
	}
}

func TestParseEmailOversizedInput(t *testing.T) {
	p := newTestParser(&fakeStore{})

	// The transaction sits past the cap, so nothing should be extracted.
	padding := make([]byte, maxTextLen)
	for i := range padding {
		padding[i] = 'x'
	}
	body := string(padding) + " Rs. 500.00 debited for payment to SWIGGY"

	parsed, err := p.ParseEmail(context.Background(), "", body, "alerts@hdfcbank.net", nil)
	if err != nil {
		t.Fatalf("ParseEmail() error = %v", err)
	}
	if parsed != nil {
		t.Errorf("ParseEmail() = %+v, want nil for truncated input", parsed)
	}
}

func TestBoundedText(t *testing.T) {
	if got := boundedText("short"); got != "short" {
		t.Errorf("boundedText() = %q, want unchanged input", got)
	}

	// The cap lands inside the 3-byte rupee sign; the cut must back up past
	// it instead of keeping a partial rune.
	text := strings.Repeat("x", maxTextLen-1) + "₹500.00"
	got := boundedText(text)
	if len(got) > maxTextLen {
		t.Errorf("len = %d, want <= %d", len(got), maxTextLen)
	}
	if !utf8.ValidString(got) {
		t.Error("boundedText() produced invalid UTF-8")
	}
	if got != strings.Repeat("x", maxTextLen-1) {
		t.Errorf("boundedText() kept %d trailing bytes past the last full rune", len(got)-(maxTextLen-1))
	}
}

func TestToExpense(t *testing.T) {
	p := newTestParser(&fakeStore{})
	date := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)

	expense := p.ToExpense(&ParsedTransaction{
		Amount:        "2499.00",
		Merchant:      "Amazon",
		Date:          date,
		Category:      "Shopping",
		PaymentMethod: "UPI",
	})

	if expense.Amount != "2499.00" || expense.Merchant != "Amazon" {
		t.Errorf("unexpected expense: %+v", expense)
	}
	if expense.Category != "Shopping" || expense.PaymentMethod != "UPI" {
		t.Errorf("unexpected expense: %+v", expense)
	}
	if !expense.Date.Equal(date) {
		t.Errorf("Date = %v, want %v", expense.Date, date)
	}
}
