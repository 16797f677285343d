package parser

import (
	"testing"

	"spendlens/internal/models"

	"go.uber.org/zap"
)

func TestCategorizeDefaults(t *testing.T) {
	tests := []struct {
		name     string
		merchant string
		text     string
		want     string
	}{
		{"merchant keyword", "Swiggy", "payment confirmation", "Food & Dining"},
		{"text keyword", "Quick Stop", "fuel purchase at pump", "Transport"},
		{"shopping", "Amazon", "order shipped", "Shopping"},
		{"groceries", "Zepto", "your order", "Groceries"},
		{"no match", "Corner Shop", "thank you for your visit", "Other"},
		{"other keywords do not substring match", "Brothers Traders", "another payment", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := categorize(tt.merchant, tt.text, nil, zap.NewNop()); got != tt.want {
				t.Errorf("categorize(%q, %q) = %q, want %q", tt.merchant, tt.text, got, tt.want)
			}
		})
	}
}

func TestCategorizeConfiguredOrder(t *testing.T) {
	categories := []models.Category{
		{Name: "Subscriptions", Keywords: `["netflix","amazon"]`, IsActive: "true"},
		{Name: "Shopping Spree", Keywords: `["amazon"]`, IsActive: "true"},
	}

	got := categorize("Amazon", "order placed", categories, zap.NewNop())
	if got != "Subscriptions" {
		t.Errorf("categorize() = %q, want first configured match %q", got, "Subscriptions")
	}
}

func TestCategorizeSkipsBadRows(t *testing.T) {
	categories := []models.Category{
		{Name: "Broken", Keywords: "not json", IsActive: "true"},
		{Name: "Disabled", Keywords: `["amazon"]`, IsActive: "false"},
		{Name: "Working", Keywords: `["amazon"]`, IsActive: "true"},
	}

	got := categorize("Amazon", "order placed", categories, zap.NewNop())
	if got != "Working" {
		t.Errorf("categorize() = %q, want %q", got, "Working")
	}
}

func TestCategorizeFallsThroughToDefaults(t *testing.T) {
	// A configured set with no match still consults the built-in table.
	categories := []models.Category{
		{Name: "Rent", Keywords: `["landlord"]`, IsActive: "true"},
	}

	got := categorize("Uber", "ride receipt", categories, zap.NewNop())
	if got != "Transport" {
		t.Errorf("categorize() = %q, want %q", got, "Transport")
	}
}
