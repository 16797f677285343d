package parser

import (
	"testing"

	"spendlens/internal/models"

	"go.uber.org/zap"
)

func TestIsBankSender(t *testing.T) {
	configured := compileRules([]models.BankPattern{
		{BankName: "My Bank", Domain: "mybank", IsActive: "true"},
		{BankName: "Old Bank", Domain: "oldbank", IsActive: "false"},
	}, zap.NewNop())

	tests := []struct {
		name   string
		sender string
		rules  []bankRule
		want   bool
	}{
		{"empty sender", "", nil, false},
		{"fallback bank domain", "alerts@hdfcbank.net", nil, true},
		{"fallback payment app", "noreply@paytm.com", nil, true},
		{"fallback generic alerts", "alerts@somebank.example", nil, true},
		{"unknown sender", "offers@shopmail.example", nil, false},
		{"configured domain", "statements@mybank.in", configured, true},
		{"configured list excludes fallback", "alerts@hdfcbank.net", configured, false},
		{"inactive rule ignored", "info@oldbank.in", configured, false},
		{"case insensitive", "Alerts@MyBank.In", configured, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isBankSender(tt.sender, tt.rules); got != tt.want {
				t.Errorf("isBankSender(%q) = %v, want %v", tt.sender, got, tt.want)
			}
		})
	}
}

func TestIsCreditTransaction(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"credited", "Rs 5000 credited to your account", true},
		{"refund", "refund of Rs 250 processed", true},
		{"cashback", "you earned Rs 30 cashback", true},
		{"salary", "salary of Rs 50000 deposited", true},
		{"transfer received", "transfer of Rs 100 received", true},
		{"plain debit", "Rs 500 debited from your account", false},
		{"debit wording wins", "Rs 500 spent, cashback will be credited later", false},
		{"credit card purchase", "purchase of Rs 500 on your credit card", false},
		{"neutral", "your statement is ready", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isCreditTransaction(tt.text); got != tt.want {
				t.Errorf("isCreditTransaction(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
