package parser

import "testing"

func TestExtractMerchant(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"payment to", "Rs 500 debited for payment to AMAZON BD on 15-08-2026 using UPI", "Amazon"},
		{"labelled merchant", "Rs 500 charged. Merchant Name: SWIGGY", "Swiggy"},
		{"upi p2m reference", "debited via UPI/P2M/1234567/ZEPTONOW today", "Zepto"},
		{"beneficiary", "transfer to beneficiary: RAVI KUMAR", "Ravi Kumar"},
		{"collapsed whitespace", "payment   to \n  ACME   CORP on 01-08-2026 using card", "Acme Corp"},
		{"banking noun rejected", "Rs 100 debited, payment to ACCOUNT on 01-08-2026 using card", ""},
		{"nothing", "Rs 100 debited from your account", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractMerchant(tt.text, nil); got != tt.want {
				t.Errorf("extractMerchant(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestCleanMerchantName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"AMAZON BD", "Amazon"},
		{"FLIPKART PAYMENTS", "Flipkart"},
		{"UPI_SWIGGY", "Swiggy"},
		{"GPAY", "Google Pay"},
		{"ACME PVT LTD", "Acme"},
		{"RELIANCE RETAIL LIMITED", "Reliance Retail"},
		{"SOME_LOCAL_STORE", "Some Local Store"},
		{"cafe%%coffee##day", "Cafecoffeeday"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := cleanMerchantName(tt.raw); got != tt.want {
				t.Errorf("cleanMerchantName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestIsValidMerchantName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"Amazon", true},
		{"A", false},
		{"", false},
		{"123456", false},
		{"UPI", false},
		{"Transaction", false},
		{"9lives", false},
		{"Big Bazaar", true},
	}

	for _, tt := range tests {
		if got := isValidMerchantName(tt.name); got != tt.ok {
			t.Errorf("isValidMerchantName(%q) = %v, want %v", tt.name, got, tt.ok)
		}
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello world", "Hello World"},
		{"ALL CAPS NAME", "All Caps Name"},
		{"big-bazaar", "Big-Bazaar"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
