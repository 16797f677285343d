package parser

import (
	"encoding/json"

	"spendlens/internal/models"
)

// Default extraction configuration. This is the single copy of the default
// rule set: the seed command writes it to Postgres, and the compiled
// fallback tables below are built from the same data so a cold start with
// an empty bank_patterns table still parses the common Indian formats.

var defaultAmountPatterns = []string{
	`/(?:INR|Rs\.?|₹)\s*([0-9,]+(?:\.[0-9]{2})?)/i`,
	`/(?:debited|spent|payment|transaction)\s+(?:of\s+)?(?:INR|Rs\.?|₹)?\s*([0-9,]+(?:\.[0-9]{2})?)/i`,
	`/amount:\s*(?:INR|Rs\.?|₹)?\s*([0-9,]+(?:\.[0-9]{2})?)/i`,
}

// Ordered most-specific first: labelled fields, then UPI reference formats,
// then generic "payment to X" / "card at X" shapes.
var defaultMerchantPatterns = []string{
	`/Merchant\s+Name[:\s]*([A-Za-z][A-Za-z0-9\s&'.-]{2,30})(?:\s|$)/i`,
	`/spent.*?(?:at|on).*?(?:card|ending).*?(?:at|with)\s+([A-Z][A-Z0-9\s&'._-]{2,30})(?:\s+on|\s+at|$)/i`,
	`/has\s+been\s+spent.*?at\s+([A-Z][A-Z0-9\s&'._-]{2,30})(?:\s+on|\s+at|$)/i`,
	`/spent\s+on.*?card.*?at\s+([A-Z][A-Z0-9\s&'._-]{2,30})(?:\s|$)/i`,
	`/UPI\/P2M\/\d+\/([A-Z\s&'.-]+?)(?:\s|$)/i`,
	`/UPI\/P2P\/\d+\/([A-Z\s&'.-]+?)(?:\s|$)/i`,
	`/UPI.*?\/([A-Z][A-Z\s&'.-]{2,30})(?:\s|$)/i`,
	`/Transaction\s+Info[:\s]*([A-Za-z][A-Za-z0-9\s&'.-]{2,30})(?:\s|$)/i`,
	`/(?:merchant|payee)[:\s]+([A-Za-z][A-Za-z0-9\s&'.-]{2,30})(?:\s+(?:payment|mode|on|dated)|\.|\n|$)/i`,
	`/(?:payment|paid|debited)\s+(?:at|to)\s+([A-Za-z][A-Za-z0-9\s&'.-]{2,30})(?:\s+(?:on|dated|for)|\.|\n|$)/i`,
	`/(?:card|used)\s+at\s+([A-Za-z][A-Za-z0-9\s&'.-]{2,30})(?:\s+(?:on|dated)|\.|\n|$)/i`,
	`/beneficiary[:\s]+([A-Za-z][A-Za-z0-9\s&'.-]{2,30})(?:\s|$)/i`,
}

// Secondary battery, tried only when the primary battery yields nothing.
var defaultMerchantFallbacks = []string{
	`/payee[:\s]+([A-Za-z][A-Za-z0-9\s&'.-]{2,30})(?:\s|$)/i`,
	`/beneficiary[:\s]+([A-Za-z][A-Za-z0-9\s&'.-]{2,30})(?:\s|$)/i`,
	`/merchant\s+name[:\s]+([A-Za-z][A-Za-z0-9\s&'.-]{2,30})(?:\s|$)/i`,
	`/to[:\s]+([A-Z][A-Z\s&'.-]{2,30})(?:\s+on|\s+dated|$)/i`,
}

var defaultDatePatterns = []string{
	`/(?:on|dated?|transaction date)\s+(\d{1,2}[-\/]\d{1,2}[-\/]\d{2,4})/i`,
	`/date[:\s]+(\d{1,2}[-\/]\d{1,2}[-\/]\d{2,4})/i`,
	`/(?:on|dated?|transaction date)\s+(\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4})/i`,
	`/(?:on|dated?|transaction date)\s+(\d{4}[-\/]\d{1,2}[-\/]\d{1,2})/i`,
	`/(\d{1,2}[-\/]\d{1,2}[-\/]\d{4})\s+(?:at|\d{1,2}:)/i`,
	`/(\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4})\s+(?:at|\d{1,2}:)/i`,
}

var defaultPaymentMethodPatterns = []string{
	`/(?:using|via|through|card)\s+(credit card|debit card|upi|net banking|wallet)/i`,
	`/(?:Card\s+ending|Card\s+\*+)(\d{4})/i`,
}

// Recognized sender substrings when no active bank pattern is configured:
// major Indian banks, UPI apps, third-party processors and generic alert
// terms.
var fallbackBankDomains = []string{
	"hdfcbank",
	"icicibank",
	"sbi",
	"axisbank",
	"yesbank",
	"kotak",
	"indusind",
	"pnb",
	"bob",
	"federalbank",
	"citibank",
	"paytm",
	"phonepe",
	"gpay",
	"paypal",
	"stripe",
	"razorpay",
	"alerts",
	"notification",
	"banking",
}

type defaultCategory struct {
	Name     string
	Icon     string
	Color    string
	Keywords []string
}

// Ordered: earlier categories win keyword ties.
var defaultCategories = []defaultCategory{
	{"Food & Dining", "🍔", "#ef4444", []string{"swiggy", "zomato", "restaurant", "cafe", "food", "dining", "burger", "pizza", "dominos", "mcdonald", "kfc", "subway"}},
	{"Transport", "🚗", "#f59e0b", []string{"uber", "ola", "rapido", "metro", "fuel", "petrol", "diesel", "parking", "taxi", "cab"}},
	{"Shopping", "🛍️", "#8b5cf6", []string{"amazon", "flipkart", "myntra", "ajio", "shopping", "mall", "store", "retail"}},
	{"Bills & Utilities", "💡", "#06b6d4", []string{"electricity", "water", "gas", "broadband", "mobile", "recharge", "bill payment", "utility"}},
	{"Entertainment", "🎬", "#ec4899", []string{"netflix", "prime", "hotstar", "spotify", "movie", "pvr", "inox", "cinema", "theatre"}},
	{"Healthcare", "🏥", "#10b981", []string{"pharmacy", "hospital", "doctor", "medical", "medicine", "clinic", "apollo", "medplus"}},
	{"Groceries", "🛒", "#22c55e", []string{"bigbasket", "grofers", "blinkit", "grocery", "supermarket", "dmart", "zepto", "instamart"}},
	{"Other", "📦", "#6b7280", []string{"other", "miscellaneous", "general"}},
}

type defaultBank struct {
	BankName              string
	Domain                string
	AmountPatterns        []string
	MerchantPatterns      []string
	DatePatterns          []string
	PaymentMethodPatterns []string
}

var defaultBanks = []defaultBank{
	{
		BankName:              "HDFC Bank",
		Domain:                "hdfcbank",
		AmountPatterns:        defaultAmountPatterns,
		MerchantPatterns:      defaultMerchantPatterns[:4],
		DatePatterns:          defaultDatePatterns[:3],
		PaymentMethodPatterns: defaultPaymentMethodPatterns,
	},
	{
		BankName:              "ICICI Bank",
		Domain:                "icicibank",
		AmountPatterns:        defaultAmountPatterns,
		MerchantPatterns:      defaultMerchantPatterns[:4],
		DatePatterns:          defaultDatePatterns[:4],
		PaymentMethodPatterns: defaultPaymentMethodPatterns[:1],
	},
	{
		BankName:              "State Bank of India",
		Domain:                "sbi",
		AmountPatterns:        defaultAmountPatterns[:2],
		MerchantPatterns:      defaultMerchantPatterns[8:10],
		DatePatterns:          defaultDatePatterns[:1],
		PaymentMethodPatterns: defaultPaymentMethodPatterns[:1],
	},
	{
		BankName:              "Axis Bank",
		Domain:                "axisbank",
		AmountPatterns:        []string{defaultAmountPatterns[0], defaultAmountPatterns[2]},
		MerchantPatterns:      defaultMerchantPatterns[:1],
		DatePatterns:          defaultDatePatterns[:1],
		PaymentMethodPatterns: defaultPaymentMethodPatterns[:1],
	},
	{
		BankName:              "Kotak Mahindra Bank",
		Domain:                "kotak",
		AmountPatterns:        defaultAmountPatterns[:2],
		MerchantPatterns:      defaultMerchantPatterns[8:9],
		DatePatterns:          defaultDatePatterns[:1],
		PaymentMethodPatterns: defaultPaymentMethodPatterns[:1],
	},
}

// DefaultDomains returns the built-in sender domain list, used by the
// polling service when no active bank pattern is configured.
func DefaultDomains() []string {
	out := make([]string, len(fallbackBankDomains))
	copy(out, fallbackBankDomains)
	return out
}

// DefaultCategories returns the seed category records.
func DefaultCategories() []models.Category {
	out := make([]models.Category, 0, len(defaultCategories))
	for _, c := range defaultCategories {
		keywords, _ := json.Marshal(c.Keywords)
		out = append(out, models.Category{
			Name:     c.Name,
			Icon:     c.Icon,
			Color:    c.Color,
			Keywords: string(keywords),
			IsActive: "true",
		})
	}
	return out
}

// DefaultBankPatterns returns the seed bank-pattern records.
func DefaultBankPatterns() []models.BankPattern {
	out := make([]models.BankPattern, 0, len(defaultBanks))
	for _, b := range defaultBanks {
		amount, _ := json.Marshal(b.AmountPatterns)
		merchant, _ := json.Marshal(b.MerchantPatterns)
		date, _ := json.Marshal(b.DatePatterns)
		method, _ := json.Marshal(b.PaymentMethodPatterns)
		out = append(out, models.BankPattern{
			BankName:              b.BankName,
			Domain:                b.Domain,
			AmountPatterns:        string(amount),
			MerchantPatterns:      string(merchant),
			DatePatterns:          string(date),
			PaymentMethodPatterns: string(method),
			IsActive:              "true",
		})
	}
	return out
}
