package parser

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Greedy patterns often capture corporate boilerplate around the actual
// name; these suffixes are stripped before title-casing.
var merchantSuffixRe = regexp.MustCompile(`(?i)\s*(PAYMENTS?|PVT\s*LTD|LIMITED|LTD|INDIA|SERVICES?|BD)\s*$`)

var merchantJunkRe = regexp.MustCompile(`[^\w\s&'.-]`)

// Known raw captures mapped straight to display names, checked before
// generic cleanup.
var merchantAliases = map[string]string{
	"AMAZON BD":         "Amazon",
	"FLIPKART PAYMENTS": "Flipkart",
	"ZEPTONOW":          "Zepto",
	"SWIGGY":            "Swiggy",
	"ZOMATO":            "Zomato",
	"PAYTM":             "Paytm",
	"PHONEPE":           "PhonePe",
	"GPAY":              "Google Pay",
}

// Generic banking nouns that greedy patterns mistake for merchant names.
var invalidMerchantNames = map[string]struct{}{
	"TRANSACTION": {}, "PAYMENT": {}, "DEBIT": {}, "CREDIT": {},
	"ACCOUNT": {}, "BANK": {}, "UPI": {}, "NEFT": {}, "RTGS": {},
	"IMPS": {}, "INFO": {}, "DETAILS": {}, "SUMMARY": {}, "DATE": {},
	"TIME": {}, "AMOUNT": {}, "BALANCE": {}, "AVAILABLE": {}, "TOTAL": {},
}

var allDigitsRe = regexp.MustCompile(`^\d+$`)

// extractMerchant scans whitespace-normalized text with the configured
// patterns, then the built-in battery, then the secondary fallback battery.
// It returns "" when no pattern yields a valid name; the caller treats that
// as parse failure rather than inventing a placeholder.
func extractMerchant(text string, rules []bankRule) string {
	clean := strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))

	try := func(res []*regexp.Regexp) string {
		for _, re := range res {
			m := re.FindStringSubmatch(clean)
			if len(m) > 1 && m[1] != "" {
				merchant := cleanMerchantName(strings.TrimSpace(m[1]))
				if isValidMerchantName(merchant) {
					return merchant
				}
			}
		}
		return ""
	}

	for _, r := range rules {
		if merchant := try(r.merchant); merchant != "" {
			return merchant
		}
	}
	if merchant := try(fallbackMerchant); merchant != "" {
		return merchant
	}
	return try(fallbackMerchantSecondary)
}

// cleanMerchantName converts a raw capture into a display-ready name.
func cleanMerchantName(merchant string) string {
	merchant = strings.TrimPrefix(merchant, "UPI_")

	if alias, ok := merchantAliases[strings.ToUpper(merchant)]; ok {
		return alias
	}

	merchant = merchantSuffixRe.ReplaceAllString(merchant, "")
	merchant = strings.ReplaceAll(merchant, "_", " ")
	merchant = merchantJunkRe.ReplaceAllString(merchant, "")
	merchant = strings.TrimSpace(whitespaceRe.ReplaceAllString(merchant, " "))

	return titleCase(merchant)
}

// isValidMerchantName rejects captures that are too short, numeric, or
// plain banking vocabulary.
func isValidMerchantName(merchant string) bool {
	if len(merchant) < 2 {
		return false
	}
	if allDigitsRe.MatchString(merchant) {
		return false
	}
	if _, bad := invalidMerchantNames[strings.ToUpper(merchant)]; bad {
		return false
	}

	first := rune(merchant[0])
	return unicode.IsLetter(first)
}

// titleCase lowercases the string and uppercases the first rune of every
// word, where words are separated by non-word characters.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevIsWord := false
	for _, r := range strings.ToLower(s) {
		isWord := unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
		if isWord && !prevIsWord {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		prevIsWord = isWord
	}
	return b.String()
}
