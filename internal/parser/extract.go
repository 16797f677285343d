package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Dates before this year are treated as garbage matches.
const minTransactionYear = 2020

var numericDateRe = regexp.MustCompile(`^\d{1,2}[-/]\d{1,2}[-/]\d{2,4}$`)

// Textual layouts tried after the numeric day-first formats.
var dateLayouts = []string{
	"2 Jan 2006",
	"2 January 2006",
	"2-Jan-2006",
	"2-Jan-06",
	"2006-01-02",
	"2006/1/2",
	"Jan 2, 2006",
	"January 2, 2006",
}

// extractAmount returns the first matched amount normalized to a plain
// decimal string with two fractional digits, or "" if nothing matches.
func extractAmount(text string, rules []bankRule) string {
	try := func(res []*regexp.Regexp) string {
		for _, re := range res {
			m := re.FindStringSubmatch(text)
			if len(m) > 1 && m[1] != "" {
				if amount, ok := normalizeAmount(m[1]); ok {
					return amount
				}
			}
		}
		return ""
	}

	for _, r := range rules {
		if amount := try(r.amount); amount != "" {
			return amount
		}
	}
	return try(fallbackAmount)
}

func normalizeAmount(raw string) (string, bool) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return "", false
	}
	return fmt.Sprintf("%.2f", value), true
}

// extractDate returns the transaction date found in the text, or nil. Only
// dates with a plausible year are accepted so that garbage matches fall
// through to the email date.
func extractDate(text string, rules []bankRule) *time.Time {
	try := func(res []*regexp.Regexp) *time.Time {
		for _, re := range res {
			m := re.FindStringSubmatch(text)
			if len(m) > 1 && m[1] != "" {
				if t := parseDateString(strings.TrimSpace(m[1])); t != nil {
					return t
				}
			}
		}
		return nil
	}

	for _, r := range rules {
		if t := try(r.date); t != nil {
			return t
		}
	}
	return try(fallbackDate)
}

// parseDateString interprets numeric D-M-Y shaped strings day-first (Indian
// convention), expanding 2-digit years on a 50-year pivot. Other shapes go
// through the layout list.
func parseDateString(s string) *time.Time {
	if numericDateRe.MatchString(s) {
		parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '/' })
		if len(parts) != 3 {
			return nil
		}
		day, _ := strconv.Atoi(parts[0])
		month, _ := strconv.Atoi(parts[1])
		year, _ := strconv.Atoi(parts[2])

		if year < 100 {
			if year < 50 {
				year += 2000
			} else {
				year += 1900
			}
		}
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return nil
		}

		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		if t.Day() != day || t.Year() < minTransactionYear {
			return nil
		}
		return &t
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if t.Year() < minTransactionYear {
				return nil
			}
			return &t
		}
	}
	return nil
}

// extractPaymentMethod always returns a label; it falls back to whole-text
// heuristics and finally "Other".
func extractPaymentMethod(text string, rules []bankRule) string {
	try := func(res []*regexp.Regexp) string {
		for _, re := range res {
			m := re.FindStringSubmatch(text)
			if len(m) > 1 && m[1] != "" {
				if label := paymentMethodLabel(m[1]); label != "" {
					return label
				}
			}
		}
		return ""
	}

	for _, r := range rules {
		if label := try(r.paymentMethod); label != "" {
			return label
		}
	}
	if label := try(fallbackPaymentMethod); label != "" {
		return label
	}

	lower := strings.ToLower(text)
	if strings.Contains(lower, "upi") {
		return "UPI"
	}
	if strings.Contains(lower, "card") {
		return "Card"
	}
	return "Other"
}

func paymentMethodLabel(token string) string {
	method := strings.ToLower(token)
	switch {
	case strings.Contains(method, "credit"):
		return "Credit Card"
	case strings.Contains(method, "debit"):
		return "Debit Card"
	case strings.Contains(method, "upi"):
		return "UPI"
	case strings.Contains(method, "net banking"):
		return "Net Banking"
	case strings.Contains(method, "wallet"):
		return "Wallet"
	}
	return ""
}
