package parser

import (
	"regexp"
	"strings"
)

// Vocabulary for debit/credit disambiguation. A strong debit signal always
// overrides a credit signal so that "spent Rs 500 on credit card" is not
// discarded as a deposit.
var (
	debitRe = regexp.MustCompile(`(?i)\b(?:debited|spent|charged|withdrawn|purchased?|purchase)\b`)

	creditRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:credited|received|deposited|refund|cashback|reward|salary)\b`),
		regexp.MustCompile(`(?i)transfer.*received`),
		regexp.MustCompile(`(?i)amount.*credited`),
		regexp.MustCompile(`(?i)received.*from`),
	}
)

// isBankSender reports whether the sender address belongs to a recognized
// bank or payment service. Configured domains win; the built-in domain list
// only applies when no active pattern exists.
func isBankSender(sender string, rules []bankRule) bool {
	if sender == "" {
		return false
	}
	lower := strings.ToLower(sender)

	if len(rules) > 0 {
		for _, r := range rules {
			if r.domain != "" && strings.Contains(lower, strings.ToLower(r.domain)) {
				return true
			}
		}
		return false
	}

	for _, domain := range fallbackBankDomains {
		if strings.Contains(lower, domain) {
			return true
		}
	}
	return false
}

func isDebitTransaction(text string) bool {
	return debitRe.MatchString(text)
}

// isCreditTransaction reports whether the text describes a credit, deposit,
// refund or similar incoming transaction. Debit vocabulary overrides.
func isCreditTransaction(text string) bool {
	if isDebitTransaction(text) {
		return false
	}
	for _, re := range creditRes {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
