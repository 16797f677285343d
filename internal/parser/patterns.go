package parser

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"spendlens/internal/models"

	"go.uber.org/zap"
)

// Stored patterns use the conventional /pattern/flags textual notation. They
// are always compiled case-insensitively; flags beyond i/m/s (such as g) are
// meaningless under RE2 and ignored.

var (
	regexCacheMu sync.RWMutex
	regexCache   = map[string]*regexp.Regexp{}
)

func compilePattern(raw string) (*regexp.Regexp, error) {
	regexCacheMu.RLock()
	re, ok := regexCache[raw]
	regexCacheMu.RUnlock()
	if ok {
		return re, nil
	}

	pattern, flags := splitNotation(raw)
	if pattern == "" {
		return nil, fmt.Errorf("empty pattern %q", raw)
	}

	prefix := "(?i)"
	if strings.ContainsRune(flags, 'm') {
		prefix += "(?m)"
	}
	if strings.ContainsRune(flags, 's') {
		prefix += "(?s)"
	}

	re, err := regexp.Compile(prefix + pattern)
	if err != nil {
		return nil, err
	}

	regexCacheMu.Lock()
	regexCache[raw] = re
	regexCacheMu.Unlock()
	return re, nil
}

// splitNotation separates "/pattern/flags" into its parts. A string without
// surrounding slashes is treated as a bare pattern with no flags.
func splitNotation(raw string) (pattern, flags string) {
	raw = strings.TrimSpace(raw)
	if len(raw) > 1 && raw[0] == '/' {
		if i := strings.LastIndex(raw, "/"); i > 0 {
			return raw[1:i], raw[i+1:]
		}
	}
	return raw, ""
}

// bankRule is a compiled, active BankPattern. A rule with unparseable field
// lists still participates in sender matching through its domain.
type bankRule struct {
	name          string
	domain        string
	amount        []*regexp.Regexp
	merchant      []*regexp.Regexp
	date          []*regexp.Regexp
	paymentMethod []*regexp.Regexp
}

// compileRules turns the fetched configuration into compiled rules,
// preserving order. Bad JSON or bad regex syntax in any entry is logged and
// skipped, never fatal.
func compileRules(patterns []models.BankPattern, logger *zap.Logger) []bankRule {
	rules := make([]bankRule, 0, len(patterns))
	for i := range patterns {
		p := &patterns[i]
		if !p.Active() {
			continue
		}
		rules = append(rules, bankRule{
			name:          p.BankName,
			domain:        p.Domain,
			amount:        decodePatternList(p.AmountPatterns, p.BankName, "amount", logger),
			merchant:      decodePatternList(p.MerchantPatterns, p.BankName, "merchant", logger),
			date:          decodePatternList(p.DatePatterns, p.BankName, "date", logger),
			paymentMethod: decodePatternList(p.PaymentMethodPatterns, p.BankName, "payment_method", logger),
		})
	}
	return rules
}

func decodePatternList(raw, bank, field string, logger *zap.Logger) []*regexp.Regexp {
	if raw == "" {
		return nil
	}

	var entries []string
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		logger.Warn("Skipping malformed pattern list",
			zap.String("bank", bank),
			zap.String("field", field),
			zap.Error(err),
		)
		return nil
	}

	out := make([]*regexp.Regexp, 0, len(entries))
	for _, entry := range entries {
		re, err := compilePattern(entry)
		if err != nil {
			logger.Warn("Skipping malformed pattern",
				zap.String("bank", bank),
				zap.String("field", field),
				zap.String("pattern", entry),
				zap.Error(err),
			)
			continue
		}
		out = append(out, re)
	}
	return out
}

// ValidatePatterns checks that raw is a JSON array of compilable regex
// strings. Used by the configuration surface to reject bad patterns at
// write time instead of silently skipping them at parse time.
func ValidatePatterns(raw string) error {
	var entries []string
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return fmt.Errorf("pattern list is not a JSON string array: %w", err)
	}
	for _, entry := range entries {
		if _, err := compilePattern(entry); err != nil {
			return fmt.Errorf("pattern %q: %w", entry, err)
		}
	}
	return nil
}

func mustCompileList(raw []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(raw))
	for _, entry := range raw {
		re, err := compilePattern(entry)
		if err != nil {
			panic(err)
		}
		out = append(out, re)
	}
	return out
}

// Compiled fallback tables, built once from the default data set.
var (
	fallbackAmount            = mustCompileList(defaultAmountPatterns)
	fallbackMerchant          = mustCompileList(defaultMerchantPatterns)
	fallbackMerchantSecondary = mustCompileList(defaultMerchantFallbacks)
	fallbackDate              = mustCompileList(defaultDatePatterns)
	fallbackPaymentMethod     = mustCompileList(defaultPaymentMethodPatterns)
)
