// Package parser turns bank transaction-alert emails into structured
// expense records. Extraction is rule-driven: regex pattern sets configured
// per bank are tried first, with a built-in fallback table so an empty
// configuration still parses the common formats. Only debit transactions
// are recorded; credits, refunds and deposits are discarded.
package parser

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"spendlens/internal/models"

	"go.uber.org/zap"
)

// Store is the read-only configuration source consumed per parse call.
// Fetch failures are returned to the caller; everything else degrades
// gracefully inside the parser.
type Store interface {
	GetBankPatterns(ctx context.Context) ([]models.BankPattern, error)
	GetCategories(ctx context.Context) ([]models.Category, error)
}

// ParsedTransaction is the structured result of a successful parse. Amount
// is a plain decimal string with two fractional digits. Merchant is never
// empty. Category and PaymentMethod always carry a label.
type ParsedTransaction struct {
	Amount        string    `json:"amount"`
	Merchant      string    `json:"merchant"`
	Date          time.Time `json:"date"`
	Category      string    `json:"category"`
	PaymentMethod string    `json:"paymentMethod"`
}

// User-authored patterns run against bounded input so a pathological regex
// cannot be handed an arbitrarily large text.
const maxTextLen = 16 * 1024

type Parser struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

func New(store Store, logger *zap.Logger) *Parser {
	return &Parser{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// ParseEmail extracts a debit transaction from an email. It returns
// (nil, nil) for every normal negative outcome: unrecognized sender, credit
// transaction, or unresolved amount/merchant. A non-nil error means the
// configuration fetch failed.
//
// The transaction date found in the email body wins over the email's own
// delivery timestamp, which wins over the current time.
func (p *Parser) ParseEmail(ctx context.Context, subject, body, sender string, emailDate *time.Time) (*ParsedTransaction, error) {
	bankPatterns, err := p.store.GetBankPatterns(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch bank patterns: %w", err)
	}
	categories, err := p.store.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}

	rules := compileRules(bankPatterns, p.logger)

	if !isBankSender(sender, rules) {
		return nil, nil
	}

	text := boundedText(subject + " " + body)

	// Credits are checked before any field extraction so a refund notice
	// never yields an amount.
	if isCreditTransaction(text) {
		return nil, nil
	}

	amount := extractAmount(text, rules)
	merchant := extractMerchant(text, rules)
	transactionDate := extractDate(text, rules)

	if amount == "" || merchant == "" {
		p.logger.Debug("No transaction found in email",
			zap.String("sender", sender),
			zap.Bool("amount_found", amount != ""),
			zap.Bool("merchant_found", merchant != ""),
		)
		return nil, nil
	}

	category := categorize(merchant, text, categories, p.logger)
	paymentMethod := extractPaymentMethod(text, rules)

	finalDate := p.now()
	if transactionDate != nil {
		finalDate = *transactionDate
	} else if emailDate != nil {
		finalDate = *emailDate
	}

	return &ParsedTransaction{
		Amount:        amount,
		Merchant:      merchant,
		Date:          finalDate,
		Category:      category,
		PaymentMethod: paymentMethod,
	}, nil
}

// boundedText caps the input fed to the extractors. The cut backs up to a
// rune boundary so a split multi-byte rune never reaches a pattern.
func boundedText(text string) string {
	if len(text) <= maxTextLen {
		return text
	}
	cut := maxTextLen
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

// ToExpense maps a parsed transaction onto an expense record. Pure mapping,
// no extra logic; the caller fills in user, source and email ID.
func (p *Parser) ToExpense(parsed *ParsedTransaction) models.Expense {
	return models.Expense{
		Amount:        parsed.Amount,
		Merchant:      parsed.Merchant,
		Category:      parsed.Category,
		Date:          parsed.Date,
		PaymentMethod: parsed.PaymentMethod,
		Notes:         nil,
	}
}
