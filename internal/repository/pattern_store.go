package repository

import (
	"context"

	"spendlens/internal/models"
)

// PatternStore bundles the two configuration reads the parser consumes per
// invocation. It satisfies parser.Store.
type PatternStore struct {
	bankPatterns *BankPatternRepository
	categories   *CategoryRepository
}

func NewPatternStore(bankPatterns *BankPatternRepository, categories *CategoryRepository) *PatternStore {
	return &PatternStore{
		bankPatterns: bankPatterns,
		categories:   categories,
	}
}

func (s *PatternStore) GetBankPatterns(ctx context.Context) ([]models.BankPattern, error) {
	return s.bankPatterns.List(ctx)
}

func (s *PatternStore) GetCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}
