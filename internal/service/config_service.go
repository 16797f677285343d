package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spendlens/internal/dto"
	"spendlens/internal/models"
	"spendlens/internal/parser"
	"spendlens/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var (
	ErrBankPatternNotFound = errors.New("bank pattern not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrInvalidPattern      = errors.New("invalid pattern")
)

// ConfigService is the administrative surface over the parser's
// configuration: bank patterns and categories. Pattern lists are validated
// at write time; the parser still skips bad entries defensively at read
// time since rows may predate validation.
type ConfigService struct {
	bankPatternRepo *repository.BankPatternRepository
	categoryRepo    *repository.CategoryRepository
	logger          *zap.Logger
}

func NewConfigService(bankPatternRepo *repository.BankPatternRepository, categoryRepo *repository.CategoryRepository, logger *zap.Logger) *ConfigService {
	return &ConfigService{
		bankPatternRepo: bankPatternRepo,
		categoryRepo:    categoryRepo,
		logger:          logger,
	}
}

func (s *ConfigService) CreateBankPattern(ctx context.Context, req *dto.BankPatternRequest) (*dto.BankPatternResponse, error) {
	if err := validatePatternRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	pattern := &models.BankPattern{
		ID:                    uuid.New(),
		BankName:              req.BankName,
		Domain:                req.Domain,
		AmountPatterns:        req.AmountPatterns,
		MerchantPatterns:      req.MerchantPatterns,
		DatePatterns:          req.DatePatterns,
		PaymentMethodPatterns: req.PaymentMethodPatterns,
		IsActive:              activeFlag(req.IsActive),
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := s.bankPatternRepo.Create(ctx, pattern); err != nil {
		return nil, err
	}
	return bankPatternResponse(pattern), nil
}

func (s *ConfigService) ListBankPatterns(ctx context.Context) ([]*dto.BankPatternResponse, error) {
	patterns, err := s.bankPatternRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.BankPatternResponse, len(patterns))
	for i := range patterns {
		out[i] = bankPatternResponse(&patterns[i])
	}
	return out, nil
}

func (s *ConfigService) GetBankPattern(ctx context.Context, id uuid.UUID) (*dto.BankPatternResponse, error) {
	pattern, err := s.bankPatternRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBankPatternNotFound
		}
		return nil, err
	}
	return bankPatternResponse(pattern), nil
}

func (s *ConfigService) UpdateBankPattern(ctx context.Context, id uuid.UUID, req *dto.BankPatternRequest) (*dto.BankPatternResponse, error) {
	if err := validatePatternRequest(req); err != nil {
		return nil, err
	}

	pattern, err := s.bankPatternRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBankPatternNotFound
		}
		return nil, err
	}

	pattern.BankName = req.BankName
	pattern.Domain = req.Domain
	pattern.AmountPatterns = req.AmountPatterns
	pattern.MerchantPatterns = req.MerchantPatterns
	pattern.DatePatterns = req.DatePatterns
	pattern.PaymentMethodPatterns = req.PaymentMethodPatterns
	pattern.IsActive = activeFlag(req.IsActive)

	if err := s.bankPatternRepo.Update(ctx, pattern); err != nil {
		return nil, err
	}
	return bankPatternResponse(pattern), nil
}

func (s *ConfigService) DeleteBankPattern(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.bankPatternRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBankPatternNotFound
	}
	return nil
}

func (s *ConfigService) CreateCategory(ctx context.Context, req *dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if err := validateKeywords(req.Keywords); err != nil {
		return nil, err
	}

	now := time.Now()
	category := &models.Category{
		ID:        uuid.New(),
		Name:      req.Name,
		Icon:      req.Icon,
		Color:     req.Color,
		Keywords:  req.Keywords,
		IsActive:  activeFlag(req.IsActive),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return categoryResponse(category), nil
}

func (s *ConfigService) ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.CategoryResponse, len(categories))
	for i := range categories {
		out[i] = categoryResponse(&categories[i])
	}
	return out, nil
}

func (s *ConfigService) GetCategory(ctx context.Context, id uuid.UUID) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return categoryResponse(category), nil
}

func (s *ConfigService) UpdateCategory(ctx context.Context, id uuid.UUID, req *dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if err := validateKeywords(req.Keywords); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	category.Name = req.Name
	category.Icon = req.Icon
	category.Color = req.Color
	category.Keywords = req.Keywords
	category.IsActive = activeFlag(req.IsActive)

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return categoryResponse(category), nil
}

func (s *ConfigService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.categoryRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCategoryNotFound
	}
	return nil
}

func validatePatternRequest(req *dto.BankPatternRequest) error {
	fields := map[string]string{
		"amount_patterns":         req.AmountPatterns,
		"merchant_patterns":       req.MerchantPatterns,
		"date_patterns":           req.DatePatterns,
		"payment_method_patterns": req.PaymentMethodPatterns,
	}
	for name, raw := range fields {
		if err := parser.ValidatePatterns(raw); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidPattern, name, err)
		}
	}
	return nil
}

func validateKeywords(raw string) error {
	if err := parser.ValidateKeywords(raw); err != nil {
		return fmt.Errorf("%w: keywords: %v", ErrInvalidPattern, err)
	}
	return nil
}

func activeFlag(raw string) string {
	if raw == "false" {
		return "false"
	}
	return "true"
}

func bankPatternResponse(pattern *models.BankPattern) *dto.BankPatternResponse {
	return &dto.BankPatternResponse{
		ID:                    pattern.ID.String(),
		BankName:              pattern.BankName,
		Domain:                pattern.Domain,
		AmountPatterns:        pattern.AmountPatterns,
		MerchantPatterns:      pattern.MerchantPatterns,
		DatePatterns:          pattern.DatePatterns,
		PaymentMethodPatterns: pattern.PaymentMethodPatterns,
		IsActive:              pattern.IsActive,
		CreatedAt:             pattern.CreatedAt.Format(time.RFC3339),
	}
}

func categoryResponse(category *models.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Icon:      category.Icon,
		Color:     category.Color,
		Keywords:  category.Keywords,
		IsActive:  category.IsActive,
		CreatedAt: category.CreatedAt.Format(time.RFC3339),
	}
}
