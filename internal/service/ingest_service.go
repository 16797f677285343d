package service

import (
	"context"
	"errors"
	"time"

	"spendlens/internal/dto"
	"spendlens/internal/mail"
	"spendlens/internal/models"
	"spendlens/internal/parser"
	"spendlens/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrNoDefaultUser = errors.New("no default user configured for email expenses")

// IngestService drives the parser: it enforces at-most-once processing per
// email and turns successful parses into expense rows. The parser itself
// stays free of storage writes.
type IngestService struct {
	parser        *parser.Parser
	expenseRepo   *repository.ExpenseRepository
	processedRepo *repository.ProcessedEmailRepository
	defaultUserID uuid.UUID
	logger        *zap.Logger
}

func NewIngestService(
	p *parser.Parser,
	expenseRepo *repository.ExpenseRepository,
	processedRepo *repository.ProcessedEmailRepository,
	defaultUserID uuid.UUID,
	logger *zap.Logger,
) *IngestService {
	return &IngestService{
		parser:        p,
		expenseRepo:   expenseRepo,
		processedRepo: processedRepo,
		defaultUserID: defaultUserID,
		logger:        logger,
	}
}

// Parse runs the parser without side effects, for the test endpoint.
func (s *IngestService) Parse(ctx context.Context, req *dto.ParseEmailRequest) (*parser.ParsedTransaction, error) {
	return s.parser.ParseEmail(ctx, req.Subject, req.Body, req.Sender, nil)
}

// ParseAndCreate parses an email and records the expense for the given
// user. Returns (nil, nil) when the email holds no debit transaction.
func (s *IngestService) ParseAndCreate(ctx context.Context, userID uuid.UUID, req *dto.ParseEmailRequest) (*models.Expense, error) {
	parsed, err := s.parser.ParseEmail(ctx, req.Subject, req.Body, req.Sender, nil)
	if err != nil {
		return nil, err
	}
	if parsed == nil {
		return nil, nil
	}

	var emailID *string
	if req.EmailID != "" {
		emailID = &req.EmailID
	}
	return s.createExpense(ctx, userID, parsed, emailID)
}

// ProcessMessage handles one polled email end to end. The message is marked
// processed whether or not it parsed, so a once-seen email is never
// re-evaluated. Returns whether an expense was created.
func (s *IngestService) ProcessMessage(ctx context.Context, msg mail.Message) (bool, error) {
	processed, err := s.processedRepo.IsProcessed(ctx, msg.ID)
	if err != nil {
		return false, err
	}
	if processed {
		return false, nil
	}

	emailDate := msg.Date
	var datePtr *time.Time
	if !emailDate.IsZero() {
		datePtr = &emailDate
	}

	parsed, err := s.parser.ParseEmail(ctx, msg.Subject, msg.Body, msg.From, datePtr)
	if err != nil {
		return false, err
	}

	if err := s.processedRepo.MarkProcessed(ctx, msg.ID); err != nil {
		return false, err
	}

	if parsed == nil {
		return false, nil
	}

	if s.defaultUserID == uuid.Nil {
		s.logger.Warn("Skipping expense creation, no default user configured",
			zap.String("email_id", msg.ID),
		)
		return false, ErrNoDefaultUser
	}

	emailID := msg.ID
	if _, err := s.createExpense(ctx, s.defaultUserID, parsed, &emailID); err != nil {
		return false, err
	}

	s.logger.Info("Created expense from email",
		zap.String("merchant", parsed.Merchant),
		zap.String("amount", parsed.Amount),
		zap.String("category", parsed.Category),
	)
	return true, nil
}

func (s *IngestService) createExpense(ctx context.Context, userID uuid.UUID, parsed *parser.ParsedTransaction, emailID *string) (*models.Expense, error) {
	now := time.Now()
	expense := s.parser.ToExpense(parsed)
	expense.ID = uuid.New()
	expense.UserID = userID
	expense.Source = models.SourceEmail
	expense.EmailID = emailID
	expense.CreatedAt = now
	expense.UpdatedAt = now

	if err := s.expenseRepo.Create(ctx, &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}
