package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"spendlens/internal/dto"
	"spendlens/internal/mail"
	"spendlens/internal/parser"
	"spendlens/internal/repository"
	"spendlens/pkg/config"

	"go.uber.org/zap"
)

var (
	ErrPollingRunning = errors.New("email polling is already running")
	ErrNoMailClient   = errors.New("no mail client configured")
)

// PollingService periodically fetches bank emails and feeds them to the
// ingest service. The first sync after startup looks back further and
// fetches a larger batch than regular syncs.
type PollingService struct {
	cfg             config.EmailSyncConfig
	client          mail.Client
	ingest          *IngestService
	bankPatternRepo *repository.BankPatternRepository
	logger          *zap.Logger

	mu          sync.Mutex
	cancel      context.CancelFunc
	lastSync    *time.Time
	initialDone bool
}

func NewPollingService(
	cfg config.EmailSyncConfig,
	client mail.Client,
	ingest *IngestService,
	bankPatternRepo *repository.BankPatternRepository,
	logger *zap.Logger,
) *PollingService {
	return &PollingService{
		cfg:             cfg,
		client:          client,
		ingest:          ingest,
		bankPatternRepo: bankPatternRepo,
		logger:          logger,
	}
}

// Start launches the polling loop. The first poll runs immediately.
func (s *PollingService) Start(ctx context.Context) error {
	if s.client == nil {
		return ErrNoMailClient
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		return ErrPollingRunning
	}
	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	s.logger.Info("Starting email polling",
		zap.Duration("interval", s.cfg.Interval),
		zap.Int("initial_days", s.cfg.InitialDays),
		zap.Int("batch_size", s.cfg.BatchSize),
	)

	go s.run(loopCtx)
	return nil
}

func (s *PollingService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
		s.logger.Info("Email polling stopped")
	}
}

func (s *PollingService) Status() dto.PollingStatusResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := dto.PollingStatusResponse{IsPolling: s.cancel != nil}
	if s.lastSync != nil {
		formatted := s.lastSync.Format(time.RFC3339)
		status.LastSyncTime = &formatted
	}
	return status
}

func (s *PollingService) run(ctx context.Context) {
	s.poll(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.poll(ctx)
		}
	}
}

func (s *PollingService) poll(ctx context.Context) {
	s.mu.Lock()
	initial := !s.initialDone
	s.mu.Unlock()

	lookback := 24 * time.Hour
	maxResults := s.cfg.BatchSize
	if initial {
		lookback = time.Duration(s.cfg.InitialDays) * 24 * time.Hour
		maxResults = s.cfg.InitialBatchSize
	}

	messages, err := s.client.Fetch(ctx, mail.Query{
		Domains:    s.senderDomains(ctx),
		After:      time.Now().Add(-lookback),
		MaxResults: maxResults,
	})
	if err != nil {
		s.logger.Error("Email fetch failed", zap.Error(err))
		return
	}

	var processed, created, skipped int
	for _, msg := range messages {
		ok, err := s.ingest.ProcessMessage(ctx, msg)
		if err != nil {
			s.logger.Error("Failed to process email",
				zap.String("email_id", msg.ID),
				zap.Error(err),
			)
			skipped++
			continue
		}
		processed++
		if ok {
			created++
		}
	}

	now := time.Now()
	s.mu.Lock()
	s.lastSync = &now
	s.initialDone = true
	s.mu.Unlock()

	s.logger.Info("Email sync complete",
		zap.Bool("initial", initial),
		zap.Int("fetched", len(messages)),
		zap.Int("processed", processed),
		zap.Int("created", created),
		zap.Int("skipped", skipped),
	)
}

// senderDomains prefers active configured domains, falling back to the
// built-in list on empty configuration or fetch failure.
func (s *PollingService) senderDomains(ctx context.Context) []string {
	patterns, err := s.bankPatternRepo.List(ctx)
	if err != nil {
		s.logger.Warn("Falling back to built-in sender domains", zap.Error(err))
		return parser.DefaultDomains()
	}

	var domains []string
	for i := range patterns {
		if patterns[i].Active() && patterns[i].Domain != "" {
			domains = append(domains, patterns[i].Domain)
		}
	}
	if len(domains) == 0 {
		return parser.DefaultDomains()
	}
	return domains
}
