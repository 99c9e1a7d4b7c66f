package service

import (
	"context"
	"fmt"
	"time"

	"locmaq-backend/internal/domain"
	"locmaq-backend/internal/logger"
	"locmaq-backend/internal/repository"
)

type quoteService struct {
	quoteRepo   repository.QuoteRepository
	machineRepo repository.MachineRepository
	addressRepo repository.AddressRepository
	userRepo    repository.UserRepository
	noteRepo    repository.NotificationRepository
	retryRepo   repository.RetryRepository
	emailSvc    EmailService
	pushSvc     PushService
}

func NewQuoteService(
	quoteRepo repository.QuoteRepository,
	machineRepo repository.MachineRepository,
	addressRepo repository.AddressRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	retryRepo repository.RetryRepository,
	emailSvc EmailService,
	pushSvc PushService,
) QuoteService {
	return &quoteService{
		quoteRepo:   quoteRepo,
		machineRepo: machineRepo,
		addressRepo: addressRepo,
		userRepo:    userRepo,
		noteRepo:    noteRepo,
		retryRepo:   retryRepo,
		emailSvc:    emailSvc,
		pushSvc:     pushSvc,
	}
}

func (s *quoteService) CreateQuote(ctx context.Context, requesterID string, req *CreateQuoteRequest) (*domain.Quote, error) {
	if req.MachineID == "" || req.AddressID == "" || req.Purpose == "" || req.StartDate == "" {
		return nil, fmt.Errorf("%w: machine, address, purpose and start date are required", domain.ErrValidation)
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date: %v", domain.ErrValidation, err)
	}
	var endDate *time.Time
	if req.EndDate != "" {
		end, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid end date: %v", domain.ErrValidation, err)
		}
		endDate = &end
	}

	machine, err := s.machineRepo.GetByID(ctx, req.MachineID)
	if err != nil {
		return nil, err
	}

	// The address is copied into the quote, never referenced; later edits to
	// the address book do not change a submitted quote.
	addr, err := s.addressRepo.GetByID(ctx, req.AddressID)
	if err != nil {
		return nil, err
	}
	if addr.UserID != requesterID {
		return nil, domain.ErrUnauthorized
	}

	quote := &domain.Quote{
		MachineID:   machine.ID,
		MachineName: machine.Name,
		RequesterID: requesterID,
		OwnerID:     machine.OwnerID,
		Status:      domain.QuoteStatusPending,
		Purpose:     req.Purpose,
		Address:     addr.Snapshot(),
		StartDate:   start,
		EndDate:     endDate,
		Notes:       req.Notes,
	}
	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		return nil, err
	}

	s.notifyStatusChange(ctx, quote, quote.Status)
	return quote, nil
}

func (s *quoteService) SubmitTerms(ctx context.Context, ownerID, quoteID string, valueCents int32, conditions string) (*domain.Quote, error) {
	if valueCents <= 0 {
		return nil, fmt.Errorf("%w: quote value must be positive", domain.ErrValidation)
	}
	quote, err := s.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote.OwnerID != ownerID {
		return nil, domain.ErrUnauthorized
	}
	if !domain.CanTransition(quote.Status, domain.QuoteStatusQuoted) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrIllegalTransition, quote.Status, domain.QuoteStatusQuoted)
	}

	if err := s.quoteRepo.SetTerms(ctx, quoteID, valueCents, conditions); err != nil {
		return nil, err
	}
	if err := s.quoteRepo.UpdateStatus(ctx, quoteID, domain.QuoteStatusQuoted); err != nil {
		return nil, err
	}
	quote.ValueCents = valueCents
	quote.Conditions = conditions
	quote.Status = domain.QuoteStatusQuoted
	quote.UpdatedOn = time.Now()

	s.notifyStatusChange(ctx, quote, quote.Status)
	return quote, nil
}

func (s *quoteService) UpdateStatus(ctx context.Context, actorID, quoteID string, newStatus domain.QuoteStatus) (*domain.Quote, error) {
	if !domain.ValidQuoteStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, newStatus)
	}
	quote, err := s.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote.RequesterID != actorID && quote.OwnerID != actorID {
		return nil, domain.ErrUnauthorized
	}
	if !domain.CanTransition(quote.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrIllegalTransition, quote.Status, newStatus)
	}

	if err := s.quoteRepo.UpdateStatus(ctx, quoteID, newStatus); err != nil {
		return nil, err
	}
	quote.Status = newStatus
	quote.UpdatedOn = time.Now()

	s.notifyStatusChange(ctx, quote, newStatus)
	return quote, nil
}

func (s *quoteService) ListForUser(ctx context.Context, userID string) ([]domain.Quote, error) {
	return s.quoteRepo.ListByRequester(ctx, userID)
}

func (s *quoteService) ListForOwner(ctx context.Context, ownerID string) ([]domain.Quote, error) {
	return s.quoteRepo.ListByOwner(ctx, ownerID)
}

func (s *quoteService) GetQuote(ctx context.Context, userID, quoteID string) (*domain.Quote, error) {
	quote, err := s.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if quote.RequesterID != userID && quote.OwnerID != userID {
		return nil, domain.ErrUnauthorized
	}
	return quote, nil
}

// notifyStatusChange writes the counter-party notification eagerly. When that
// write fails, a NotificationRetry record is persisted so the retry sweep can
// reattempt it later. Email and push delivery are best-effort and never fail
// the mutation.
func (s *quoteService) notifyStatusChange(ctx context.Context, quote *domain.Quote, status domain.QuoteStatus) {
	note := DeriveNotification(quote, status)

	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("Eager notification write failed, queueing retry",
			"quote_id", quote.ID, "status", status, "error", err)
		retry := &domain.NotificationRetry{
			QuoteID:     quote.ID,
			QuoteStatus: status,
		}
		if rerr := s.retryRepo.Create(ctx, retry); rerr != nil {
			logger.Error("Failed to queue notification retry",
				"quote_id", quote.ID, "status", status, "error", rerr)
		}
		return
	}

	recipient, err := s.userRepo.GetByID(ctx, note.UserID)
	if err != nil {
		logger.Debug("Notification recipient not found, skipping delivery",
			"user_id", note.UserID, "error", err)
		return
	}
	if recipient.Email != "" {
		if err := s.emailSvc.SendQuoteNotification(ctx, recipient.Email, recipient.Name, note.Title, note.Body); err != nil {
			logger.Warn("Failed to send notification email",
				"user_id", recipient.ID, "quote_id", quote.ID, "error", err)
		}
	}
	if recipient.DeviceToken != "" {
		if err := s.pushSvc.SendPush(ctx, recipient.DeviceToken, note.Title, note.Body, note.Data); err != nil {
			logger.Warn("Failed to send push notification",
				"user_id", recipient.ID, "quote_id", quote.ID, "error", err)
		}
	}
}
