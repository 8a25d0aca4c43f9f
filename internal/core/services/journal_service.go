package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/novaerp/accounting_backend/internal/apperrors"
	"github.com/novaerp/accounting_backend/internal/core/domain"
	portsrepo "github.com/novaerp/accounting_backend/internal/core/ports/repositories"
	portssvc "github.com/novaerp/accounting_backend/internal/core/ports/services"
	"github.com/novaerp/accounting_backend/internal/dto"
)

var (
	ErrNoDetails          = errors.New("journal entry must have at least one detail line")
	ErrNegativeAmount     = errors.New("debit and credit amounts must not be negative")
	ErrEmptyDetailLine    = errors.New("detail line must carry a debit or a credit amount")
	ErrDetailAccountGone  = errors.New("detail references an unknown account")
	ErrDuplicateReference = errors.New("reference number already exists")
	ErrNotDraft           = errors.New("only draft entries can be modified")
	ErrAlreadyVoid        = errors.New("entry is already void")
)

// journalService provides the double-entry journal engine.
type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewJournalService creates a new journal service.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateJournalEntry validates the double-entry invariant and persists the
// entry with its details in one transaction. The new entry is DRAFT; posting
// is a separate transition.
func (s *journalService) CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	if len(req.Details) == 0 {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrNoDetails)
	}

	entryDate, err := time.Parse(dto.DateLayout, req.EntryDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid entry date: %w", apperrors.ErrValidation, err)
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()

	details := make([]domain.JournalDetail, len(req.Details))
	accountIDs := make([]string, 0, len(req.Details))
	for i, line := range req.Details {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return nil, fmt.Errorf("%w: %w (line %d)", apperrors.ErrValidation, ErrNegativeAmount, i+1)
		}
		if line.Debit.IsZero() && line.Credit.IsZero() {
			return nil, fmt.Errorf("%w: %w (line %d)", apperrors.ErrValidation, ErrEmptyDetailLine, i+1)
		}
		details[i] = domain.JournalDetail{
			DetailID:    uuid.NewString(),
			EntryID:     entryID,
			AccountID:   line.AccountID,
			Debit:       line.Debit,
			Credit:      line.Credit,
			Description: line.Description,
			LineNo:      i + 1,
		}
		accountIDs = append(accountIDs, line.AccountID)
	}

	entry := domain.JournalEntry{
		EntryID:     entryID,
		EntryDate:   entryDate,
		ReferenceNo: req.ReferenceNo,
		Description: req.Description,
		Status:      domain.Draft,
		Details:     details,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	// Debits must equal credits exactly; decimal arithmetic needs no epsilon.
	if !entry.IsBalanced() {
		return nil, fmt.Errorf("%w: debits sum to %s, credits sum to %s",
			apperrors.ErrUnbalanced, entry.TotalDebits(), entry.TotalCredits())
	}

	// Every line must reference an existing account.
	accountsMap, err := s.accountRepo.FindAccountsByIDs(ctx, uniqueStrings(accountIDs))
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch accounts for journal creation")
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range accountIDs {
		if _, found := accountsMap[id]; !found {
			return nil, fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, ErrDetailAccountGone, id)
		}
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, details); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: reference %s: %w", apperrors.ErrDuplicate, req.ReferenceNo, ErrDuplicateReference)
		}
		s.LogError(ctx, err, "Failed to save journal entry", slog.String("reference_no", req.ReferenceNo))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry created successfully",
		slog.String("entry_id", entryID),
		slog.String("reference_no", req.ReferenceNo),
		slog.Int("detail_count", len(details)))
	return &entry, nil
}

// GetJournalEntryByID retrieves a journal entry with its details.
func (s *journalService) GetJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

// ListJournalEntries retrieves entries matching the supplied filters, newest
// first. Absent filters are unconstrained.
func (s *journalService) ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams) ([]domain.JournalEntry, error) {
	filter := portsrepo.JournalEntryFilter{}
	if params.StartDate != nil {
		t, err := time.Parse(dto.DateLayout, *params.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid start date: %w", apperrors.ErrValidation, err)
		}
		filter.StartDate = &t
	}
	if params.EndDate != nil {
		t, err := time.Parse(dto.DateLayout, *params.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid end date: %w", apperrors.ErrValidation, err)
		}
		filter.EndDate = &t
	}
	if params.Status != nil {
		status := domain.JournalStatus(*params.Status)
		filter.Status = &status
	}

	entries, err := s.journalRepo.ListEntries(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}

// UpdateJournalEntry patches the date and description of a DRAFT entry.
// Posted and void entries are immutable apart from their status transitions.
func (s *journalService) UpdateJournalEntry(ctx context.Context, entryID string, req dto.UpdateJournalEntryRequest, updaterUserID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if entry.Status != domain.Draft {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrConflict, ErrNotDraft)
	}

	updated := false
	if req.EntryDate != nil {
		t, err := time.Parse(dto.DateLayout, *req.EntryDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid entry date: %w", apperrors.ErrValidation, err)
		}
		entry.EntryDate = t
		updated = true
	}
	if req.Description != nil {
		entry.Description = *req.Description
		updated = true
	}

	if !updated {
		return entry, nil
	}

	entry.LastUpdatedAt = time.Now().UTC()
	entry.LastUpdatedBy = updaterUserID

	if err := s.journalRepo.UpdateEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update journal entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update journal entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry updated successfully", slog.String("entry_id", entryID))
	return entry, nil
}

// PostJournalEntry transitions a DRAFT entry to POSTED, re-validating the
// balance from the stored details so a posted entry is always balanced.
func (s *journalService) PostJournalEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if entry.Status != domain.Draft {
		return nil, fmt.Errorf("%w: entry status is %s, expected DRAFT", apperrors.ErrConflict, entry.Status)
	}

	if len(entry.Details) == 0 {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrNoDetails)
	}
	if !entry.IsBalanced() {
		return nil, fmt.Errorf("%w: debits sum to %s, credits sum to %s",
			apperrors.ErrUnbalanced, entry.TotalDebits(), entry.TotalCredits())
	}

	now := time.Now().UTC()
	if err := s.journalRepo.UpdateEntryStatus(ctx, entryID, domain.Posted, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to post journal entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to post journal entry: %w", err)
	}

	entry.Status = domain.Posted
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID

	s.LogInfo(ctx, "Journal entry posted", slog.String("entry_id", entryID))
	return entry, nil
}

// VoidJournalEntry transitions a DRAFT or POSTED entry to VOID. Void entries
// no longer contribute to reports; the transition is terminal.
func (s *journalService) VoidJournalEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	if entry.Status == domain.Void {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrConflict, ErrAlreadyVoid)
	}

	now := time.Now().UTC()
	if err := s.journalRepo.UpdateEntryStatus(ctx, entryID, domain.Void, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to void journal entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to void journal entry: %w", err)
	}

	entry.Status = domain.Void
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = userID

	s.LogInfo(ctx, "Journal entry voided", slog.String("entry_id", entryID))
	return entry, nil
}

// uniqueStrings returns a slice containing only the unique strings from input.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}
