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
	ErrDuplicateAccountCode = errors.New("account code already exists")
	ErrParentNotFound       = errors.New("parent account not found")
	ErrParentCycle          = errors.New("parent link would create a cycle")
	ErrTypeChangeWithPosted = errors.New("cannot change type of an account with posted entries")
)

// accountService provides chart-of-accounts operations.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount validates and persists a new chart-of-accounts entry.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	if !domain.ValidAccountType(req.AccountType) {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}

	// Uniqueness pre-check; the DB unique constraint closes the race.
	if _, err := s.accountRepo.FindAccountByCode(ctx, req.Code); err == nil {
		return nil, fmt.Errorf("%w: code %s: %w", apperrors.ErrDuplicate, req.Code, ErrDuplicateAccountCode)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check account code uniqueness", slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to check account code: %w", err)
	}

	if req.ParentAccountID != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, *req.ParentAccountID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, ErrParentNotFound, *req.ParentAccountID)
			}
			return nil, fmt.Errorf("failed to fetch parent account: %w", err)
		}
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		Code:            req.Code,
		Name:            req.Name,
		AccountType:     req.AccountType,
		Description:     req.Description,
		ParentAccountID: req.ParentAccountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: code %s: %w", apperrors.ErrDuplicate, req.Code, ErrDuplicateAccountCode)
		}
		s.LogError(ctx, err, "Failed to save account", slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created successfully", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// GetAccountByID retrieves a single account with its parent annotation.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves every account ordered by code, annotated with parent
// name and hasChildren for tree rendering.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount merges only the supplied fields into an existing account.
// The code is immutable; a type change is rejected once the account has
// posted journal lines because it would silently reclassify history.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Account not found for update", slog.String("account_id", accountID))
		}
		return nil, err
	}

	updated := false
	if req.Name != nil {
		account.Name = *req.Name
		updated = true
	}
	if req.Description != nil {
		account.Description = *req.Description
		updated = true
	}
	if req.AccountType != nil && *req.AccountType != account.AccountType {
		if !domain.ValidAccountType(*req.AccountType) {
			return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, *req.AccountType)
		}
		hasPosted, err := s.accountRepo.HasPostedDetails(ctx, accountID)
		if err != nil {
			s.LogError(ctx, err, "Failed to check posted details for type change", slog.String("account_id", accountID))
			return nil, fmt.Errorf("failed to check posted entries: %w", err)
		}
		if hasPosted {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrConflict, ErrTypeChangeWithPosted)
		}
		account.AccountType = *req.AccountType
		updated = true
	}
	if req.ParentAccountID != nil {
		if err := s.validateParentLink(ctx, accountID, *req.ParentAccountID); err != nil {
			return nil, err
		}
		account.ParentAccountID = req.ParentAccountID
		updated = true
	}

	if !updated {
		return account, nil
	}

	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = updaterUserID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.LogInfo(ctx, "Account updated successfully", slog.String("account_id", accountID))
	return account, nil
}

// validateParentLink rejects unknown parents and parent chains that loop back
// to the account being updated.
func (s *accountService) validateParentLink(ctx context.Context, accountID, parentID string) error {
	if parentID == accountID {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrParentCycle)
	}

	current := parentID
	for current != "" {
		parent, err := s.accountRepo.FindAccountByID(ctx, current)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, ErrParentNotFound, parentID)
			}
			return fmt.Errorf("failed to walk parent chain: %w", err)
		}
		if parent.ParentAccountID == nil {
			break
		}
		if *parent.ParentAccountID == accountID {
			return fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrParentCycle)
		}
		current = *parent.ParentAccountID
	}
	return nil
}
