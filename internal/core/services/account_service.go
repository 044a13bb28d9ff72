package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/money_lending_ledger/internal/apperrors"
	"github.com/SscSPs/money_lending_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/money_lending_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_lending_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_lending_ledger/internal/dto"
	"github.com/google/uuid"
)

// AccountService manages internal accounts.
type AccountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade, options ...ServiceOption) *AccountService {
	return &AccountService{
		BaseService: newBaseService(options...),
		accountRepo: repo,
	}
}

// Ensure AccountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	now := s.now()
	account := domain.Account{
		ID:         uuid.NewString(),
		Name:       req.Name,
		BusinessID: req.BusinessID,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: userID,
		},
	}
	if err := domain.ValidateAccount(account); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_id", account.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.ID))
	return &account, nil
}

func (s *AccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID",
				slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *AccountService) ListAccounts(ctx context.Context, includeArchived bool) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, includeArchived)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}

	s.LogDebug(ctx, "Accounts listed successfully",
		slog.Int("count", len(accounts)),
		slog.Bool("include_archived", includeArchived))
	return accounts, nil
}

func (s *AccountService) SetAccountArchived(ctx context.Context, accountID string, archived bool, userID string) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.IsArchived == archived {
		return account, nil
	}

	now := s.now()
	if err := s.accountRepo.SetAccountArchived(ctx, accountID, archived, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update account archival",
			slog.String("account_id", accountID))
		return nil, err
	}
	account.IsArchived = archived
	account.Touch(userID, now)

	s.LogInfo(ctx, "Account archival updated",
		slog.String("account_id", accountID),
		slog.Bool("archived", archived))
	return account, nil
}
