package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"plaiz_studio/internal/domain/entities"
	"plaiz_studio/internal/usecase/interfaces"
	"plaiz_studio/pkg/logger"

	"go.uber.org/zap"
)

var (
	ErrInvalidBankName      = fmt.Errorf("%w: bank name is required", ErrValidation)
	ErrInvalidAccountName   = fmt.Errorf("%w: account name is required", ErrValidation)
	ErrInvalidAccountNumber = fmt.Errorf("%w: account number must be 10 digits", ErrValidation)
	ErrBankAccountNotFound  = fmt.Errorf("bank account %w", ErrNotFound)
)

type BankAccountInput struct {
	BankName      string
	AccountNumber string
	AccountName   string
	RecipientCode string
}

// IAccountUseCase keeps the payout destination of a worker.

type IAccountUseCase interface {
	SaveBankAccount(ctx context.Context, s entities.Session, in BankAccountInput) (entities.BankAccount, error)
	GetBankAccount(ctx context.Context, s entities.Session) (entities.BankAccount, error)
}

type AccountUseCase struct {
	repo interfaces.IBankAccountRepository
	log  *zap.Logger
}

var _ IAccountUseCase = (*AccountUseCase)(nil)

func NewAccountUseCase(repo interfaces.IBankAccountRepository, log *zap.Logger) *AccountUseCase {
	return &AccountUseCase{repo: repo, log: logger.OrNop(log)}
}

func (u *AccountUseCase) SaveBankAccount(ctx context.Context, s entities.Session, in BankAccountInput) (entities.BankAccount, error) {
	if err := requireSession(s); err != nil {
		return entities.BankAccount{}, err
	}
	if s.Role != entities.RoleWorker {
		return entities.BankAccount{}, fmt.Errorf("%w: only workers receive payouts", ErrForbidden)
	}
	b := entities.BankAccount{
		WorkerID:      s.UserID,
		BankName:      strings.TrimSpace(in.BankName),
		AccountNumber: strings.TrimSpace(in.AccountNumber),
		AccountName:   strings.TrimSpace(in.AccountName),
		RecipientCode: strings.TrimSpace(in.RecipientCode),
		UpdatedAt:     time.Now().UTC(),
	}
	if b.BankName == "" {
		return entities.BankAccount{}, ErrInvalidBankName
	}
	if b.AccountName == "" {
		return entities.BankAccount{}, ErrInvalidAccountName
	}
	if !isNUBAN(b.AccountNumber) {
		return entities.BankAccount{}, ErrInvalidAccountNumber
	}
	saved, err := u.repo.Upsert(ctx, b)
	if err != nil {
		u.log.Error("[account][usecase] save bank account failed", zap.String("worker_id", s.UserID), zap.Error(err))
		return entities.BankAccount{}, external(err)
	}
	u.log.Info("[account][usecase] bank account saved", zap.String("worker_id", s.UserID), zap.String("bank", saved.BankName))
	return saved, nil
}

func (u *AccountUseCase) GetBankAccount(ctx context.Context, s entities.Session) (entities.BankAccount, error) {
	if err := requireSession(s); err != nil {
		return entities.BankAccount{}, err
	}
	b, err := u.repo.GetByWorkerID(ctx, s.UserID)
	if err != nil {
		return entities.BankAccount{}, external(err)
	}
	if b.WorkerID == "" {
		return entities.BankAccount{}, ErrBankAccountNotFound
	}
	return b, nil
}

// isNUBAN checks the 10-digit Nigerian account number format.
func isNUBAN(n string) bool {
	if len(n) != 10 {
		return false
	}
	for _, r := range n {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
