package service

import (
	"context"
	"fmt"

	"github.com/baileyhood/smashbash/internal/domain"
	"github.com/baileyhood/smashbash/internal/repository"
)

var ErrAccountNotFound = repository.ErrAccountNotFound

type AccountRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Account, error)
	FindByName(ctx context.Context, name string) (domain.Account, error)
	FindAll(ctx context.Context) ([]domain.Account, error)
}

type AccountService struct {
	repo AccountRepository
}

func NewAccountService(repo AccountRepository) *AccountService {
	return &AccountService{
		repo: repo,
	}
}

func (s *AccountService) GetAccount(ctx context.Context, id uint) (domain.Account, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Account{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return account, nil
}

func (s *AccountService) GetAccountByName(ctx context.Context, name string) (domain.Account, error) {
	account, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return domain.Account{}, fmt.Errorf("s.repo.FindByName -> %w", err)
	}

	return account, nil
}

// ListAccounts is for diagnostic use. Passwords never reach the response
// layer regardless (redacted at serialization).
func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return accounts, nil
}
