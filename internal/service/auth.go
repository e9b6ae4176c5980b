package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/baileyhood/smashbash/internal/domain"
	"github.com/baileyhood/smashbash/internal/repository"
)

var (
	ErrAccountNameExists = repository.ErrAccountNameExists
	ErrWrongPassword     = errors.New("wrong password")
)

type AuthAccountRepository interface {
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
	FindByName(ctx context.Context, name string) (domain.Account, error)
}

type AuthService struct {
	repo AuthAccountRepository
}

func NewAuthService(repo AuthAccountRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

// Login implements the login-or-register flow: an unknown name registers a
// new account on the spot, a known name must present the matching password.
// The returned bool reports whether an account was created.
func (s *AuthService) Login(ctx context.Context, name, password string) (domain.Account, bool, error) {
	account, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			created, err := s.repo.Create(ctx, domain.Account{
				Name:     name,
				Password: password,
			})
			if err != nil {
				return domain.Account{}, false, fmt.Errorf("s.repo.Create -> %w", err)
			}

			return created, true, nil
		}

		return domain.Account{}, false, fmt.Errorf("s.repo.FindByName -> %w", err)
	}

	if account.Password != password {
		return domain.Account{}, false, ErrWrongPassword
	}

	return account, false, nil
}
