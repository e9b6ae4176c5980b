package repository

import (
	"context"
	"fmt"

	"github.com/baileyhood/smashbash/internal/domain"
	"github.com/baileyhood/smashbash/internal/repository/dao"
)

var (
	ErrAccountNameExists = dao.ErrAccountNameExists
	ErrAccountNotFound   = dao.ErrAccountNotFound
)

type AccountDAO interface {
	Insert(ctx context.Context, account dao.Account) (dao.Account, error)
	FindByID(ctx context.Context, id uint) (dao.Account, error)
	FindByName(ctx context.Context, name string) (dao.Account, error)
	FindAll(ctx context.Context) ([]dao.Account, error)
}

type AccountRepository struct {
	dao AccountDAO
}

func NewAccountRepository(dao AccountDAO) *AccountRepository {
	return &AccountRepository{
		dao: dao,
	}
}

func (r *AccountRepository) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	created, err := r.dao.Insert(ctx, dao.Account{
		Name:     account.Name,
		Password: account.Password,
	})
	if err != nil {
		return domain.Account{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id uint) (domain.Account, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Account{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AccountRepository) FindByName(ctx context.Context, name string) (domain.Account, error) {
	found, err := r.dao.FindByName(ctx, name)
	if err != nil {
		return domain.Account{}, fmt.Errorf("r.dao.FindByName -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AccountRepository) FindAll(ctx context.Context) ([]domain.Account, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	accounts := make([]domain.Account, 0, len(found))
	for _, a := range found {
		accounts = append(accounts, r.daoToDomain(a))
	}

	return accounts, nil
}

func (r *AccountRepository) daoToDomain(a dao.Account) domain.Account {
	return domain.Account{
		ID:        a.ID,
		Name:      a.Name,
		Password:  a.Password,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
