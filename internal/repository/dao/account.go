package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrAccountNameExists = errors.New("account name already taken")
	ErrAccountNotFound   = errors.New("account not found")
)

type Account struct {
	ID uint `gorm:"primaryKey"`

	Name     string `gorm:"unique;not null"`
	Password string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type AccountDAO struct {
	db *gorm.DB
}

func NewAccountDAO(db *gorm.DB) *AccountDAO {
	return &AccountDAO{
		db: db,
	}
}

func (d *AccountDAO) Insert(ctx context.Context, account Account) (Account, error) {
	result := d.db.WithContext(ctx).Create(&account)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_accounts_name"`) {
			return Account{}, ErrAccountNameExists
		}

		return Account{}, result.Error
	}

	return account, nil
}

func (d *AccountDAO) FindByID(ctx context.Context, id uint) (Account, error) {
	var account Account

	result := d.db.WithContext(ctx).First(&account, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Account{}, ErrAccountNotFound
		}

		return Account{}, result.Error
	}

	return account, nil
}

func (d *AccountDAO) FindByName(ctx context.Context, name string) (Account, error) {
	var account Account

	result := d.db.WithContext(ctx).First(&account, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Account{}, ErrAccountNotFound
		}

		return Account{}, result.Error
	}

	return account, nil
}

func (d *AccountDAO) FindAll(ctx context.Context) ([]Account, error) {
	var accounts []Account

	result := d.db.WithContext(ctx).Find(&accounts)
	if result.Error != nil {
		return nil, result.Error
	}

	return accounts, nil
}
