package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/baileyhood/smashbash/internal/domain"
	"github.com/baileyhood/smashbash/internal/repository/dao"
)

type AttendanceDAO interface {
	Insert(ctx context.Context, attendance dao.Attendance) (dao.Attendance, error)
	FindByAccount(ctx context.Context, accountID uint) ([]dao.Attendance, error)
}

type AttendanceRepository struct {
	dao         AttendanceDAO
	accountRepo *AccountRepository
	eventRepo   *EventRepository
}

func NewAttendanceRepository(dao AttendanceDAO, accountRepo *AccountRepository, eventRepo *EventRepository) *AttendanceRepository {
	return &AttendanceRepository{
		dao:         dao,
		accountRepo: accountRepo,
		eventRepo:   eventRepo,
	}
}

// Record inserts a mapping row unconditionally. Duplicate calls create
// duplicate rows.
func (r *AttendanceRepository) Record(ctx context.Context, accountID, eventID uint) error {
	_, err := r.dao.Insert(ctx, dao.Attendance{
		AccountID: accountID,
		EventID:   eventID,
	})
	if err != nil {
		return fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return nil
}

// FindByAccount resolves each mapping row to its full (account, event)
// pair. Rows whose event disappeared between the join and the fetch are
// dropped rather than reported.
func (r *AttendanceRepository) FindByAccount(ctx context.Context, accountID uint) ([]domain.AttendanceRecord, error) {
	rows, err := r.dao.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByAccount -> %w", err)
	}

	records := make([]domain.AttendanceRecord, 0, len(rows))
	for _, row := range rows {
		account, err := r.accountRepo.FindByID(ctx, row.AccountID)
		if err != nil {
			return nil, fmt.Errorf("r.accountRepo.FindByID -> %w", err)
		}

		event, err := r.eventRepo.FindByID(ctx, row.EventID)
		if err != nil {
			if errors.Is(err, ErrEventNotFound) {
				continue
			}

			return nil, fmt.Errorf("r.eventRepo.FindByID -> %w", err)
		}

		records = append(records, domain.AttendanceRecord{
			Account: account,
			Event:   event,
		})
	}

	return records, nil
}
