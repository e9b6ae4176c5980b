package service

import (
	"context"
	"fmt"

	"github.com/baileyhood/smashbash/internal/domain"
)

type AttendanceRepository interface {
	Record(ctx context.Context, accountID, eventID uint) error
	FindByAccount(ctx context.Context, accountID uint) ([]domain.AttendanceRecord, error)
}

type AttendanceService struct {
	repo AttendanceRepository
}

func NewAttendanceService(repo AttendanceRepository) *AttendanceService {
	return &AttendanceService{
		repo: repo,
	}
}

// Attend records that the account attends the event. Not idempotent:
// calling twice with the same pair yields two records.
func (s *AttendanceService) Attend(ctx context.Context, accountID, eventID uint) error {
	if err := s.repo.Record(ctx, accountID, eventID); err != nil {
		return fmt.Errorf("s.repo.Record -> %w", err)
	}

	return nil
}

func (s *AttendanceService) ListForAccount(ctx context.Context, accountID uint) ([]domain.AttendanceRecord, error) {
	records, err := s.repo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByAccount -> %w", err)
	}

	return records, nil
}
