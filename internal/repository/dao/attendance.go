package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Attendance links an account to an event it attends. No uniqueness on the
// (account, event) pair: inserting the same pair twice yields two rows.
type Attendance struct {
	ID uint `gorm:"primaryKey"`

	AccountID uint `gorm:"index;not null"`
	EventID   uint `gorm:"index;not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type AttendanceDAO struct {
	db *gorm.DB
}

func NewAttendanceDAO(db *gorm.DB) *AttendanceDAO {
	return &AttendanceDAO{
		db: db,
	}
}

func (d *AttendanceDAO) Insert(ctx context.Context, attendance Attendance) (Attendance, error) {
	result := d.db.WithContext(ctx).Create(&attendance)
	if result.Error != nil {
		return Attendance{}, result.Error
	}

	return attendance, nil
}

// FindByAccount returns the raw mapping rows for an account, joined against
// the event table so rows for vanished events never surface.
func (d *AttendanceDAO) FindByAccount(ctx context.Context, accountID uint) ([]Attendance, error) {
	var attendances []Attendance

	result := d.db.WithContext(ctx).
		Joins("INNER JOIN events ON events.id = attendances.event_id").
		Where("attendances.account_id = ?", accountID).
		Find(&attendances)
	if result.Error != nil {
		return nil, result.Error
	}

	return attendances, nil
}
