package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type Event struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null"`
	Location    string
	StartTime   string    // canonical HH:mm, empty when the owner gave none
	Date        time.Time `gorm:"type:date;not null"`
	Image       string
	Description string
	OwnerID     uint `gorm:"index;not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

// Insert creates the event row and the owner's attendance row as one
// atomic unit. Every event has at least one attendance row for its creator.
func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return err
		}

		attendance := Attendance{
			AccountID: event.OwnerID,
			EventID:   event.ID,
		}

		return tx.Create(&attendance).Error
	})
	if err != nil {
		return Event{}, err
	}

	return event, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

// FindUpcoming returns events dated between today and the given number of
// months ahead, both bounds inclusive.
func (d *EventDAO) FindUpcoming(ctx context.Context, months int) ([]Event, error) {
	var events []Event

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, months, 0)

	result := d.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", from, to).
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) FindByOwner(ctx context.Context, ownerID uint) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

// SearchByName matches the event name case-insensitively against the given
// substring. No match yields an empty slice, never an error.
func (d *EventDAO) SearchByName(ctx context.Context, substring string) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+substring+"%").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

// Update overwrites all mutable fields of the row matching event.ID.
// Updating a missing event is a silent no-op.
func (d *EventDAO) Update(ctx context.Context, event Event) error {
	result := d.db.WithContext(ctx).
		Model(&Event{}).
		Where("id = ?", event.ID).
		Updates(map[string]interface{}{
			"name":        event.Name,
			"location":    event.Location,
			"start_time":  event.StartTime,
			"date":        event.Date,
			"image":       event.Image,
			"description": event.Description,
			"owner_id":    event.OwnerID,
		})

	return result.Error
}

// Delete removes the event row and every attendance row referencing it as
// one atomic unit. Deleting a missing event is a silent no-op.
func (d *EventDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Event{}, id).Error; err != nil {
			return err
		}

		return tx.Where("event_id = ?", id).Delete(&Attendance{}).Error
	})
}
