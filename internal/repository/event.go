package repository

import (
	"context"
	"fmt"

	"github.com/baileyhood/smashbash/internal/domain"
	"github.com/baileyhood/smashbash/internal/repository/dao"
)

var ErrEventNotFound = dao.ErrEventNotFound

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	FindUpcoming(ctx context.Context, months int) ([]dao.Event, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]dao.Event, error)
	SearchByName(ctx context.Context, substring string) ([]dao.Event, error)
	Update(ctx context.Context, event dao.Event) error
	Delete(ctx context.Context, id uint) error
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

// Create persists the event together with its owner attendance row.
func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) FindUpcoming(ctx context.Context, months int) ([]domain.Event, error) {
	found, err := r.dao.FindUpcoming(ctx, months)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindUpcoming -> %w", err)
	}

	return r.daoToDomainEvents(found), nil
}

func (r *EventRepository) FindByOwner(ctx context.Context, ownerID uint) ([]domain.Event, error) {
	found, err := r.dao.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByOwner -> %w", err)
	}

	return r.daoToDomainEvents(found), nil
}

func (r *EventRepository) SearchByName(ctx context.Context, substring string) ([]domain.Event, error) {
	found, err := r.dao.SearchByName(ctx, substring)
	if err != nil {
		return nil, fmt.Errorf("r.dao.SearchByName -> %w", err)
	}

	return r.daoToDomainEvents(found), nil
}

func (r *EventRepository) Update(ctx context.Context, event domain.Event) error {
	if err := r.dao.Update(ctx, r.domainToDao(event)); err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

// Delete removes the event and cascades to its attendance rows.
func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *EventRepository) domainToDao(e domain.Event) dao.Event {
	return dao.Event{
		ID:          e.ID,
		Name:        e.Name,
		Location:    e.Location,
		StartTime:   e.StartTime,
		Date:        e.Date,
		Image:       e.Image,
		Description: e.Description,
		OwnerID:     e.OwnerID,
	}
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:          e.ID,
		Name:        e.Name,
		Location:    e.Location,
		StartTime:   e.StartTime,
		Date:        e.Date,
		Image:       e.Image,
		Description: e.Description,
		OwnerID:     e.OwnerID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (r *EventRepository) daoToDomainEvents(daoEvents []dao.Event) []domain.Event {
	events := make([]domain.Event, 0, len(daoEvents))
	for _, e := range daoEvents {
		events = append(events, r.daoToDomain(e))
	}

	return events
}
