package service

import (
	"context"
	"fmt"
	"time"

	"github.com/baileyhood/smashbash/internal/domain"
	"github.com/baileyhood/smashbash/internal/pkg/timefmt"
	"github.com/baileyhood/smashbash/internal/repository"
)

var (
	ErrEventNotFound = repository.ErrEventNotFound
	ErrInvalidFormat = timefmt.ErrInvalidFormat
)

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	FindUpcoming(ctx context.Context, months int) ([]domain.Event, error)
	FindByOwner(ctx context.Context, ownerID uint) ([]domain.Event, error)
	SearchByName(ctx context.Context, substring string) ([]domain.Event, error)
	Update(ctx context.Context, event domain.Event) error
	Delete(ctx context.Context, id uint) error
}

type EventService struct {
	repo EventRepository

	// upcomingWindowMonths bounds ListUpcoming, counted from today.
	upcomingWindowMonths int
}

func NewEventService(repo EventRepository, upcomingWindowMonths int) *EventService {
	return &EventService{
		repo:                 repo,
		upcomingWindowMonths: upcomingWindowMonths,
	}
}

// CreateEvent parses the raw date and time strings and persists the event.
// Creation implies attendance: the owner gets an attendance row in the same
// unit of work. An empty startTime is kept empty; the date is mandatory.
func (s *EventService) CreateEvent(ctx context.Context, event domain.Event, date, startTime string) (domain.Event, error) {
	parsed, err := s.parseSchedule(date, startTime)
	if err != nil {
		return domain.Event{}, err
	}

	event.Date = parsed.date
	event.StartTime = parsed.startTime

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

func (s *EventService) ListUpcomingEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.repo.FindUpcoming(ctx, s.upcomingWindowMonths)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindUpcoming -> %w", err)
	}

	return events, nil
}

func (s *EventService) ListEventsByOwner(ctx context.Context, ownerID uint) ([]domain.Event, error) {
	events, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByOwner -> %w", err)
	}

	return events, nil
}

func (s *EventService) SearchEventsByName(ctx context.Context, substring string) ([]domain.Event, error) {
	events, err := s.repo.SearchByName(ctx, substring)
	if err != nil {
		return nil, fmt.Errorf("s.repo.SearchByName -> %w", err)
	}

	return events, nil
}

// UpdateEvent overwrites all mutable fields of the event. A missing id is a
// silent no-op, matching the delete semantics.
func (s *EventService) UpdateEvent(ctx context.Context, event domain.Event, date, startTime string) error {
	parsed, err := s.parseSchedule(date, startTime)
	if err != nil {
		return err
	}

	event.Date = parsed.date
	event.StartTime = parsed.startTime

	if err := s.repo.Update(ctx, event); err != nil {
		return fmt.Errorf("s.repo.Update -> %w", err)
	}

	return nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

type schedule struct {
	date      time.Time
	startTime string
}

func (s *EventService) parseSchedule(date, startTime string) (schedule, error) {
	parsedDate, err := timefmt.ParseDate(date)
	if err != nil {
		return schedule{}, fmt.Errorf("timefmt.ParseDate -> %w", err)
	}

	if startTime == "" {
		return schedule{date: parsedDate}, nil
	}

	// Round-trip through the parser so only well-formed times are stored.
	parsedTime, err := timefmt.ParseTime(startTime)
	if err != nil {
		return schedule{}, fmt.Errorf("timefmt.ParseTime -> %w", err)
	}

	return schedule{
		date:      parsedDate,
		startTime: parsedTime.Format(timefmt.TimeInputLayout),
	}, nil
}
