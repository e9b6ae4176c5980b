package v1

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/baileyhood/smashbash/internal/api/middleware"
	"github.com/baileyhood/smashbash/internal/domain"
	"github.com/baileyhood/smashbash/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// serve runs a single request against a throwaway router.
func serve(t *testing.T, method, target string, register func(r *gin.Engine)) *httptest.ResponseRecorder {
	t.Helper()

	router := gin.New()
	register(router)

	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

// asSession fakes the JWT middleware by injecting the account name directly.
func asSession(name string, handler gin.HandlerFunc) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		func(ctx *gin.Context) {
			ctx.Set(middleware.ContextKeyAccountName, name)
		},
		handler,
	}
}

type fakeAccountService struct {
	accounts map[string]domain.Account
}

func (f *fakeAccountService) GetAccount(_ context.Context, id uint) (domain.Account, error) {
	for _, a := range f.accounts {
		if a.ID == id {
			return a, nil
		}
	}

	return domain.Account{}, service.ErrAccountNotFound
}

func (f *fakeAccountService) GetAccountByName(_ context.Context, name string) (domain.Account, error) {
	account, ok := f.accounts[name]
	if !ok {
		return domain.Account{}, service.ErrAccountNotFound
	}

	return account, nil
}

func (f *fakeAccountService) ListAccounts(_ context.Context) ([]domain.Account, error) {
	var out []domain.Account
	for _, a := range f.accounts {
		out = append(out, a)
	}

	return out, nil
}

type fakeAuthService struct {
	account domain.Account
	created bool
	err     error
}

func (f *fakeAuthService) Login(_ context.Context, _, _ string) (domain.Account, bool, error) {
	return f.account, f.created, f.err
}

type fakeEventService struct {
	events map[uint]domain.Event

	deleted []uint
	updated []domain.Event
}

func (f *fakeEventService) CreateEvent(_ context.Context, event domain.Event, date, startTime string) (domain.Event, error) {
	svc := service.NewEventService(nopEventRepo{}, 12)

	return svc.CreateEvent(context.Background(), event, date, startTime)
}

func (f *fakeEventService) GetEvent(_ context.Context, id uint) (domain.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return domain.Event{}, service.ErrEventNotFound
	}

	return event, nil
}

func (f *fakeEventService) ListUpcomingEvents(_ context.Context) ([]domain.Event, error) {
	var out []domain.Event
	for _, e := range f.events {
		out = append(out, e)
	}

	return out, nil
}

func (f *fakeEventService) ListEventsByOwner(_ context.Context, ownerID uint) ([]domain.Event, error) {
	var out []domain.Event
	for _, e := range f.events {
		if e.OwnerID == ownerID {
			out = append(out, e)
		}
	}

	return out, nil
}

func (f *fakeEventService) SearchEventsByName(_ context.Context, _ string) ([]domain.Event, error) {
	var out []domain.Event
	for _, e := range f.events {
		out = append(out, e)
	}

	return out, nil
}

func (f *fakeEventService) UpdateEvent(_ context.Context, event domain.Event, _, _ string) error {
	f.updated = append(f.updated, event)

	return nil
}

func (f *fakeEventService) DeleteEvent(_ context.Context, id uint) error {
	f.deleted = append(f.deleted, id)

	return nil
}

// nopEventRepo lets the real EventService run its parsing while storing
// nothing, so handler tests exercise the real format errors.
type nopEventRepo struct{}

func (nopEventRepo) Create(_ context.Context, event domain.Event) (domain.Event, error) {
	event.ID = 1

	return event, nil
}

func (nopEventRepo) FindByID(context.Context, uint) (domain.Event, error) {
	return domain.Event{}, service.ErrEventNotFound
}

func (nopEventRepo) FindUpcoming(context.Context, int) ([]domain.Event, error) { return nil, nil }

func (nopEventRepo) FindByOwner(context.Context, uint) ([]domain.Event, error) { return nil, nil }

func (nopEventRepo) SearchByName(context.Context, string) ([]domain.Event, error) { return nil, nil }

func (nopEventRepo) Update(context.Context, domain.Event) error { return nil }

func (nopEventRepo) Delete(context.Context, uint) error { return nil }

type fakeAttendanceService struct {
	attended [][2]uint
	records  []domain.AttendanceRecord
}

func (f *fakeAttendanceService) Attend(_ context.Context, accountID, eventID uint) error {
	f.attended = append(f.attended, [2]uint{accountID, eventID})

	return nil
}

func (f *fakeAttendanceService) ListForAccount(context.Context, uint) ([]domain.AttendanceRecord, error) {
	return f.records, nil
}
