package dao

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventColumns() []string {
	return []string{"id", "name", "location", "start_time", "date", "image", "description", "owner_id", "created_at", "updated_at"}
}

func TestEventDAO_Insert_CreatesOwnerAttendance(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	d := NewEventDAO(gormDB)

	// One transaction for both the event row and the owner's attendance row.
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectQuery(`INSERT INTO "attendances"`).
		WithArgs(uint(5), uint(11), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	created, err := d.Insert(context.Background(), Event{
		Name:    "Smash Night",
		Date:    time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		OwnerID: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(11), created.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventDAO_Insert_RollsBackWhenAttendanceFails(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	d := NewEventDAO(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectQuery(`INSERT INTO "attendances"`).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := d.Insert(context.Background(), Event{
		Name:    "Smash Night",
		Date:    time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		OwnerID: 5,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventDAO_FindByID_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	d := NewEventDAO(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE "events"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows(eventColumns()))

	_, err := d.FindByID(context.Background(), 404)

	assert.True(t, errors.Is(err, ErrEventNotFound))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventDAO_FindUpcoming_BoundsWindow(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	d := NewEventDAO(gormDB)

	now := time.Now()
	rows := sqlmock.NewRows(eventColumns()).
		AddRow(1, "Smash Night", "Arcade", "19:00", now.AddDate(0, 1, 0), "", "", 5, now, now)

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE date BETWEEN \$1 AND \$2`).
		WillReturnRows(rows)

	events, err := d.FindUpcoming(context.Background(), 12)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Smash Night", events[0].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventDAO_SearchByName_CaseInsensitive(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	d := NewEventDAO(gormDB)

	now := time.Now()
	rows := sqlmock.NewRows(eventColumns()).
		AddRow(2, "Birthday Bash", "Park", "", now, "", "", 3, now, now)

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE name ILIKE \$1`).
		WithArgs("%bash%").
		WillReturnRows(rows)

	events, err := d.SearchByName(context.Background(), "bash")

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Birthday Bash", events[0].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventDAO_SearchByName_NoMatch(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	d := NewEventDAO(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "events" WHERE name ILIKE \$1`).
		WillReturnRows(sqlmock.NewRows(eventColumns()))

	events, err := d.SearchByName(context.Background(), "nothing")

	require.NoError(t, err)
	assert.Empty(t, events)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventDAO_Update_MissingRowIsSilentNoOp(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	d := NewEventDAO(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "events" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := d.Update(context.Background(), Event{
		ID:   404,
		Name: "Renamed",
		Date: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventDAO_Delete_CascadesToAttendance(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	d := NewEventDAO(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "events" WHERE "events"."id" = \$1`).
		WithArgs(11).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "attendances" WHERE event_id = \$1`).
		WithArgs(11).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := d.Delete(context.Background(), 11)

	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventDAO_Delete_RollsBackWhenCascadeFails(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	d := NewEventDAO(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "events" WHERE "events"."id" = \$1`).
		WithArgs(11).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "attendances" WHERE event_id = \$1`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := d.Delete(context.Background(), 11)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")

	assert.NoError(t, mock.ExpectationsWereMet())
}
