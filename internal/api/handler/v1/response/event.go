package response

import (
	"github.com/baileyhood/smashbash/internal/domain"
	"github.com/baileyhood/smashbash/internal/pkg/timefmt"
)

// Event is the wire form of a domain event: the date as MM/dd/yyyy and the
// time on a 12-hour clock with zone marker. Display formatting lives here
// and nowhere else.
type Event struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Time        string `json:"time"`
	Date        string `json:"date"`
	Image       string `json:"image"`
	Description string `json:"description"`
	OwnerID     uint   `json:"owner_id"`
}

func NewEvent(e domain.Event) Event {
	displayTime := ""
	if e.StartTime != "" {
		if t, err := timefmt.ParseTime(e.StartTime); err == nil {
			displayTime = timefmt.FormatTimeForDisplay(t)
		} else {
			displayTime = e.StartTime
		}
	}

	return Event{
		ID:          e.ID,
		Name:        e.Name,
		Location:    e.Location,
		Time:        displayTime,
		Date:        timefmt.FormatDateForDisplay(e.Date),
		Image:       e.Image,
		Description: e.Description,
		OwnerID:     e.OwnerID,
	}
}

func NewEvents(events []domain.Event) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		out = append(out, NewEvent(e))
	}

	return out
}

// AttendanceRecord pairs the attending account with the rendered event.
type AttendanceRecord struct {
	Account domain.Account `json:"account"`
	Event   Event          `json:"event"`
}

func NewAttendanceRecords(records []domain.AttendanceRecord) []AttendanceRecord {
	out := make([]AttendanceRecord, 0, len(records))
	for _, r := range records {
		out = append(out, AttendanceRecord{
			Account: r.Account,
			Event:   NewEvent(r.Event),
		})
	}

	return out
}
