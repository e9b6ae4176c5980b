package domain

import "time"

// Event is a scheduled happening with a single owning account. StartTime is
// the canonical 24-hour "HH:mm" string (may be empty); display formatting
// happens at the response boundary.
type Event struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	StartTime   string    `json:"time"`
	Date        time.Time `json:"date"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	OwnerID     uint      `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AttendanceRecord pairs an account with an event it attends.
type AttendanceRecord struct {
	Account Account `json:"account"`
	Event   Event   `json:"event"`
}
