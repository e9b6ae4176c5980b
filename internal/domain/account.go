package domain

import "time"

// Account is a registered user. The password is kept out of every JSON
// rendering so diagnostic listings never leak credentials.
type Account struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
