package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// Clients send these as query parameters, so the bindings are form tags.

type CreateEventRequest struct {
	EventName     string `form:"eventName"`
	EventLocation string `form:"eventLocation"`
	Time          string `form:"time"`
	Date          string `form:"date" format:"yyyy-MM-dd"`
	Image         string `form:"image"`
	Description   string `form:"description"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventName, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Date, validation.Required),
	)
}

type EditEventRequest struct {
	EventID uint `form:"eventId"`
	CreateEventRequest
	AccountID uint `form:"accountId"`
}

func (req *EditEventRequest) Validate() error {
	if err := req.CreateEventRequest.Validate(); err != nil {
		return err
	}

	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.AccountID, validation.Required, validation.Min(uint(1))),
	)
}

type EventIDRequest struct {
	EventID uint `form:"eventId"`
}

func (req *EventIDRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EventID, validation.Required, validation.Min(uint(1))),
	)
}

type SearchEventsRequest struct {
	SearchString string `form:"searchString"`
}
