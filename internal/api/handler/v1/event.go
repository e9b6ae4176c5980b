package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baileyhood/smashbash/internal/api/handler/v1/request"
	"github.com/baileyhood/smashbash/internal/api/handler/v1/response"
	"github.com/baileyhood/smashbash/internal/domain"
	"github.com/baileyhood/smashbash/internal/service"
)

type EventService interface {
	CreateEvent(ctx context.Context, event domain.Event, date, startTime string) (domain.Event, error)
	GetEvent(ctx context.Context, id uint) (domain.Event, error)
	ListUpcomingEvents(ctx context.Context) ([]domain.Event, error)
	ListEventsByOwner(ctx context.Context, ownerID uint) ([]domain.Event, error)
	SearchEventsByName(ctx context.Context, substring string) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event, date, startTime string) error
	DeleteEvent(ctx context.Context, id uint) error
}

type EventHandler struct {
	svc  EventService
	aSvc AccountService
}

func NewEventHandler(svc EventService, aSvc AccountService) *EventHandler {
	return &EventHandler{
		svc:  svc,
		aSvc: aSvc,
	}
}

// HandleListUpcomingEvents godoc
// @Summary      List events from today through the upcoming window
// @Tags         events
// @Produce      json
// @Success      200  {array}   response.Event
// @Failure      500  {object}  response.Err
// @Router       /events [get]
func (h *EventHandler) HandleListUpcomingEvents(ctx *gin.Context) {
	events, err := h.svc.ListUpcomingEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListUpcomingEvents -> h.svc.ListUpcomingEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewEvents(events))
}

// HandleGetEvent godoc
// @Summary      Get a single event
// @Tags         events
// @Produce      json
// @Param        eventId  query     int true "event ID"
// @Success      200      {object}  response.Event
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /event [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	req := request.EventIDRequest{}
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event, err := h.svc.GetEvent(ctx.Request.Context(), req.EventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", req.EventID))

			return
		}

		err = fmt.Errorf("v1.HandleGetEvent -> h.svc.GetEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewEvent(event))
}

// HandleSearchEvents godoc
// @Summary      Search events by name substring, case-insensitively
// @Tags         events
// @Produce      json
// @Param        searchString  query     string false "substring to match"
// @Success      200           {array}   response.Event
// @Failure      500           {object}  response.Err
// @Router       /searchEvents [get]
func (h *EventHandler) HandleSearchEvents(ctx *gin.Context) {
	req := request.SearchEventsRequest{}
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	events, err := h.svc.SearchEventsByName(ctx.Request.Context(), req.SearchString)
	if err != nil {
		err = fmt.Errorf("v1.HandleSearchEvents -> h.svc.SearchEventsByName -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewEvents(events))
}

// HandleListCreatedEvents godoc
// @Summary      List events owned by the session account
// @Tags         events
// @Produce      json
// @Success      200  {array}   response.Event
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /accountEventsCreated [get]
// @Security BearerAuth
func (h *EventHandler) HandleListCreatedEvents(ctx *gin.Context) {
	account, respErr := getAccountFromContext(ctx, h.aSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	events, err := h.svc.ListEventsByOwner(ctx.Request.Context(), account.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListCreatedEvents -> h.svc.ListEventsByOwner -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewEvents(events))
}

// HandleCreateEvent godoc
// @Summary      Create an event owned by the session account
// @Description  The owner is recorded as attending in the same unit of work.
// @Tags         events
// @Produce      json
// @Param        eventName      query     string true  "event name"
// @Param        eventLocation  query     string false "location"
// @Param        time           query     string false "HH:mm start time"
// @Param        date           query     string true  "yyyy-MM-dd date"
// @Param        image          query     string false "image URI"
// @Param        description    query     string false "description"
// @Success      201  {object}  response.Event
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /createEvent [post]
// @Security BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	account, respErr := getAccountFromContext(ctx, h.aSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	req := request.CreateEventRequest{}
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event := domain.Event{
		Name:        req.EventName,
		Location:    req.EventLocation,
		Image:       req.Image,
		Description: req.Description,
		OwnerID:     account.ID,
	}

	created, err := h.svc.CreateEvent(ctx.Request.Context(), event, req.Date, req.Time)
	if err != nil {
		if errors.Is(err, service.ErrInvalidFormat) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, response.NewEvent(created))
}

// HandleEditEvent godoc
// @Summary      Overwrite all mutable fields of an event
// @Description  Editing a nonexistent event is a silent no-op.
// @Tags         events
// @Produce      json
// @Param        eventId        query     int    true  "event ID"
// @Param        eventName      query     string true  "event name"
// @Param        eventLocation  query     string false "location"
// @Param        time           query     string false "HH:mm start time"
// @Param        date           query     string true  "yyyy-MM-dd date"
// @Param        image          query     string false "image URI"
// @Param        description    query     string false "description"
// @Param        accountId      query     int    true  "owner account ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /editEvent [post]
func (h *EventHandler) HandleEditEvent(ctx *gin.Context) {
	req := request.EditEventRequest{}
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event := domain.Event{
		ID:          req.EventID,
		Name:        req.EventName,
		Location:    req.EventLocation,
		Image:       req.Image,
		Description: req.Description,
		OwnerID:     req.AccountID,
	}

	if err := h.svc.UpdateEvent(ctx.Request.Context(), event, req.Date, req.Time); err != nil {
		if errors.Is(err, service.ErrInvalidFormat) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleEditEvent -> h.svc.UpdateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// HandleDeleteEvent godoc
// @Summary      Delete an event and its attendance records
// @Description  Deleting a nonexistent event is a silent no-op.
// @Tags         events
// @Produce      json
// @Param        eventId  query     int true "event ID"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /deleteEvent [post]
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	req := request.EventIDRequest{}
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.DeleteEvent(ctx.Request.Context(), req.EventID); err != nil {
		err = fmt.Errorf("v1.HandleDeleteEvent -> h.svc.DeleteEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
