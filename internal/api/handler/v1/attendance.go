package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baileyhood/smashbash/internal/api/handler/v1/request"
	"github.com/baileyhood/smashbash/internal/api/handler/v1/response"
	"github.com/baileyhood/smashbash/internal/domain"
)

type AttendanceService interface {
	Attend(ctx context.Context, accountID, eventID uint) error
	ListForAccount(ctx context.Context, accountID uint) ([]domain.AttendanceRecord, error)
}

type AttendanceHandler struct {
	svc  AttendanceService
	aSvc AccountService
}

func NewAttendanceHandler(svc AttendanceService, aSvc AccountService) *AttendanceHandler {
	return &AttendanceHandler{
		svc:  svc,
		aSvc: aSvc,
	}
}

// HandleAttendEvent godoc
// @Summary      Record the session account as attending an event
// @Description  Not idempotent: repeating the call adds another record.
// @Tags         attendance
// @Produce      json
// @Param        eventId  query     int true "event ID"
// @Success      201      {object}  map[string]string
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /addEventAttending [post]
// @Security BearerAuth
func (h *AttendanceHandler) HandleAttendEvent(ctx *gin.Context) {
	account, respErr := getAccountFromContext(ctx, h.aSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	req := request.EventIDRequest{}
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.Attend(ctx.Request.Context(), account.ID, req.EventID); err != nil {
		err = fmt.Errorf("v1.HandleAttendEvent -> h.svc.Attend -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"status": "attending"})
}

// HandleListAttendingEvents godoc
// @Summary      List (account, event) attendance records for the session account
// @Tags         attendance
// @Produce      json
// @Success      200  {array}   response.AttendanceRecord
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /accountEventsAttending [get]
// @Security BearerAuth
func (h *AttendanceHandler) HandleListAttendingEvents(ctx *gin.Context) {
	account, respErr := getAccountFromContext(ctx, h.aSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)

		return
	}

	records, err := h.svc.ListForAccount(ctx.Request.Context(), account.ID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListAttendingEvents -> h.svc.ListForAccount -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.NewAttendanceRecords(records))
}
