package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baileyhood/smashbash/internal/api/handler/v1/response"
	"github.com/baileyhood/smashbash/internal/domain"
)

type AccountService interface {
	GetAccount(ctx context.Context, id uint) (domain.Account, error)
	GetAccountByName(ctx context.Context, name string) (domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

type AccountHandler struct {
	svc AccountService
}

func NewAccountHandler(svc AccountService) *AccountHandler {
	return &AccountHandler{
		svc: svc,
	}
}

// HandleListAccounts godoc
// @Summary      List all accounts (diagnostic; passwords are never serialized)
// @Tags         accounts
// @Produce      json
// @Success      200  {array}   domain.Account
// @Failure      500  {object}  response.Err
// @Router       /accounts [get]
func (h *AccountHandler) HandleListAccounts(ctx *gin.Context) {
	accounts, err := h.svc.ListAccounts(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListAccounts -> h.svc.ListAccounts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, accounts)
}
