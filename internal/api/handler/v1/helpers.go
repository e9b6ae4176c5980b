package v1

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/baileyhood/smashbash/internal/api/handler/v1/response"
	"github.com/baileyhood/smashbash/internal/api/middleware"
	"github.com/baileyhood/smashbash/internal/domain"
	"github.com/baileyhood/smashbash/internal/service"
)

// getAccountFromContext resolves the session's account name (set by the JWT
// middleware) to a full account.
func getAccountFromContext(ctx *gin.Context, svc AccountService) (domain.Account, *response.Err) {
	name := ctx.GetString(middleware.ContextKeyAccountName)
	if name == "" {
		return domain.Account{}, response.ErrUnauthorized("no session account")
	}

	account, err := svc.GetAccountByName(ctx.Request.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return domain.Account{}, response.ErrUnauthorized("session account no longer exists")
		}

		return domain.Account{}, response.ErrInternalServerError(fmt.Errorf("svc.GetAccountByName -> %w", err))
	}

	return account, nil
}
