package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/baileyhood/smashbash/internal/api/handler/v1/request"
	"github.com/baileyhood/smashbash/internal/api/handler/v1/response"
	"github.com/baileyhood/smashbash/internal/config"
	"github.com/baileyhood/smashbash/internal/domain"
	"github.com/baileyhood/smashbash/internal/pkg/jwthelper"
	"github.com/baileyhood/smashbash/internal/service"
)

type AuthService interface {
	Login(ctx context.Context, name, password string) (domain.Account, bool, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleLogin godoc
// @Summary      Log in, registering the account if the name is unknown
// @Tags         auth
// @Produce      json
// @Param        username  query     string true "account name"
// @Param        password  query     string true "password"
// @Success      200       {object}  response.LoginResponse
// @Success      201       {object}  response.LoginResponse
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	account, created, err := h.svc.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(service.ErrWrongPassword))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), account.ID, account.Name)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	ctx.JSON(status, response.LoginResponse{
		Token:   token,
		Account: account,
	})
}

// HandleLogout godoc
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /logout [post]
// @Security BearerAuth
func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	// Sessions are stateless tokens; the client discards its copy.
	ctx.JSON(http.StatusOK, gin.H{"status": "logged out"})
}
