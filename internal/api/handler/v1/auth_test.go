package v1

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baileyhood/smashbash/internal/api/handler/v1/response"
	"github.com/baileyhood/smashbash/internal/config"
	"github.com/baileyhood/smashbash/internal/domain"
	"github.com/baileyhood/smashbash/internal/pkg/jwthelper"
	"github.com/baileyhood/smashbash/internal/service"
)

func testAPIConfig() *config.APIConfig {
	return &config.APIConfig{
		JWTSigningKey: "test-signing-key",
	}
}

func TestHandleLogin_ExistingAccount(t *testing.T) {
	svc := &fakeAuthService{
		account: domain.Account{ID: 7, Name: "wobbles", Password: "hunter2"},
	}
	h := NewAuthHandler(testAPIConfig(), svc)

	rec := serve(t, http.MethodPost, "/login?username=wobbles&password=hunter2", func(r *gin.Engine) {
		r.POST("/login", h.HandleLogin)
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp response.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "wobbles", resp.Account.Name)
	assert.NotContains(t, rec.Body.String(), "hunter2")

	claims, err := jwthelper.ParseToken([]byte("test-signing-key"), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.AccountID)
	assert.Equal(t, "wobbles", claims.AccountName)
}

func TestHandleLogin_NewAccountIsCreated(t *testing.T) {
	svc := &fakeAuthService{
		account: domain.Account{ID: 8, Name: "newbie"},
		created: true,
	}
	h := NewAuthHandler(testAPIConfig(), svc)

	rec := serve(t, http.MethodPost, "/login?username=newbie&password=pw", func(r *gin.Engine) {
		r.POST("/login", h.HandleLogin)
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandleLogin_WrongPassword(t *testing.T) {
	svc := &fakeAuthService{err: service.ErrWrongPassword}
	h := NewAuthHandler(testAPIConfig(), svc)

	rec := serve(t, http.MethodPost, "/login?username=wobbles&password=nope", func(r *gin.Engine) {
		r.POST("/login", h.HandleLogin)
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestHandleLogin_MissingCredentials(t *testing.T) {
	h := NewAuthHandler(testAPIConfig(), &fakeAuthService{})

	rec := serve(t, http.MethodPost, "/login?username=wobbles", func(r *gin.Engine) {
		r.POST("/login", h.HandleLogin)
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleLogout(t *testing.T) {
	h := NewAuthHandler(testAPIConfig(), &fakeAuthService{})

	rec := serve(t, http.MethodPost, "/logout", func(r *gin.Engine) {
		r.POST("/logout", h.HandleLogout)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "logged out")
}
