package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/baileyhood/smashbash/internal/pkg/jwthelper"
)

// Context keys set by VerifyJWT for downstream handlers.
const (
	ContextKeyAccountID   = "account_id"
	ContextKeyAccountName = "account_name"
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})

			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})

			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})

			return
		}

		ctx.Set(ContextKeyAccountID, claims.AccountID)
		ctx.Set(ContextKeyAccountName, claims.AccountName)

		ctx.Next()
	}
}
