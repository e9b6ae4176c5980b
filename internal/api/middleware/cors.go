package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS allows the comma-separated list of origins from config. An
// empty list allows every origin.
func ConfigCORS(allowedDomains string) gin.HandlerFunc {
	conf := cors.Config{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if strings.TrimSpace(allowedDomains) == "" {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = strings.Split(allowedDomains, ",")
	}

	return cors.New(conf)
}
