package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/modos-studio/quotepilot-backend/pkg/config"
)

var defaultCORSOrigins = []string{
	"http://localhost:3000", // local dev
	"https://quotepilot.modos.space",
}

// CORS returns middleware that applies the API's allowed origin policy. The
// configured public base URL is always allowed so the share pages can call
// back in.
func CORS(shareCfg config.ShareConfig) func(http.Handler) http.Handler {
	origins := defaultCORSOrigins
	if shareCfg.PublicBaseURL != "" {
		origins = append(append([]string{}, origins...), shareCfg.PublicBaseURL)
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
