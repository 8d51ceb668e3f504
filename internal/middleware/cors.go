package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS wraps h so browsers on the allowed origins can call the API.
// An empty list allows any origin.
func CORS(h http.Handler, allowedOrigins []string) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{HeaderRequestID},
	})
	return c.Handler(h)
}
