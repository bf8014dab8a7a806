package middlewares

import (
	"net/http"
	"os"
	"strings"
)

// CorsMiddleware allows the configured frontend origins (CORS_ORIGINS,
// comma-separated) to call the API with credentials. With no
// configuration every origin is reflected back, which suits local
// development.
func CorsMiddleware(next http.Handler) http.Handler {
	allowed := strings.Split(os.Getenv("CORS_ORIGINS"), ",")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && originAllowed(origin, allowed) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			w.Header().Set("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func originAllowed(origin string, allowed []string) bool {
	configured := false
	for _, a := range allowed {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		configured = true
		if a == "*" || strings.EqualFold(a, origin) {
			return true
		}
	}
	return !configured
}
