package middleware

import (
	"net/http"

	"hms-backend/pkg/response"
)

// CORSMiddleware admits browser requests from an explicit origin allow-list.
// Requests without an Origin header are not browser cross-origin calls and
// pass through untouched.
type CORSMiddleware struct {
	allowed map[string]struct{}
}

func NewCORSMiddleware(origins []string) *CORSMiddleware {
	allowed := make(map[string]struct{}, len(origins))
	for _, origin := range origins {
		allowed[origin] = struct{}{}
	}
	return &CORSMiddleware{allowed: allowed}
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		origin := req.Header.Get("Origin")
		if origin == "" {
			next.ServeHTTP(w, req)
			return
		}

		if _, ok := m.allowed[origin]; !ok {
			response.Forbidden(w, "Not allowed by CORS")
			return
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Add("Vary", "Origin")

		if req.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, req)
	})
}
