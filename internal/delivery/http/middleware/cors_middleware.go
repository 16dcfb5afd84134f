package middleware

import (
	"net/http"
	"strings"
)

type CORSMiddleware struct {
	allowHeaders string
}

// NewCORSMiddleware allows the standard headers plus any extra ones the
// browser client sends, such as the role header.
func NewCORSMiddleware(extraHeaders ...string) *CORSMiddleware {
	headers := append([]string{"Content-Type", "Authorization", "X-Request-ID"}, extraHeaders...)
	return &CORSMiddleware{allowHeaders: strings.Join(headers, ", ")}
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", m.allowHeaders)

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, req)
	})
}
