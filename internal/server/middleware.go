package server

import "net/http"

// securityHeaders applies the hardening headers the extension's host
// pages expect on every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "default-src 'self'")
		w.Header().Set("Server", "Secure")
		next.ServeHTTP(w, r)
	})
}
