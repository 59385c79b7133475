package http

import "net/http"

// corsPolicy holds the allowed cross-origin hosts, read once from
// configuration at startup.
type corsPolicy struct {
	origins  []string
	allowAll bool
}

func newCORSPolicy(origins []string) *corsPolicy {
	p := &corsPolicy{origins: origins}
	for _, o := range origins {
		if o == "*" {
			p.allowAll = true
			break
		}
	}
	return p
}

// allowedOrigin returns the Access-Control-Allow-Origin value for the
// request origin, or "" when the origin is not allowed.
func (p *corsPolicy) allowedOrigin(origin string) string {
	if p.allowAll {
		return "*"
	}
	for _, o := range p.origins {
		if o == origin {
			return origin
		}
	}
	return ""
}

// withCORS applies the CORS policy to a handler and answers preflight
// OPTIONS requests before they reach the handler's method check.
func (s *Server) withCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" {
			if allowed := s.cors.allowedOrigin(origin); allowed != "" {
				w.Header().Set("Access-Control-Allow-Origin", allowed)
				w.Header().Set("Vary", "Origin")
			}
		}

		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "600")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}
