package app

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ampliy/ampliy/pkg/visitor"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	SessionIdHeader = "X-Session-Id"
	RoleHeader      = "X-Role"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router) {
	r.Use(visitorMiddleware)
}

// visitorMiddleware propagates the X-Session-Id and X-Role headers into the context.
// Requests without a session get a fresh id, echoed back so the client can keep it.
func visitorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		sessionId := strings.TrimSpace(req.Header.Get(SessionIdHeader))
		if sessionId == "" {
			sessionId = uuid.NewString()
			log.Tracef("assigned new session %s", sessionId)
		}
		w.Header().Set(SessionIdHeader, sessionId)

		v := visitor.Visitor{
			SessionId: sessionId,
			Role:      visitor.ParseRole(req.Header.Get(RoleHeader)),
		}
		next.ServeHTTP(w, req.WithContext(visitor.WithVisitor(req.Context(), v)))
	})
}

// corsMiddleware allows the configured frontend origin to call the API and read the
// session header. It wraps the router so preflight requests never reach route matching.
func corsMiddleware(allowedOrigin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" || !(allowedOrigin == "*" || strings.EqualFold(origin, allowedOrigin)) {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Expose-Headers", SessionIdHeader)

		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", strings.Join([]string{"Content-Type", SessionIdHeader, RoleHeader}, ", "))
			w.Header().Set("Access-Control-Max-Age", strconv.Itoa(3600))
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
