package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/apikeeper/internal/common"
	"github.com/dmitrijs2005/apikeeper/internal/server/models"
)

const requestIDHeader = "X-Request-ID"

type ctxKey string

const (
	requestIDKey     ctxKey = "requestID"
	adminIdentityKey ctxKey = "adminIdentity"
)

// requestLogger assigns a request id, echoes it in the response and logs the
// outcome of every request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		started := time.Now()

		next.ServeHTTP(ww, r.WithContext(ctx))

		s.logger.Info(ctx, "http request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(started))
	})
}

// authMiddleware admits requests carrying a valid admin session token.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(common.AuthorizationHeaderName)
		token := common.BearerToken(raw)
		if token == "" {
			token = raw
		}

		identity, err := s.deps.Admin.Authenticate(token)
		if err != nil {
			s.writeServiceError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), adminIdentityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func adminFromContext(ctx context.Context) *models.AdminIdentity {
	identity, _ := ctx.Value(adminIdentityKey).(*models.AdminIdentity)
	return identity
}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
