package middlewares

import (
	"context"
	"net/http"
	"qsights-service/internal/pkg/constvars"
	"qsights-service/internal/pkg/exceptions"
	"qsights-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// APIKeyAuth guards administration routes. The presented key is checked
// against the bcrypt hash from config, the plaintext key is never stored.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderXAPIKey)

		if apiKey == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyMissing(nil))
			return
		}

		if !utils.CheckAPIKeyHash(apiKey, m.InternalConfig.App.AdminAPIKeyHash) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextAPIKeyAuth, true)

		m.Log.Info("API key authentication successful",
			zap.String("ip", r.RemoteAddr),
			zap.String("endpoint", r.URL.Path),
			zap.String("method", r.Method),
		)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
