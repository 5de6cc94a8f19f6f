package middlewares

import (
	"context"
	"net/http"
	"qsights-service/internal/pkg/constvars"
	"qsights-service/internal/pkg/exceptions"
	"qsights-service/internal/pkg/utils"
	"strings"
)

// SessionAuth guards respondent routes with the HS256 session token issued
// at session creation. The verified session ID is placed on the request
// context for the controllers.
func (m *Middlewares) SessionAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuth)
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionTokenInvalid(nil))
			return
		}

		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionTokenInvalid(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextSessionID, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
