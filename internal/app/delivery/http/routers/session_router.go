package routers

import (
	"qsights-service/internal/app/config"
	"qsights-service/internal/app/delivery/http/middlewares"
	"qsights-service/internal/app/services/core/sessions"
	"time"

	"github.com/go-chi/chi/v5"
)

func attachSessionRouter(router chi.Router, middlewares *middlewares.Middlewares, internalConfig *config.InternalConfig, sessionController *sessions.SessionController) {
	answerLimiter := newAnswerLimiter(internalConfig)

	router.Post("/", sessionController.CreateSession)
	router.With(middlewares.SessionAuth, answerLimiter.Limit).Put("/{session_id}/answers", sessionController.SubmitAnswers)
	router.With(middlewares.SessionAuth).Get("/{session_id}/visibility", sessionController.GetVisibility)
}

func newAnswerLimiter(internalConfig *config.InternalConfig) *middlewares.RateLimiter {
	// A zero or negative rate would divide by zero below; fall back to the
	// documented defaults instead of disabling the limiter.
	perSecond := internalConfig.App.AnswersPerSecond
	if perSecond < 1 {
		perSecond = 20
	}
	burst := internalConfig.App.AnswerBurst
	if burst < 1 {
		burst = 40
	}
	return middlewares.NewRateLimiter(
		burst,
		time.Second/time.Duration(perSecond),
		time.Minute,
	)
}
