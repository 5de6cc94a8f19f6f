package routers

import (
	"fmt"
	"qsights-service/internal/app/config"
	"qsights-service/internal/app/delivery/http/middlewares"
	"qsights-service/internal/app/services/core/logics"
	"qsights-service/internal/app/services/core/questionnaires"
	"qsights-service/internal/app/services/core/sessions"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	questionnaireController *questionnaires.QuestionnaireController,
	logicController *logics.LogicController,
	sessionController *sessions.SessionController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id", "x-api-key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/questionnaires", func(r chi.Router) {
				attachQuestionnaireRouter(r, middlewares, questionnaireController, logicController)
			})

			r.Route("/sessions", func(r chi.Router) {
				attachSessionRouter(r, middlewares, internalConfig, sessionController)
			})
		})
	})
}
