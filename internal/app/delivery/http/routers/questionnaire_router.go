package routers

import (
	"qsights-service/internal/app/delivery/http/middlewares"
	"qsights-service/internal/app/services/core/logics"
	"qsights-service/internal/app/services/core/questionnaires"

	"github.com/go-chi/chi/v5"
)

func attachQuestionnaireRouter(router chi.Router, middlewares *middlewares.Middlewares, questionnaireController *questionnaires.QuestionnaireController, logicController *logics.LogicController) {
	router.With(middlewares.APIKeyAuth).Post("/", questionnaireController.CreateQuestionnaire)
	router.With(middlewares.APIKeyAuth).Get("/", questionnaireController.ListQuestionnaires)
	router.With(middlewares.APIKeyAuth).Get("/{questionnaire_id}", questionnaireController.FindQuestionnaireByID)
	router.With(middlewares.APIKeyAuth).Put("/{questionnaire_id}", questionnaireController.UpdateQuestionnaire)
	router.With(middlewares.APIKeyAuth).Delete("/{questionnaire_id}", questionnaireController.DeleteQuestionnaireByID)
	router.With(middlewares.APIKeyAuth).Post("/{questionnaire_id}/publish", questionnaireController.PublishQuestionnaire)

	router.With(middlewares.APIKeyAuth).Put("/{questionnaire_id}/questions/{question_id}/logic", logicController.AttachLogic)
	router.With(middlewares.APIKeyAuth).Delete("/{questionnaire_id}/questions/{question_id}/logic", logicController.DetachLogic)
	router.With(middlewares.APIKeyAuth).Post("/{questionnaire_id}/questions/{question_id}/logic/validate", logicController.ValidateLogic)
	router.With(middlewares.APIKeyAuth).Get("/{questionnaire_id}/questions/{question_id}/logic/preview", logicController.PreviewLogic)
	router.With(middlewares.APIKeyAuth).Get("/{questionnaire_id}/questions/{question_id}/branching/candidates", logicController.ListCandidates)
}
