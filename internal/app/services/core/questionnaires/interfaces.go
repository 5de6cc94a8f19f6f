package questionnaires

import (
	"context"
	"qsights-service/internal/app/models"
	"qsights-service/internal/pkg/dto/requests"
	"qsights-service/internal/pkg/dto/responses"
)

type QuestionnaireUsecase interface {
	CreateQuestionnaire(ctx context.Context, request *requests.CreateQuestionnaire) (*responses.Questionnaire, error)
	UpdateQuestionnaire(ctx context.Context, request *requests.UpdateQuestionnaire) (*responses.Questionnaire, error)
	FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*responses.Questionnaire, error)
	ListQuestionnaires(ctx context.Context, status string, page, pageSize int) ([]responses.QuestionnaireSummary, int, error)
	DeleteQuestionnaireByID(ctx context.Context, questionnaireID string) error
	PublishQuestionnaire(ctx context.Context, questionnaireID string) (*responses.Questionnaire, error)
}

type QuestionnaireRepository interface {
	CreateQuestionnaire(ctx context.Context, questionnaire *models.Questionnaire) (string, error)
	FindByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error)
	FindAll(ctx context.Context, status string, page, pageSize int) ([]models.Questionnaire, int, error)
	UpdateQuestionnaire(ctx context.Context, questionnaire *models.Questionnaire) error
	DeleteByID(ctx context.Context, questionnaireID string) error
}
