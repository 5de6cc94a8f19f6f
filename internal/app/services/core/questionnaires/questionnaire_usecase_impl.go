package questionnaires

import (
	"context"
	"fmt"
	"qsights-service/internal/app/contracts"
	"qsights-service/internal/app/models"
	"qsights-service/internal/pkg/branching"
	"qsights-service/internal/pkg/constvars"
	"qsights-service/internal/pkg/dto/requests"
	"qsights-service/internal/pkg/dto/responses"
	"qsights-service/internal/pkg/exceptions"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type questionnaireUsecase struct {
	QuestionnaireRepository QuestionnaireRepository
	SnapshotStorage         contracts.SnapshotStorage
	EventPublisher          contracts.EventPublisher
}

func NewQuestionnaireUsecase(
	questionnaireMongoRepository QuestionnaireRepository,
	snapshotStorage contracts.SnapshotStorage,
	eventPublisher contracts.EventPublisher,
) QuestionnaireUsecase {
	return &questionnaireUsecase{
		QuestionnaireRepository: questionnaireMongoRepository,
		SnapshotStorage:         snapshotStorage,
		EventPublisher:          eventPublisher,
	}
}

func (uc *questionnaireUsecase) CreateQuestionnaire(ctx context.Context, request *requests.CreateQuestionnaire) (*responses.Questionnaire, error) {
	questions := requests.QuestionsToModel(request.Questions)
	if err := prepareQuestions(questions); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	questionnaire := &models.Questionnaire{
		Title:       request.Title,
		Description: request.Description,
		Status:      constvars.QuestionnaireStatusDraft,
		Version:     1,
		Questions:   questions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	questionnaireID, err := uc.QuestionnaireRepository.CreateQuestionnaire(ctx, questionnaire)
	if err != nil {
		return nil, err
	}

	created, err := uc.QuestionnaireRepository.FindByID(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	return toQuestionnaireResponse(created), nil
}

func (uc *questionnaireUsecase) UpdateQuestionnaire(ctx context.Context, request *requests.UpdateQuestionnaire) (*responses.Questionnaire, error) {
	existing, err := uc.QuestionnaireRepository.FindByID(ctx, request.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(nil)
	}

	questions := requests.QuestionsToModel(request.Questions)
	if err := prepareQuestions(questions); err != nil {
		return nil, err
	}

	existing.Title = request.Title
	existing.Description = request.Description
	existing.Questions = questions
	existing.UpdatedAt = time.Now().UTC()

	if err := uc.QuestionnaireRepository.UpdateQuestionnaire(ctx, existing); err != nil {
		return nil, err
	}
	return toQuestionnaireResponse(existing), nil
}

func (uc *questionnaireUsecase) FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*responses.Questionnaire, error) {
	questionnaire, err := uc.QuestionnaireRepository.FindByID(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(nil)
	}
	return toQuestionnaireResponse(questionnaire), nil
}

func (uc *questionnaireUsecase) ListQuestionnaires(ctx context.Context, status string, page, pageSize int) ([]responses.QuestionnaireSummary, int, error) {
	questionnaires, total, err := uc.QuestionnaireRepository.FindAll(ctx, status, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]responses.QuestionnaireSummary, 0, len(questionnaires))
	for _, questionnaire := range questionnaires {
		summaries = append(summaries, responses.QuestionnaireSummary{
			ID:            questionnaire.ID.Hex(),
			Title:         questionnaire.Title,
			Status:        questionnaire.Status,
			Version:       questionnaire.Version,
			QuestionCount: len(questionnaire.Questions),
			UpdatedAt:     questionnaire.UpdatedAt,
		})
	}
	return summaries, total, nil
}

func (uc *questionnaireUsecase) DeleteQuestionnaireByID(ctx context.Context, questionnaireID string) error {
	existing, err := uc.QuestionnaireRepository.FindByID(ctx, questionnaireID)
	if err != nil {
		return err
	}
	if existing == nil {
		return exceptions.ErrQuestionnaireNotFound(nil)
	}
	return uc.QuestionnaireRepository.DeleteByID(ctx, questionnaireID)
}

func (uc *questionnaireUsecase) PublishQuestionnaire(ctx context.Context, questionnaireID string) (*responses.Questionnaire, error) {
	questionnaire, err := uc.QuestionnaireRepository.FindByID(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(nil)
	}

	// Re-publishing an already published questionnaire produces a new version.
	if questionnaire.Status == constvars.QuestionnaireStatusPublished {
		questionnaire.Version++
	}
	questionnaire.Status = constvars.QuestionnaireStatusPublished
	questionnaire.UpdatedAt = time.Now().UTC()

	if err := uc.QuestionnaireRepository.UpdateQuestionnaire(ctx, questionnaire); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(questionnaire)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	if _, err := uc.SnapshotStorage.ArchiveSnapshot(ctx, questionnaireID, questionnaire.Version, payload); err != nil {
		return nil, err
	}

	err = uc.EventPublisher.PublishQuestionnaireEvent(ctx, contracts.QuestionnaireEvent{
		Type:            constvars.EventQuestionnairePublish,
		QuestionnaireID: questionnaireID,
		Version:         questionnaire.Version,
		OccurredAt:      time.Now().Unix(),
	})
	if err != nil {
		return nil, err
	}
	return toQuestionnaireResponse(questionnaire), nil
}

// prepareQuestions assigns IDs to new questions, validates every attached
// logic block against the full question list, and recaptures every
// parent-branching option mapping from the question positions being saved,
// so both the identifier and index encodings land consistent on disk.
func prepareQuestions(questions []branching.Question) error {
	for i := range questions {
		if questions[i].ID == "" {
			questions[i].ID = uuid.NewString()
		}
	}

	for _, question := range questions {
		if question.Logic == nil {
			continue
		}
		if validationErrors := branching.ValidateLogic(question, question.Logic, questions); len(validationErrors) > 0 {
			return exceptions.ErrLogicValidation(fmt.Errorf("%s", strings.Join(validationErrors, "; ")))
		}
	}

	for i := range questions {
		logic := questions[i].Logic
		if logic == nil || !logic.IsParentBranching() {
			continue
		}
		branching.RebindOptionMappings(questions[i].ID, logic.Metadata, questions)
	}
	return nil
}

func toQuestionnaireResponse(questionnaire *models.Questionnaire) *responses.Questionnaire {
	return &responses.Questionnaire{
		ID:          questionnaire.ID.Hex(),
		Title:       questionnaire.Title,
		Description: questionnaire.Description,
		Status:      questionnaire.Status,
		Version:     questionnaire.Version,
		Questions:   questionnaire.Questions,
		CreatedAt:   questionnaire.CreatedAt,
		UpdatedAt:   questionnaire.UpdatedAt,
	}
}
