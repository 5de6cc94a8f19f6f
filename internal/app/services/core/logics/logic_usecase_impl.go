package logics

import (
	"context"
	"fmt"
	"qsights-service/internal/app/models"
	"qsights-service/internal/app/services/core/questionnaires"
	"qsights-service/internal/pkg/branching"
	"qsights-service/internal/pkg/dto/requests"
	"qsights-service/internal/pkg/dto/responses"
	"qsights-service/internal/pkg/exceptions"
	"strings"
	"time"
)

type logicUsecase struct {
	QuestionnaireRepository questionnaires.QuestionnaireRepository
}

func NewLogicUsecase(questionnaireMongoRepository questionnaires.QuestionnaireRepository) LogicUsecase {
	return &logicUsecase{
		QuestionnaireRepository: questionnaireMongoRepository,
	}
}

func (uc *logicUsecase) AttachLogic(ctx context.Context, questionnaireID, questionID string, request *requests.ConditionalLogic) (*branching.ConditionalLogic, error) {
	questionnaire, questionIndex, err := uc.findQuestion(ctx, questionnaireID, questionID)
	if err != nil {
		return nil, err
	}

	logic := request.ToModel()

	// Validate against the question list as it will be after the attach, so
	// dependency chains through this question's new rules are visible to the
	// circular dependency check.
	questions := cloneQuestions(questionnaire.Questions)
	questions[questionIndex].Logic = logic

	if validationErrors := branching.ValidateLogic(questions[questionIndex], logic, questions); len(validationErrors) > 0 {
		return nil, exceptions.ErrLogicValidation(fmt.Errorf("%s", strings.Join(validationErrors, "; ")))
	}

	if logic.IsParentBranching() {
		branching.RebindOptionMappings(questionID, logic.Metadata, questions)
	}

	questionnaire.Questions = questions
	questionnaire.UpdatedAt = time.Now().UTC()
	if err := uc.QuestionnaireRepository.UpdateQuestionnaire(ctx, questionnaire); err != nil {
		return nil, err
	}
	return logic, nil
}

func (uc *logicUsecase) DetachLogic(ctx context.Context, questionnaireID, questionID string) error {
	questionnaire, questionIndex, err := uc.findQuestion(ctx, questionnaireID, questionID)
	if err != nil {
		return err
	}

	questionnaire.Questions[questionIndex].Logic = nil
	questionnaire.UpdatedAt = time.Now().UTC()
	return uc.QuestionnaireRepository.UpdateQuestionnaire(ctx, questionnaire)
}

func (uc *logicUsecase) ValidateLogic(ctx context.Context, questionnaireID, questionID string, request *requests.ConditionalLogic) (*responses.LogicValidation, error) {
	questionnaire, questionIndex, err := uc.findQuestion(ctx, questionnaireID, questionID)
	if err != nil {
		return nil, err
	}

	logic := request.ToModel()
	questions := cloneQuestions(questionnaire.Questions)
	questions[questionIndex].Logic = logic

	validationErrors := branching.ValidateLogic(questions[questionIndex], logic, questions)
	if validationErrors == nil {
		validationErrors = []string{}
	}
	return &responses.LogicValidation{
		Valid:  len(validationErrors) == 0,
		Errors: validationErrors,
	}, nil
}

func (uc *logicUsecase) PreviewLogic(ctx context.Context, questionnaireID, questionID string) (*responses.LogicPreview, error) {
	questionnaire, questionIndex, err := uc.findQuestion(ctx, questionnaireID, questionID)
	if err != nil {
		return nil, err
	}

	owner := questionnaire.Questions[questionIndex]
	return &responses.LogicPreview{
		Preview: branching.LogicPreviewText(owner, owner.Logic, questionnaire.Questions),
	}, nil
}

func (uc *logicUsecase) ListCandidates(ctx context.Context, questionnaireID, questionID string) ([]responses.CandidateQuestion, error) {
	questionnaire, _, err := uc.findQuestion(ctx, questionnaireID, questionID)
	if err != nil {
		return nil, err
	}

	positionByID := make(map[string]int, len(questionnaire.Questions))
	for i, question := range questionnaire.Questions {
		positionByID[question.ID] = i + 1
	}

	candidates := branching.ChildCandidates(questionnaire.Questions, questionID)
	result := make([]responses.CandidateQuestion, 0, len(candidates))
	for _, candidate := range candidates {
		result = append(result, responses.CandidateQuestion{
			ID:       candidate.ID,
			Text:     candidate.Text,
			Type:     string(candidate.Type),
			Position: positionByID[candidate.ID],
		})
	}
	return result, nil
}

func (uc *logicUsecase) findQuestion(ctx context.Context, questionnaireID, questionID string) (*models.Questionnaire, int, error) {
	questionnaire, err := uc.QuestionnaireRepository.FindByID(ctx, questionnaireID)
	if err != nil {
		return nil, 0, err
	}
	if questionnaire == nil {
		return nil, 0, exceptions.ErrQuestionnaireNotFound(nil)
	}

	for i, question := range questionnaire.Questions {
		if question.ID == questionID {
			return questionnaire, i, nil
		}
	}
	return nil, 0, exceptions.ErrQuestionNotFound(nil)
}

func cloneQuestions(questions []branching.Question) []branching.Question {
	cloned := make([]branching.Question, len(questions))
	copy(cloned, questions)
	return cloned
}
