package sessions

import (
	"context"
	"fmt"
	"qsights-service/internal/app/config"
	"qsights-service/internal/app/contracts"
	"qsights-service/internal/app/models"
	"qsights-service/internal/app/services/core/questionnaires"
	"qsights-service/internal/pkg/branching"
	"qsights-service/internal/pkg/constvars"
	"qsights-service/internal/pkg/dto/requests"
	"qsights-service/internal/pkg/dto/responses"
	"qsights-service/internal/pkg/exceptions"
	"qsights-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
)

type sessionUsecase struct {
	QuestionnaireRepository questionnaires.QuestionnaireRepository
	RedisRepository         contracts.RedisRepository
	InternalConfig          *config.InternalConfig
}

func NewSessionUsecase(
	questionnaireMongoRepository questionnaires.QuestionnaireRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
) SessionUsecase {
	return &sessionUsecase{
		QuestionnaireRepository: questionnaireMongoRepository,
		RedisRepository:         redisRepository,
		InternalConfig:          internalConfig,
	}
}

func (uc *sessionUsecase) CreateSession(ctx context.Context, request *requests.CreateSession) (*responses.Session, error) {
	questionnaire, err := uc.QuestionnaireRepository.FindByID(ctx, request.QuestionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(nil)
	}
	if questionnaire.Status != constvars.QuestionnaireStatusPublished {
		return nil, exceptions.ErrQuestionnaireNotPublished(nil)
	}

	sessionTTL := time.Duration(uc.InternalConfig.App.SessionTTLInHour) * time.Hour
	now := time.Now().UTC()
	session := &models.Session{
		SessionID:       utils.GenerateSessionID(),
		QuestionnaireID: request.QuestionnaireID,
		Respondent:      request.Respondent,
		CreatedAt:       now,
		ExpiresAt:       now.Add(sessionTTL),
	}

	sessionKey := fmt.Sprintf(constvars.RedisKeySessionFormat, session.SessionID)
	if err := uc.RedisRepository.Set(ctx, sessionKey, session, sessionTTL); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrSessionTokenGenerate(err)
	}

	return &responses.Session{
		SessionID:       session.SessionID,
		QuestionnaireID: session.QuestionnaireID,
		Token:           token,
		ExpiresAt:       session.ExpiresAt,
	}, nil
}

func (uc *sessionUsecase) SubmitAnswers(ctx context.Context, sessionID string, request *requests.SubmitAnswers) error {
	session, err := uc.findSession(ctx, sessionID)
	if err != nil {
		return err
	}

	answers, err := uc.loadAnswers(ctx, sessionID)
	if err != nil {
		return err
	}

	// Merge per question, a resubmitted question replaces its prior values.
	for questionID, values := range request.Answers {
		answers[questionID] = []string(values)
	}

	answersKey := fmt.Sprintf(constvars.RedisKeyAnswersFormat, sessionID)
	answersTTL := time.Until(session.ExpiresAt)
	if answersTTL <= 0 {
		return exceptions.ErrSessionNotFound(nil)
	}
	return uc.RedisRepository.Set(ctx, answersKey, answers, answersTTL)
}

func (uc *sessionUsecase) GetVisibility(ctx context.Context, sessionID string) (*responses.Visibility, error) {
	session, err := uc.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	questionnaire, err := uc.QuestionnaireRepository.FindByID(ctx, session.QuestionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(nil)
	}

	answers, err := uc.loadAnswers(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	visibility := branching.VisibleQuestions(questionnaire.Questions, answers)
	response := &responses.Visibility{
		Visible: make([]string, 0, len(questionnaire.Questions)),
		Hidden:  []string{},
	}
	for _, question := range questionnaire.Questions {
		if visibility[question.ID] {
			response.Visible = append(response.Visible, question.ID)
		} else {
			response.Hidden = append(response.Hidden, question.ID)
		}
	}
	return response, nil
}

func (uc *sessionUsecase) findSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionKey := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
	raw, err := uc.RedisRepository.Get(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(raw), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (uc *sessionUsecase) loadAnswers(ctx context.Context, sessionID string) (branching.Answers, error) {
	answersKey := fmt.Sprintf(constvars.RedisKeyAnswersFormat, sessionID)
	raw, err := uc.RedisRepository.Get(ctx, answersKey)
	if err != nil {
		return nil, err
	}

	answers := branching.Answers{}
	if raw == "" {
		return answers, nil
	}
	if err := json.Unmarshal([]byte(raw), &answers); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return answers, nil
}
