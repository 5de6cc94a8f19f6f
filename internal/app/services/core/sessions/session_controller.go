package sessions

import (
	"context"
	"net/http"
	"qsights-service/internal/pkg/constvars"
	"qsights-service/internal/pkg/dto/requests"
	"qsights-service/internal/pkg/exceptions"
	"qsights-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SessionController struct {
	Log            *zap.Logger
	SessionUsecase SessionUsecase
}

func NewSessionController(logger *zap.Logger, sessionUsecase SessionUsecase) *SessionController {
	return &SessionController{
		Log:            logger,
		SessionUsecase: sessionUsecase,
	}
}

func (ctrl *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.CreateSession)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SessionUsecase.CreateSession(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSessionSuccessMessage, response)
}

func (ctrl *SessionController) SubmitAnswers(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	if !sessionMatchesToken(r, sessionID) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionTokenInvalid(nil))
		return
	}

	// Bind body to request
	request := new(requests.SubmitAnswers)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = ctrl.SessionUsecase.SubmitAnswers(ctx, sessionID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubmitAnswersSuccessMessage, nil)
}

func (ctrl *SessionController) GetVisibility(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, constvars.URLParamSessionID)
	if !sessionMatchesToken(r, sessionID) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionTokenInvalid(nil))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SessionUsecase.GetVisibility(ctx, sessionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetVisibilitySuccessMessage, response)
}

// sessionMatchesToken checks the URL session against the one the auth
// middleware extracted from the bearer token.
func sessionMatchesToken(r *http.Request, sessionID string) bool {
	tokenSessionID, ok := r.Context().Value(constvars.ContextSessionID).(string)
	return ok && tokenSessionID == sessionID
}
