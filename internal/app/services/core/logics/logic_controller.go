package logics

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

type LogicController struct {
	Log          *zap.Logger
	LogicUsecase LogicUsecase
}

func NewLogicController(logger *zap.Logger, logicUsecase LogicUsecase) *LogicController {
	return &LogicController{
		Log:          logger,
		LogicUsecase: logicUsecase,
	}
}

func (ctrl *LogicController) AttachLogic(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.ConditionalLogic)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	questionnaireID := chi.URLParam(r, constvars.URLParamQuestionnaireID)
	questionID := chi.URLParam(r, constvars.URLParamQuestionID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.LogicUsecase.AttachLogic(ctx, questionnaireID, questionID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AttachLogicSuccessMessage, response)
}

func (ctrl *LogicController) DetachLogic(w http.ResponseWriter, r *http.Request) {
	questionnaireID := chi.URLParam(r, constvars.URLParamQuestionnaireID)
	questionID := chi.URLParam(r, constvars.URLParamQuestionID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := ctrl.LogicUsecase.DetachLogic(ctx, questionnaireID, questionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DetachLogicSuccessMessage, nil)
}

func (ctrl *LogicController) ValidateLogic(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.ConditionalLogic)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	questionnaireID := chi.URLParam(r, constvars.URLParamQuestionnaireID)
	questionID := chi.URLParam(r, constvars.URLParamQuestionID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.LogicUsecase.ValidateLogic(ctx, questionnaireID, questionID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ValidateLogicSuccessMessage, response)
}

func (ctrl *LogicController) PreviewLogic(w http.ResponseWriter, r *http.Request) {
	questionnaireID := chi.URLParam(r, constvars.URLParamQuestionnaireID)
	questionID := chi.URLParam(r, constvars.URLParamQuestionID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.LogicUsecase.PreviewLogic(ctx, questionnaireID, questionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PreviewLogicSuccessMessage, response)
}

func (ctrl *LogicController) ListCandidates(w http.ResponseWriter, r *http.Request) {
	questionnaireID := chi.URLParam(r, constvars.URLParamQuestionnaireID)
	questionID := chi.URLParam(r, constvars.URLParamQuestionID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.LogicUsecase.ListCandidates(ctx, questionnaireID, questionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListCandidatesSuccessMessage, response)
}
