package questionnaires

import (
	"context"
	"net/http"
	"qsights-service/internal/pkg/constvars"
	"qsights-service/internal/pkg/dto/requests"
	"qsights-service/internal/pkg/exceptions"
	"qsights-service/internal/pkg/utils"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type QuestionnaireController struct {
	Log                  *zap.Logger
	QuestionnaireUsecase QuestionnaireUsecase
}

func NewQuestionnaireController(logger *zap.Logger, questionnaireUsecase QuestionnaireUsecase) *QuestionnaireController {
	return &QuestionnaireController{
		Log:                  logger,
		QuestionnaireUsecase: questionnaireUsecase,
	}
}

func (ctrl *QuestionnaireController) CreateQuestionnaire(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.CreateQuestionnaire)
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

	response, err := ctrl.QuestionnaireUsecase.CreateQuestionnaire(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateQuestionnaireSuccessMessage, response)
}

func (ctrl *QuestionnaireController) UpdateQuestionnaire(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.UpdateQuestionnaire)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.ID = chi.URLParam(r, constvars.URLParamQuestionnaireID)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.QuestionnaireUsecase.UpdateQuestionnaire(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateQuestionnaireSuccessMessage, response)
}

func (ctrl *QuestionnaireController) FindQuestionnaireByID(w http.ResponseWriter, r *http.Request) {
	questionnaireID := chi.URLParam(r, constvars.URLParamQuestionnaireID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, err := ctrl.QuestionnaireUsecase.FindQuestionnaireByID(ctx, questionnaireID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindQuestionnaireSuccessMessage, response)
}

func (ctrl *QuestionnaireController) ListQuestionnaires(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamPage))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamPageSize))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}
	status := r.URL.Query().Get(constvars.URLQueryParamStatus)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response, total, err := ctrl.QuestionnaireUsecase.ListQuestionnaires(ctx, status, page, pageSize)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ListQuestionnairesSuccessMessage, pagination, response)
}

func (ctrl *QuestionnaireController) DeleteQuestionnaireByID(w http.ResponseWriter, r *http.Request) {
	questionnaireID := chi.URLParam(r, constvars.URLParamQuestionnaireID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := ctrl.QuestionnaireUsecase.DeleteQuestionnaireByID(ctx, questionnaireID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteQuestionnaireSuccessMessage, nil)
}

func (ctrl *QuestionnaireController) PublishQuestionnaire(w http.ResponseWriter, r *http.Request) {
	questionnaireID := chi.URLParam(r, constvars.URLParamQuestionnaireID)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	response, err := ctrl.QuestionnaireUsecase.PublishQuestionnaire(ctx, questionnaireID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PublishQuestionnaireSuccessMessage, response)
}
