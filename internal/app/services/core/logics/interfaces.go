package logics

import (
	"context"
	"qsights-service/internal/pkg/branching"
	"qsights-service/internal/pkg/dto/requests"
	"qsights-service/internal/pkg/dto/responses"
)

type LogicUsecase interface {
	AttachLogic(ctx context.Context, questionnaireID, questionID string, request *requests.ConditionalLogic) (*branching.ConditionalLogic, error)
	DetachLogic(ctx context.Context, questionnaireID, questionID string) error
	ValidateLogic(ctx context.Context, questionnaireID, questionID string, request *requests.ConditionalLogic) (*responses.LogicValidation, error)
	PreviewLogic(ctx context.Context, questionnaireID, questionID string) (*responses.LogicPreview, error)
	ListCandidates(ctx context.Context, questionnaireID, questionID string) ([]responses.CandidateQuestion, error)
}
