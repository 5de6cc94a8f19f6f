package sessions

import (
	"context"
	"qsights-service/internal/pkg/dto/requests"
	"qsights-service/internal/pkg/dto/responses"
)

type SessionUsecase interface {
	CreateSession(ctx context.Context, request *requests.CreateSession) (*responses.Session, error)
	SubmitAnswers(ctx context.Context, sessionID string, request *requests.SubmitAnswers) error
	GetVisibility(ctx context.Context, sessionID string) (*responses.Visibility, error)
}
