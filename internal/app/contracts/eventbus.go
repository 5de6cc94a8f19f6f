package contracts

import "context"

// QuestionnaireEvent is the payload published to the event queue on
// questionnaire lifecycle changes.
type QuestionnaireEvent struct {
	Type            string `json:"type"`
	QuestionnaireID string `json:"questionnaire_id"`
	Version         int    `json:"version"`
	OccurredAt      int64  `json:"occurred_at"`
}

type EventPublisher interface {
	PublishQuestionnaireEvent(ctx context.Context, event QuestionnaireEvent) error
}
