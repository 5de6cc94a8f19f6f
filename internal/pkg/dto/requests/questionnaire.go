package requests

import "qsights-service/internal/pkg/branching"

type CreateQuestionnaire struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	Questions   []Question `json:"questions" validate:"dive"`
}

type UpdateQuestionnaire struct {
	ID          string     `json:"-"`
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	Questions   []Question `json:"questions" validate:"dive"`
}

type Question struct {
	ID      string            `json:"id"`
	Type    string            `json:"type" validate:"required,question_type"`
	Text    string            `json:"text" validate:"required"`
	Options []string          `json:"options,omitempty"`
	Logic   *ConditionalLogic `json:"conditionalLogic,omitempty"`
}

func (q Question) ToModel() branching.Question {
	return branching.Question{
		ID:      q.ID,
		Type:    branching.QuestionType(q.Type),
		Text:    q.Text,
		Options: q.Options,
		Logic:   q.Logic.ToModel(),
	}
}

func QuestionsToModel(questions []Question) []branching.Question {
	models := make([]branching.Question, 0, len(questions))
	for _, q := range questions {
		models = append(models, q.ToModel())
	}
	return models
}
