package requests

type CreateSession struct {
	QuestionnaireID string `json:"questionnaire_id" validate:"required"`
	Respondent      string `json:"respondent,omitempty" validate:"max=200"`
}

type SubmitAnswers struct {
	Answers map[string]StringList `json:"answers" validate:"required"`
}
