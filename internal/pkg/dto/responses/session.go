package responses

import "time"

type Session struct {
	SessionID       string    `json:"session_id"`
	QuestionnaireID string    `json:"questionnaire_id"`
	Token           string    `json:"token"`
	ExpiresAt       time.Time `json:"expires_at"`
}

type Visibility struct {
	Visible []string `json:"visible"`
	Hidden  []string `json:"hidden"`
}
