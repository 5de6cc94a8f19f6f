package models

import "time"

// Session is a respondent's in-flight response session, kept in Redis for
// its lifetime.
type Session struct {
	SessionID       string    `json:"session_id"`
	QuestionnaireID string    `json:"questionnaire_id"`
	Respondent      string    `json:"respondent,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	ExpiresAt       time.Time `json:"expires_at"`
}
