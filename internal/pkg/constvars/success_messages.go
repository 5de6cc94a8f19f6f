package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Questionnaire messages
	CreateQuestionnaireSuccessMessage  = "questionnaire created successfully"
	UpdateQuestionnaireSuccessMessage  = "questionnaire updated successfully"
	FindQuestionnaireSuccessMessage    = "questionnaire fetched successfully"
	ListQuestionnairesSuccessMessage   = "questionnaires fetched successfully"
	DeleteQuestionnaireSuccessMessage  = "questionnaire deleted successfully"
	PublishQuestionnaireSuccessMessage = "questionnaire published successfully"

	// Branching logic messages
	AttachLogicSuccessMessage    = "branching logic saved successfully"
	DetachLogicSuccessMessage    = "branching logic removed successfully"
	ValidateLogicSuccessMessage  = "branching logic validated"
	PreviewLogicSuccessMessage   = "branching logic preview generated"
	ListCandidatesSuccessMessage = "candidate child questions fetched successfully"

	// Session messages
	CreateSessionSuccessMessage = "response session created successfully"
	SubmitAnswersSuccessMessage = "answers saved successfully"
	GetVisibilitySuccessMessage = "visibility computed successfully"
)
