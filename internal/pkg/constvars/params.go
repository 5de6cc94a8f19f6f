package constvars

const (
	URLParamQuestionnaireID = "questionnaire_id"
	URLParamQuestionID      = "question_id"
	URLParamSessionID       = "session_id"
)

const (
	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "page_size"
	URLQueryParamStatus   = "status"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)
