package constvars

type ContextKey string

const (
	ContextRequestID         ContextKey = "request_id"
	ContextIsClientRequestID ContextKey = "is_client_request_id"
	ContextSessionID         ContextKey = "session_id"
	ContextAPIKeyAuth        ContextKey = "api_key_auth"
)

const (
	MongoCollectionQuestionnaires = "questionnaires"

	RedisKeySessionFormat = "qsights:session:%s"
	RedisKeyAnswersFormat = "qsights:answers:%s"

	EventQueueName            = "qsights_questionnaire_events"
	EventQuestionnairePublish = "questionnaire.published"

	SnapshotObjectFormat = "questionnaires/%s/v%d.json"
)

const (
	QuestionnaireStatusDraft     = "draft"
	QuestionnaireStatusPublished = "published"
	QuestionnaireStatusArchived  = "archived"
)
