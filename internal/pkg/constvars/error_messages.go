package constvars

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientNotAuthorized                 = "you are not authorized to perform this action"
	ErrClientInvalidAPIKey                 = "invalid api key"
	ErrClientSessionInvalidOrExpired       = "your session is invalid or has expired"
	ErrClientQuestionnaireNotFound         = "questionnaire not found"
	ErrClientQuestionNotFound              = "question not found"
	ErrClientSessionNotFound               = "response session not found"
	ErrClientQuestionnaireNotPublished     = "questionnaire is not open for responses"
	ErrClientLogicRejected                 = "the branching logic contains errors and cannot be saved"
	ErrClientServerLongRespond             = "server takes too long to respond"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON          = "cannot marshal data into JSON"
	ErrDevValidationFailed           = "validation failed"
	ErrDevURLParamIDValidationFailed = "URL param '%s' validation failed"
	ErrDevServerDeadlineExceeded     = "the server could not finish processing in expected time"

	ErrDevAPIKeyMissing   = "api key header missing"
	ErrDevAPIKeyMismatch  = "api key does not match configured hash"
	ErrDevSessionToken    = "session token missing, malformed or expired"
	ErrDevSessionGenerate = "failed to sign session token"

	ErrDevQuestionnaireNotFound     = "questionnaire document not found"
	ErrDevQuestionNotFound          = "question not present in questionnaire definition"
	ErrDevSessionNotFound           = "session key not present in redis"
	ErrDevQuestionnaireNotPublished = "questionnaire status is not 'published'"
	ErrDevLogicValidationFailed     = "conditional logic failed validation"

	ErrDevDBFailedToFindDocument     = "database failed to find document"
	ErrDevDBFailedToInsertDocument   = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "database failed to update document"
	ErrDevDBFailedToDeleteDocument   = "database failed to delete document"
	ErrDevDBFailedToIterateDocuments = "database failed to iterate documents"
	ErrDevDBStringNotObjectID        = "cannot convert string to mongoDB ObjectID"

	ErrDevRedisSet       = "redis failed to set key"
	ErrDevRedisGetNoData = "redis failed to get data for key '%s'"
	ErrDevRedisDelete    = "redis failed to delete key"

	ErrDevEventPublish    = "failed to publish event to message queue"
	ErrDevSnapshotArchive = "failed to archive definition snapshot to object storage"
)
