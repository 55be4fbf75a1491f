package constvars

// Client-facing error messages. Dev messages carry the detail; these stay generic.
const (
	ErrClientCannotProcessRequest          = "We cannot process your request, please check your request"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
	ErrClientUnsupportedQuestionnaireType  = "The requested questionnaire type is not supported"
	ErrClientAgeCannotBeDetermined         = "Patient age cannot be determined, identification is required"
	ErrClientPatientNotFound               = "Patient not found"
	ErrClientInvalidBirthDate              = "Birth date is missing or invalid"
	ErrClientAgeBelowMinimum               = "The minimum age is 6 years"
	ErrClientAgeAboveMaximum               = "The maximum age is 100 years"
	ErrClientUnsupportedChartKind          = "The requested chart kind is not supported"
	ErrClientUnknownAgeVariant             = "The requested age variant is not supported"
)

const (
	ErrDevValidationFailed              = "Request validation failed"
	ErrDevInvalidInput                  = "Invalid input"
	ErrDevCannotParseJSON               = "Failed to parse JSON payload"
	ErrDevCannotParseDate               = "Failed to parse date value"
	ErrDevServerDeadlineExceeded        = "Deadline exceeded while processing the request"
	ErrDevServerProcess                 = "Failed to process request"
	ErrDevCannotMarshalJSON             = "Failed to marshal value to JSON"
	ErrDevURLParamIDValidationFailed    = "URL parameter '%s' validation failed"
	ErrDevUnsupportedQuestionnaireType  = "Questionnaire type '%s' is not registered in the definition table"
	ErrDevUnsupportedChartKind          = "Chart kind '%s' is not supported"
	ErrDevAgeClassificationFailed       = "Age classification failed: %s"
	ErrDevUnknownAgeVariant             = "Age variant '%s' is not in the catalog"
	ErrDevAgeOutOfIdentificationRange   = "Age %d years is outside the identification range"
	ErrDevPatientNotFound               = "Patient document not found"
	ErrDevEmptyTemplateCatalog          = "Template catalog is empty for age variant '%s'"
	ErrDevDBFailedToFindDocument        = "Database failed to find document"
	ErrDevDBFailedToInsertDocument      = "Database failed to insert document"
	ErrDevDBFailedToUpdateDocument      = "Database failed to update document"
	ErrDevDBFailedToCountDocuments      = "Database failed to count documents"
	ErrDevDBFailedToIterateDocuments    = "Database failed to iterate documents"
	ErrDevDBTransactionFailed           = "Database transaction failed"
	ErrDevRedisGetData                  = "Redis failed to get data"
	ErrDevRedisSetData                  = "Redis failed to set data"
	ErrDevRedisDeleteData               = "Redis failed to delete data"
	ErrDevRedisGetNoData                = "Redis has no data for key %s"
	ErrDevRabbitMQPublishMessage        = "RabbitMQ failed to publish message to queue %s"
	ErrDevMinioFailedToCreateObject     = "Minio failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObjectURL = "Minio failed to presign object URL in bucket %s"
)

const ResponseUnknown = "unknown"
