package constvars

const (
	LoggingRequestIDKey         = "request_id"
	LoggingMethodKey            = "method"
	LoggingEndpointKey          = "endpoint"
	LoggingRemoteAddrKey        = "remote_addr"
	LoggingUserAgentKey         = "user_agent"
	LoggingQueryKey             = "query"
	LoggingStatusCodeKey        = "status_code"
	LoggingDurationKey          = "duration"
	LoggingSuccessKey           = "success"
	LoggingPatientIDKey         = "patient_id"
	LoggingQuestionnaireTypeKey = "questionnaire_type"
	LoggingAgeVariantKey        = "age_variant"
	LoggingAssignedCountKey     = "assigned_count"
	LoggingChartKindKey         = "chart_kind"
	LoggingRedisKey             = "redis_key"
	LoggingQueueNameKey         = "queue_name"
	LoggingBucketNameKey        = "bucket_name"
	LoggingObjectNameKey        = "object_name"
)
