package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "is_client_request_id"
)

const (
	MongoCollectionPatients       = "patients"
	MongoCollectionQuestionnaires = "questionnaires"
	MongoCollectionNotifications  = "notifications"
)

const (
	URLParamPatientID = "patient_id"
)

// ScoringResultVersion is stamped on every computed ScoringResult so cached
// and persisted results can be invalidated when the scoring tables change.
const ScoringResultVersion = "1.0.0"
