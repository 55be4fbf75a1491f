package constvars

import "net/http"

const (
	StatusOK                  = http.StatusOK
	StatusCreated             = http.StatusCreated
	StatusBadRequest          = http.StatusBadRequest
	StatusNotFound            = http.StatusNotFound
	StatusPreconditionFailed  = http.StatusPreconditionFailed
	StatusInternalServerError = http.StatusInternalServerError
	StatusGatewayTimeout      = http.StatusGatewayTimeout
)

const (
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-ID"
	MIMEApplicationJSON = "application/json"
	MIMEImageSVG        = "image/svg+xml"
)
