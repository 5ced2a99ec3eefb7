package response

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	httpErrors "healthgate/internal/platform/http"
	"healthgate/internal/version"
)

type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusError   Status = "ERROR"
)

// Envelope is the body of every response the service writes.
type Envelope struct {
	Status    Status     `json:"status"`
	Message   string     `json:"message,omitempty"`
	Data      any        `json:"data,omitempty"`
	Error     *ErrorBody `json:"error,omitempty"`
	Meta      Meta       `json:"meta"`
	Timestamp int64      `json:"timestamp"`
}

type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

type Meta struct {
	RequestID string `json:"requestId"`
	Version   string `json:"version"`
}

func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Success writes a SUCCESS envelope.
func Success(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	RespondJSON(w, status, Envelope{
		Status:    StatusSuccess,
		Message:   message,
		Data:      data,
		Meta:      newMeta(r),
		Timestamp: time.Now().UnixMilli(),
	})
}

// RespondError writes an ERROR envelope for err. Only the client message,
// code and details of err are rendered.
func RespondError(w http.ResponseWriter, r *http.Request, err *httpErrors.Error) {
	code := err.Code
	if code == "" {
		code = httpErrors.CodeInternalError
	}
	RespondJSON(w, err.StatusCode, Envelope{
		Status: StatusError,
		Error: &ErrorBody{
			Message: err.ClientMessage(),
			Code:    code,
			Details: err.Details,
		},
		Meta:      newMeta(r),
		Timestamp: time.Now().UnixMilli(),
	})
}

// InternalError writes the generic 500 envelope.
func InternalError(w http.ResponseWriter, r *http.Request) {
	RespondError(w, r, httpErrors.NewInternalServerError("internal server error", nil))
}

func newMeta(r *http.Request) Meta {
	requestID := ""
	if r != nil {
		requestID = middleware.GetReqID(r.Context())
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return Meta{RequestID: requestID, Version: version.Get()}
}
