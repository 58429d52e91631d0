package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// Тексты клиентских ошибок - это готовые сообщения для формы,
// поэтому они с большой буквы и с точкой.
var (
	ErrMissingComment     = errors.New("Please provide your feedback in the comment section.")
	ErrMissingRating      = errors.New("Please select a rating.")
	ErrInvalidJSONPayload = errors.New("Invalid JSON in request body.")
	ErrMethodNotAllowed   = errors.New("Method Not Allowed")

	ErrStorageFailed = errors.New("Could not save your feedback. Please try again later.")
	ErrInternal      = errors.New("Internal server error.")

	ErrAlreadyExists    = errors.New("record already exists")
	ErrStoreUnavailable = errors.New("feedback store is temporarily unavailable")
	ErrStoreRejected    = errors.New("feedback store rejected the record")
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   err.Error(),
	}
}

func SendErrorTo(w http.ResponseWriter, err error, statusCode int, logger *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if errEncode := json.NewEncoder(w).Encode(NewErrorResponse(err)); errEncode != nil {
		logger.Error(errEncode)
	}
}
