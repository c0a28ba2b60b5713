package response

import (
	"encoding/json"
	"net/http"

	"hotelier/shared/constant"
	"hotelier/shared/failure"
	"hotelier/shared/logger"
)

type Data[T any] struct {
	Status string `json:"status"`
	Data   *T     `json:"data,omitempty"`
}

type Error struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type Message struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// WithMessage sends a success envelope carrying a text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Status: constant.ResponseStatusSuccess, Message: message})
}

// WithJSON sends a success envelope carrying a JSON payload
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, Data[any]{Status: constant.ResponseStatusSuccess, Data: &jsonPayload})
}

// WithPayload sends a payload as-is, for endpoints whose body shape is part
// of the API contract rather than the shared envelope
func WithPayload(writer http.ResponseWriter, code int, payload interface{}) {
	response(writer, code, payload)
}

// WithError sends an error envelope, deriving the HTTP status from the error
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	response(writer, code, Error{Status: constant.ResponseStatusError, Message: err.Error()})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	response(writer, http.StatusTooManyRequests, Error{Status: constant.ResponseStatusError, Message: constant.ResponseErrorRequestLimitExceeded})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	response(writer, http.StatusServiceUnavailable, Error{Status: constant.ResponseStatusError, Message: constant.ResponseErrorPrepareShutdown})
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	response(writer, http.StatusServiceUnavailable, Error{Status: constant.ResponseStatusError, Message: constant.ResponseErrorUnhealthy})
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
