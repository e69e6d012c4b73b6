package web

import (
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/gopherkit/http/response"
	"github.com/for-hk/linkup-auth/internal/pkg/message"
)

// TokenResponse is the body of a successful sign-up or sign-in.
type TokenResponse struct {
	AuthToken string `json:"auth_token"`
}

// MessageResponse is the body of a plain acknowledgment.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse groups error messages under a field key, e.g.
//
//	{"error":{"user_authentication":["invalid credentials"]}}
type ErrorResponse struct {
	Error map[string][]string `json:"error"`
}

// OKResponse wraps a data payload for read endpoints.
type OKResponse[T any] struct {
	Data T `json:"data"`
}

func RespondToken(w http.ResponseWriter, token string) {
	response.JSON(w, http.StatusOK, &TokenResponse{AuthToken: token})
}

func RespondMessage(w http.ResponseWriter, status int, msg string) {
	response.JSON(w, status, &MessageResponse{Message: msg})
}

func RespondData[T any](w http.ResponseWriter, status int, data T) {
	response.JSON(w, status, &OKResponse[T]{Data: data})
}

// Fail writes a JSON-encoded error response with the messages grouped under key.
// The reason is logged, never sent to the caller.
func Fail(w http.ResponseWriter, status int, reason error, key string, msgs ...string) {
	slog.Error("request failed", "reason", reason)
	payload := &ErrorResponse{
		Error: map[string][]string{key: msgs},
	}
	response.JSON(w, status, payload)
}

// RespondInvalidCredentials writes the single externally visible authentication
// failure. The body is identical for every cause.
func RespondInvalidCredentials(w http.ResponseWriter, reason error) {
	Fail(w, http.StatusUnauthorized, reason, "user_authentication", message.InvalidCredentials)
}

func RespondBadRequest(w http.ResponseWriter, reason error, msg string) {
	Fail(w, http.StatusBadRequest, reason, "request", msg)
}

func RespondUnprocessableEntity(w http.ResponseWriter, reason error, msg string) {
	Fail(w, http.StatusUnprocessableEntity, reason, "request", msg)
}

func RespondRequestEntityTooLarge(w http.ResponseWriter, reason error, msg string) {
	Fail(w, http.StatusRequestEntityTooLarge, reason, "request", msg)
}

func RespondNotAcceptable(w http.ResponseWriter, reason error, msg string) {
	Fail(w, http.StatusNotAcceptable, reason, "request", msg)
}

func RespondInternalServerError(w http.ResponseWriter, reason error) {
	Fail(w, http.StatusInternalServerError, reason, "request", "something went wrong")
}
