package apperrors

import "net/http"

// Error codes for user-correctable failures. Anything outside this set is
// treated as an internal failure.
const (
	CodeListNotFound       = "LIST_NOT_FOUND"
	CodeTaskNotFound       = "TASK_NOT_FOUND"
	CodeRecipientNotFound  = "RECIPIENT_NOT_FOUND"
	CodeForbidden          = "FORBIDDEN"
	CodeDuplicateTitle     = "DUPLICATE_TITLE"
	CodeNoChange           = "NO_CHANGE"
	CodeAlreadyShared      = "ALREADY_SHARED"
	CodeShareNotFound      = "SHARE_NOT_FOUND"
	CodeEmailRegistered    = "EMAIL_REGISTERED"
	CodeUsernameTaken      = "USERNAME_TAKEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInternal           = "INTERNAL"
)

// HTTPStatus maps an error code to its HTTP status code.
func HTTPStatus(code string) int {
	switch code {
	case CodeListNotFound, CodeTaskNotFound, CodeRecipientNotFound, CodeShareNotFound:
		return http.StatusNotFound
	case CodeForbidden:
		return http.StatusForbidden
	case CodeDuplicateTitle, CodeNoChange, CodeAlreadyShared, CodeEmailRegistered, CodeUsernameTaken:
		return http.StatusBadRequest
	case CodeInvalidCredentials:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
