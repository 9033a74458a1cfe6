package apperrors

// ErrorCode identifies a class of failure.
type ErrorCode string

const (
	// System / unknown
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeNetworkError  ErrorCode = "NETWORK_ERROR"
	CodeUnknownError  ErrorCode = "UNKNOWN_ERROR"

	// Business logic
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Media
	CodeUploadFailed ErrorCode = "UPLOAD_FAILED"

	// Connections
	CodeAlreadyRequested ErrorCode = "ALREADY_REQUESTED"

	// Auth
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
)
