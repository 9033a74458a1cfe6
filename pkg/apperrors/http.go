package apperrors

import (
	"encoding/json"
	"net/http"
)

// wireError matches the API's error envelope: {"error": {...}} with a
// structured body, or {"error": "message"} from older endpoints.
type wireError struct {
	Error json.RawMessage `json:"error"`
}

type wireErrorBody struct {
	Code    ErrorCode   `json:"code"`
	Domain  string      `json:"domain"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

// FromResponse classifies a non-2xx API response into the error taxonomy.
// The server's code and message are preserved when the body parses; the
// HTTP status alone decides the class otherwise.
func FromResponse(status int, body []byte) *AppError {
	appErr := &AppError{
		Code:     codeForStatus(status),
		Domain:   "api",
		Message:  http.StatusText(status),
		HTTPCode: status,
	}

	var envelope wireError
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		return appErr
	}

	var structured wireErrorBody
	if err := json.Unmarshal(envelope.Error, &structured); err == nil && structured.Message != "" {
		if structured.Code != "" {
			appErr.Code = structured.Code
		}
		if structured.Domain != "" {
			appErr.Domain = structured.Domain
		}
		appErr.Message = structured.Message
		appErr.Details = structured.Details
		return appErr
	}

	var plain string
	if err := json.Unmarshal(envelope.Error, &plain); err == nil && plain != "" {
		appErr.Message = plain
	}
	return appErr
}

func codeForStatus(status int) ErrorCode {
	switch status {
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusConflict:
		return CodeConflict
	case http.StatusBadRequest:
		return CodeValidationFailed
	case http.StatusUnprocessableEntity:
		return CodeUploadFailed
	default:
		return CodeInternalError
	}
}
