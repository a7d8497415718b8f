package types

// Error codes returned by the moderation API. The set is fixed: clients
// dispatch on these strings, so existing codes must never be renamed.
const (
	// CodeMissingContent indicates the request body had no content object.
	CodeMissingContent = "MISSING_CONTENT"

	// CodeInvalidContentFormat indicates the body was not valid JSON or the
	// content object was missing id, userId, or type.
	CodeInvalidContentFormat = "INVALID_CONTENT_FORMAT"

	// CodeInvalidContentType indicates the content type was not one of
	// text, image, video, or link.
	CodeInvalidContentType = "INVALID_CONTENT_TYPE"

	// CodeMissingContentData indicates the content carried neither text
	// nor url.
	CodeMissingContentData = "MISSING_CONTENT_DATA"

	// CodeInvalidBatchFormat indicates the batch body was not valid JSON or
	// had no items array.
	CodeInvalidBatchFormat = "INVALID_BATCH_FORMAT"

	// CodeEmptyBatch indicates the items array was empty.
	CodeEmptyBatch = "EMPTY_BATCH"

	// CodeBatchSizeExceeded indicates the items array exceeded the batch
	// size limit.
	CodeBatchSizeExceeded = "BATCH_SIZE_EXCEEDED"

	// CodeInternalError indicates an unexpected server-side failure.
	CodeInternalError = "INTERNAL_ERROR"

	// CodeNotFound indicates the requested route does not exist.
	CodeNotFound = "NOT_FOUND"
)

// ErrorResponse is the error envelope returned for all failed requests.
type ErrorResponse struct {
	// Error contains the error details.
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains detailed error information.
type ErrorDetail struct {
	// Code is one of the fixed Code* constants.
	Code string `json:"code"`

	// Message is a human-readable error message. It never contains
	// internal details such as stack traces or file paths.
	Message string `json:"message"`
}

// NewErrorResponse creates an error envelope with the given code and message.
func NewErrorResponse(code, message string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// NewInternalError creates a generic internal error response. The message is
// deliberately fixed so internal failure details never reach clients.
func NewInternalError() *ErrorResponse {
	return NewErrorResponse(CodeInternalError, "An internal error occurred. Please try again later.")
}

// NewNotFoundError creates the error response for unknown routes.
func NewNotFoundError() *ErrorResponse {
	return NewErrorResponse(CodeNotFound, "The requested resource was not found.")
}
