// Package types defines the request and response types for the moderation
// HTTP API.
//
// This package contains the data transfer objects (DTOs) used for HTTP
// request/response handling on the /v1/moderation endpoints.
//
// Request types:
//   - FlagRequest: body for POST /v1/moderation/flag
//   - BatchFlagRequest: body for POST /v1/moderation/flag/batch
//
// Response types:
//   - BatchFlagResponse: batch results in input order
//   - CategoriesResponse: catalog listing for GET /v1/moderation/categories
//
// Error types:
//   - ErrorResponse: fixed-code error envelope
//   - ErrorDetail: code plus human-readable message
//
// All types use standard encoding/json with camelCase field names. Error
// responses always carry one of the fixed Code* constants so clients can
// branch on the code rather than the message text.
package types
