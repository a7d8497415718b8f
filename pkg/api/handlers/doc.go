// Package handlers implements the HTTP handlers for the moderation API.
//
// Handlers:
//   - FlagHandler: POST /v1/moderation/flag, single-item analysis
//   - BatchFlagHandler: POST /v1/moderation/flag/batch, up to 100 items
//     analyzed concurrently with results in input order
//   - CategoriesHandler: GET /v1/moderation/categories, catalog listing
//
// Every handler validates its input against the fixed error-code contract in
// pkg/api/types before invoking the engine; the engine itself only ever sees
// well-shaped content items.
package handlers
