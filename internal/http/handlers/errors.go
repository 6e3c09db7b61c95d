// Package handlers defines the HTTP-layer error codes used across all API
// endpoints.
//
// Codes are lowercase snake_case and stable: clients branch on them
// programmatically, so they supplement the human-readable message and must
// not change meaning between releases.
//
//   - Generic codes (bad_request, unauthorized, conflict, not_found) mirror
//     common HTTP status semantics.
//   - validation_failed marks input the caller must fix before retrying, as
//     opposed to a malformed request body.
//   - store_unavailable and provider_unavailable distinguish which upstream
//     collaborator failed on a 502.
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeUnauthorized     = "unauthorized"
	ErrCodeNotFound         = "not_found"
	ErrCodeConflict         = "conflict"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Upstream dependency failures (HTTP 502):
	ErrCodeStoreUnavailable    = "store_unavailable"
	ErrCodeProviderUnavailable = "provider_unavailable"
)
