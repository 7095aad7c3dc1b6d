// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// Codes are lowercase snake_case and stable: clients branch on them for
// programmatic error handling while the message stays human-readable. Generic
// codes mirror HTTP status semantics; domain-specific codes cover failures a
// status alone cannot convey (a paused campaign is 403, but "campaign_inactive"
// tells the operator's dashboard exactly what happened).
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeForbidden        = "forbidden"
	ErrCodeNotFound         = "not_found"
	ErrCodeConflict         = "conflict"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
	ErrCodeMethodNotAllowed = "method_not_allowed"

	// Domain-specific:
	ErrCodeCampaignInactive = "campaign_inactive"
	ErrCodeNoSellers        = "no_sellers"
	ErrCodeCreateFailed     = "create_failed"
	ErrCodeListFailed       = "list_failed"
)
