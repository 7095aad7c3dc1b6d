// Package services defines the business logic for lead redirection and the
// admin surface over teams, campaigns, sellers, and contacts. This file
// centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the handler
// layer. Store-specific error shapes never cross this boundary.
package services

import "errors"

var (
	// ErrSlugRequired is returned when a redirect is requested without a
	// slug. No store access is attempted in that case.
	ErrSlugRequired = errors.New("slug is required")

	// ErrCampaignNotFound indicates that no campaign exists for the given
	// slug or id.
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrCampaignInactive indicates the campaign exists but is paused.
	// Distinct from not-found so operators can tell "never existed" from
	// "paused" in logs; callers surface the same user-visible fallback.
	ErrCampaignInactive = errors.New("campaign is inactive")

	// ErrNoSellersConfigured indicates the campaign's team has no sellers
	// at all.
	ErrNoSellersConfigured = errors.New("no sellers configured for team")

	// ErrNoEligibleSellers indicates every seller was filtered out of the
	// rotation (weight 0 or no contacts).
	ErrNoEligibleSellers = errors.New("no eligible sellers in rotation")

	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")

	// ErrSellerNotFound indicates that the requested seller does not exist.
	ErrSellerNotFound = errors.New("seller not found")

	// ErrContactNotFound indicates that the requested contact does not exist.
	ErrContactNotFound = errors.New("contact not found")

	// ErrSlugTaken is returned when creating a campaign with a slug that is
	// already in use.
	ErrSlugTaken = errors.New("slug already in use")

	// ErrInvalidSlug is returned when a campaign slug contains characters
	// outside [a-z0-9-] after normalization.
	ErrInvalidSlug = errors.New("slug must contain only lowercase letters, digits, and hyphens")
)
