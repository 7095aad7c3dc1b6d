// Package services – CampaignService
//
// This file implements CampaignService, which manages the lifecycle of
// campaigns: slug normalization and validation, creation, listing with
// pagination, partial updates (greeting, active flag), and soft deletion.
// Redirect traffic never goes through this service; it exists for the
// operator's data-entry surface.
package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/lucasr0ck/leadflow2-sub000/internal/domain"
	"github.com/lucasr0ck/leadflow2-sub000/internal/repo"
)

// slugRE is the shape a campaign slug must have after normalization.
var slugRE = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// CampaignService provides campaign CRUD for the admin API.
type CampaignService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// NewCampaignService constructs a CampaignService.
func NewCampaignService(db *gorm.DB) *CampaignService {
	return &CampaignService{DB: db}
}

// CampaignUpdate carries the optional fields of a partial campaign update.
// Nil fields are left untouched.
type CampaignUpdate struct {
	Greeting *string
	IsActive *bool
}

// Create validates the team, normalizes and validates the slug, and inserts
// the campaign. A duplicate slug is reported as ErrSlugTaken.
func (s *CampaignService) Create(ctx context.Context, teamID, slug, greeting string) (*domain.Campaign, error) {
	slug = NormalizeSlug(slug)
	if !slugRE.MatchString(slug) {
		return nil, ErrInvalidSlug
	}

	if _, err := repo.GetTeam(ctx, s.DB, teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	if _, err := repo.GetCampaignBySlug(ctx, s.DB, slug); err == nil {
		return nil, ErrSlugTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return repo.CreateCampaign(ctx, s.DB, teamID, slug, strings.TrimSpace(greeting))
}

// Get fetches one campaign by id.
func (s *CampaignService) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := repo.GetCampaign(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	return c, nil
}

// ListPage returns a page of campaigns and the total count. It applies
// defaults for invalid page/pageSize.
func (s *CampaignService) ListPage(ctx context.Context, page, pageSize int) ([]domain.Campaign, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := repo.CountCampaigns(ctx, s.DB)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Campaign{}, 0, nil
	}

	items, err := repo.ListCampaignsPage(ctx, s.DB, offset, pageSize)
	return items, total, err
}

// Update applies a partial update. Pausing a campaign (IsActive=false) takes
// effect on the very next redirect request since nothing is cached.
func (s *CampaignService) Update(ctx context.Context, id string, upd CampaignUpdate) (*domain.Campaign, error) {
	updates := map[string]any{}
	if upd.Greeting != nil {
		updates["greeting"] = strings.TrimSpace(*upd.Greeting)
	}
	if upd.IsActive != nil {
		updates["is_active"] = *upd.IsActive
	}
	if len(updates) > 0 {
		if err := repo.UpdateCampaign(ctx, s.DB, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCampaignNotFound
			}
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

// Delete soft-deletes a campaign.
func (s *CampaignService) Delete(ctx context.Context, id string) error {
	if err := repo.DeleteCampaign(ctx, s.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCampaignNotFound
		}
		return err
	}
	return nil
}

// NormalizeSlug lowercases, trims, and collapses whitespace runs to single
// hyphens so that "Summer Sale " becomes "summer-sale".
func NormalizeSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return whitespaceRE.ReplaceAllString(s, "-")
}

// whitespaceRE matches consecutive whitespace.
var whitespaceRE = regexp.MustCompile(`\s+`)
