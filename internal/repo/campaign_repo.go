// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Campaign
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a campaign is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lucasr0ck/leadflow2-sub000/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateCampaign inserts a new Campaign row with a UUID primary key. The slug
// must be unique; a violation surfaces as the driver's constraint error.
func CreateCampaign(ctx context.Context, db *gorm.DB, teamID, slug, greeting string) (*domain.Campaign, error) {
	c := &domain.Campaign{
		ID:        uuid.NewString(),
		Slug:      slug,
		TeamID:    teamID,
		IsActive:  true,
		Greeting:  greeting,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// GetCampaignBySlug fetches a campaign by its public slug, or ErrNotFound.
// The active flag is intentionally NOT part of the query: callers distinguish
// "missing" from "paused" so the two can be surfaced differently.
func GetCampaignBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Campaign, error) {
	var c domain.Campaign
	err := db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCampaign fetches a campaign by id, or ErrNotFound.
func GetCampaign(ctx context.Context, db *gorm.DB, id string) (*domain.Campaign, error) {
	var c domain.Campaign
	if err := db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// CountCampaigns returns the total number of campaigns.
func CountCampaigns(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Campaign{}).Count(&total).Error
	return total, err
}

// ListCampaignsPage returns a page of campaigns ordered by creation time
// descending. Use CountCampaigns to obtain the total for pagination metadata.
func ListCampaignsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Campaign, error) {
	var out []domain.Campaign
	err := db.WithContext(ctx).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// UpdateCampaign applies the given column updates to a campaign. Returns
// ErrNotFound when no row matched.
func UpdateCampaign(ctx context.Context, db *gorm.DB, id string, updates map[string]any) error {
	res := db.WithContext(ctx).
		Model(&domain.Campaign{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteCampaign soft-deletes a campaign. Returns ErrNotFound when no row
// matched. The click ledger is untouched: ledger rows are append-only and
// keep their history even after the campaign is gone.
func DeleteCampaign(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Delete(&domain.Campaign{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
