// Package repo – click ledger functions.
//
// The ledger is append-only: CreateClick is the only write and nothing ever
// updates or deletes a row. The two COUNT queries are the rotation's implicit
// cursor. They are deliberately plain reads, not part of any transaction with
// the insert: concurrent requests may observe the same count and double-draw
// a seller, which the design accepts in exchange for lock-free reads.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/lucasr0ck/leadflow2-sub000/internal/domain"
)

// CreateClick appends one ledger row recording that campaignID routed a lead
// to sellerID.
func CreateClick(ctx context.Context, db *gorm.DB, campaignID, sellerID string) (*domain.Click, error) {
	c := &domain.Click{
		CampaignID: campaignID,
		SellerID:   sellerID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// CountClicks returns the number of ledger rows for a campaign. This is the
// campaign's rotation cursor: monotonically non-decreasing, never reset.
func CountClicks(ctx context.Context, db *gorm.DB, campaignID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Click{}).
		Where("campaign_id = ?", campaignID).
		Count(&total).Error
	return total, err
}

// CountSellerClicks returns the number of ledger rows for a campaign scoped
// to one seller: the seller's contact-rotation cursor within that campaign.
func CountSellerClicks(ctx context.Context, db *gorm.DB, campaignID, sellerID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Click{}).
		Where("campaign_id = ? AND seller_id = ?", campaignID, sellerID).
		Count(&total).Error
	return total, err
}
