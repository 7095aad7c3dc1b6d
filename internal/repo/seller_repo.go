// Package repo – Seller and Contact repository functions.
//
// ListTeamSellers is the read the rotation depends on: its ORDER BY clauses
// pin the wheel layout. Sellers come back in creation order (id as tie-break)
// with contacts preloaded in their own creation order, so every process that
// reads the same snapshot builds the same wheel.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lucasr0ck/leadflow2-sub000/internal/domain"
)

// CreateSeller inserts a new Seller row. Weight below zero is floored to
// zero; zero is a valid "paused" state that keeps the seller out of the wheel.
func CreateSeller(ctx context.Context, db *gorm.DB, teamID, name string, weight int) (*domain.Seller, error) {
	if weight < 0 {
		weight = 0
	}
	s := &domain.Seller{
		ID:        uuid.NewString(),
		TeamID:    teamID,
		Name:      name,
		Weight:    weight,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// GetSeller fetches a seller by id with its contacts preloaded, or ErrNotFound.
func GetSeller(ctx context.Context, db *gorm.DB, id string) (*domain.Seller, error) {
	var s domain.Seller
	err := db.WithContext(ctx).
		Preload("Contacts", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("contacts.created_at asc, contacts.id asc")
		}).
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListTeamSellers returns every seller of a team with contacts preloaded,
// in the stable rotation order: created_at ascending, id ascending as the
// tie-break. Contacts are likewise ordered by creation so the contact
// round-robin is reproducible.
func ListTeamSellers(ctx context.Context, db *gorm.DB, teamID string) ([]domain.Seller, error) {
	var out []domain.Seller
	err := db.WithContext(ctx).
		Preload("Contacts", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("contacts.created_at asc, contacts.id asc")
		}).
		Where("team_id = ?", teamID).
		Order("created_at asc, id asc").
		Find(&out).Error
	return out, err
}

// UpdateSeller applies the given column updates to a seller. Returns
// ErrNotFound when no row matched.
func UpdateSeller(ctx context.Context, db *gorm.DB, id string, updates map[string]any) error {
	res := db.WithContext(ctx).
		Model(&domain.Seller{}).
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

// DeleteSeller soft-deletes a seller. Its contacts become unreachable through
// the rotation immediately because the wheel is rebuilt per request.
func DeleteSeller(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Delete(&domain.Seller{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CreateContact inserts a new Contact row for a seller.
func CreateContact(ctx context.Context, db *gorm.DB, sellerID, phone, description string) (*domain.Contact, error) {
	c := &domain.Contact{
		ID:          uuid.NewString(),
		SellerID:    sellerID,
		Phone:       phone,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteContact soft-deletes a contact. Returns ErrNotFound when no row
// matched.
func DeleteContact(ctx context.Context, db *gorm.DB, id string) error {
	res := db.WithContext(ctx).Delete(&domain.Contact{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
