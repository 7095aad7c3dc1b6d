// Package services – TeamService and SellerService
//
// Thin admin operations over teams, sellers, and contacts. Weight and contact
// edits feed straight into the next rotation read; there is no cache to
// invalidate.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/lucasr0ck/leadflow2-sub000/internal/domain"
	"github.com/lucasr0ck/leadflow2-sub000/internal/repo"
)

// TeamService provides team CRUD for the admin API.
type TeamService struct {
	DB *gorm.DB
}

// Create inserts a team. Blank names fall back to "New team".
func (s *TeamService) Create(ctx context.Context, name string) (*domain.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "New team"
	}
	return repo.CreateTeam(ctx, s.DB, name)
}

// ListPage returns a page of teams and the total count.
func (s *TeamService) ListPage(ctx context.Context, page, pageSize int) ([]domain.Team, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := repo.CountTeams(ctx, s.DB)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Team{}, 0, nil
	}

	items, err := repo.ListTeamsPage(ctx, s.DB, offset, pageSize)
	return items, total, err
}

// SellerService provides seller and contact CRUD for the admin API.
type SellerService struct {
	DB *gorm.DB
}

// SellerUpdate carries the optional fields of a partial seller update.
type SellerUpdate struct {
	Name   *string
	Weight *int
}

// Create inserts a seller under a team. Weights below zero are floored to
// zero by the repo layer; zero keeps the seller out of the rotation.
func (s *SellerService) Create(ctx context.Context, teamID, name string, weight int) (*domain.Seller, error) {
	if _, err := repo.GetTeam(ctx, s.DB, teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "New seller"
	}
	return repo.CreateSeller(ctx, s.DB, teamID, name, weight)
}

// ListForTeam returns the team's sellers with contacts, in rotation order.
func (s *SellerService) ListForTeam(ctx context.Context, teamID string) ([]domain.Seller, error) {
	if _, err := repo.GetTeam(ctx, s.DB, teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return repo.ListTeamSellers(ctx, s.DB, teamID)
}

// Update applies a partial update to a seller and returns the fresh row.
func (s *SellerService) Update(ctx context.Context, id string, upd SellerUpdate) (*domain.Seller, error) {
	updates := map[string]any{}
	if upd.Name != nil {
		if name := strings.TrimSpace(*upd.Name); name != "" {
			updates["name"] = name
		}
	}
	if upd.Weight != nil {
		w := *upd.Weight
		if w < 0 {
			w = 0
		}
		updates["weight"] = w
	}
	if len(updates) > 0 {
		if err := repo.UpdateSeller(ctx, s.DB, id, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrSellerNotFound
			}
			return nil, err
		}
	}
	seller, err := repo.GetSeller(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSellerNotFound
		}
		return nil, err
	}
	return seller, nil
}

// Delete soft-deletes a seller, removing it from the next wheel build.
func (s *SellerService) Delete(ctx context.Context, id string) error {
	if err := repo.DeleteSeller(ctx, s.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSellerNotFound
		}
		return err
	}
	return nil
}

// AddContact attaches a phone number to a seller.
func (s *SellerService) AddContact(ctx context.Context, sellerID, phone, description string) (*domain.Contact, error) {
	if _, err := repo.GetSeller(ctx, s.DB, sellerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSellerNotFound
		}
		return nil, err
	}
	phone = strings.TrimSpace(phone)
	return repo.CreateContact(ctx, s.DB, sellerID, phone, strings.TrimSpace(description))
}

// RemoveContact soft-deletes a contact. A seller left with zero contacts
// drops out of the wheel on the next build.
func (s *SellerService) RemoveContact(ctx context.Context, id string) error {
	if err := repo.DeleteContact(ctx, s.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContactNotFound
		}
		return err
	}
	return nil
}
