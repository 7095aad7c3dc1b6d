// Package repo – Team repository functions.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lucasr0ck/leadflow2-sub000/internal/domain"
)

// CreateTeam inserts a new Team row with a UUID primary key.
func CreateTeam(ctx context.Context, db *gorm.DB, name string) (*domain.Team, error) {
	t := &domain.Team{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

// GetTeam fetches a team by id, or ErrNotFound.
func GetTeam(ctx context.Context, db *gorm.DB, id string) (*domain.Team, error) {
	var t domain.Team
	if err := db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// CountTeams returns the total number of teams.
func CountTeams(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Team{}).Count(&total).Error
	return total, err
}

// ListTeamsPage returns a page of teams ordered by creation time descending.
func ListTeamsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Team, error) {
	var out []domain.Team
	err := db.WithContext(ctx).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}
