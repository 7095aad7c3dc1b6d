// Package domain defines the persistence models for teams, campaigns,
// sellers, contacts, and the click ledger. These types are mapped with GORM
// and form the core data layer of the lead-distribution application.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Team groups sellers under a single rotation. Campaigns point at a team and
// distribute their clicks across the team's sellers.
type Team struct {
	ID        string         `json:"id"         gorm:"type:char(36);primaryKey"`
	Name      string         `json:"name"       gorm:"type:varchar(255);not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"          gorm:"index"`
}

// TableName returns the database table name for Team.
func (Team) TableName() string { return "teams" }

// Campaign is a published redirect link. Its slug is the public routing key;
// an inbound click on /r/:slug is distributed to one seller of the campaign's
// team and forwarded to WhatsApp with the greeting prefilled.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Slug: unique public routing key.
//   - TeamID: the team whose sellers receive this campaign's leads.
//   - IsActive: redirects are only served while true.
//   - Greeting: free-text message template, URL-encoded into the wa.me link.
type Campaign struct {
	ID        string         `json:"id"        gorm:"type:char(36);primaryKey"`
	Slug      string         `json:"slug"      gorm:"type:varchar(128);not null;uniqueIndex:ux_campaign_slug"`
	TeamID    string         `json:"team_id"   gorm:"type:char(36);not null;index"`
	IsActive  bool           `json:"is_active" gorm:"not null;default:true"`
	Greeting  string         `json:"greeting"  gorm:"type:text;not null;default:''"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"         gorm:"index"`

	Team Team `json:"-" gorm:"foreignKey:TeamID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Campaign.
func (Campaign) TableName() string { return "campaigns" }

// Seller is a lead recipient. Weight controls how many slots the seller
// occupies in the rotation wheel; 0 pauses the seller without deleting it.
// CreatedAt (with ID as tie-break) fixes the seller's position in the wheel,
// so the rotation layout is reproducible across requests and processes.
type Seller struct {
	ID        string         `json:"id"      gorm:"type:char(36);primaryKey"`
	TeamID    string         `json:"team_id" gorm:"type:char(36);not null;index:idx_team_sellers,priority:1"`
	Name      string         `json:"name"    gorm:"type:varchar(255);not null"`
	Weight    int            `json:"weight"  gorm:"not null;default:1;check:weight >= 0"`
	CreatedAt time.Time      `json:"created_at" gorm:"index:idx_team_sellers,priority:2"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"       gorm:"index"`

	Team Team `json:"-" gorm:"foreignKey:TeamID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	// Contacts are the seller's WhatsApp numbers, rotated round-robin in
	// creation order. Loaded with Preload where the rotation needs them.
	Contacts []Contact `json:"contacts,omitempty" gorm:"foreignKey:SellerID;references:ID"`
}

// TableName returns the database table name for Seller.
func (Seller) TableName() string { return "sellers" }

// Contact is one WhatsApp number belonging to a seller. Phone is stored
// free-form and normalized to digits only when the outbound link is built.
type Contact struct {
	ID          string         `json:"id"          gorm:"type:char(36);primaryKey"`
	SellerID    string         `json:"seller_id"   gorm:"type:char(36);not null;index:idx_seller_contacts,priority:1"`
	Phone       string         `json:"phone"       gorm:"type:varchar(64);not null"`
	Description string         `json:"description" gorm:"type:varchar(255);not null;default:''"`
	CreatedAt   time.Time      `json:"created_at"  gorm:"index:idx_seller_contacts,priority:2"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-"           gorm:"index"`

	Seller Seller `json:"-" gorm:"foreignKey:SellerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Contact.
func (Contact) TableName() string { return "contacts" }

// Click is one row of the append-only ledger: campaign X routed a lead to
// seller Y at time T. Rows are never updated or deleted; the per-campaign and
// per-seller row counts are the only rotation state the system keeps, so the
// rotation survives restarts and concurrent writers without a stored cursor.
//
// The ID is a plain autoincrement because ordering within the ledger is
// irrelevant to the rotation; only the counts matter.
type Click struct {
	ID         int64     `json:"id"          gorm:"primaryKey;autoIncrement"`
	CampaignID string    `json:"campaign_id" gorm:"type:char(36);not null;index:idx_campaign_clicks;index:idx_campaign_seller_clicks,priority:1"`
	SellerID   string    `json:"seller_id"   gorm:"type:char(36);not null;index:idx_campaign_seller_clicks,priority:2"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the database table name for Click.
func (Click) TableName() string { return "clicks" }
