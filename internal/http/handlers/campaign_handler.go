// Campaign HTTP handlers.
//
// This file exposes REST endpoints for campaign resources:
//
//   - POST   /campaigns           (create)
//   - GET    /campaigns           (list, paginated)
//   - GET    /campaigns/{id}      (fetch)
//   - PATCH  /campaigns/{id}      (update greeting / active flag)
//   - DELETE /campaigns/{id}      (soft delete)
//
// Handlers are transport-thin: they validate input, call application
// services, and translate results into HTTP responses.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucasr0ck/leadflow2-sub000/internal/domain"
	"github.com/lucasr0ck/leadflow2-sub000/internal/services"
	"github.com/lucasr0ck/leadflow2-sub000/internal/utils"
)

//
// Service contracts (context-aware)
//

// CampaignService defines campaign lifecycle operations consumed by HTTP
// handlers.
type CampaignService interface {
	Create(ctx context.Context, teamID, slug, greeting string) (*domain.Campaign, error)
	Get(ctx context.Context, id string) (*domain.Campaign, error)
	ListPage(ctx context.Context, page, pageSize int) ([]domain.Campaign, int64, error)
	Update(ctx context.Context, id string, upd services.CampaignUpdate) (*domain.Campaign, error)
	Delete(ctx context.Context, id string) error
}

// TeamService defines team operations consumed by HTTP handlers.
type TeamService interface {
	Create(ctx context.Context, name string) (*domain.Team, error)
	ListPage(ctx context.Context, page, pageSize int) ([]domain.Team, int64, error)
}

// SellerService defines seller and contact operations consumed by HTTP
// handlers.
type SellerService interface {
	Create(ctx context.Context, teamID, name string, weight int) (*domain.Seller, error)
	ListForTeam(ctx context.Context, teamID string) ([]domain.Seller, error)
	Update(ctx context.Context, id string, upd services.SellerUpdate) (*domain.Seller, error)
	Delete(ctx context.Context, id string) error
	AddContact(ctx context.Context, sellerID, phone, description string) (*domain.Contact, error)
	RemoveContact(ctx context.Context, id string) error
}

//
// Handler wiring
//

// Handlers groups the admin HTTP endpoints for teams, campaigns, and sellers.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	teamSvc     TeamService
	campaignSvc CampaignService
	sellerSvc   SellerService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(teamSvc TeamService, campaignSvc CampaignService, sellerSvc SellerService) *Handlers {
	return &Handlers{teamSvc: teamSvc, campaignSvc: campaignSvc, sellerSvc: sellerSvc}
}

//
// DTOs
//

// CreateCampaignRequest is the JSON payload for creating a campaign.
type CreateCampaignRequest struct {
	TeamID   string `json:"team_id"  binding:"required,uuid"`
	Slug     string `json:"slug"     binding:"required,min=1,max=128"`
	Greeting string `json:"greeting" binding:"max=4096"`
}

// UpdateCampaignRequest is the JSON payload for a partial campaign update.
// Absent fields are left untouched.
type UpdateCampaignRequest struct {
	Greeting *string `json:"greeting,omitempty" binding:"omitempty,max=4096"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// ListCampaignsResponse wraps a page of campaigns and pagination information.
type ListCampaignsResponse struct {
	Campaigns  []domain.Campaign `json:"campaigns"`
	Pagination Pagination        `json:"pagination"`
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// paginationMeta assembles the Pagination block from totals.
func paginationMeta(page, pageSize int, total int64) Pagination {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
	}
}

//
// Endpoints
//

// CreateCampaign handles POST /campaigns.
func (h *Handlers) CreateCampaign(c *gin.Context) {
	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return
	}

	campaign, err := h.campaignSvc.Create(c.Request.Context(), req.TeamID, req.Slug, req.Greeting)
	switch {
	case errors.Is(err, services.ErrTeamNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "team not found")
	case errors.Is(err, services.ErrInvalidSlug):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, services.ErrSlugTaken):
		fail(c, http.StatusConflict, ErrCodeConflict, "slug already in use")
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, "could not create campaign")
	default:
		ok(c, http.StatusCreated, campaign)
	}
}

// ListCampaigns handles GET /campaigns with page/page_size query params.
func (h *Handlers) ListCampaigns(c *gin.Context) {
	page, pageSize := clampPagination(c)

	items, total, err := h.campaignSvc.ListPage(c.Request.Context(), page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "could not list campaigns")
		return
	}
	ok(c, http.StatusOK, ListCampaignsResponse{
		Campaigns:  items,
		Pagination: paginationMeta(page, pageSize, total),
	})
}

// GetCampaign handles GET /campaigns/:id.
func (h *Handlers) GetCampaign(c *gin.Context) {
	campaign, err := h.campaignSvc.Get(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, services.ErrCampaignNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "campaign not found")
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not load campaign")
	default:
		ok(c, http.StatusOK, campaign)
	}
}

// UpdateCampaign handles PATCH /campaigns/:id.
func (h *Handlers) UpdateCampaign(c *gin.Context) {
	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return
	}

	campaign, err := h.campaignSvc.Update(c.Request.Context(), c.Param("id"), services.CampaignUpdate{
		Greeting: req.Greeting,
		IsActive: req.IsActive,
	})
	switch {
	case errors.Is(err, services.ErrCampaignNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "campaign not found")
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not update campaign")
	default:
		ok(c, http.StatusOK, campaign)
	}
}

// DeleteCampaign handles DELETE /campaigns/:id.
func (h *Handlers) DeleteCampaign(c *gin.Context) {
	err := h.campaignSvc.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, services.ErrCampaignNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "campaign not found")
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not delete campaign")
	default:
		noContent(c)
	}
}
