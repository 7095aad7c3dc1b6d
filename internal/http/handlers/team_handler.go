// Team HTTP handlers.
//
//   - POST /teams   (create)
//   - GET  /teams   (list, paginated)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucasr0ck/leadflow2-sub000/internal/domain"
)

// CreateTeamRequest is the JSON payload for creating a team.
type CreateTeamRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// ListTeamsResponse wraps a page of teams and pagination information.
type ListTeamsResponse struct {
	Teams      []domain.Team `json:"teams"`
	Pagination Pagination    `json:"pagination"`
}

// CreateTeam handles POST /teams.
func (h *Handlers) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return
	}

	team, err := h.teamSvc.Create(c.Request.Context(), req.Name)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, "could not create team")
		return
	}
	ok(c, http.StatusCreated, team)
}

// ListTeams handles GET /teams with page/page_size query params.
func (h *Handlers) ListTeams(c *gin.Context) {
	page, pageSize := clampPagination(c)

	items, total, err := h.teamSvc.ListPage(c.Request.Context(), page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "could not list teams")
		return
	}
	ok(c, http.StatusOK, ListTeamsResponse{
		Teams:      items,
		Pagination: paginationMeta(page, pageSize, total),
	})
}
