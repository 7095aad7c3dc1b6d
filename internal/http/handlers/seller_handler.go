// Seller and contact HTTP handlers.
//
//   - POST   /teams/{id}/sellers      (create seller in team)
//   - GET    /teams/{id}/sellers      (list team sellers, rotation order)
//   - PATCH  /sellers/{id}            (update name / weight)
//   - DELETE /sellers/{id}            (soft delete)
//   - POST   /sellers/{id}/contacts   (add WhatsApp number)
//   - DELETE /contacts/{id}           (remove number)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucasr0ck/leadflow2-sub000/internal/services"
)

// CreateSellerRequest is the JSON payload for creating a seller.
type CreateSellerRequest struct {
	Name string `json:"name"   binding:"required,min=1,max=255"`
	// Weight defaults to 1; 0 creates the seller paused.
	Weight *int `json:"weight" binding:"omitempty,min=0,max=1000"`
}

// UpdateSellerRequest is the JSON payload for a partial seller update.
type UpdateSellerRequest struct {
	Name   *string `json:"name,omitempty"   binding:"omitempty,min=1,max=255"`
	Weight *int    `json:"weight,omitempty" binding:"omitempty,min=0,max=1000"`
}

// CreateContactRequest is the JSON payload for adding a contact to a seller.
type CreateContactRequest struct {
	Phone       string `json:"phone"       binding:"required,min=3,max=64"`
	Description string `json:"description" binding:"max=255"`
}

// CreateSeller handles POST /teams/:id/sellers.
func (h *Handlers) CreateSeller(c *gin.Context) {
	var req CreateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return
	}
	weight := 1
	if req.Weight != nil {
		weight = *req.Weight
	}

	seller, err := h.sellerSvc.Create(c.Request.Context(), c.Param("id"), req.Name, weight)
	switch {
	case errors.Is(err, services.ErrTeamNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "team not found")
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, "could not create seller")
	default:
		ok(c, http.StatusCreated, seller)
	}
}

// ListSellers handles GET /teams/:id/sellers. Sellers come back in rotation
// order with their contacts, so the response doubles as a wheel preview.
func (h *Handlers) ListSellers(c *gin.Context) {
	sellers, err := h.sellerSvc.ListForTeam(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, services.ErrTeamNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "team not found")
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "could not list sellers")
	default:
		ok(c, http.StatusOK, gin.H{"sellers": sellers})
	}
}

// UpdateSeller handles PATCH /sellers/:id.
func (h *Handlers) UpdateSeller(c *gin.Context) {
	var req UpdateSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return
	}

	seller, err := h.sellerSvc.Update(c.Request.Context(), c.Param("id"), services.SellerUpdate{
		Name:   req.Name,
		Weight: req.Weight,
	})
	switch {
	case errors.Is(err, services.ErrSellerNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "seller not found")
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not update seller")
	default:
		ok(c, http.StatusOK, seller)
	}
}

// DeleteSeller handles DELETE /sellers/:id.
func (h *Handlers) DeleteSeller(c *gin.Context) {
	err := h.sellerSvc.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, services.ErrSellerNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "seller not found")
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not delete seller")
	default:
		noContent(c)
	}
}

// CreateContact handles POST /sellers/:id/contacts.
func (h *Handlers) CreateContact(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return
	}

	contact, err := h.sellerSvc.AddContact(c.Request.Context(), c.Param("id"), req.Phone, req.Description)
	switch {
	case errors.Is(err, services.ErrSellerNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "seller not found")
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, "could not create contact")
	default:
		ok(c, http.StatusCreated, contact)
	}
}

// DeleteContact handles DELETE /contacts/:id.
func (h *Handlers) DeleteContact(c *gin.Context) {
	err := h.sellerSvc.RemoveContact(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, services.ErrContactNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "contact not found")
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not delete contact")
	default:
		noContent(c)
	}
}
