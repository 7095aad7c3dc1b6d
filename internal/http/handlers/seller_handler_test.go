package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/lucasr0ck/leadflow2-sub000/internal/domain"
	"github.com/lucasr0ck/leadflow2-sub000/internal/services"
)

func TestCreateSeller_DefaultWeight(t *testing.T) {
	r := newAdminRouter(&fakeTeamSvc{}, &fakeCampaignSvc{}, &fakeSellerSvc{})

	w := doJSON(t, r, http.MethodPost, "/teams/t-1/sellers", `{"name":"Ana"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var got domain.Seller
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Weight != 1 {
		t.Fatalf("omitted weight should default to 1, got %d", got.Weight)
	}
}

func TestCreateSeller_ZeroWeightAllowed(t *testing.T) {
	r := newAdminRouter(&fakeTeamSvc{}, &fakeCampaignSvc{}, &fakeSellerSvc{})

	w := doJSON(t, r, http.MethodPost, "/teams/t-1/sellers", `{"name":"Ana","weight":0}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var got domain.Seller
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Weight != 0 {
		t.Fatalf("explicit zero weight should stick, got %d", got.Weight)
	}
}

func TestCreateSeller_Errors(t *testing.T) {
	r := newAdminRouter(&fakeTeamSvc{}, &fakeCampaignSvc{}, &fakeSellerSvc{createErr: services.ErrTeamNotFound})
	if w := doJSON(t, r, http.MethodPost, "/teams/nope/sellers", `{"name":"Ana"}`); w.Code != http.StatusNotFound {
		t.Fatalf("unknown team: status = %d", w.Code)
	}

	r = newAdminRouter(&fakeTeamSvc{}, &fakeCampaignSvc{}, &fakeSellerSvc{})
	if w := doJSON(t, r, http.MethodPost, "/teams/t-1/sellers", `{"weight":2}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing name: status = %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/teams/t-1/sellers", `{"name":"Ana","weight":-1}`); w.Code != http.StatusBadRequest {
		t.Fatalf("negative weight: status = %d", w.Code)
	}
}

func TestListSellers(t *testing.T) {
	svc := &fakeSellerSvc{sellers: []domain.Seller{
		{ID: "s-1", Name: "Ana", Weight: 2},
		{ID: "s-2", Name: "Bruno", Weight: 1},
	}}
	r := newAdminRouter(&fakeTeamSvc{}, &fakeCampaignSvc{}, svc)

	w := doJSON(t, r, http.MethodGet, "/teams/t-1/sellers", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Sellers []domain.Seller `json:"sellers"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Sellers) != 2 || resp.Sellers[0].Name != "Ana" {
		t.Fatalf("sellers = %+v", resp.Sellers)
	}
}

func TestUpdateSeller_Mapping(t *testing.T) {
	r := newAdminRouter(&fakeTeamSvc{}, &fakeCampaignSvc{}, &fakeSellerSvc{})
	if w := doJSON(t, r, http.MethodPatch, "/sellers/s-1", `{"weight":3}`); w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	r = newAdminRouter(&fakeTeamSvc{}, &fakeCampaignSvc{}, &fakeSellerSvc{updateErr: services.ErrSellerNotFound})
	if w := doJSON(t, r, http.MethodPatch, "/sellers/nope", `{"weight":3}`); w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestContactEndpoints(t *testing.T) {
	r := newAdminRouter(&fakeTeamSvc{}, &fakeCampaignSvc{}, &fakeSellerSvc{})

	w := doJSON(t, r, http.MethodPost, "/sellers/s-1/contacts", `{"phone":"+55 11 91111-1111","description":"main"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("add contact: status = %d", w.Code)
	}

	if w := doJSON(t, r, http.MethodPost, "/sellers/s-1/contacts", `{"description":"no phone"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing phone: status = %d", w.Code)
	}

	if w := doJSON(t, r, http.MethodDelete, "/contacts/ct-1", ""); w.Code != http.StatusNoContent {
		t.Fatalf("delete contact: status = %d", w.Code)
	}

	r = newAdminRouter(&fakeTeamSvc{}, &fakeCampaignSvc{}, &fakeSellerSvc{removeErr: services.ErrContactNotFound})
	if w := doJSON(t, r, http.MethodDelete, "/contacts/nope", ""); w.Code != http.StatusNotFound {
		t.Fatalf("delete missing contact: status = %d", w.Code)
	}

	r = newAdminRouter(&fakeTeamSvc{}, &fakeCampaignSvc{}, &fakeSellerSvc{contactErr: errors.New("db down")})
	if w := doJSON(t, r, http.MethodPost, "/sellers/s-1/contacts", `{"phone":"123"}`); w.Code != http.StatusInternalServerError {
		t.Fatalf("backend failure: status = %d", w.Code)
	}
}
