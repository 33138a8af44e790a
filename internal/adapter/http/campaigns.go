package httpadapter

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/SamuelUes/rundi-platform/internal/core/domain"
	"github.com/SamuelUes/rundi-platform/internal/core/port"
)

type campaignResponse struct {
	Campaign *domain.Campaign `json:"campaign"`
}

type listResponse struct {
	Campaigns []domain.Campaign    `json:"campaigns"`
	Stats     domain.CampaignStats `json:"stats"`
}

type sendResponse struct {
	Campaign *domain.Campaign      `json:"campaign,omitempty"`
	Stats    domain.DeliveryResult `json:"stats"`
	Error    string                `json:"error,omitempty"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type migrateResponse struct {
	Migrated int `json:"migrated"`
}

// handleListCampaigns returns the most recently updated campaigns with
// per-status counts.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	list, stats, err := h.campaigns.ListCampaigns(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if list == nil {
		list = []domain.Campaign{}
	}
	h.writeJSON(w, http.StatusOK, listResponse{Campaigns: list, Stats: stats})
}

// handleCreateCampaign validates the body and stores a new campaign,
// answering 201 with the stored record.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var in domain.CampaignInput
	if !h.decodeJSON(w, r, &in) {
		return
	}
	c, err := h.campaigns.CreateCampaign(r.Context(), in)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, campaignResponse{Campaign: c})
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.campaigns.GetCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaignResponse{Campaign: c})
}

// handleUpdateCampaign merges a partial body over the stored campaign.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var in domain.CampaignInput
	if !h.decodeJSON(w, r, &in) {
		return
	}
	c, err := h.campaigns.UpdateCampaign(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaignResponse{Campaign: c})
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.campaigns.DeleteCampaign(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// handleSendCampaign delivers a push campaign now. When the outcome could
// not be recorded because the campaign was deleted meanwhile, it answers
// 404 and still reports the delivery statistics.
func (h *Handler) handleSendCampaign(w http.ResponseWriter, r *http.Request) {
	res, err := h.campaigns.SendNow(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, port.ErrNotFound) && res != nil {
			h.writeJSON(w, http.StatusNotFound, sendResponse{Stats: withErrors(res.Stats), Error: port.ErrNotFound.Error()})
			return
		}
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sendResponse{Campaign: res.Campaign, Stats: withErrors(res.Stats)})
}

func (h *Handler) handleMigrateLegacy(w http.ResponseWriter, r *http.Request) {
	n, err := h.campaigns.MigrateLegacy(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, migrateResponse{Migrated: n})
}

// withErrors keeps the errors array present in the response body.
func withErrors(s domain.DeliveryResult) domain.DeliveryResult {
	if s.Errors == nil {
		s.Errors = []domain.FailureRecord{}
	}
	return s
}
