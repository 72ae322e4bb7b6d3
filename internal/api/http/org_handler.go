package http

import (
	"net/http"

	"hvz-backend/internal/service"

	"github.com/gorilla/mux"
)

// OrganizationHandler exposes the org core over HTTP. Requester identity
// arrives as an already-authenticated user id supplied by the caller;
// authentication itself happens upstream.
type OrganizationHandler struct {
	orgSvc service.OrganizationService
}

func NewOrganizationHandler(orgSvc service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgSvc: orgSvc}
}

func (h *OrganizationHandler) CreateOrg(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"name"`
		URL       string `json:"url"`
		CreatorID string `json:"creator_id"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	org, err := h.orgSvc.CreateOrg(r.Context(), req.Name, req.URL, req.CreatorID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, org)
}

func (h *OrganizationHandler) GetOrg(w http.ResponseWriter, r *http.Request) {
	org, err := h.orgSvc.GetOrgByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, org)
}

func (h *OrganizationHandler) GetOrgByURL(w http.ResponseWriter, r *http.Request) {
	org, err := h.orgSvc.GetOrgByURL(r.Context(), mux.Vars(r)["url"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, org)
}

func (h *OrganizationHandler) GetAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.orgSvc.GetAdmins(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"administrators": admins})
}

func (h *OrganizationHandler) AddAdmin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"user_id"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	org, err := h.orgSvc.AddAdmin(r.Context(), mux.Vars(r)["id"], req.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, org)
}

func (h *OrganizationHandler) RemoveAdmin(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	org, err := h.orgSvc.RemoveAdmin(r.Context(), vars["id"], vars["userId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, org)
}

func (h *OrganizationHandler) GetModerators(w http.ResponseWriter, r *http.Request) {
	mods, err := h.orgSvc.GetModerators(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"moderators": mods})
}

func (h *OrganizationHandler) AddModerator(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"user_id"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	org, err := h.orgSvc.AddModerator(r.Context(), mux.Vars(r)["id"], req.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, org)
}

func (h *OrganizationHandler) RemoveModerator(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	org, err := h.orgSvc.RemoveModerator(r.Context(), vars["id"], vars["userId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, org)
}

func (h *OrganizationHandler) SetOwner(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OwnerID string `json:"owner_id"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	org, err := h.orgSvc.SetOwner(r.Context(), mux.Vars(r)["id"], req.OwnerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, org)
}

func (h *OrganizationHandler) GetActiveGame(w http.ResponseWriter, r *http.Request) {
	game, err := h.orgSvc.FindActiveGame(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	if game == nil {
		writeJSON(w, http.StatusOK, map[string]any{"active_game": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"active_game": game})
}

func (h *OrganizationHandler) SetActiveGame(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GameID string `json:"game_id"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	org, err := h.orgSvc.SetActiveGame(r.Context(), mux.Vars(r)["id"], req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, org)
}

func (h *OrganizationHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		RequesterID string `json:"requester_id"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	game, err := h.orgSvc.CreateGame(r.Context(), req.Name, req.RequesterID, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, game)
}

// RegisterOrgRoutes registers the organization endpoints
func RegisterOrgRoutes(router *mux.Router, orgSvc service.OrganizationService) {
	h := NewOrganizationHandler(orgSvc)
	router.HandleFunc("/api/v1/orgs", h.CreateOrg).Methods("POST")
	router.HandleFunc("/api/v1/orgs/{id}", h.GetOrg).Methods("GET")
	router.HandleFunc("/api/v1/orgs/url/{url}", h.GetOrgByURL).Methods("GET")
	router.HandleFunc("/api/v1/orgs/{id}/admins", h.GetAdmins).Methods("GET")
	router.HandleFunc("/api/v1/orgs/{id}/admins", h.AddAdmin).Methods("POST")
	router.HandleFunc("/api/v1/orgs/{id}/admins/{userId}", h.RemoveAdmin).Methods("DELETE")
	router.HandleFunc("/api/v1/orgs/{id}/moderators", h.GetModerators).Methods("GET")
	router.HandleFunc("/api/v1/orgs/{id}/moderators", h.AddModerator).Methods("POST")
	router.HandleFunc("/api/v1/orgs/{id}/moderators/{userId}", h.RemoveModerator).Methods("DELETE")
	router.HandleFunc("/api/v1/orgs/{id}/owner", h.SetOwner).Methods("PUT")
	router.HandleFunc("/api/v1/orgs/{id}/games", h.CreateGame).Methods("POST")
	router.HandleFunc("/api/v1/orgs/{id}/games/active", h.GetActiveGame).Methods("GET")
	router.HandleFunc("/api/v1/orgs/{id}/games/active", h.SetActiveGame).Methods("PUT")
}
