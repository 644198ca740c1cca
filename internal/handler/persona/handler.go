package persona

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/mindchat/backend/internal/model/persona"
	"github.com/zhouzirui/mindchat/backend/pkg/utils"
)

// Handler exposes the persona the relay speaks as.
type Handler struct {
	personas  persona.Store
	defaultID string
}

// New creates the persona handler.
func New(personas persona.Store, defaultID string) *Handler {
	return &Handler{
		personas:  personas,
		defaultID: defaultID,
	}
}

// RegisterRoutes mounts the persona routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/persona", h.handleGetPersona)
	r.Get("/personas", h.handleListPersonas)
}

// handleListPersonas returns every configured persona in seed order.
func (h *Handler) handleListPersonas(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.personas.List())
}

// handleGetPersona returns the welcome-screen data for the active persona.
func (h *Handler) handleGetPersona(w http.ResponseWriter, _ *http.Request) {
	p, ok := h.personas.FindByID(h.defaultID)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "persona not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, p)
}
