package catalog

import (
	"context"
	"errors"
	"net/http"

	"github.com/ampliy/ampliy/internal/rest"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	loader *Loader
}

type LinksDTO struct {
	Links []SidebarLink `json:"links"`
}

type ItemsDTO struct {
	Items []ContentItem `json:"items"`
}

func NewHandler(loader *Loader) *Handler {
	return &Handler{loader: loader}
}

// GetSidebar godoc
// @Summary Navigation links of the landing page
// @Tags Catalog
// @Produce json
// @Success 200 {object} LinksDTO
// @Router /api/sidebar [get]
func (h *Handler) GetSidebar(w http.ResponseWriter, r *http.Request) {
	catalog, ok := h.load(w, r)
	if !ok {
		return
	}
	rest.WriteJSON(w, http.StatusOK, LinksDTO{Links: catalog.Links})
}

// GetContent godoc
// @Summary Content cards of the landing page
// @Tags Catalog
// @Produce json
// @Success 200 {object} ItemsDTO
// @Router /api/content [get]
func (h *Handler) GetContent(w http.ResponseWriter, r *http.Request) {
	catalog, ok := h.load(w, r)
	if !ok {
		return
	}
	rest.WriteJSON(w, http.StatusOK, ItemsDTO{Items: catalog.Items})
}

// GetCatalog returns links and items from a single load.
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, ok := h.load(w, r)
	if !ok {
		return
	}
	rest.WriteJSON(w, http.StatusOK, catalog)
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (Catalog, bool) {
	catalog, err := h.loader.Load(r.Context())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Debugf("catalog request cancelled by client")
			return Catalog{}, false
		}
		log.Errorf("failed to load catalog: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return Catalog{}, false
	}
	if catalog.Links == nil {
		catalog.Links = []SidebarLink{}
	}
	if catalog.Items == nil {
		catalog.Items = []ContentItem{}
	}
	return catalog, true
}
