package rest

import (
	"net/http"

	"github.com/heartmarshall/memorable-quantities/internal/domain"
)

// CatalogHandler lists the comparison categories and output languages.
type CatalogHandler struct {
	resp catalogResponse
}

type catalogResponse struct {
	Categories []domain.Category `json:"categories"`
	Languages  []domain.Language `json:"languages"`
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(categories []domain.Category, languages []domain.Language) *CatalogHandler {
	return &CatalogHandler{resp: catalogResponse{Categories: categories, Languages: languages}}
}

// Catalog handles GET /api/catalog.
func (h *CatalogHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.resp)
}
