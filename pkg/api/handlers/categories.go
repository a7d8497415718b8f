package handlers

import (
	"net/http"

	"warden-hq/warden/pkg/api/types"
	"warden-hq/warden/pkg/moderation"
)

// CategoriesHandler handles GET /v1/moderation/categories.
type CategoriesHandler struct {
	catalog *moderation.Catalog
}

// NewCategoriesHandler creates the catalog listing handler.
func NewCategoriesHandler(catalog *moderation.Catalog) *CategoriesHandler {
	return &CategoriesHandler{catalog: catalog}
}

// ServeHTTP lists every category with its base severity and loaded rule
// count, in catalog iteration order.
func (h *CategoriesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed,
			types.NewErrorResponse(types.CodeNotFound, "Method not allowed."))
		return
	}

	cats := moderation.Categories()
	infos := make([]types.CategoryInfo, 0, len(cats))
	for _, c := range cats {
		infos = append(infos, types.CategoryInfo{
			Category:     c,
			BaseSeverity: moderation.BaseSeverity(c),
			RuleCount:    h.catalog.RuleCount(c),
		})
	}

	writeJSON(w, http.StatusOK, types.CategoriesResponse{Categories: infos})
}
