package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"eventquote/internal/entities"
)

// CatalogStore is the admin-facing catalog surface: price updates write through
// to storage and refresh the served snapshot.
type CatalogStore interface {
	Refresh() error
	UpdateFoodPackage(id string, p entities.FoodPackage) error
	UpdateBeverageTier(id string, t entities.BeverageTier) error
}

type AdminHandler struct {
	Catalog CatalogStore
}

func NewAdminHandler(catalog CatalogStore) *AdminHandler {
	return &AdminHandler{Catalog: catalog}
}

func (h *AdminHandler) UpdateFoodPackage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req entities.FoodPackage
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Catalog.UpdateFoodPackage(id, req); err != nil {
		http.Error(w, "Could not update food package", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Food package updated"})
}

func (h *AdminHandler) UpdateBeverageTier(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req entities.BeverageTier
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := h.Catalog.UpdateBeverageTier(id, req); err != nil {
		http.Error(w, "Could not update beverage tier", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Beverage tier updated"})
}

func (h *AdminHandler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.Refresh(); err != nil {
		http.Error(w, "Could not refresh catalog", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Catalog refreshed"})
}
