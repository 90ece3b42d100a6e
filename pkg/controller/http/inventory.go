package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sstlab/vigia/pkg/domain/model"
	"github.com/sstlab/vigia/pkg/domain/types"
)

func (s *Server) listInventories(w http.ResponseWriter, r *http.Request) {
	companyID, err := paramInt64(r, "companyID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	inventories, err := s.uc.Inventory.ListInventories(r.Context(), companyID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, inventories)
}

func (s *Server) createInventory(w http.ResponseWriter, r *http.Request) {
	companyID, err := paramInt64(r, "companyID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	created, err := s.uc.Inventory.CreateInventory(r.Context(), companyID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, created)
}

func (s *Server) getInventory(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "inventoryID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	inventory, err := s.uc.Inventory.GetInventory(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, inventory)
}

func (s *Server) deleteInventory(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "inventoryID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.uc.Inventory.DeleteInventory(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, successResponse{Success: true})
}

func (s *Server) updateInventoryStatus(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "inventoryID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var req struct {
		Status types.InventoryStatus `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	updated, err := s.uc.Inventory.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, updated)
}

func (s *Server) cloneInventory(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "inventoryID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	cloned, err := s.uc.Inventory.CloneInventory(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, cloned)
}

func (s *Server) saveEntry(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "inventoryID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var entry model.RiskEntry
	if err := decodeJSON(r, &entry); err != nil {
		respondError(w, r, err)
		return
	}

	saved, err := s.uc.Inventory.SaveEntry(r.Context(), id, &entry)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, saved)
}

func (s *Server) deleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "inventoryID")
	if err != nil {
		respondError(w, r, err)
		return
	}
	entryID := chi.URLParam(r, "entryID")

	if err := s.uc.Inventory.DeleteEntry(r.Context(), id, entryID); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, successResponse{Success: true})
}

func (s *Server) cloneEntry(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "inventoryID")
	if err != nil {
		respondError(w, r, err)
		return
	}
	entryID := chi.URLParam(r, "entryID")

	cloned, err := s.uc.Inventory.CloneEntry(r.Context(), id, entryID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, cloned)
}

func (s *Server) suggestEntries(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "inventoryID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	added, err := s.uc.Inventory.SuggestEntries(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, added)
}

func (s *Server) buildReport(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "inventoryID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	report, err := s.uc.Report.BuildReport(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, report)
}
