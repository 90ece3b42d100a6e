package http

import (
	"net/http"

	"github.com/sstlab/vigia/pkg/domain/model"
)

func (s *Server) listNorms(w http.ResponseWriter, r *http.Request) {
	norms, err := s.uc.Norm.ListNorms(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, norms)
}

func (s *Server) createNorm(w http.ResponseWriter, r *http.Request) {
	var norm model.Norm
	if err := decodeJSON(r, &norm); err != nil {
		respondError(w, r, err)
		return
	}

	created, err := s.uc.Norm.CreateNorm(r.Context(), &norm)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, created)
}

func (s *Server) getNorm(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	norm, err := s.uc.Norm.GetNorm(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, norm)
}

func (s *Server) updateNorm(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var norm model.Norm
	if err := decodeJSON(r, &norm); err != nil {
		respondError(w, r, err)
		return
	}
	norm.ID = id

	updated, err := s.uc.Norm.UpdateNorm(r.Context(), &norm)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deleteNorm(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.uc.Norm.DeleteNorm(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, successResponse{Success: true})
}

func (s *Server) listNormDetails(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	details, err := s.uc.Norm.ListDetails(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, details)
}

func (s *Server) saveNormDetail(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var detail model.NormDetail
	if err := decodeJSON(r, &detail); err != nil {
		respondError(w, r, err)
		return
	}
	detail.NormID = id

	saved, err := s.uc.Norm.SaveDetail(r.Context(), &detail)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, saved)
}

func (s *Server) deleteNormDetail(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.uc.Norm.DeleteDetail(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, successResponse{Success: true})
}

func (s *Server) listAssociations(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	assocs, err := s.uc.Norm.ListAssociations(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, assocs)
}

func (s *Server) createAssociation(w http.ResponseWriter, r *http.Request) {
	var assoc model.SegmentNormAssociation
	if err := decodeJSON(r, &assoc); err != nil {
		respondError(w, r, err)
		return
	}

	created, err := s.uc.Norm.CreateAssociation(r.Context(), &assoc)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, created)
}

func (s *Server) deleteAssociation(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.uc.Norm.DeleteAssociation(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, successResponse{Success: true})
}
