package http

import (
	"net/http"

	"github.com/sstlab/vigia/pkg/domain/model"
)

func (s *Server) listDangerGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.uc.Danger.ListGroups(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, groups)
}

func (s *Server) createDangerGroup(w http.ResponseWriter, r *http.Request) {
	var group model.DangerGroup
	if err := decodeJSON(r, &group); err != nil {
		respondError(w, r, err)
		return
	}

	created, err := s.uc.Danger.CreateGroup(r.Context(), &group)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, created)
}

func (s *Server) updateDangerGroup(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var group model.DangerGroup
	if err := decodeJSON(r, &group); err != nil {
		respondError(w, r, err)
		return
	}
	group.ID = id

	updated, err := s.uc.Danger.UpdateGroup(r.Context(), &group)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deleteDangerGroup(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.uc.Danger.DeleteGroup(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, successResponse{Success: true})
}

func (s *Server) listDangersByGroup(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	dangers, err := s.uc.Danger.ListDangersByGroup(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, dangers)
}

func (s *Server) listDangers(w http.ResponseWriter, r *http.Request) {
	dangers, err := s.uc.Danger.ListDangers(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, dangers)
}

func (s *Server) createDanger(w http.ResponseWriter, r *http.Request) {
	var danger model.Danger
	if err := decodeJSON(r, &danger); err != nil {
		respondError(w, r, err)
		return
	}

	created, err := s.uc.Danger.CreateDanger(r.Context(), &danger)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, created)
}

func (s *Server) updateDanger(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var danger model.Danger
	if err := decodeJSON(r, &danger); err != nil {
		respondError(w, r, err)
		return
	}
	danger.ID = id

	updated, err := s.uc.Danger.UpdateDanger(r.Context(), &danger)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deleteDanger(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.uc.Danger.DeleteDanger(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, successResponse{Success: true})
}
