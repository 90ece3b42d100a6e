package http

import (
	"net/http"

	"github.com/sstlab/vigia/pkg/domain/model"
)

func (s *Server) listSegments(w http.ResponseWriter, r *http.Request) {
	segments, err := s.uc.Catalog.ListSegments(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, segments)
}

func (s *Server) createSegment(w http.ResponseWriter, r *http.Request) {
	var segment model.Segment
	if err := decodeJSON(r, &segment); err != nil {
		respondError(w, r, err)
		return
	}

	created, err := s.uc.Catalog.CreateSegment(r.Context(), &segment)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, created)
}

func (s *Server) updateSegment(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var segment model.Segment
	if err := decodeJSON(r, &segment); err != nil {
		respondError(w, r, err)
		return
	}
	segment.ID = id

	updated, err := s.uc.Catalog.UpdateSegment(r.Context(), &segment)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deleteSegment(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.uc.Catalog.DeleteSegment(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, successResponse{Success: true})
}

func (s *Server) listDangerSources(w http.ResponseWriter, r *http.Request) {
	sources, err := s.uc.Catalog.ListDangerSources(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, sources)
}

func (s *Server) createDangerSource(w http.ResponseWriter, r *http.Request) {
	var source model.DangerSource
	if err := decodeJSON(r, &source); err != nil {
		respondError(w, r, err)
		return
	}

	created, err := s.uc.Catalog.CreateDangerSource(r.Context(), &source)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, created)
}

func (s *Server) updateDangerSource(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var source model.DangerSource
	if err := decodeJSON(r, &source); err != nil {
		respondError(w, r, err)
		return
	}
	source.ID = id

	updated, err := s.uc.Catalog.UpdateDangerSource(r.Context(), &source)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deleteDangerSource(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.uc.Catalog.DeleteDangerSource(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, successResponse{Success: true})
}

func (s *Server) listProtectionMeasures(w http.ResponseWriter, r *http.Request) {
	measures, err := s.uc.Catalog.ListProtectionMeasures(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, measures)
}

func (s *Server) createProtectionMeasure(w http.ResponseWriter, r *http.Request) {
	var measure model.ProtectionMeasure
	if err := decodeJSON(r, &measure); err != nil {
		respondError(w, r, err)
		return
	}

	created, err := s.uc.Catalog.CreateProtectionMeasure(r.Context(), &measure)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, created)
}

func (s *Server) updateProtectionMeasure(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var measure model.ProtectionMeasure
	if err := decodeJSON(r, &measure); err != nil {
		respondError(w, r, err)
		return
	}
	measure.ID = id

	updated, err := s.uc.Catalog.UpdateProtectionMeasure(r.Context(), &measure)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deleteProtectionMeasure(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.uc.Catalog.DeleteProtectionMeasure(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, successResponse{Success: true})
}

func (s *Server) listInjuries(w http.ResponseWriter, r *http.Request) {
	injuries, err := s.uc.Catalog.ListInjuries(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, injuries)
}

func (s *Server) createInjury(w http.ResponseWriter, r *http.Request) {
	var injury model.Injury
	if err := decodeJSON(r, &injury); err != nil {
		respondError(w, r, err)
		return
	}

	created, err := s.uc.Catalog.CreateInjury(r.Context(), &injury)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, created)
}

func (s *Server) updateInjury(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var injury model.Injury
	if err := decodeJSON(r, &injury); err != nil {
		respondError(w, r, err)
		return
	}
	injury.ID = id

	updated, err := s.uc.Catalog.UpdateInjury(r.Context(), &injury)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deleteInjury(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.uc.Catalog.DeleteInjury(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, successResponse{Success: true})
}

func (s *Server) listSectors(w http.ResponseWriter, r *http.Request) {
	companyID, err := paramInt64(r, "companyID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	sectors, err := s.uc.Catalog.ListSectors(r.Context(), companyID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, sectors)
}

func (s *Server) createSector(w http.ResponseWriter, r *http.Request) {
	companyID, err := paramInt64(r, "companyID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var sector model.Sector
	if err := decodeJSON(r, &sector); err != nil {
		respondError(w, r, err)
		return
	}
	sector.CompanyID = companyID

	created, err := s.uc.Catalog.CreateSector(r.Context(), &sector)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, created)
}

func (s *Server) updateSector(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var sector model.Sector
	if err := decodeJSON(r, &sector); err != nil {
		respondError(w, r, err)
		return
	}
	sector.ID = id

	updated, err := s.uc.Catalog.UpdateSector(r.Context(), &sector)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deleteSector(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.uc.Catalog.DeleteSector(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, successResponse{Success: true})
}

func (s *Server) listFunctions(w http.ResponseWriter, r *http.Request) {
	companyID, err := paramInt64(r, "companyID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	functions, err := s.uc.Catalog.ListFunctions(r.Context(), companyID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, functions)
}

func (s *Server) createFunction(w http.ResponseWriter, r *http.Request) {
	companyID, err := paramInt64(r, "companyID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var function model.Function
	if err := decodeJSON(r, &function); err != nil {
		respondError(w, r, err)
		return
	}
	function.CompanyID = companyID

	created, err := s.uc.Catalog.CreateFunction(r.Context(), &function)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, created)
}

func (s *Server) updateFunction(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var function model.Function
	if err := decodeJSON(r, &function); err != nil {
		respondError(w, r, err)
		return
	}
	function.ID = id

	updated, err := s.uc.Catalog.UpdateFunction(r.Context(), &function)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deleteFunction(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.uc.Catalog.DeleteFunction(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, successResponse{Success: true})
}
