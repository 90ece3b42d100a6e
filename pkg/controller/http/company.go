package http

import (
	"net/http"

	"github.com/sstlab/vigia/pkg/domain/model"
)

func (s *Server) listCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := s.uc.Company.ListCompanies(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, companies)
}

func (s *Server) createCompany(w http.ResponseWriter, r *http.Request) {
	var company model.Company
	if err := decodeJSON(r, &company); err != nil {
		respondError(w, r, err)
		return
	}

	created, err := s.uc.Company.CreateCompany(r.Context(), &company)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, created)
}

func (s *Server) getCompany(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "companyID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	company, err := s.uc.Company.GetCompany(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, company)
}

func (s *Server) updateCompany(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "companyID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var company model.Company
	if err := decodeJSON(r, &company); err != nil {
		respondError(w, r, err)
		return
	}
	company.ID = id

	updated, err := s.uc.Company.UpdateCompany(r.Context(), &company)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deleteCompany(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "companyID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.uc.Company.DeleteCompany(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, successResponse{Success: true})
}

func (s *Server) listEmployees(w http.ResponseWriter, r *http.Request) {
	companyID, err := paramInt64(r, "companyID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	employees, err := s.uc.Company.ListEmployees(r.Context(), companyID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, employees)
}

func (s *Server) createEmployee(w http.ResponseWriter, r *http.Request) {
	companyID, err := paramInt64(r, "companyID")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var employee model.Employee
	if err := decodeJSON(r, &employee); err != nil {
		respondError(w, r, err)
		return
	}
	employee.CompanyID = companyID

	created, err := s.uc.Company.CreateEmployee(r.Context(), &employee)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, created)
}

func (s *Server) updateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	var employee model.Employee
	if err := decodeJSON(r, &employee); err != nil {
		respondError(w, r, err)
		return
	}
	employee.ID = id

	updated, err := s.uc.Company.UpdateEmployee(r.Context(), &employee)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, updated)
}

func (s *Server) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := paramInt64(r, "id")
	if err != nil {
		respondError(w, r, err)
		return
	}

	if err := s.uc.Company.DeleteEmployee(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, successResponse{Success: true})
}
