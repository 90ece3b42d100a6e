package http

import (
	"net/http"

	"github.com/sstlab/vigia/pkg/domain/model"
)

func (s *Server) assistChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CompanyID int64                `json:"companyId"`
		Message   string               `json:"message"`
		History   []model.ChatExchange `json:"history"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	answer, err := s.uc.Assist.Chat(r.Context(), req.CompanyID, req.Message, req.History)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, struct {
		Answer string `json:"answer"`
	}{Answer: answer})
}
