package http

import (
	"encoding/json"
	"net/http"

	"github.com/braindump-app/braindump/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
)

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.uc.User.Get(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var patch usecase.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.handleError(w, r, goerr.Wrap(usecase.ErrInvalidInput, "invalid request body"))
		return
	}

	user, err := s.uc.User.Update(r.Context(), &patch)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}
