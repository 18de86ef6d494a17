package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/braindump-app/braindump/pkg/domain/model"
	"github.com/braindump-app/braindump/pkg/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
)

// actionResponse adds the persistence fields the wire schema of the
// model reply excludes.
type actionResponse struct {
	ID int64 `json:"id"`
	*model.Action
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toActionResponse(a *model.Action) actionResponse {
	return actionResponse{
		ID:        a.ID,
		Action:    a,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (s *Server) handleListActions(w http.ResponseWriter, r *http.Request) {
	actions, err := s.uc.Action.List(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	resp := make([]actionResponse, 0, len(actions))
	for _, action := range actions {
		resp = append(resp, toActionResponse(action))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetAction(w http.ResponseWriter, r *http.Request) {
	id, err := actionID(r)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	action, err := s.uc.Action.Get(r.Context(), id)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toActionResponse(action))
}

func (s *Server) handleDeleteAction(w http.ResponseWriter, r *http.Request) {
	id, err := actionID(r)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	if err := s.uc.Action.Delete(r.Context(), id); err != nil {
		s.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSearchActions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			s.handleError(w, r, goerr.Wrap(usecase.ErrInvalidInput, "limit must be a positive integer"))
			return
		}
		limit = n
	}

	results, err := s.uc.Action.Search(r.Context(), query, limit)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, results)
}

func actionID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, goerr.Wrap(usecase.ErrInvalidInput, "action id must be an integer",
			goerr.V("id", raw))
	}
	return id, nil
}
