package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/braindump-app/braindump/pkg/domain/model"
	"github.com/braindump-app/braindump/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
)

type textRequest struct {
	Text string `json:"text"`
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

func (s *Server) handleText(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.handleError(w, r, goerr.Wrap(usecase.ErrInvalidInput, "invalid request body"))
		return
	}

	result, err := s.uc.BrainDump.ProcessText(r.Context(), req.Text)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleAudio(w http.ResponseWriter, r *http.Request) {
	s.handleMedia(w, r, "audio", s.uc.BrainDump.ProcessAudio)
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	s.handleMedia(w, r, "image", s.uc.BrainDump.ProcessImage)
}

func (s *Server) handleMedia(w http.ResponseWriter, r *http.Request, field string,
	process func(ctx context.Context, data []byte, mimeType string) (*model.BrainDumpResult, error)) {

	if err := r.ParseMultipartForm(s.maxUploadLen); err != nil {
		s.handleError(w, r, goerr.Wrap(usecase.ErrInvalidInput, "invalid multipart form"))
		return
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		s.handleError(w, r, goerr.Wrap(usecase.ErrInvalidInput, "missing file field",
			goerr.V("field", field)))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.maxUploadLen))
	if err != nil {
		s.handleError(w, r, goerr.Wrap(err, "failed to read upload"))
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	result, err := process(r.Context(), data, mimeType)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.handleError(w, r, goerr.Wrap(usecase.ErrInvalidInput, "invalid request body"))
		return
	}

	answer := s.uc.Answer.Ask(r.Context(), req.Question)
	respondJSON(w, http.StatusOK, askResponse{Answer: answer})
}
