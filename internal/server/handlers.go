package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alnah/go-linkedinify"
)

type transcodeRequest struct {
	Markdown string   `json:"markdown"`
	Profile  string   `json:"profile" validate:"omitempty,profile"`
	Hashtags []string `json:"hashtags" validate:"max=30,dive,required,max=100"`
}

type transcodeResponse struct {
	Text     string                `json:"text"`
	Profile  linkedinify.Profile   `json:"profile"`
	Stats    linkedinify.Stats     `json:"stats"`
	Warnings []linkedinify.Warning `json:"warnings"`
}

type previewRequest struct {
	Markdown string `json:"markdown" validate:"required"`
}

type previewResponse struct {
	HTML string `json:"html"`
}

type statsRequest struct {
	Text    string `json:"text"`
	Profile string `json:"profile" validate:"omitempty,profile"`
}

type statsResponse struct {
	Stats    linkedinify.Stats     `json:"stats"`
	Limits   linkedinify.Limits    `json:"limits"`
	Warnings []linkedinify.Warning `json:"warnings"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: s.version})
}

func (s *Server) handleTranscode(w http.ResponseWriter, r *http.Request) {
	var req transcodeRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	tr, err := s.transcoderFor(req.Profile)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "profile")
		return
	}

	// Transcoding errors are absorbed: the text is the original markdown
	// and the transcoder has already logged the cause.
	res := tr.Convert(r.Context(), linkedinify.Input{Markdown: req.Markdown, Hashtags: req.Hashtags})
	writeJSON(w, http.StatusOK, transcodeResponse{
		Text:     res.Text,
		Profile:  tr.Profile(),
		Stats:    res.Stats,
		Warnings: nonNil(res.Warnings),
	})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	html, err := s.transcoders[s.profile].Preview(r.Context(), req.Markdown)
	if err != nil {
		s.logger.Error().Err(err).Msg("preview failed")
		writeError(w, http.StatusInternalServerError, "preview failed", "")
		return
	}
	writeJSON(w, http.StatusOK, previewResponse{HTML: html})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var req statsRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	tr, err := s.transcoderFor(req.Profile)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "profile")
		return
	}

	stats := linkedinify.Analyze(req.Text)
	writeJSON(w, http.StatusOK, statsResponse{
		Stats:    stats,
		Limits:   tr.Limits(),
		Warnings: nonNil(linkedinify.Validate(stats, tr.Limits())),
	})
}

func nonNil(w []linkedinify.Warning) []linkedinify.Warning {
	if w == nil {
		return []linkedinify.Warning{}
	}
	return w
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message, field string) {
	writeJSON(w, status, errorResponse{Error: message, Field: field})
}

func writeRequestError(w http.ResponseWriter, err error) {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		writeError(w, reqErr.status, reqErr.message, reqErr.field)
		return
	}
	writeError(w, http.StatusBadRequest, err.Error(), "")
}
