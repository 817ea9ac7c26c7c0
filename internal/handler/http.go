package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/fliklylike-cyber/Media-Grab/internal/logger"
	"github.com/fliklylike-cyber/Media-Grab/internal/middleware"
	"github.com/fliklylike-cyber/Media-Grab/internal/model"
	"github.com/fliklylike-cyber/Media-Grab/internal/pool"
	"github.com/fliklylike-cyber/Media-Grab/internal/validate"
	"github.com/fliklylike-cyber/Media-Grab/internal/worker"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// User-facing messages for the synchronous rejections.
const (
	MsgEmptyURL   = "Please enter a video URL"
	MsgInvalidURL = "Please enter a valid URL (must start with http:// or https://)"
	MsgBusy       = "Another download is in progress. Please wait."
)

// GrabService is the part of the service layer the handlers need.
type GrabService interface {
	Grab(ctx context.Context, sub model.Submission) (model.Result, error)
	State() model.State
	Stats() model.Stats
	CheckURL(raw string) error
	Classify(raw string) (string, bool)
}

// Handler serves the demo page and the JSON API.
type Handler struct {
	service GrabService
	subPool *pool.Pool[*model.Submission]
}

// NewHandler creates a Handler for the given service.
func NewHandler(service GrabService) *Handler {
	return &Handler{
		service: service,
		subPool: pool.NewSubmissionPool(),
	}
}

// RegisterRoutes builds the chi router with all middleware and routes.
func (h *Handler) RegisterRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Use(logger.RequestLogger)

	r.Use(middleware.GzipReader)
	r.Use(middleware.GzipWriter)

	r.Get("/", h.handlePage)
	r.Post("/api/grab", h.handleGrab)
	r.Get("/api/status", h.handleStatus)
	r.Get("/api/stats", h.handleStats)
	r.Get("/debug/validate", h.handleValidateDebug)

	return r
}

func (h *Handler) handleGrab(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	contentEncoding := r.Header.Get("Content-Encoding")

	if contentEncoding != "gzip" && !strings.Contains(contentType, "application/json") {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	sub := h.subPool.Get()
	defer h.subPool.Put(sub)

	if err := json.NewDecoder(r.Body).Decode(sub); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	format, err := model.ParseFormat(string(sub.Format))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, model.Result{
			Status:  model.StatusError,
			Message: "Unknown format",
		})
		return
	}
	sub.Format = format

	result, err := h.service.Grab(r.Context(), *sub)
	if err != nil {
		writeJSON(w, rejectStatus(err), model.Result{
			Status:  model.StatusError,
			Message: rejectMessage(err),
		})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]model.State{"state": h.service.State()})
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Stats())
}

// ValidateDebugResponse is the payload of the debug predicate endpoint.
type ValidateDebugResponse struct {
	URL       string `json:"url"`
	Valid     bool   `json:"valid"`
	Message   string `json:"message,omitempty"`
	Platform  string `json:"platform,omitempty"`
	Supported bool   `json:"supported"`
}

func (h *Handler) handleValidateDebug(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")

	resp := ValidateDebugResponse{URL: raw}

	if err := h.service.CheckURL(raw); err != nil {
		resp.Message = rejectMessage(err)
	} else {
		resp.Valid = true
		resp.Platform, resp.Supported = h.service.Classify(raw)
	}

	writeJSON(w, http.StatusOK, resp)
}

// rejectStatus maps service errors to HTTP status codes.
func rejectStatus(err error) int {
	switch {
	case errors.Is(err, validate.ErrEmptyURL), errors.Is(err, validate.ErrInvalidURL):
		return http.StatusBadRequest
	case errors.Is(err, worker.ErrBusy):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// rejectMessage maps service errors to the user-facing messages.
func rejectMessage(err error) string {
	switch {
	case errors.Is(err, validate.ErrEmptyURL):
		return MsgEmptyURL
	case errors.Is(err, validate.ErrInvalidURL):
		return MsgInvalidURL
	case errors.Is(err, worker.ErrBusy):
		return MsgBusy
	default:
		return "Internal error"
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
