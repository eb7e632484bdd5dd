package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"flight-time-overlay/internal/domain/entity"
	"flight-time-overlay/internal/usecase"
	"flight-time-overlay/pkg/logger"
	"flight-time-overlay/pkg/utils"
)

const maxBodyBytes = 1 << 20

// Handler serves the page-scanner API on top of the overlay service
type Handler struct {
	overlay *usecase.OverlayService
	logger  logger.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(overlay *usecase.OverlayService, logger logger.Logger) *Handler {
	return &Handler{
		overlay: overlay,
		logger:  logger,
	}
}

// Register mounts every route on mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/convert", h.convert)
	mux.HandleFunc("POST /api/v1/annotate", h.annotate)
	mux.HandleFunc("GET /api/v1/airports/{code}", h.lookup)
	mux.HandleFunc("GET /api/v1/status", h.status)
	mux.HandleFunc("PUT /api/v1/settings", h.updateSettings)
	mux.HandleFunc("POST /api/v1/refresh", h.refresh)
	mux.HandleFunc("GET /api/v1/records", h.records)
}

type convertRequest struct {
	Time    string `json:"time"`
	Airport string `json:"airport"`
}

type convertResponse struct {
	Result string `json:"result"`
	Text   string `json:"text,omitempty"`
	Reason string `json:"reason,omitempty"`
}

type legPayload struct {
	Direction string `json:"direction"`
	Time      string `json:"time"`
	Airport   string `json:"airport"`
}

type annotateRequest struct {
	URL  string       `json:"url"`
	Legs []legPayload `json:"legs"`
}

type annotationPayload struct {
	Direction string `json:"direction"`
	Time      string `json:"time"`
	Airport   string `json:"airport"`
	Result    string `json:"result"`
	Text      string `json:"text,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Inject    bool   `json:"inject"`
}

type routePayload struct {
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
}

type annotateResponse struct {
	Enabled        bool                `json:"enabled"`
	Route          *routePayload       `json:"route,omitempty"`
	Annotations    []annotationPayload `json:"annotations"`
	ConvertedCount int                 `json:"convertedCount"`
}

type lookupResponse struct {
	Code          string `json:"code"`
	OffsetMinutes int    `json:"offsetMinutes"`
}

type settingsPayload struct {
	Enabled *bool `json:"enabled,omitempty"`
	Debug   *bool `json:"debug,omitempty"`
}

type statusResponse struct {
	Enabled        bool  `json:"enabled"`
	Debug          bool  `json:"debug"`
	ConvertedCount int64 `json:"convertedCount"`
}

type recordPayload struct {
	PageURL       string    `json:"pageUrl"`
	Direction     string    `json:"direction"`
	Airport       string    `json:"airport"`
	Time          string    `json:"time"`
	Result        string    `json:"result"`
	Text          string    `json:"text"`
	OffsetMinutes int       `json:"offsetMinutes"`
	CreatedAt     time.Time `json:"createdAt"`
}

type recordsResponse struct {
	Route   string          `json:"route"`
	Records []recordPayload `json:"records"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if !h.decode(w, r, &req) {
		return
	}

	result := h.overlay.Convert(req.Time, utils.NormalizeAirportCode(req.Airport))

	resp := convertResponse{
		Result: result.Kind.String(),
		Text:   result.Text,
	}
	if result.Reason != nil {
		resp.Reason = result.Reason.Error()
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) annotate(w http.ResponseWriter, r *http.Request) {
	var req annotateRequest
	if !h.decode(w, r, &req) {
		return
	}

	legs := make([]entity.Leg, 0, len(req.Legs))
	for _, l := range req.Legs {
		legs = append(legs, entity.Leg{
			Direction:   entity.LegDirection(l.Direction),
			TimeText:    l.Time,
			AirportCode: utils.NormalizeAirportCode(l.Airport),
		})
	}

	batch, err := h.overlay.AnnotateLegs(r.Context(), req.URL, legs)
	if err != nil {
		h.logger.Error("Failed to annotate legs", "error", err)
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		return
	}

	resp := annotateResponse{
		Enabled:        batch.Enabled,
		Annotations:    make([]annotationPayload, 0, len(batch.Annotations)),
		ConvertedCount: batch.ConvertedCount,
	}
	if batch.Route != nil {
		resp.Route = &routePayload{Departure: batch.Route.Departure, Arrival: batch.Route.Arrival}
	}
	for _, a := range batch.Annotations {
		resp.Annotations = append(resp.Annotations, annotationPayload{
			Direction: string(a.Leg.Direction),
			Time:      a.Leg.TimeText,
			Airport:   a.Leg.AirportCode,
			Result:    a.Result,
			Text:      a.Text,
			Reason:    a.Reason,
			Inject:    a.Inject,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) {
	code := utils.NormalizeAirportCode(r.PathValue("code"))

	offset, ok := h.overlay.Lookup(code)
	if !ok {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown airport code"})
		return
	}
	h.writeJSON(w, http.StatusOK, lookupResponse{Code: code, OffsetMinutes: offset})
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, toStatusResponse(h.overlay.Status()))
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsPayload
	if !h.decode(w, r, &req) {
		return
	}
	h.writeJSON(w, http.StatusOK, toStatusResponse(h.overlay.UpdateSettings(req.Enabled, req.Debug)))
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	h.overlay.Refresh()
	h.writeJSON(w, http.StatusOK, toStatusResponse(h.overlay.Status()))
}

func (h *Handler) records(w http.ResponseWriter, r *http.Request) {
	route := r.URL.Query().Get("route")
	if route == "" {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "route is required"})
		return
	}

	var limit int64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = n
	}

	records, err := h.overlay.Records(r.Context(), route, limit)
	if errors.Is(err, usecase.ErrRecordsDisabled) {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		h.logger.Error("Failed to load conversion records", "route", route, "error", err)
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "failed to load records"})
		return
	}

	resp := recordsResponse{
		Route:   strings.ToUpper(strings.TrimSpace(route)),
		Records: make([]recordPayload, 0, len(records)),
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, recordPayload{
			PageURL:       rec.PageURL,
			Direction:     rec.Direction,
			Airport:       rec.AirportCode,
			Time:          rec.OriginalText,
			Result:        rec.Result,
			Text:          rec.InjectedText,
			OffsetMinutes: rec.OffsetMinutes,
			CreatedAt:     rec.CreatedAt,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func toStatusResponse(s entity.OverlayStatus) statusResponse {
	return statusResponse{
		Enabled:        s.Enabled,
		Debug:          s.Debug,
		ConvertedCount: s.ConvertedCount,
	}
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.logger.Warn("Invalid request body", "path", r.URL.Path, "error", err)
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to write response", "error", err)
	}
}
