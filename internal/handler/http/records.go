package http

import (
	"encoding/json"
	"math"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/insider-vault/internal/logger"
	"github.com/MKhiriev/insider-vault/models"
)

// actorRequest carries the identity performing a workflow transition.
type actorRequest struct {
	Actor string `json:"actor"`
}

// decryptResponse is the plaintext released after a successful challenge.
type decryptResponse struct {
	ID    string  `json:"id"`
	Value float64 `json:"value"`
}

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	query := models.SearchQuery{
		Text:     r.URL.Query().Get("q"),
		DataType: models.DataType(r.URL.Query().Get("type")),
		Status:   models.Status(r.URL.Query().Get("status")),
	}

	var (
		records []models.Record
		err     error
	)
	if query == (models.SearchQuery{}) {
		records, err = h.services.RecordService.ListRecords(r.Context())
	} else {
		records, err = h.services.RecordService.SearchRecords(r.Context(), query)
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.listRecords").Msg("error listing records")
		http.Error(w, "error listing records", statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func (h *Handler) submitRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.submitRecord").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	record, err := h.services.RecordService.SubmitRecord(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.submitRecord").Msg("error submitting record")
		http.Error(w, "error submitting record", statusFromError(err))
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

func (h *Handler) verifyRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	actor, err := actorFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.verifyRecord").Msg("missing actor identity")
		http.Error(w, "missing actor identity", http.StatusBadRequest)
		return
	}

	records, err := h.services.RecordService.VerifyRecord(r.Context(), id, actor)
	if err != nil {
		log.Err(err).Str("func", "*Handler.verifyRecord").Str("id", id).Msg("error verifying record")
		http.Error(w, "error verifying record", statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func (h *Handler) rejectRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")
	actor, err := actorFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.rejectRecord").Msg("missing actor identity")
		http.Error(w, "missing actor identity", http.StatusBadRequest)
		return
	}

	records, err := h.services.RecordService.RejectRecord(r.Context(), id, actor)
	if err != nil {
		log.Err(err).Str("func", "*Handler.rejectRecord").Str("id", id).Msg("error rejecting record")
		http.Error(w, "error rejecting record", statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	stats, err := h.services.RecordService.Stats(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getStats").Msg("error aggregating stats")
		http.Error(w, "error aggregating stats", statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	history := h.services.RecordService.History(r.Context())
	if history == nil {
		history = []string{}
	}

	writeJSON(w, http.StatusOK, history)
}

func (h *Handler) decryptRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	value, err := h.services.RecordService.DecryptRecord(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.decryptRecord").Str("id", id).Msg("error decrypting record")
		http.Error(w, "error decrypting record", statusFromError(err))
		return
	}

	// a garbage payload decodes to NaN, which JSON cannot carry
	if math.IsNaN(value) || math.IsInf(value, 0) {
		log.Error().Str("func", "*Handler.decryptRecord").Str("id", id).Msg("record payload is not decodable")
		http.Error(w, "record payload is not decodable", http.StatusUnprocessableEntity)
		return
	}

	writeJSON(w, http.StatusOK, decryptResponse{ID: id, Value: value})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func actorFromRequest(r *http.Request) (string, error) {
	var req actorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", err
	}
	if strings.TrimSpace(req.Actor) == "" {
		return "", ErrEmptyActor
	}
	return req.Actor, nil
}
