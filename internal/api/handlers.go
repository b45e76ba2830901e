package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mailprism/mailprism/internal/analysis"
	"github.com/mailprism/mailprism/internal/brandcache"
	"github.com/mailprism/mailprism/internal/engine"
	"github.com/mailprism/mailprism/internal/repository/postgres"
	"github.com/mailprism/mailprism/internal/taxonomy"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	pipeline *engine.Pipeline
	cache    brandcache.Store
	emails   *postgres.EmailRepo
	started  time.Time
}

// NewHandlers creates a new Handlers instance. emails may be nil when no
// database is configured; the email routes then return 503.
func NewHandlers(pipeline *engine.Pipeline, cache brandcache.Store, emails *postgres.EmailRepo) *Handlers {
	return &Handlers{
		pipeline: pipeline,
		cache:    cache,
		emails:   emails,
		started:  time.Now(),
	}
}

// Response helpers

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// Health check

// HealthCheck returns the health status of the API
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now(),
		"uptime":    time.Since(h.started).String(),
	})
}

// Classification

type classifyRequest struct {
	Sender  string `json:"sender"`
	Subject string `json:"subject"`
	Preview string `json:"preview"`
	HTML    string `json:"html"`
}

// Classify runs the full pipeline on one email
func (h *Handlers) Classify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Sender == "" && req.Subject == "" && req.HTML == "" {
		respondError(w, http.StatusBadRequest, "at least one of sender, subject, html is required")
		return
	}

	result := h.pipeline.Classify(r.Context(), engine.Input{
		Sender:  req.Sender,
		Subject: req.Subject,
		Preview: req.Preview,
		HTML:    req.HTML,
	})
	respondJSON(w, http.StatusOK, result)
}

// Analysis

type analyzeRequest struct {
	Subject      string    `json:"subject"`
	HTML         string    `json:"html"`
	Preview      string    `json:"preview"`
	CampaignType string    `json:"campaign_type"`
	Industry     string    `json:"industry"`
	ReceivedAt   time.Time `json:"received_at"`
}

// Analyze scores an email across the five quality dimensions
func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Subject == "" && req.HTML == "" {
		respondError(w, http.StatusBadRequest, "subject or html is required")
		return
	}

	report := analysis.Analyze(analysis.Input{
		Subject:      req.Subject,
		HTML:         req.HTML,
		Preview:      req.Preview,
		CampaignType: req.CampaignType,
		Industry:     req.Industry,
		ReceivedAt:   req.ReceivedAt,
	})
	respondJSON(w, http.StatusOK, report)
}

// Brand classification overrides

type overrideRequest struct {
	Industry   string  `json:"industry"`
	Confidence float64 `json:"confidence"`
}

// GetBrandClassification returns the cached classification for a brand
func (h *Handlers) GetBrandClassification(w http.ResponseWriter, r *http.Request) {
	brand := chi.URLParam(r, "name")
	entry, err := h.cache.Get(r.Context(), brand)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "cache lookup failed")
		return
	}
	if entry == nil {
		respondError(w, http.StatusNotFound, "brand not classified")
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

// PutBrandClassification stores a manual industry override for a brand.
// Manual entries survive every later automatic reclassification.
func (h *Handlers) PutBrandClassification(w http.ResponseWriter, r *http.Request) {
	brand := chi.URLParam(r, "name")
	var req overrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !taxonomy.ValidIndustry(req.Industry) {
		respondError(w, http.StatusBadRequest, "unknown industry: "+req.Industry)
		return
	}

	entry := brandcache.Entry{
		BrandName:  brand,
		Industry:   taxonomy.Industry(req.Industry),
		Confidence: req.Confidence,
	}
	if err := h.cache.PutManual(r.Context(), entry); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to store override")
		return
	}

	stored, err := h.cache.Get(r.Context(), brand)
	if err != nil || stored == nil {
		respondError(w, http.StatusInternalServerError, "failed to read back override")
		return
	}
	respondJSON(w, http.StatusOK, stored)
}

// DeleteBrandClassification removes a brand's cached classification
func (h *Handlers) DeleteBrandClassification(w http.ResponseWriter, r *http.Request) {
	brand := chi.URLParam(r, "name")
	if err := h.cache.Delete(r.Context(), brand); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete classification")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted", "brand": brand})
}

// ListBrandClassifications returns every cached brand classification
func (h *Handlers) ListBrandClassifications(w http.ResponseWriter, r *http.Request) {
	entries, err := h.cache.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "cache list failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(entries),
		"entries": entries,
	})
}

// Taxonomy

// GetTaxonomy returns the closed industry and campaign-type vocabularies
func (h *Handlers) GetTaxonomy(w http.ResponseWriter, r *http.Request) {
	industries := make(map[string][]string)
	for _, ind := range taxonomy.Industries() {
		industries[string(ind)] = taxonomy.Subcategories(ind)
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"industries":     industries,
		"campaign_types": taxonomy.CampaignTypes(),
	})
}

// Emails

// GetEmail returns one stored email with its classification
func (h *Handlers) GetEmail(w http.ResponseWriter, r *http.Request) {
	if h.emails == nil {
		respondError(w, http.StatusServiceUnavailable, "database not configured")
		return
	}
	email, err := h.emails.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, postgres.ErrEmailNotFound) {
		respondError(w, http.StatusNotFound, "email not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "email lookup failed")
		return
	}
	respondJSON(w, http.StatusOK, email)
}

// ListEmails returns stored emails, optionally filtered by brand or industry
func (h *Handlers) ListEmails(w http.ResponseWriter, r *http.Request) {
	if h.emails == nil {
		respondError(w, http.StatusServiceUnavailable, "database not configured")
		return
	}
	q := r.URL.Query()
	emails, err := h.emails.List(r.Context(), postgres.EmailFilter{
		Brand:    q.Get("brand"),
		Industry: q.Get("industry"),
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "email list failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count":  len(emails),
		"emails": emails,
	})
}
