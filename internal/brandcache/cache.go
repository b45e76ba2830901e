// Package brandcache stores brand → industry classification results so the
// expensive passes (AI, content scoring) run once per brand, not once per
// email. Entries carry provenance; a manual correction is protected from
// being overwritten by any automatic writer.
package brandcache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/mailprism/mailprism/internal/taxonomy"
)

// Provenance records which kind of writer produced a cache entry.
type Provenance string

const (
	ProvenanceKeyword Provenance = "keyword"
	ProvenanceAI      Provenance = "ai"
	ProvenanceManual  Provenance = "manual"
)

// Entry is one cached brand classification. BrandName is the unique key,
// matched case-insensitively. Confidence is always within [0,1].
type Entry struct {
	BrandName    string            `json:"brand_name"`
	Industry     taxonomy.Industry `json:"industry"`
	Confidence   float64           `json:"confidence"`
	ClassifiedBy Provenance        `json:"classified_by"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// Store is the cache contract. Get returns (nil, nil) on a miss.
//
// Put is the automatic write path: when the stored entry's provenance is
// manual the write is silently skipped; callers still hold the freshly
// computed value for their own response, but the human correction stays put.
// The skip must be race-safe (conditional update, not read-then-write).
// PutManual is the explicit override path and replaces anything.
type Store interface {
	Get(ctx context.Context, brandName string) (*Entry, error)
	Put(ctx context.Context, e Entry) error
	PutManual(ctx context.Context, e Entry) error
	Delete(ctx context.Context, brandName string) error
	List(ctx context.Context) ([]Entry, error)
}

// Key normalizes a brand name into its case-insensitive cache key.
func Key(brandName string) string {
	return strings.ToLower(strings.TrimSpace(brandName))
}

func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// MemoryStore is an in-process Store for tests and cacheless deployments.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

// Get returns the entry for a brand, or (nil, nil) when absent.
func (m *MemoryStore) Get(_ context.Context, brandName string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[Key(brandName)]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// Put writes an automatic classification, skipping manual-provenance entries.
// The check and write happen under one lock so two concurrent automatic
// writers cannot both conclude the stored entry is non-manual.
func (m *MemoryStore) Put(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := Key(e.BrandName)
	if cur, ok := m.entries[key]; ok && cur.ClassifiedBy == ProvenanceManual {
		return nil
	}
	m.store(key, e)
	return nil
}

// PutManual writes a manual override, replacing whatever is stored.
func (m *MemoryStore) PutManual(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ClassifiedBy = ProvenanceManual
	m.store(Key(e.BrandName), e)
	return nil
}

func (m *MemoryStore) store(key string, e Entry) {
	now := time.Now().UTC()
	e.Confidence = clampConfidence(e.Confidence)
	if cur, ok := m.entries[key]; ok {
		e.CreatedAt = cur.CreatedAt
	} else {
		e.CreatedAt = now
	}
	e.UpdatedAt = now
	m.entries[key] = e
}

// Delete removes a brand's entry. Deleting a missing entry is not an error.
func (m *MemoryStore) Delete(_ context.Context, brandName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, Key(brandName))
	return nil
}

// List returns every stored entry in unspecified order.
func (m *MemoryStore) List(_ context.Context) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	return out, nil
}
