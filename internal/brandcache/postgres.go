package brandcache

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mailprism/mailprism/internal/taxonomy"
)

// PostgresStore persists brand classifications in the brand_classifications
// table. The manual-provenance protection is enforced inside the UPSERT
// (conditional DO UPDATE), so concurrent automatic writers can race freely
// with last-writer-wins semantics while manual rows stay untouched.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a store over an open database handle.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Schema is the DDL for the brand_classifications table. Applied by the
// migration tooling, kept here so the store and its table stay in one file.
const Schema = `
CREATE TABLE IF NOT EXISTS brand_classifications (
	brand_key     TEXT PRIMARY KEY,
	brand_name    TEXT NOT NULL,
	industry      TEXT NOT NULL,
	confidence    DOUBLE PRECISION NOT NULL CHECK (confidence >= 0 AND confidence <= 1),
	classified_by TEXT NOT NULL CHECK (classified_by IN ('keyword', 'ai', 'manual')),
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// EnsureSchema creates the table when missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, Schema)
	return err
}

// Get returns the entry for a brand, or (nil, nil) when absent.
func (s *PostgresStore) Get(ctx context.Context, brandName string) (*Entry, error) {
	query := `SELECT brand_name, industry, confidence, classified_by, created_at, updated_at
		FROM brand_classifications WHERE brand_key = $1`

	var e Entry
	var industry, classifiedBy string
	err := s.db.QueryRowContext(ctx, query, Key(brandName)).Scan(
		&e.BrandName, &industry, &e.Confidence, &classifiedBy, &e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("brandcache: get %q: %w", brandName, err)
	}
	e.Industry = taxonomy.Industry(industry)
	e.ClassifiedBy = Provenance(classifiedBy)
	return &e, nil
}

// Put writes an automatic classification. The conditional DO UPDATE skips the
// write when the stored row is manual; no error is surfaced for the skip.
func (s *PostgresStore) Put(ctx context.Context, e Entry) error {
	query := `INSERT INTO brand_classifications
			(brand_key, brand_name, industry, confidence, classified_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		ON CONFLICT (brand_key) DO UPDATE
		SET brand_name = EXCLUDED.brand_name,
			industry = EXCLUDED.industry,
			confidence = EXCLUDED.confidence,
			classified_by = EXCLUDED.classified_by,
			updated_at = now()
		WHERE brand_classifications.classified_by <> 'manual'`

	_, err := s.db.ExecContext(ctx, query,
		Key(e.BrandName), e.BrandName, string(e.Industry), clampConfidence(e.Confidence), string(e.ClassifiedBy))
	if err != nil {
		return fmt.Errorf("brandcache: put %q: %w", e.BrandName, err)
	}
	return nil
}

// PutManual writes a manual override, replacing any stored row.
func (s *PostgresStore) PutManual(ctx context.Context, e Entry) error {
	query := `INSERT INTO brand_classifications
			(brand_key, brand_name, industry, confidence, classified_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'manual', now(), now())
		ON CONFLICT (brand_key) DO UPDATE
		SET brand_name = EXCLUDED.brand_name,
			industry = EXCLUDED.industry,
			confidence = EXCLUDED.confidence,
			classified_by = 'manual',
			updated_at = now()`

	_, err := s.db.ExecContext(ctx, query,
		Key(e.BrandName), e.BrandName, string(e.Industry), clampConfidence(e.Confidence))
	if err != nil {
		return fmt.Errorf("brandcache: put manual %q: %w", e.BrandName, err)
	}
	return nil
}

// Delete removes a brand's row. Missing rows are not an error.
func (s *PostgresStore) Delete(ctx context.Context, brandName string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM brand_classifications WHERE brand_key = $1`, Key(brandName))
	if err != nil {
		return fmt.Errorf("brandcache: delete %q: %w", brandName, err)
	}
	return nil
}

// List returns every stored entry ordered by brand name.
func (s *PostgresStore) List(ctx context.Context) ([]Entry, error) {
	query := `SELECT brand_name, industry, confidence, classified_by, created_at, updated_at
		FROM brand_classifications ORDER BY brand_name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("brandcache: list: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var industry, classifiedBy string
		if err := rows.Scan(&e.BrandName, &industry, &e.Confidence, &classifiedBy, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("brandcache: scan: %w", err)
		}
		e.Industry = taxonomy.Industry(industry)
		e.ClassifiedBy = Provenance(classifiedBy)
		out = append(out, e)
	}
	return out, rows.Err()
}

var _ Store = (*PostgresStore)(nil)
