package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mailprism/mailprism/internal/domain"
)

// ErrEmailNotFound is returned when an email id does not exist.
var ErrEmailNotFound = errors.New("email not found")

// EmailRepo stores ingested emails and their classification labels.
type EmailRepo struct{ db *sql.DB }

// NewEmailRepo creates a Postgres-backed email repository.
func NewEmailRepo(db *sql.DB) *EmailRepo { return &EmailRepo{db: db} }

// EmailSchema creates the emails table.
const EmailSchema = `
CREATE TABLE IF NOT EXISTS emails (
	id            UUID PRIMARY KEY,
	sender        TEXT NOT NULL DEFAULT '',
	sender_email  TEXT NOT NULL DEFAULT '',
	subject       TEXT NOT NULL DEFAULT '',
	preview       TEXT NOT NULL DEFAULT '',
	html_body     TEXT NOT NULL DEFAULT '',
	brand         TEXT NOT NULL DEFAULT '',
	industry      TEXT NOT NULL DEFAULT '',
	subcategory   TEXT NOT NULL DEFAULT '',
	campaign_type TEXT NOT NULL DEFAULT '',
	confidence    DOUBLE PRECISION NOT NULL DEFAULT 0,
	classified_by TEXT NOT NULL DEFAULT '',
	received_at   TIMESTAMPTZ,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_emails_brand ON emails (brand);
CREATE INDEX IF NOT EXISTS idx_emails_industry ON emails (industry);
`

// EnsureSchema creates the emails table if it is missing.
func (r *EmailRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, EmailSchema); err != nil {
		return fmt.Errorf("ensure emails schema: %w", err)
	}
	return nil
}

// Insert stores a new email. A missing ID gets a fresh UUID; the assigned ID
// is written back to e.
func (r *EmailRepo) Insert(ctx context.Context, e *domain.Email) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO emails (id, sender, sender_email, subject, preview, html_body,
		                    brand, industry, subcategory, campaign_type,
		                    confidence, classified_by, received_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
	`, e.ID, e.Sender, e.SenderEmail, e.Subject, e.Preview, e.HTMLBody,
		e.Brand, e.Industry, e.Subcategory, e.CampaignType,
		e.Confidence, e.ClassifiedBy, nullTime(e.ReceivedAt), now)
	if err != nil {
		return fmt.Errorf("insert email: %w", err)
	}
	e.CreatedAt = now
	e.UpdatedAt = now
	return nil
}

// Get fetches one email by id, body included.
func (r *EmailRepo) Get(ctx context.Context, id string) (*domain.Email, error) {
	e := &domain.Email{}
	var received sql.NullTime
	err := r.db.QueryRowContext(ctx, `
		SELECT id, sender, sender_email, subject, preview, html_body,
		       brand, industry, subcategory, campaign_type,
		       confidence, classified_by, received_at, created_at, updated_at
		FROM emails
		WHERE id = $1
	`, id).Scan(
		&e.ID, &e.Sender, &e.SenderEmail, &e.Subject, &e.Preview, &e.HTMLBody,
		&e.Brand, &e.Industry, &e.Subcategory, &e.CampaignType,
		&e.Confidence, &e.ClassifiedBy, &received, &e.CreatedAt, &e.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrEmailNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get email: %w", err)
	}
	if received.Valid {
		e.ReceivedAt = received.Time
	}
	return e, nil
}

// EmailFilter narrows List results.
type EmailFilter struct {
	Brand    string
	Industry string
	Limit    int
	Offset   int
}

// List returns emails newest-first, without bodies.
func (r *EmailRepo) List(ctx context.Context, f EmailFilter) ([]domain.Email, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}

	q := `
		SELECT id, sender, sender_email, subject, preview,
		       brand, industry, subcategory, campaign_type,
		       confidence, classified_by, received_at, created_at, updated_at
		FROM emails
		WHERE 1=1`
	args := []interface{}{}
	idx := 1
	if f.Brand != "" {
		q += fmt.Sprintf(" AND brand = $%d", idx)
		args = append(args, f.Brand)
		idx++
	}
	if f.Industry != "" {
		q += fmt.Sprintf(" AND industry = $%d", idx)
		args = append(args, f.Industry)
		idx++
	}
	q += fmt.Sprintf(" ORDER BY received_at DESC NULLS LAST LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, f.Offset)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list emails: %w", err)
	}
	defer rows.Close()

	var out []domain.Email
	for rows.Next() {
		var e domain.Email
		var received sql.NullTime
		if err := rows.Scan(
			&e.ID, &e.Sender, &e.SenderEmail, &e.Subject, &e.Preview,
			&e.Brand, &e.Industry, &e.Subcategory, &e.CampaignType,
			&e.Confidence, &e.ClassifiedBy, &received, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan email: %w", err)
		}
		if received.Valid {
			e.ReceivedAt = received.Time
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// DistinctBrands returns every brand name that appears on at least one email.
func (r *EmailRepo) DistinctBrands(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT brand FROM emails WHERE brand <> '' ORDER BY brand
	`)
	if err != nil {
		return nil, fmt.Errorf("distinct brands: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var b string
		if err := rows.Scan(&b); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// UpdateClassification overwrites one email's labels.
func (r *EmailRepo) UpdateClassification(ctx context.Context, id string, e domain.Email) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE emails
		SET brand = $2, industry = $3, subcategory = $4, campaign_type = $5,
		    confidence = $6, classified_by = $7, updated_at = now()
		WHERE id = $1
	`, id, e.Brand, e.Industry, e.Subcategory, e.CampaignType, e.Confidence, e.ClassifiedBy)
	if err != nil {
		return fmt.Errorf("update classification: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrEmailNotFound
	}
	return nil
}

// RelabelBrand rewrites the industry labels on every email of one brand.
// Used by the batch reclassifier after a mapping or manual-override change.
func (r *EmailRepo) RelabelBrand(ctx context.Context, brand, industry, subcategory, classifiedBy string, confidence float64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE emails
		SET industry = $2, subcategory = $3, classified_by = $4,
		    confidence = $5, updated_at = now()
		WHERE brand = $1
	`, brand, industry, subcategory, classifiedBy, confidence)
	if err != nil {
		return 0, fmt.Errorf("relabel brand %q: %w", brand, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("relabel brand %q: %w", brand, err)
	}
	return n, nil
}

// RenameIndustry moves every email from an old industry label to its current
// name. Returns the number of rows touched.
func (r *EmailRepo) RenameIndustry(ctx context.Context, oldName, newName string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE emails SET industry = $2, updated_at = now() WHERE industry = $1
	`, oldName, newName)
	if err != nil {
		return 0, fmt.Errorf("rename industry %q: %w", oldName, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rename industry %q: %w", oldName, err)
	}
	return n, nil
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
