// Package ai defines the external AI classification capability and its AWS
// Bedrock implementation. The deterministic pipeline never depends on this
// package being configured: every caller treats an error as "AI unavailable"
// and falls back to its keyword result.
package ai

import (
	"context"
	"errors"

	"github.com/mailprism/mailprism/internal/taxonomy"
)

// ErrUnavailable is returned when the AI backend is not configured or not
// reachable. Callers fall back to deterministic classification.
var ErrUnavailable = errors.New("ai classifier unavailable")

// BrandInput is the context handed to the AI for a brand classification.
type BrandInput struct {
	Brand   string
	Subject string
	Preview string
}

// BrandResult is a validated AI brand classification. Every field has been
// coerced onto the closed taxonomy before the result leaves this package.
type BrandResult struct {
	Industry     taxonomy.Industry
	Subcategory  string
	CampaignType taxonomy.CampaignType
	Confidence   float64
}

// CampaignInput is the context for a campaign-type-only classification.
type CampaignInput struct {
	Subject string
	Preview string
	Brand   string
}

// CampaignResult is a validated AI campaign classification.
type CampaignResult struct {
	CampaignType taxonomy.CampaignType
	Confidence   float64
}

// Classifier is the injected AI capability. Implementations must validate
// their backend's output against the closed enums; callers trust the returned
// labels without re-checking.
type Classifier interface {
	ClassifyBrand(ctx context.Context, in BrandInput) (*BrandResult, error)
	ClassifyCampaign(ctx context.Context, in CampaignInput) (*CampaignResult, error)
}

// rawResult is the wire shape the model is prompted to emit.
type rawResult struct {
	Industry     string  `json:"industry"`
	Subcategory  string  `json:"subcategory"`
	CampaignType string  `json:"campaign_type"`
	Confidence   float64 `json:"confidence"`
}

const defaultConfidence = 0.8

// coerceBrandResult validates a raw model response against the closed enums,
// substituting documented defaults for anything invalid rather than trusting
// the model.
func coerceBrandResult(raw rawResult) BrandResult {
	out := BrandResult{
		Industry:     taxonomy.IndustryGeneral,
		Subcategory:  taxonomy.SubcategoryOthers,
		CampaignType: taxonomy.CampaignNewsletter,
		Confidence:   coerceConfidence(raw.Confidence),
	}
	if taxonomy.ValidIndustry(raw.Industry) {
		out.Industry = taxonomy.Industry(raw.Industry)
	}
	out.Subcategory = taxonomy.CoerceSubcategory(out.Industry, raw.Subcategory)
	if taxonomy.ValidCampaignType(raw.CampaignType) {
		out.CampaignType = taxonomy.CampaignType(raw.CampaignType)
	}
	return out
}

func coerceCampaignResult(raw rawResult) CampaignResult {
	out := CampaignResult{
		CampaignType: taxonomy.CampaignNewsletter,
		Confidence:   coerceConfidence(raw.Confidence),
	}
	if taxonomy.ValidCampaignType(raw.CampaignType) {
		out.CampaignType = taxonomy.CampaignType(raw.CampaignType)
	}
	return out
}

// coerceConfidence clamps an over-range confidence to 1 and substitutes the
// default for anything missing or non-positive.
func coerceConfidence(c float64) float64 {
	if c <= 0 {
		return defaultConfidence
	}
	if c > 1 {
		return 1
	}
	return c
}
