// Package engine runs the full classification pipeline for one email: brand
// extraction, industry classification, and campaign-type classification, in
// that order. Each stage feeds the next; all of them are deterministic-first
// with the AI as an optional fallback.
package engine

import (
	"context"

	"github.com/mailprism/mailprism/internal/ai"
	"github.com/mailprism/mailprism/internal/brand"
	"github.com/mailprism/mailprism/internal/brandcache"
	"github.com/mailprism/mailprism/internal/classify"
	"github.com/mailprism/mailprism/internal/textnorm"
)

// Input is one raw email to classify.
type Input struct {
	Sender  string
	Subject string
	Preview string
	HTML    string
}

// Result is the combined classification. Industry and campaign fields are
// empty when the corresponding classifier could not qualify a label; they are
// omitted from JSON rather than filled with a guess.
type Result struct {
	Brand          string  `json:"brand"`
	Industry       string  `json:"industry,omitempty"`
	Subcategory    string  `json:"subcategory,omitempty"`
	CampaignType   string  `json:"campaign_type,omitempty"`
	Confidence     float64 `json:"confidence,omitempty"`
	IndustrySource string  `json:"industry_source,omitempty"`
	CampaignSource string  `json:"campaign_source,omitempty"`
}

// Pipeline wires the three classifiers together.
type Pipeline struct {
	extractor *brand.Extractor
	industry  *classify.IndustryClassifier
	campaign  *classify.CampaignClassifier
}

// Options configures New. Cache and AI may be nil; the pipeline stays fully
// functional on its deterministic passes.
type Options struct {
	Cache          brandcache.Store
	AI             ai.Classifier
	IndustryConfig classify.IndustryConfig
	CampaignConfig classify.CampaignConfig
}

// New builds a pipeline with the default brand table and industry mapping.
func New(opts Options) *Pipeline {
	return &Pipeline{
		extractor: brand.NewExtractor(nil),
		industry:  classify.NewIndustryClassifier(nil, opts.Cache, opts.AI, opts.IndustryConfig),
		campaign:  classify.NewCampaignClassifier(opts.AI, opts.CampaignConfig),
	}
}

// Classify runs all three stages. It never returns an error; a classifier
// that cannot qualify a label leaves its result fields empty.
func (p *Pipeline) Classify(ctx context.Context, in Input) Result {
	brandName := p.extractor.Extract(in.Sender, in.HTML, in.Subject)

	content := classify.Content{
		Brand:   brandName,
		Sender:  in.Sender,
		Subject: in.Subject,
		Preview: in.Preview,
		Body:    textnorm.VisibleText(in.HTML, textnorm.DefaultVisibleTextCap),
	}

	res := Result{Brand: brandName}
	if ind, ok := p.industry.Classify(ctx, content); ok {
		res.Industry = string(ind.Industry)
		res.Subcategory = ind.Subcategory
		res.Confidence = ind.Confidence
		res.IndustrySource = string(ind.Source)
	}
	if camp, ok := p.campaign.Classify(ctx, content); ok {
		res.CampaignType = string(camp.Type)
		res.CampaignSource = string(camp.Source)
	}
	return res
}
