// Package classify implements the deterministic industry and campaign-type
// classifiers plus their AI fallback orchestration. Deterministic passes run
// first and short-circuit; the AI is consulted only when they come up empty.
// When no pass qualifies the classifiers report not-classified rather than
// guessing: an absent label is an explicit outcome, distinct from an error.
package classify

import "github.com/mailprism/mailprism/internal/taxonomy"

// Content is the classification input for one email.
type Content struct {
	Brand   string
	Sender  string
	Subject string
	Preview string
	// Body is the visible text of the HTML body, already stripped of markup.
	Body string
}

// LabelSource records which pass produced an industry label.
type LabelSource string

const (
	SourceMapping LabelSource = "mapping"
	SourceFuzzy   LabelSource = "fuzzy"
	SourceCache   LabelSource = "cache"
	SourceAI      LabelSource = "ai"
	SourceKeyword LabelSource = "keyword"
)

// IndustryLabel is the outcome of an industry classification.
type IndustryLabel struct {
	Industry    taxonomy.Industry
	Subcategory string
	Confidence  float64
	Source      LabelSource
}

// IndustryConfig tunes the industry classifier. Zero values take the
// production defaults.
type IndustryConfig struct {
	// MinKeywordScore is the minimum weighted keyword score for the content
	// fallback to commit to an industry.
	MinKeywordScore int
	// AmbiguityRatio rejects the keyword result when the runner-up scores more
	// than this fraction of the winner.
	AmbiguityRatio float64
	// FuzzyMinSubstring is the minimum length for a substring fuzzy match
	// against the brand mapping table.
	FuzzyMinSubstring int
	// SharedWordMinLen is the minimum word length for the shared-word fuzzy
	// tier.
	SharedWordMinLen int
}

func (c IndustryConfig) withDefaults() IndustryConfig {
	if c.MinKeywordScore <= 0 {
		c.MinKeywordScore = 4
	}
	if c.AmbiguityRatio <= 0 {
		c.AmbiguityRatio = 0.7
	}
	if c.FuzzyMinSubstring <= 0 {
		c.FuzzyMinSubstring = 4
	}
	if c.SharedWordMinLen <= 0 {
		c.SharedWordMinLen = 3
	}
	return c
}

// CampaignLabel is the outcome of a campaign-type classification.
type CampaignLabel struct {
	Type       taxonomy.CampaignType
	Confidence float64
	Source     LabelSource
	// Score is the winning keyword score; zero for non-keyword sources.
	Score int
}

// CampaignConfig tunes the campaign classifier.
type CampaignConfig struct {
	// SubjectWeight, PreviewWeight, and BodyWeight multiply a keyword hit by
	// where it appeared. Subject carries the clearest intent.
	SubjectWeight int
	PreviewWeight int
	BodyWeight    int
}

func (c CampaignConfig) withDefaults() CampaignConfig {
	if c.SubjectWeight <= 0 {
		c.SubjectWeight = 5
	}
	if c.PreviewWeight <= 0 {
		c.PreviewWeight = 2
	}
	if c.BodyWeight <= 0 {
		c.BodyWeight = 1
	}
	return c
}
