package classify

import (
	"context"
	"errors"
	"log"

	"github.com/mailprism/mailprism/internal/ai"
	"github.com/mailprism/mailprism/internal/brandcache"
	"github.com/mailprism/mailprism/internal/taxonomy"
	"github.com/mailprism/mailprism/internal/textnorm"
)

// IndustryClassifier resolves a brand to an industry and subcategory. Passes
// run cheapest-first: manual cache entry, exact mapping, fuzzy mapping, cached
// automatic result, AI, then weighted keywords. Any of cache and aic may be
// nil; the corresponding passes are skipped.
type IndustryClassifier struct {
	mapping *IndustryMap
	cache   brandcache.Store
	aic     ai.Classifier
	cfg     IndustryConfig
}

// NewIndustryClassifier builds a classifier. A nil mapping uses the built-in
// brand table.
func NewIndustryClassifier(mapping *IndustryMap, cache brandcache.Store, aic ai.Classifier, cfg IndustryConfig) *IndustryClassifier {
	if mapping == nil {
		mapping = DefaultIndustryMap()
	}
	return &IndustryClassifier{mapping: mapping, cache: cache, aic: aic, cfg: cfg.withDefaults()}
}

// Classify labels the content's brand. It never returns an error: every
// failure mode degrades to a lower-confidence pass. When no pass qualifies
// the second return is false and the label is the zero value; callers treat
// that as "not classified", never as a low-confidence guess.
func (c *IndustryClassifier) Classify(ctx context.Context, content Content) (IndustryLabel, bool) {
	brandKey := textnorm.NormalizeBrandKey(content.Brand)
	knownBrand := brandKey != "" && content.Brand != "Unknown"

	var cached *brandcache.Entry
	if knownBrand && c.cache != nil {
		e, err := c.cache.Get(ctx, content.Brand)
		if err != nil {
			log.Printf("classify: cache get %q: %v", content.Brand, err)
		} else {
			cached = e
		}
		// A manual override beats every automatic pass, including the exact
		// mapping table.
		if cached != nil && cached.ClassifiedBy == brandcache.ProvenanceManual {
			if lbl, ok := cacheLabel(cached); ok {
				return lbl, true
			}
		}
	}

	if knownBrand {
		if m, ok := c.mapping.Exact(brandKey); ok {
			c.remember(ctx, content.Brand, m.Industry, 1.0, brandcache.ProvenanceKeyword)
			return IndustryLabel{
				Industry:    m.Industry,
				Subcategory: m.Subcategory,
				Confidence:  1.0,
				Source:      SourceMapping,
			}, true
		}
		if m, ok := c.mapping.Fuzzy(brandKey, c.cfg.FuzzyMinSubstring, c.cfg.SharedWordMinLen); ok {
			return IndustryLabel{
				Industry:    m.Industry,
				Subcategory: m.Subcategory,
				Confidence:  0.9,
				Source:      SourceFuzzy,
			}, true
		}
		if cached != nil {
			if lbl, ok := cacheLabel(cached); ok {
				return lbl, true
			}
		}
	}

	if knownBrand && c.aic != nil {
		res, err := c.aic.ClassifyBrand(ctx, ai.BrandInput{
			Brand:   content.Brand,
			Subject: content.Subject,
			Preview: content.Preview,
		})
		switch {
		case err == nil:
			c.remember(ctx, content.Brand, res.Industry, res.Confidence, brandcache.ProvenanceAI)
			return IndustryLabel{
				Industry:    res.Industry,
				Subcategory: res.Subcategory,
				Confidence:  res.Confidence,
				Source:      SourceAI,
			}, true
		case errors.Is(err, ai.ErrUnavailable):
			log.Printf("classify: ai unavailable for %q, using keyword fallback", content.Brand)
		default:
			log.Printf("classify: ai classify %q: %v", content.Brand, err)
		}
	}

	if lbl, ok := c.keywordFallback(content); ok {
		return lbl, true
	}

	return IndustryLabel{}, false
}

// keywordFallback scores every industry's vocabulary against the subject and
// body. Subject hits count double. The result is accepted only when the
// winner clears MinKeywordScore and the runner-up is not within
// AmbiguityRatio of it.
func (c *IndustryClassifier) keywordFallback(content Content) (IndustryLabel, bool) {
	subject := newTextIndex(content.Subject)
	body := newTextIndex(content.Preview + " " + content.Body)

	var best, second int
	var bestIndustry taxonomy.Industry
	for _, industry := range taxonomy.Industries() {
		score := 0
		for kw, weight := range industryKeywords[industry] {
			if subject.contains(kw) {
				score += weight * 2
			}
			if body.contains(kw) {
				score += weight
			}
		}
		if score > best {
			second = best
			best = score
			bestIndustry = industry
		} else if score > second {
			second = score
		}
	}

	if best < c.cfg.MinKeywordScore {
		return IndustryLabel{}, false
	}
	if float64(second) > c.cfg.AmbiguityRatio*float64(best) {
		return IndustryLabel{}, false
	}

	conf := 0.5 + float64(best-c.cfg.MinKeywordScore)*0.05
	if conf > 0.85 {
		conf = 0.85
	}
	return IndustryLabel{
		Industry:    bestIndustry,
		Subcategory: taxonomy.SubcategoryOthers,
		Confidence:  conf,
		Source:      SourceKeyword,
	}, true
}

func (c *IndustryClassifier) remember(ctx context.Context, brand string, industry taxonomy.Industry, conf float64, by brandcache.Provenance) {
	if c.cache == nil {
		return
	}
	err := c.cache.Put(ctx, brandcache.Entry{
		BrandName:    brand,
		Industry:     industry,
		Confidence:   conf,
		ClassifiedBy: by,
	})
	if err != nil {
		log.Printf("classify: cache put %q: %v", brand, err)
	}
}

// cacheLabel converts a cache entry to a label, applying legacy industry
// renames and rejecting anything outside the current taxonomy.
func cacheLabel(e *brandcache.Entry) (IndustryLabel, bool) {
	name := string(e.Industry)
	if renamed, ok := taxonomy.LegacyIndustryRenames[name]; ok {
		name = string(renamed)
	}
	if !taxonomy.ValidIndustry(name) {
		return IndustryLabel{}, false
	}
	return IndustryLabel{
		Industry:    taxonomy.Industry(name),
		Subcategory: taxonomy.SubcategoryOthers,
		Confidence:  e.Confidence,
		Source:      SourceCache,
	}, true
}
