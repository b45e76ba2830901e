package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/mailprism/mailprism/internal/ai"
	"github.com/mailprism/mailprism/internal/brandcache"
	"github.com/mailprism/mailprism/internal/taxonomy"
)

// stubAI is a canned ai.Classifier for exercising the fallback paths.
type stubAI struct {
	brand    *ai.BrandResult
	campaign *ai.CampaignResult
	err      error
	calls    int
}

func (s *stubAI) ClassifyBrand(_ context.Context, _ ai.BrandInput) (*ai.BrandResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.brand, nil
}

func (s *stubAI) ClassifyCampaign(_ context.Context, _ ai.CampaignInput) (*ai.CampaignResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.campaign, nil
}

func TestIndustryExactMapping(t *testing.T) {
	cache := brandcache.NewMemoryStore()
	c := NewIndustryClassifier(nil, cache, nil, IndustryConfig{})

	got, ok := c.Classify(context.Background(), Content{Brand: "Sephora"})
	if !ok {
		t.Fatal("expected a classification")
	}
	if got.Industry != taxonomy.IndustryBeauty {
		t.Errorf("industry = %s, want Beauty", got.Industry)
	}
	if got.Subcategory != "Makeup / Cosmetics" {
		t.Errorf("subcategory = %s", got.Subcategory)
	}
	if got.Confidence != 1.0 || got.Source != SourceMapping {
		t.Errorf("confidence/source = %v/%v, want 1.0/mapping", got.Confidence, got.Source)
	}

	// Exact hits are remembered with keyword provenance.
	entry, err := cache.Get(context.Background(), "Sephora")
	if err != nil || entry == nil {
		t.Fatalf("expected cache entry after exact hit, got %v, %v", entry, err)
	}
	if entry.ClassifiedBy != brandcache.ProvenanceKeyword {
		t.Errorf("cache provenance = %s, want keyword", entry.ClassifiedBy)
	}
}

func TestIndustryMarketingSuffixStripped(t *testing.T) {
	c := NewIndustryClassifier(nil, nil, nil, IndustryConfig{})

	got, ok := c.Classify(context.Background(), Content{Brand: "CaratLane - A Tata Product"})
	if !ok {
		t.Fatal("expected a classification")
	}
	if got.Industry != taxonomy.IndustryApparel || got.Subcategory != "Jewelry" {
		t.Errorf("got %s / %s, want Apparel / Jewelry", got.Industry, got.Subcategory)
	}
	if got.Source != SourceMapping {
		t.Errorf("source = %s, want mapping", got.Source)
	}
}

func TestIndustryFuzzy(t *testing.T) {
	c := NewIndustryClassifier(nil, nil, nil, IndustryConfig{})

	got, ok := c.Classify(context.Background(), Content{Brand: "Allbirds Shoes"})
	if !ok {
		t.Fatal("expected a classification")
	}
	if got.Industry != taxonomy.IndustryApparel || got.Subcategory != "Footwear" {
		t.Errorf("got %s / %s, want Apparel / Footwear", got.Industry, got.Subcategory)
	}
	if got.Confidence != 0.9 || got.Source != SourceFuzzy {
		t.Errorf("confidence/source = %v/%v, want 0.9/fuzzy", got.Confidence, got.Source)
	}
}

func TestIndustryManualOverrideWins(t *testing.T) {
	cache := brandcache.NewMemoryStore()
	err := cache.PutManual(context.Background(), brandcache.Entry{
		BrandName:  "Sephora",
		Industry:   taxonomy.IndustryPets,
		Confidence: 1.0,
	})
	if err != nil {
		t.Fatal(err)
	}

	c := NewIndustryClassifier(nil, cache, nil, IndustryConfig{})
	got, ok := c.Classify(context.Background(), Content{Brand: "Sephora"})
	if !ok {
		t.Fatal("expected a classification")
	}

	// The manual entry beats the exact mapping table.
	if got.Industry != taxonomy.IndustryPets {
		t.Errorf("industry = %s, want the manual override", got.Industry)
	}
	if got.Source != SourceCache {
		t.Errorf("source = %s, want cache", got.Source)
	}
}

func TestIndustryCachedAutomaticResult(t *testing.T) {
	cache := brandcache.NewMemoryStore()
	err := cache.Put(context.Background(), brandcache.Entry{
		BrandName:    "Glossier",
		Industry:     taxonomy.IndustryBeauty,
		Confidence:   0.8,
		ClassifiedBy: brandcache.ProvenanceAI,
	})
	if err != nil {
		t.Fatal(err)
	}

	c := NewIndustryClassifier(nil, cache, nil, IndustryConfig{})
	got, ok := c.Classify(context.Background(), Content{Brand: "Glossier"})
	if !ok {
		t.Fatal("expected a classification")
	}
	if got.Industry != taxonomy.IndustryBeauty || got.Source != SourceCache {
		t.Errorf("got %s via %s, want Beauty via cache", got.Industry, got.Source)
	}
}

func TestIndustryAIFallback(t *testing.T) {
	cache := brandcache.NewMemoryStore()
	stub := &stubAI{brand: &ai.BrandResult{
		Industry:    taxonomy.IndustryTravel,
		Subcategory: "Luggage & Travel Accessories",
		Confidence:  0.92,
	}}

	c := NewIndustryClassifier(nil, cache, stub, IndustryConfig{})
	got, ok := c.Classify(context.Background(), Content{Brand: "Awayluggage"})
	if !ok {
		t.Fatal("expected a classification")
	}

	if got.Industry != taxonomy.IndustryTravel || got.Source != SourceAI {
		t.Errorf("got %s via %s, want Travel via ai", got.Industry, got.Source)
	}
	if got.Confidence != 0.92 {
		t.Errorf("confidence = %v, want 0.92", got.Confidence)
	}

	entry, _ := cache.Get(context.Background(), "Awayluggage")
	if entry == nil || entry.ClassifiedBy != brandcache.ProvenanceAI {
		t.Errorf("AI result should be cached with ai provenance, got %+v", entry)
	}
}

func TestIndustryAIUnavailableDegradesToKeywords(t *testing.T) {
	stub := &stubAI{err: ai.ErrUnavailable}
	c := NewIndustryClassifier(nil, nil, stub, IndustryConfig{})

	got, ok := c.Classify(context.Background(), Content{
		Brand:   "Somegym",
		Subject: "Your workout and protein plan",
		Body:    "fitness yoga supplements nutrition",
	})
	if !ok {
		t.Fatal("expected a classification")
	}
	if got.Industry != taxonomy.IndustryHealth || got.Source != SourceKeyword {
		t.Errorf("got %s via %s, want Health via keyword", got.Industry, got.Source)
	}
	if stub.calls != 1 {
		t.Errorf("AI called %d times, want 1", stub.calls)
	}
}

func TestIndustryAIErrorDoesNotPropagate(t *testing.T) {
	stub := &stubAI{err: errors.New("boom")}
	c := NewIndustryClassifier(nil, nil, stub, IndustryConfig{})

	got, ok := c.Classify(context.Background(), Content{Brand: "Somebrand"})
	if ok {
		t.Errorf("expected no classification, got %s via %s", got.Industry, got.Source)
	}
}

func TestIndustryUnrecognizedBrandNotClassified(t *testing.T) {
	c := NewIndustryClassifier(nil, nil, nil, IndustryConfig{})

	// No mapping hit, no cache, no AI, and no qualifying keywords: the
	// classifier must report nothing rather than a low-confidence guess.
	got, ok := c.Classify(context.Background(), Content{
		Brand:   "Randomstartup",
		Subject: "Check out our stuff",
	})
	if ok {
		t.Errorf("expected no classification, got %s / %s via %s", got.Industry, got.Subcategory, got.Source)
	}
	if got != (IndustryLabel{}) {
		t.Errorf("unclassified label not zero: %+v", got)
	}
}

func TestIndustryKeywordScoreThreshold(t *testing.T) {
	c := NewIndustryClassifier(nil, nil, nil, IndustryConfig{})

	// One weak hit scores below the minimum.
	if got, ok := c.Classify(context.Background(), Content{Brand: "Unknown", Body: "hair"}); ok {
		t.Errorf("weak signal should stay unclassified, got %s via %s", got.Industry, got.Source)
	}
}

func TestIndustryAmbiguityGuard(t *testing.T) {
	c := NewIndustryClassifier(nil, nil, nil, IndustryConfig{})

	// Beauty and Apparel tie; the guard refuses to pick.
	got, ok := c.Classify(context.Background(), Content{
		Brand: "Unknown",
		Body:  "lipstick serum dress denim jeans",
	})
	if ok {
		t.Errorf("ambiguous content should stay unclassified, got %s via %s", got.Industry, got.Source)
	}
}

func TestIndustrySubjectCountsDouble(t *testing.T) {
	c := NewIndustryClassifier(nil, nil, nil, IndustryConfig{})

	// "skincare" in the subject alone scores 3*2=6, clearing the threshold.
	got, ok := c.Classify(context.Background(), Content{Brand: "Unknown", Subject: "Your skincare refill"})
	if !ok {
		t.Fatal("expected a classification")
	}
	if got.Industry != taxonomy.IndustryBeauty || got.Source != SourceKeyword {
		t.Errorf("got %s via %s, want Beauty via keyword", got.Industry, got.Source)
	}
}

func TestIndustryClassifyIdempotent(t *testing.T) {
	cache := brandcache.NewMemoryStore()
	c := NewIndustryClassifier(nil, cache, nil, IndustryConfig{})
	content := Content{Brand: "Pottery Barn"}

	first, firstOK := c.Classify(context.Background(), content)
	second, secondOK := c.Classify(context.Background(), content)
	if firstOK != secondOK || first.Industry != second.Industry || first.Subcategory != second.Subcategory {
		t.Errorf("classification not idempotent: %+v vs %+v", first, second)
	}
}
