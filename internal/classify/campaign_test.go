package classify

import (
	"context"
	"testing"

	"github.com/mailprism/mailprism/internal/ai"
	"github.com/mailprism/mailprism/internal/taxonomy"
)

func TestCampaignSaleFastPath(t *testing.T) {
	c := NewCampaignClassifier(nil, CampaignConfig{})

	tests := []string{
		"FLAT 50% OFF on everything",
		"Up to 70% off sitewide",
		"Last day: 40 % off",
	}
	for _, subject := range tests {
		got, ok := c.Classify(context.Background(), Content{Subject: subject})
		if !ok {
			t.Fatalf("Classify(%q): expected a classification", subject)
		}
		if got.Type != taxonomy.CampaignSale {
			t.Errorf("Classify(%q) = %s, want Sale", subject, got.Type)
		}
		if got.Confidence != 0.95 {
			t.Errorf("Classify(%q) confidence = %v, want 0.95", subject, got.Confidence)
		}
	}
}

func TestCampaignRatingBlocksFastPath(t *testing.T) {
	c := NewCampaignClassifier(nil, CampaignConfig{})

	// A review solicitation dangling a discount is feedback, not a sale.
	got, ok := c.Classify(context.Background(), Content{Subject: "Rate your experience, get 10% off"})
	if !ok {
		t.Fatal("expected a classification")
	}
	if got.Type == taxonomy.CampaignSale {
		t.Error("review solicitation misclassified as Sale")
	}
	if got.Type != taxonomy.CampaignFeedback {
		t.Errorf("got %s, want Feedback", got.Type)
	}
}

func TestCampaignOrderUpdate(t *testing.T) {
	c := NewCampaignClassifier(nil, CampaignConfig{})

	got, ok := c.Classify(context.Background(), Content{Subject: "Your order has shipped!"})
	if !ok {
		t.Fatal("expected a classification")
	}
	if got.Type != taxonomy.CampaignOrderUpdate {
		t.Errorf("got %s, want Order Update", got.Type)
	}
	if got.Source != SourceKeyword {
		t.Errorf("source = %s, want keyword", got.Source)
	}
}

func TestCampaignPriorityOverride(t *testing.T) {
	c := NewCampaignClassifier(nil, CampaignConfig{})

	// The body is wall-to-wall sale vocabulary, but the subject carries a
	// confirmation. Transactional intent wins despite the lower raw score.
	got, ok := c.Classify(context.Background(), Content{
		Subject: "Your order is confirmed",
		Body:    "sale deals save discount offer clearance",
	})
	if !ok {
		t.Fatal("expected a classification")
	}
	if got.Type != taxonomy.CampaignConfirmation {
		t.Errorf("got %s, want Confirmation", got.Type)
	}
}

func TestCampaignNewArrivalsNotTransactional(t *testing.T) {
	c := NewCampaignClassifier(nil, CampaignConfig{})

	got, ok := c.Classify(context.Background(), Content{Subject: "Shop our new arrivals"})
	if !ok {
		t.Fatal("expected a classification")
	}
	transactional := map[taxonomy.CampaignType]bool{
		taxonomy.CampaignConfirmation:  true,
		taxonomy.CampaignOrderUpdate:   true,
		taxonomy.CampaignAbandonedCart: true,
		taxonomy.CampaignWelcome:       true,
		taxonomy.CampaignFeedback:      true,
		taxonomy.CampaignBackInStock:   true,
	}
	if transactional[got.Type] {
		t.Errorf("promotional subject classified as transactional %s", got.Type)
	}
	if got.Type != taxonomy.CampaignNewArrival {
		t.Errorf("got %s, want New Arrival", got.Type)
	}
}

func TestCampaignGenericThreshold(t *testing.T) {
	c := NewCampaignClassifier(nil, CampaignConfig{})

	// Generic vocabulary in the body alone scores below the catch-all
	// threshold; the email stays unclassified.
	if got, ok := c.Classify(context.Background(), Content{Body: "discover our collection"}); ok {
		t.Errorf("got %s via %s, want no classification", got.Type, got.Source)
	}

	// The same words in the subject clear it.
	got, ok := c.Classify(context.Background(), Content{Subject: "Discover our collection"})
	if !ok {
		t.Fatal("expected a classification")
	}
	if got.Type != taxonomy.CampaignProductShowcase {
		t.Errorf("got %s, want Product Showcase", got.Type)
	}
}

func TestCampaignAIFallback(t *testing.T) {
	stub := &stubAI{campaign: &ai.CampaignResult{
		CampaignType: taxonomy.CampaignFestive,
		Confidence:   0.9,
	}}
	c := NewCampaignClassifier(stub, CampaignConfig{})

	got, ok := c.Classify(context.Background(), Content{Subject: "Lights, lanterns, and more"})
	if !ok {
		t.Fatal("expected a classification")
	}
	if got.Type != taxonomy.CampaignFestive || got.Source != SourceAI {
		t.Errorf("got %s via %s, want Festive via ai", got.Type, got.Source)
	}
}

func TestCampaignAIErrorLeavesUnclassified(t *testing.T) {
	stub := &stubAI{err: ai.ErrUnavailable}
	c := NewCampaignClassifier(stub, CampaignConfig{})

	// No rule matches the gibberish subject and the AI cannot answer; the
	// classifier must not fall back to a guessed type.
	got, ok := c.Classify(context.Background(), Content{Subject: "qwx zbl"})
	if ok {
		t.Errorf("got %s via %s, want no classification", got.Type, got.Source)
	}
	if got != (CampaignLabel{}) {
		t.Errorf("unclassified label not zero: %+v", got)
	}
}

func TestIsSaleSubject(t *testing.T) {
	tests := []struct {
		subject string
		want    bool
	}{
		{"FLAT 50% OFF", true},
		{"Up to 70%", true},
		{"Rate us and get 15% off", false},
		{"New collection inside", false},
		// Three-digit percentages are compositions, not discounts.
		{"100% cotton shirts", false},
	}
	for _, tt := range tests {
		if got := isSaleSubject(tt.subject); got != tt.want {
			t.Errorf("isSaleSubject(%q) = %v, want %v", tt.subject, got, tt.want)
		}
	}
}

func TestCampaignWordBoundaries(t *testing.T) {
	c := NewCampaignClassifier(nil, CampaignConfig{})

	// "remembering" must not fire the single-word keyword "member".
	if got, ok := c.Classify(context.Background(), Content{Body: "remembering the summer"}); ok {
		t.Errorf("got %s via %s, want no classification", got.Type, got.Source)
	}
}
