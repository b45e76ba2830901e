package classify

import (
	"context"
	"log"
	"regexp"
	"strings"

	"github.com/mailprism/mailprism/internal/ai"
	"github.com/mailprism/mailprism/internal/taxonomy"
)

// percentOffRe matches explicit discount figures ("50% OFF", "Flat 40% off",
// "UP TO 70%"). A subject carrying one is a sale announcement unless the mail
// is actually asking for a product rating.
var percentOffRe = regexp.MustCompile(`(?i)\b(?:up\s*to\s*)?\d{1,2}\s*%(?:\s*off)?`)

var ratingVocab = []string{"review", "rating", "rate your", "feedback", "survey"}

// CampaignClassifier labels an email with one campaign type. Keyword scoring
// runs first; the AI is a fallback for emails whose vocabulary matches
// nothing.
type CampaignClassifier struct {
	aic ai.Classifier
	cfg CampaignConfig
}

func NewCampaignClassifier(aic ai.Classifier, cfg CampaignConfig) *CampaignClassifier {
	return &CampaignClassifier{aic: aic, cfg: cfg.withDefaults()}
}

// Classify picks the campaign type for the content. It never errors; when no
// rule qualifies and the AI cannot answer, the second return is false and the
// email stays unlabeled.
func (c *CampaignClassifier) Classify(ctx context.Context, content Content) (CampaignLabel, bool) {
	if isSaleSubject(content.Subject) {
		return CampaignLabel{Type: taxonomy.CampaignSale, Confidence: 0.95, Source: SourceKeyword}, true
	}

	if lbl, ok := c.scoreRules(content); ok {
		return lbl, true
	}

	if c.aic != nil && content.Subject != "" {
		res, err := c.aic.ClassifyCampaign(ctx, ai.CampaignInput{
			Subject: content.Subject,
			Preview: content.Preview,
			Brand:   content.Brand,
		})
		if err == nil {
			return CampaignLabel{Type: res.CampaignType, Confidence: res.Confidence, Source: SourceAI}, true
		}
		log.Printf("classify: ai campaign: %v", err)
	}

	return CampaignLabel{}, false
}

// isSaleSubject is the fast path: a concrete percentage in the subject line
// settles the question, except when the subject is soliciting a review
// ("Rate your order, get 10% off").
func isSaleSubject(subject string) bool {
	if !percentOffRe.MatchString(subject) {
		return false
	}
	lower := strings.ToLower(subject)
	for _, v := range ratingVocab {
		if strings.Contains(lower, v) {
			return false
		}
	}
	return true
}

// scoreRules scores every campaign rule across the three text fields and
// applies the priority override: among the rules clearing their thresholds,
// the highest-priority one wins as long as it holds at least half the top
// score. That lets two transactional keywords beat six generic marketing
// words, without letting a single stray "welcome" beat a wall of sale copy.
func (c *CampaignClassifier) scoreRules(content Content) (CampaignLabel, bool) {
	subject := newTextIndex(content.Subject)
	preview := newTextIndex(content.Preview)
	body := newTextIndex(content.Body)

	scores := make([]int, len(campaignRules))
	maxQualifying := 0
	for i, rule := range campaignRules {
		score := 0
		for _, kw := range rule.Keywords {
			if subject.contains(kw) {
				score += c.cfg.SubjectWeight
			}
			if preview.contains(kw) {
				score += c.cfg.PreviewWeight
			}
			if body.contains(kw) {
				score += c.cfg.BodyWeight
			}
		}
		scores[i] = score
		if score >= rule.Threshold && score > maxQualifying {
			maxQualifying = score
		}
	}
	if maxQualifying == 0 {
		return CampaignLabel{}, false
	}

	for i, rule := range campaignRules {
		if scores[i] >= rule.Threshold && scores[i]*2 >= maxQualifying {
			return CampaignLabel{
				Type:       rule.Type,
				Confidence: campaignConfidence(scores[i]),
				Source:     SourceKeyword,
				Score:      scores[i],
			}, true
		}
	}
	return CampaignLabel{}, false
}

func campaignConfidence(score int) float64 {
	conf := 0.6 + float64(score)*0.03
	if conf > 0.95 {
		conf = 0.95
	}
	return conf
}
