// Package analysis is the rule-based email quality scorer. It grades an email
// across five dimensions (subject, copy, CTA, design, strategy) from content
// alone; no network calls, fully deterministic.
package analysis

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// Dimension is one scored aspect of an email.
type Dimension struct {
	Score    int      `json:"score"`
	Grade    string   `json:"grade"`
	Findings []string `json:"findings"`
}

// Report is the full analysis of one email.
type Report struct {
	OverallScore int       `json:"overall_score"`
	OverallGrade string    `json:"overall_grade"`
	Subject      Dimension `json:"subject"`
	Copy         Dimension `json:"copy"`
	CTA          Dimension `json:"cta"`
	Design       Dimension `json:"design"`
	Strategy     Dimension `json:"strategy"`
}

// Input carries everything the analyzer looks at. CampaignType, Industry, and
// ReceivedAt are optional context from the classifier; the strategy dimension
// rewards their presence.
type Input struct {
	Subject      string
	HTML         string
	Preview      string
	CampaignType string
	Industry     string
	ReceivedAt   time.Time
}

// Dimension weights sum to 100; copy carries the most because it is the
// hardest signal to fake.
const (
	weightSubject  = 20
	weightCopy     = 25
	weightCTA      = 20
	weightDesign   = 15
	weightStrategy = 20
)

// Analyze scores the email and returns the weighted report.
func Analyze(in Input) Report {
	doc := parseHTML(in.HTML)

	r := Report{
		Subject:  scoreSubject(in.Subject),
		Copy:     scoreCopy(in.HTML, doc, in.Preview),
		CTA:      scoreCTA(in.HTML, doc),
		Design:   scoreDesign(in.HTML, doc),
		Strategy: scoreStrategy(in.CampaignType, in.Industry, in.ReceivedAt),
	}

	overall := float64(r.Subject.Score)*weightSubject +
		float64(r.Copy.Score)*weightCopy +
		float64(r.CTA.Score)*weightCTA +
		float64(r.Design.Score)*weightDesign +
		float64(r.Strategy.Score)*weightStrategy
	r.OverallScore = int(overall/100 + 0.5)
	r.OverallGrade = Grade(r.OverallScore)
	return r
}

// Grade maps a 0-100 score onto the letter scale.
func Grade(score int) string {
	switch {
	case score >= 95:
		return "A+"
	case score >= 90:
		return "A"
	case score >= 85:
		return "A-"
	case score >= 80:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

var urgencyWords = []string{
	"now", "today", "hurry", "limited", "ending", "last chance", "final",
	"expires", "rush", "don't miss", "act now", "hours left", "ends tonight",
	"running out", "urgent", "deadline", "only", "exclusive", "flash",
}

var powerWords = []string{
	"free", "new", "save", "exclusive", "guaranteed", "proven", "best", "top",
	"discover", "secret", "ultimate", "amazing", "bonus", "instant", "premium",
	"introducing", "special", "unlock", "win", "deal", "offer", "launch",
	"trending",
}

var personalizationTokens = []string{
	"{first_name}", "{name}", "{firstname}", "{{first_name}}", "{{name}}",
	"%%first_name%%", "*|fname|*", "*|name|*",
}

var ctaActionVerbs = []string{
	"shop", "buy", "get", "order", "grab", "claim", "start", "try", "explore",
	"discover", "download", "join", "sign up", "subscribe", "learn", "read",
	"view", "watch", "save", "book", "reserve", "add to cart", "checkout",
	"register",
}

var digitRe = regexp.MustCompile(`\d`)

func scoreSubject(subject string) Dimension {
	if subject == "" {
		return Dimension{Score: 0, Grade: "F", Findings: []string{"No subject line"}}
	}

	score := 50
	var findings []string

	length := len([]rune(subject))
	switch {
	case length >= 30 && length <= 60:
		score += 15
		findings = append(findings, fmt.Sprintf("Good length (%d chars)", length))
	case length >= 20 && length < 30:
		score += 8
		findings = append(findings, fmt.Sprintf("Slightly short (%d chars)", length))
	case length > 60 && length <= 80:
		score += 5
		findings = append(findings, fmt.Sprintf("Slightly long (%d chars)", length))
	case length > 80:
		score -= 10
		findings = append(findings, fmt.Sprintf("Too long (%d chars), may get truncated", length))
	default:
		score -= 5
		findings = append(findings, fmt.Sprintf("Very short (%d chars)", length))
	}

	lower := strings.ToLower(subject)

	if containsAny(lower, personalizationTokens) {
		score += 10
		findings = append(findings, "Has personalization token")
	} else {
		findings = append(findings, "No personalization detected")
	}

	if containsAny(lower, urgencyWords) {
		score += 8
		findings = append(findings, "Contains urgency words")
	}

	if found := matchingWords(lower, powerWords, 3); len(found) > 0 {
		score += 5
		findings = append(findings, "Power words: "+strings.Join(found, ", "))
	}

	if digitRe.MatchString(subject) {
		score += 5
		findings = append(findings, "Contains numbers (good for engagement)")
	}

	if hasEmoji(subject) {
		score += 3
		findings = append(findings, "Has emoji")
	}

	if strings.Contains(subject, "?") {
		score += 3
		findings = append(findings, "Has question mark (drives curiosity)")
	}

	words := strings.Fields(subject)
	capsWords := 0
	for _, w := range words {
		if len(w) > 2 && w == strings.ToUpper(w) && strings.ContainsFunc(w, unicode.IsLetter) {
			capsWords++
		}
	}
	if len(words) > 2 && capsWords*2 > len(words) {
		score -= 15
		findings = append(findings, "Excessive ALL CAPS, may trigger spam filters")
	} else if capsWords > 0 {
		score += 2
		findings = append(findings, fmt.Sprintf("%d emphasized word(s)", capsWords))
	}

	return dimension(score, findings)
}

func scoreCopy(html string, doc *goquery.Document, preview string) Dimension {
	score := 50
	var findings []string

	bodyText := bodyText(doc)
	wordCount := len(strings.Fields(bodyText))

	switch {
	case wordCount >= 50 && wordCount <= 500:
		score += 15
		findings = append(findings, fmt.Sprintf("Good word count (%d)", wordCount))
	case wordCount > 500 && wordCount <= 1000:
		score += 8
		findings = append(findings, fmt.Sprintf("Lengthy copy (%d words)", wordCount))
	case wordCount > 1000:
		score += 2
		findings = append(findings, fmt.Sprintf("Very long copy (%d words), consider trimming", wordCount))
	case wordCount >= 20:
		score += 5
		findings = append(findings, fmt.Sprintf("Short copy (%d words)", wordCount))
	default:
		score -= 5
		findings = append(findings, fmt.Sprintf("Minimal copy (%d words)", wordCount))
	}

	if avg, ok := avgSentenceLen(bodyText); ok {
		switch {
		case avg <= 20:
			score += 10
			findings = append(findings, fmt.Sprintf("Good readability (avg %.0f words/sentence)", avg))
		case avg <= 30:
			score += 5
			findings = append(findings, fmt.Sprintf("Moderate readability (avg %.0f words/sentence)", avg))
		default:
			findings = append(findings, fmt.Sprintf("Dense copy (avg %.0f words/sentence)", avg))
		}
	}

	headings := doc.Find("h1, h2, h3, h4").Length()
	if headings > 0 {
		score += 8
		findings = append(findings, fmt.Sprintf("%d heading(s) found, good structure", headings))
	} else {
		findings = append(findings, "No headings, consider adding structure")
	}

	lists := doc.Find("ul, ol").Length()
	if lists > 0 {
		score += 5
		findings = append(findings, fmt.Sprintf("%d list(s) found, scannable", lists))
	} else {
		findings = append(findings, "No bullet/numbered lists found")
	}

	if len(strings.TrimSpace(preview)) > 10 {
		score += 5
		findings = append(findings, "Has preview text")
	} else {
		findings = append(findings, "No preview text detected")
	}

	if containsAny(strings.ToLower(html), personalizationTokens) {
		score += 5
		findings = append(findings, "Body uses personalization")
	}

	return dimension(score, findings)
}

var ctaSkipPatterns = []string{
	"unsubscribe", "privacy", "terms", "manage preferences", "view in browser",
}

var buttonStylePatterns = []string{
	"background-color", "bgcolor", "btn", "button", "padding:", "border-radius",
}

func scoreCTA(html string, doc *goquery.Document) Dimension {
	score := 50
	var findings []string

	type ctaLink struct{ href, text string }
	var ctas []ctaLink
	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		lower := strings.ToLower(text)
		if len(lower) < 2 || containsAny(lower, ctaSkipPatterns) {
			return
		}
		href, _ := s.Attr("href")
		ctas = append(ctas, ctaLink{href: href, text: text})
	})

	if len(ctas) == 0 {
		score -= 20
		findings = append(findings, "No CTA links found")
		return dimension(score, findings)
	}

	findings = append(findings, fmt.Sprintf("%d CTA link(s) found", len(ctas)))
	switch {
	case len(ctas) <= 3:
		score += 15
		findings = append(findings, "Good number of CTAs")
	case len(ctas) <= 5:
		score += 10
	default:
		score += 3
		findings = append(findings, fmt.Sprintf("Many CTAs (%d), may dilute focus", len(ctas)))
	}

	var actionFound []string
	for _, cta := range ctas {
		lower := strings.ToLower(cta.text)
		for _, verb := range ctaActionVerbs {
			if strings.Contains(lower, verb) {
				actionFound = appendUnique(actionFound, verb, 3)
				break
			}
		}
	}
	if len(actionFound) > 0 {
		score += 10
		findings = append(findings, "Action verbs: "+strings.Join(actionFound, ", "))
	} else {
		findings = append(findings, "No strong action verbs in CTAs")
	}

	if containsAny(strings.ToLower(html), buttonStylePatterns) {
		score += 10
		findings = append(findings, "Styled button CTA detected")
	} else {
		findings = append(findings, "Text-only CTAs, consider styled buttons")
	}

	// Above the fold: first CTA text appears within the first 30% of the HTML.
	if pos := strings.Index(html, ctas[0].text); pos > 0 && len(html) > 0 && pos*10 < len(html)*3 {
		score += 5
		findings = append(findings, "CTA placed above the fold")
	}

	return dimension(score, findings)
}

func scoreDesign(html string, doc *goquery.Document) Dimension {
	score := 50
	var findings []string
	lower := strings.ToLower(html)

	images := doc.Find("img")
	if n := images.Length(); n > 0 {
		score += 10
		findings = append(findings, fmt.Sprintf("%d image(s) found", n))

		missingAlt := 0
		images.Each(func(_ int, s *goquery.Selection) {
			if alt, _ := s.Attr("alt"); strings.TrimSpace(alt) == "" {
				missingAlt++
			}
		})
		switch {
		case missingAlt == 0:
			score += 8
			findings = append(findings, "All images have alt text")
		case missingAlt < n:
			score += 3
			findings = append(findings, fmt.Sprintf("%d image(s) missing alt text", missingAlt))
		default:
			findings = append(findings, "No images have alt text, an accessibility issue")
		}

		if wordCount := len(strings.Fields(bodyText(doc))); wordCount > 0 {
			ratio := float64(n) / float64(wordCount) * 100
			if ratio < 5 {
				score += 5
				findings = append(findings, "Good image-to-text ratio")
			} else if ratio > 20 {
				findings = append(findings, "Heavy on images vs text, may affect deliverability")
			}
		}
	} else {
		findings = append(findings, "No images, consider adding visuals")
	}

	hasViewport := false
	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		name, _ := s.Attr("name")
		content, _ := s.Attr("content")
		if strings.EqualFold(name, "viewport") || strings.Contains(strings.ToLower(content), "viewport") {
			hasViewport = true
		}
	})
	if hasViewport {
		score += 10
		findings = append(findings, "Has viewport meta tag (responsive)")
	} else {
		findings = append(findings, "No viewport meta tag, may not render well on mobile")
	}

	darkMode := false
	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		if strings.Contains(s.Text(), "prefers-color-scheme") {
			darkMode = true
		}
	})
	if darkMode {
		score += 8
		findings = append(findings, "Dark mode support detected")
	} else {
		findings = append(findings, "No dark mode styles found")
	}

	if strings.Contains(lower, "<table") || strings.Contains(lower, "display:flex") || strings.Contains(lower, "display: flex") {
		score += 5
		findings = append(findings, "Structured layout detected")
	}

	if strings.Count(lower, `style="`) > 5 {
		score += 3
		findings = append(findings, "Uses inline styles (email-safe)")
	}

	return dimension(score, findings)
}

func scoreStrategy(campaignType, industry string, receivedAt time.Time) Dimension {
	score := 50
	var findings []string

	if campaignType != "" {
		score += 15
		findings = append(findings, "Campaign type: "+campaignType)
	} else {
		findings = append(findings, "No campaign type identified")
	}

	if industry != "" {
		score += 10
		findings = append(findings, "Industry: "+industry)
	} else {
		findings = append(findings, "No industry classification")
	}

	if !receivedAt.IsZero() {
		switch receivedAt.Weekday() {
		case time.Tuesday, time.Wednesday, time.Thursday:
			score += 10
			findings = append(findings, fmt.Sprintf("Sent on %s (optimal)", receivedAt.Weekday()))
		case time.Monday, time.Friday:
			score += 5
			findings = append(findings, fmt.Sprintf("Sent on %s (good)", receivedAt.Weekday()))
		default:
			findings = append(findings, fmt.Sprintf("Sent on %s (lower engagement typical)", receivedAt.Weekday()))
		}

		hour := receivedAt.Hour()
		switch {
		case hour >= 9 && hour <= 11:
			score += 8
			findings = append(findings, fmt.Sprintf("Sent at %d:00 (morning peak)", hour))
		case hour >= 13 && hour <= 15:
			score += 6
			findings = append(findings, fmt.Sprintf("Sent at %d:00 (afternoon peak)", hour))
		case hour >= 6 && hour <= 20:
			score += 3
			findings = append(findings, fmt.Sprintf("Sent at %d:00 (business hours)", hour))
		default:
			findings = append(findings, fmt.Sprintf("Sent at %d:00 (off-peak)", hour))
		}
	}

	return dimension(score, findings)
}

func parseHTML(html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		empty, _ := goquery.NewDocumentFromReader(strings.NewReader(""))
		return empty
	}
	return doc
}

func bodyText(doc *goquery.Document) string {
	clone := doc.Clone()
	clone.Find("style, script").Remove()
	return strings.Join(strings.Fields(clone.Text()), " ")
}

func avgSentenceLen(text string) (float64, bool) {
	parts := regexp.MustCompile(`[.!?]+`).Split(text, -1)
	total, count := 0, 0
	for _, p := range parts {
		if words := len(strings.Fields(p)); words > 0 {
			total += words
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return float64(total) / float64(count), true
}

func dimension(score int, findings []string) Dimension {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return Dimension{Score: score, Grade: Grade(score), Findings: findings}
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func matchingWords(s string, words []string, limit int) []string {
	var out []string
	for _, w := range words {
		if strings.Contains(s, w) {
			out = append(out, w)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func appendUnique(list []string, v string, limit int) []string {
	if len(list) >= limit {
		return list
	}
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

func hasEmoji(s string) bool {
	for _, r := range s {
		if r >= 0x1F300 && r <= 0x1FAFF || r >= 0x2600 && r <= 0x27BF {
			return true
		}
	}
	return false
}
