// Package textnorm provides the text normalization primitives shared by the
// brand extractor and the classifiers: visible-text extraction from email
// HTML, brand display-name cleanup, and brand key normalization for mapping
// lookups.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// DefaultVisibleTextCap bounds how much body text the keyword classifiers
// scan. Marketing emails front-load their message; scanning further mostly
// adds footer legalese.
const DefaultVisibleTextCap = 4000

var whitespaceRe = regexp.MustCompile(`\s+`)

// VisibleText strips non-content markup from email HTML and returns the
// visible text, whitespace-collapsed and capped at maxLen runes (0 means
// DefaultVisibleTextCap). Malformed HTML degrades to whatever the parser
// recovers; it never fails.
func VisibleText(html string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultVisibleTextCap
	}
	if strings.TrimSpace(html) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	doc.Find("script, style, head, noscript").Remove()

	text := whitespaceRe.ReplaceAllString(doc.Text(), " ")
	text = strings.TrimSpace(text)

	runes := []rune(text)
	if len(runes) > maxLen {
		return string(runes[:maxLen])
	}
	return text
}

// boilerplateSubs is the ordered substitution list applied to raw brand
// candidates. Order matters: multi-word patterns run before their single-word
// components.
var boilerplateSubs = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*(?:no[-_ ]?reply|donot[-_ ]?reply|do[-_ ]?not[-_ ]?reply)\s*[-:,]?\s*`),
	regexp.MustCompile(`(?i)\b(?:customer\s+(?:care|support|service)|support\s+team)\b`),
	regexp.MustCompile(`(?i)\b(?:newsletters?|mailer|mailing|updates?)\b`),
	regexp.MustCompile(`(?i)\bvia\s+\S+$`),
	regexp.MustCompile(`(?i)\bteam\b`),
	regexp.MustCompile(`(?i)\b(?:e-?mails?)\b`),
	regexp.MustCompile(`(?i)\b(?:inc|llc|ltd|pvt|co)\.?$`),
}

// CleanBrandName normalizes a raw brand candidate: boilerplate words removed,
// whitespace collapsed, non-alphanumeric edges trimmed, title-cased. Returns
// "" when the survivor is too short to be a plausible brand name.
func CleanBrandName(raw string) string {
	s := raw
	for _, re := range boilerplateSubs {
		s = re.ReplaceAllString(s, " ")
	}
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = trimNonAlnum(s)
	if len([]rune(s)) < 2 {
		return ""
	}
	return TitleCase(s)
}

func trimNonAlnum(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// TitleCase upper-cases the first letter of each space-separated word and
// lower-cases the rest, matching how brand names are stored.
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// brandKeySubs strips the marketing suffixes senders bolt onto their display
// names ("Pottery Barn Sale", "Caratlane - A Tata Product") so variants
// collapse onto one mapping key. Ordered: longer, more specific suffixes first.
var brandKeySubs = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s*[-–—_,]\s*a\s+tata\s+product\s*$`),
	regexp.MustCompile(`(?i)\s*,\s*a\s+tanishq\s+partnership\s*$`),
	regexp.MustCompile(`(?i)\s+a\s+\S+\s+enterprises?\s+brand\s*$`),
	regexp.MustCompile(`(?i)\s+black\s+friday\s*$`),
	regexp.MustCompile(`(?i)\s+cyber\s+monday\s*$`),
	regexp.MustCompile(`(?i)\s+app\s+exclusive\s*$`),
	regexp.MustCompile(`(?i)\s+design\s+services\s*$`),
	regexp.MustCompile(`(?i)\s+new\s+arrivals\s*$`),
	regexp.MustCompile(`(?i)\s+promotions?\s*$`),
	regexp.MustCompile(`(?i)\s+rewards\s*$`),
	regexp.MustCompile(`(?i)\s+sale\s*$`),
	regexp.MustCompile(`(?i)\s+by\s+\S+\s*$`),
	regexp.MustCompile(`(?i)\s+at\s+\S+\s*$`),
	regexp.MustCompile(`(?i)\s*\+\s*clinic\s*$`),
}

// NormalizeBrandKey lowercases a brand name and strips known marketing
// suffixes, producing the lookup key used by the industry mapping table and
// the classification cache.
func NormalizeBrandKey(name string) string {
	s := strings.TrimSpace(name)
	for _, re := range brandKeySubs {
		s = re.ReplaceAllString(s, "")
	}
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}

var punctRe = regexp.MustCompile(`[^a-z0-9 ]+`)

// StripPunct removes punctuation from an already-lowercased key, for the
// punctuation-insensitive tier of fuzzy matching.
func StripPunct(s string) string {
	s = punctRe.ReplaceAllString(strings.ToLower(s), "")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// SignificantWords returns the tokens of s longer than minLen runes,
// lowercased. Used for the shared-word tier of fuzzy matching.
func SignificantWords(s string, minLen int) []string {
	var out []string
	for _, w := range strings.Fields(strings.ToLower(s)) {
		if len([]rune(w)) > minLen {
			out = append(out, w)
		}
	}
	return out
}
