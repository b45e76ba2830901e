// Package brand resolves a marketing email's brand identity from its sender
// header, HTML body, and subject line. Several independent extraction
// strategies each produce confidence-scored candidates; the highest-confidence
// survivor, normalized against the curated brand table, wins.
package brand

import (
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mailprism/mailprism/internal/textnorm"
)

// Unknown is the sentinel returned when no extraction strategy produces a
// qualifying candidate. Extract never returns an empty string.
const Unknown = "Unknown"

// Source identifies which strategy produced a candidate. The declaration
// order is the registration order and breaks confidence ties.
type Source int

const (
	SourceKnownSender Source = iota
	SourceDisplayName
	SourceSenderDomain
	SourceOGSiteName
	SourceTwitterSite
	SourceAppName
	SourceLogoAlt
	SourceCopyright
	SourceSubject
)

var sourceNames = map[Source]string{
	SourceKnownSender:  "known_sender",
	SourceDisplayName:  "display_name",
	SourceSenderDomain: "sender_domain",
	SourceOGSiteName:   "og_site_name",
	SourceTwitterSite:  "twitter_site",
	SourceAppName:      "application_name",
	SourceLogoAlt:      "logo_alt",
	SourceCopyright:    "copyright",
	SourceSubject:      "subject_prefix",
}

func (s Source) String() string {
	if n, ok := sourceNames[s]; ok {
		return n
	}
	return "unknown"
}

// Candidate is one strategy's provisional brand guess.
type Candidate struct {
	Name       string
	Confidence int // 0-100
	Source     Source
}

// Per-strategy confidence levels.
const (
	confDisplayName      = 80
	confSenderDomain     = 60
	confOGSiteName       = 90
	confTwitterSite      = 85
	confAppName          = 85
	confLogoAlt          = 75
	confCopyrightFooter  = 70
	confCopyrightLoose   = 65 // match found outside an explicit footer container
	confSubjectPrefix    = 50
)

// Extractor resolves brand names. It is pure: no state beyond the injected
// table, safe for concurrent use.
type Extractor struct {
	table *Table
}

// NewExtractor creates an extractor backed by the given brand table.
// A nil table gets the shipped default.
func NewExtractor(table *Table) *Extractor {
	if table == nil {
		table = DefaultTable()
	}
	return &Extractor{table: table}
}

// Extract resolves the brand for one email. It never returns an empty string;
// when nothing qualifies the Unknown sentinel comes back.
func (e *Extractor) Extract(sender, html, subject string) string {
	// Known-brand hit in the sender short-circuits everything else.
	if name, ok := e.table.MatchInText(sender); ok {
		return name
	}

	cands := e.Candidates(sender, html, subject)
	if len(cands) == 0 {
		return Unknown
	}
	// Any candidate with a table relative beats the raw frontrunner: a
	// lower-confidence strategy that hit a known brand is more trustworthy
	// than a higher-confidence strategy that found an unrecognized name.
	for _, c := range cands {
		if canon, ok := e.table.Resolve(c.Name); ok {
			return canon
		}
	}
	return cands[0].Name
}

// Candidates runs every non-short-circuiting strategy and returns the cleaned
// survivors ordered by confidence descending, registration order on ties.
// Exposed for the reclassification tooling, which reports per-source hits.
func (e *Extractor) Candidates(sender, html, subject string) []Candidate {
	var cands []Candidate
	add := func(raw string, conf int, src Source) {
		cleaned := textnorm.CleanBrandName(raw)
		if cleaned == "" {
			return
		}
		cands = append(cands, Candidate{Name: cleaned, Confidence: conf, Source: src})
	}

	if dn := displayName(sender); dn != "" {
		add(dn, confDisplayName, SourceDisplayName)
	}
	if tok := domainToken(sender); tok != "" {
		name := tok
		if canon, ok := e.table.Canonical(tok); ok {
			name = canon
		}
		add(name, confSenderDomain, SourceSenderDomain)
	}

	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil && html != "" {
		add(metaContent(doc, `meta[property="og:site_name"], meta[name="og:site_name"]`), confOGSiteName, SourceOGSiteName)
		add(strings.TrimPrefix(metaContent(doc, `meta[name="twitter:site"]`), "@"), confTwitterSite, SourceTwitterSite)
		add(metaContent(doc, `meta[name="application-name"]`), confAppName, SourceAppName)
		add(logoAlt(doc), confLogoAlt, SourceLogoAlt)
		if name, scoped := copyrightName(doc); name != "" {
			conf := confCopyrightLoose
			if scoped {
				conf = confCopyrightFooter
			}
			add(name, conf, SourceCopyright)
		}
	}

	add(subjectPrefix(subject), confSubjectPrefix, SourceSubject)

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Confidence != cands[j].Confidence {
			return cands[i].Confidence > cands[j].Confidence
		}
		return cands[i].Source < cands[j].Source
	})
	return cands
}

var displayNameRe = regexp.MustCompile(`^\s*"?([^<"]+?)"?\s*<`)

// displayName pulls the text before the address bracket from a
// "Display Name <addr@host>" header.
func displayName(sender string) string {
	m := displayNameRe.FindStringSubmatch(sender)
	if m == nil {
		return ""
	}
	name := strings.Trim(strings.TrimSpace(m[1]), `'"`)
	if name == "" || strings.ContainsRune(name, '@') {
		return ""
	}
	return name
}

var addrHostRe = regexp.MustCompile(`@([A-Za-z0-9.-]+)`)

// genericLabels are subdomain and mailbox-infrastructure tokens that carry no
// brand signal.
var genericLabels = map[string]bool{
	"mail": true, "email": true, "e": true, "em": true, "m": true,
	"news": true, "newsletter": true, "newsletters": true,
	"promo": true, "promos": true, "marketing": true, "engage": true,
	"info": true, "mailer": true, "send": true, "smtp": true, "mta": true,
	"bounce": true, "bounces": true, "reply": true, "noreply": true,
	"no-reply": true, "notifications": true, "notify": true, "alerts": true,
	"crm": true, "links": true, "click": true, "connect": true, "hello": true,
	"mg": true, "my": true, "go": true, "t": true, "s": true,
}

// secondLevelSuffixes are registry second-level labels (.co.in, .com.au, …)
// that must be dropped along with the TLD.
var secondLevelSuffixes = map[string]bool{
	"co": true, "com": true, "net": true, "org": true, "ac": true, "gov": true,
}

// domainToken returns the most-specific non-generic label of the sender's
// domain, or "" when every label is generic.
func domainToken(sender string) string {
	m := addrHostRe.FindStringSubmatch(strings.ToLower(sender))
	if m == nil {
		return ""
	}
	labels := strings.Split(m[1], ".")
	if len(labels) < 2 {
		return ""
	}
	labels = labels[:len(labels)-1] // drop TLD
	if len(labels) > 1 && secondLevelSuffixes[labels[len(labels)-1]] {
		labels = labels[:len(labels)-1]
	}
	for _, label := range labels {
		if label != "" && !genericLabels[label] {
			return label
		}
	}
	return ""
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

// logoAlt returns the alt text of the first image that looks like a brand
// logo, matched by class, id, or src containing "logo" or "brand".
func logoAlt(doc *goquery.Document) string {
	var alt string
	doc.Find("img").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		class, _ := sel.Attr("class")
		id, _ := sel.Attr("id")
		src, _ := sel.Attr("src")
		hint := strings.ToLower(class + " " + id + " " + src)
		if !strings.Contains(hint, "logo") && !strings.Contains(hint, "brand") {
			return true
		}
		if a, ok := sel.Attr("alt"); ok && strings.TrimSpace(a) != "" {
			alt = strings.TrimSpace(a)
			return false
		}
		return true
	})
	return alt
}

var copyrightRe = regexp.MustCompile(`(?:©|&copy;|\(c\))\s*(?:19|20)\d{2}\s*[,.]?\s+([A-Za-z][A-Za-z0-9 .,'&\-]{1,40})`)

// copyrightName finds a "© YYYY Name" pattern. It prefers an explicit footer
// container; a match elsewhere in the document is reported as unscoped so the
// caller can lower its confidence.
func copyrightName(doc *goquery.Document) (name string, scoped bool) {
	footer := doc.Find(`footer, [class*="footer"], [id*="footer"]`)
	if footer.Length() > 0 {
		if m := copyrightRe.FindStringSubmatch(footer.Text()); m != nil {
			return trimCopyright(m[1]), true
		}
	}
	if m := copyrightRe.FindStringSubmatch(doc.Text()); m != nil {
		return trimCopyright(m[1]), false
	}
	return "", false
}

// trimCopyright cuts the captured name at the first clause boundary so
// "Acme. All rights reserved" yields just "Acme".
func trimCopyright(s string) string {
	for _, stop := range []string{". ", ", ", " all rights", " All Rights", " ALL RIGHTS"} {
		if i := strings.Index(s, stop); i > 0 {
			s = s[:i]
		}
	}
	return strings.TrimRight(strings.TrimSpace(s), ".,")
}

var subjectPrefixRes = []*regexp.Regexp{
	regexp.MustCompile(`^\s*\[([^\]]{2,30})\]`),
	regexp.MustCompile(`^\s*([A-Za-z][A-Za-z0-9 .&'\-]{1,29}?):\s`),
	regexp.MustCompile(`^\s*([A-Za-z][A-Za-z0-9 .&'\-]{1,29}?)\s+[-–]\s`),
}

// subjectPrefix matches "[Brand] …", "Brand: …", and "Brand - …" subjects.
func subjectPrefix(subject string) string {
	for _, re := range subjectPrefixRes {
		if m := re.FindStringSubmatch(subject); m != nil {
			return m[1]
		}
	}
	return ""
}
