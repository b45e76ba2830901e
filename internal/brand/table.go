package brand

import (
	"strings"

	"github.com/mailprism/mailprism/internal/textnorm"
)

// Table is the curated brand synonym table: normalized lookup key → canonical
// brand name. It is loaded once at startup and injected into the extractor so
// tests can swap in their own taxonomy.
type Table struct {
	canonical map[string]string
}

// NewTable builds a table from key → canonical-name pairs. Keys are
// re-normalized so callers can pass display-form names.
func NewTable(entries map[string]string) *Table {
	t := &Table{canonical: make(map[string]string, len(entries))}
	for key, name := range entries {
		t.canonical[textnorm.NormalizeBrandKey(key)] = name
	}
	return t
}

// Canonical returns the canonical brand name for an exact normalized key.
func (t *Table) Canonical(key string) (string, bool) {
	name, ok := t.canonical[textnorm.NormalizeBrandKey(key)]
	return name, ok
}

// MatchInText scans text for any table key appearing as a substring and
// returns the canonical name. Matching is case-insensitive. Keys shorter than 4 runes are skipped: substring hits on
// "gap" or "alo" inside an address are noise, not signal.
func (t *Table) MatchInText(text string) (string, bool) {
	lower := strings.ToLower(text)
	best := ""
	bestName := ""
	for key, name := range t.canonical {
		if len([]rune(key)) < 4 {
			continue
		}
		if strings.Contains(lower, key) && len(key) > len(best) {
			best = key
			bestName = name
		}
	}
	return bestName, best != ""
}

// Resolve maps a cleaned candidate name onto its canonical form when the
// candidate and a table key contain each other (either direction). The second
// return is false for candidates with no table relative.
func (t *Table) Resolve(name string) (string, bool) {
	key := textnorm.NormalizeBrandKey(name)
	if canon, ok := t.canonical[key]; ok {
		return canon, true
	}
	if len([]rune(key)) < 4 {
		return "", false
	}
	best := ""
	bestName := ""
	for k, canon := range t.canonical {
		if len([]rune(k)) < 4 {
			continue
		}
		if (strings.Contains(key, k) || strings.Contains(k, key)) && len(k) > len(best) {
			best = k
			bestName = canon
		}
	}
	return bestName, best != ""
}

// DefaultTable returns the shipped brand synonym table. Seeded from the brands
// observed in production mailboxes; domain-style keys cover the senders that
// never put a human-readable display name on their mail.
func DefaultTable() *Table {
	return NewTable(map[string]string{
		"nykaa":            "Nykaa",
		"myntra":           "Myntra",
		"zomato":           "Zomato",
		"swiggy":           "Swiggy",
		"meesho":           "Meesho",
		"mamaearth":        "Mamaearth",
		"purplle":          "Purplle",
		"firstcry":         "FirstCry",
		"tatacliq":         "Tata CLiQ",
		"ajio":             "AJIO",
		"flipkart":         "Flipkart",
		"amazon":           "Amazon",
		"snapdeal":         "Snapdeal",
		"paytm":            "Paytm",
		"bigbasket":        "BigBasket",
		"croma":            "Croma",
		"reliance digital": "Reliance Digital",
		"caratlane":        "Caratlane",
		"tanishq":          "Tanishq",
		"pottery barn":     "Pottery Barn",
		"potterybarn":      "Pottery Barn",
		"anthropologie":    "Anthropologie",
		"anthroliving":     "Anthropologie",
		"net-a-porter":     "Net-A-Porter",
		"netaporter":       "Net-A-Porter",
		"mytheresa":        "Mytheresa",
		"luisaviaroma":     "Luisaviaroma",
		"sephora":          "Sephora",
		"bobbi brown":      "Bobbi Brown Cosmetics",
		"kiehls":           "Kiehl's Since 1851",
		"innisfree":        "Innisfree",
		"brooklinen":       "Brooklinen",
		"allbirds":         "Allbirds",
		"warby parker":     "Warby Parker",
		"warbyparker":      "Warby Parker",
		"uniqlo":           "Uniqlo",
		"calvin klein":     "Calvin Klein",
		"calvinklein":      "Calvin Klein",
		"bombas":           "Bombas",
		"meundies":         "Meundies",
		"daily harvest":    "Daily Harvest",
		"dailyharvest":     "Daily Harvest",
		"supertails":       "Supertails",
		"ultrahuman":       "Ultrahuman",
		"strava":           "Strava",
		"mokobara":         "Mokobara",
		"cotopaxi":         "Cotopaxi",
		"boat lifestyle":   "Boat Lifestyle",
		"boat-lifestyle":   "Boat Lifestyle",
		"zendesk":          "Zendesk",
		"scapia":           "Scapia",
		"forest essentials": "Forest Essentials",
		"sleepy owl":       "Sleepy Owl Coffee",
		"sleepyowl":        "Sleepy Owl Coffee",
		"teabox":           "Teabox",
	})
}
