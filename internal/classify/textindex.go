package classify

import "strings"

// textIndex supports keyword lookups against one field of email text.
// Single-word keywords match whole tokens only, so "cat" does not fire on
// "category"; multi-word phrases (and anything with punctuation, like
// "% off") fall back to a substring scan.
type textIndex struct {
	lower string
	words map[string]struct{}
}

func newTextIndex(s string) textIndex {
	lower := strings.ToLower(s)
	words := make(map[string]struct{})
	for _, w := range strings.FieldsFunc(lower, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	}) {
		words[w] = struct{}{}
	}
	return textIndex{lower: lower, words: words}
}

func (t textIndex) contains(keyword string) bool {
	if strings.ContainsFunc(keyword, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	}) {
		return strings.Contains(t.lower, keyword)
	}
	_, ok := t.words[keyword]
	return ok
}
