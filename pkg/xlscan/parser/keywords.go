package parser

import "strings"

// KeywordMatcher performs case-insensitive substring matching of cell text
// against a fixed keyword set.
type KeywordMatcher struct {
	keywords []string
}

// NewKeywordMatcher builds a matcher from keywords. Keywords are lowercased,
// trimmed, and de-duplicated; blank entries are dropped. Order is kept.
func NewKeywordMatcher(keywords []string) *KeywordMatcher {
	seen := make(map[string]bool, len(keywords))
	m := &KeywordMatcher{}
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		m.keywords = append(m.keywords, kw)
	}
	return m
}

// Keywords returns the normalized keyword set.
func (m *KeywordMatcher) Keywords() []string {
	return append([]string(nil), m.keywords...)
}

// Match returns the first keyword contained in the lowercase form of text.
func (m *KeywordMatcher) Match(text string) (string, bool) {
	if len(m.keywords) == 0 || text == "" {
		return "", false
	}
	lower := strings.ToLower(text)
	for _, kw := range m.keywords {
		if strings.Contains(lower, kw) {
			return kw, true
		}
	}
	return "", false
}
