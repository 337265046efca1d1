package matching

import "strings"

// MinDirectMatches is the number of direct vocabulary hits below which the
// marker table is consulted.
const MinDirectMatches = 5

type KeywordExtractor struct {
	vocab     *Vocabulary
	rules     []MarkerRule
	minDirect int
}

// NewKeywordExtractor builds an extractor over vocab. A nil rules slice selects
// DefaultMarkerRules; pass an empty non-nil slice to disable markers.
func NewKeywordExtractor(vocab *Vocabulary, rules []MarkerRule) *KeywordExtractor {
	if rules == nil {
		rules = DefaultMarkerRules
	}
	return &KeywordExtractor{vocab: vocab, rules: rules, minDirect: MinDirectMatches}
}

func (e *KeywordExtractor) Extract(text string) []RequiredSkill {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" || e == nil {
		return []RequiredSkill{}
	}

	entries := e.vocab.Entries()
	set := newRequirementSet(len(entries))
	direct := 0
	for _, entry := range entries {
		if !strings.Contains(lower, strings.ToLower(entry.Name)) {
			continue
		}
		if set.add(RequiredSkill{Name: entry.Name, RequiredLevel: entry.RequiredLevel, Category: entry.Category}) {
			direct++
		}
	}

	if direct < e.minDirect {
		for _, rule := range e.rules {
			if !containsAny(lower, rule.Tokens) {
				continue
			}
			for _, r := range rule.Inject {
				set.add(r)
			}
		}
	}

	return set.items
}

func containsAny(text string, tokens []string) bool {
	for _, t := range tokens {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" && strings.Contains(text, t) {
			return true
		}
	}
	return false
}
