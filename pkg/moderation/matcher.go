package moderation

// matchRules returns the rules of the given category that find at least one
// occurrence in text. A category is "hit" when the returned list is non-empty.
func (c *Catalog) matchRules(cat Category, text string) []PatternRule {
	var matched []PatternRule
	for _, rule := range c.rules[cat] {
		if rule.Matches(text) {
			matched = append(matched, rule)
		}
	}
	return matched
}

// MatchPII runs the dedicated personal-information rule set against text and
// returns the kinds that matched. This set is applied on every analysis,
// independently of whether the generic catalog's personal_information rules
// also hit; the two paths are additive.
func (c *Catalog) MatchPII(text string) []PIIKind {
	var kinds []PIIKind
	for _, rule := range c.pii {
		if rule.re.MatchString(text) {
			kinds = append(kinds, rule.kind)
		}
	}
	return kinds
}
