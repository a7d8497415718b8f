package moderation

import (
	"fmt"
	"regexp"
)

// PatternRule is an immutable text matcher tied to exactly one category at
// catalog build time. It is stateless and safe for concurrent reuse.
type PatternRule struct {
	// expr is the source expression the rule was compiled from.
	expr string

	// re is the compiled matcher.
	re *regexp.Regexp
}

// Matches reports whether the rule finds at least one occurrence anywhere in
// the given text.
func (r PatternRule) Matches(text string) bool {
	return r.re.MatchString(text)
}

// Expr returns the source expression the rule was compiled from.
func (r PatternRule) Expr() string {
	return r.expr
}

// PIIKind identifies one shape of personal information detected by the
// dedicated personal-information rule set.
type PIIKind string

const (
	PIIKindSSN        PIIKind = "ssn"
	PIIKindPhone      PIIKind = "phone"
	PIIKindEmail      PIIKind = "email"
	PIIKindCreditCard PIIKind = "credit_card"
)

// piiRule is a matcher in the dedicated personal-information rule set. This
// set is applied on every analysis, independently of the generic catalog.
type piiRule struct {
	kind PIIKind
	re   *regexp.Regexp
}

// defaultRules is the built-in rule table, keyed by category. Phrase-style
// rules are case-insensitive. copyright_violation and malware are empty by
// design: they are reserved for future rules and always contribute zero
// matches.
//
// The exact phrase list is tunable; the contract is the behavior of the
// catalog as a whole, not any individual entry.
var defaultRules = map[Category][]string{
	CategorySpam: {
		`(?i)click here`,
		`(?i)free money`,
		`(?i)act now`,
		`(?i)limited time`,
		`(?i)buy now`,
		`(?i)\b(viagra|cialis|casino|lottery|jackpot)\b`,
		`!{3,}`,
		`(?i)\b(bit\.ly|tinyurl\.com|goo\.gl|t\.co|ow\.ly)/`,
	},
	CategoryHateSpeech: {
		`(?i)\bi hate (them|you people|these people)\b`,
		`(?i)\ball \w+ are (stupid|inferior|scum|criminals|animals)\b`,
		`(?i)\bgo back to (your country|where you came from)\b`,
		`(?i)\b(subhuman|vermin) (people|race)\b`,
	},
	CategoryHarassment: {
		`(?i)\bkill yourself\b`,
		`(?i)\bkys\b`,
		`(?i)\byou should die\b`,
		`(?i)\bnobody (likes|wants) you\b`,
		`(?i)\byou('re| are) (pathetic|worthless|a loser)\b`,
	},
	CategoryViolence: {
		`(?i)\bi('ll| will| am going to) (kill|murder|hurt|beat) you\b`,
		`(?i)\bwith my (gun|knife|weapon)\b`,
		`(?i)\bshoot (up|you|them|everyone)\b`,
		`(?i)\b(bomb|massacre|slaughter)\b`,
	},
	CategoryAdultContent: {
		`(?i)\b(porn|pornography|xxx)\b`,
		`(?i)\bnude (pics|photos|videos)\b`,
		`(?i)\bexplicit content\b`,
		`(?i)\bonlyfans\b`,
	},
	CategoryMisinformation: {
		`(?i)\bfake news\b`,
		`(?i)\b(vaccines? cause|5g causes)\b`,
		`(?i)\bthe earth is flat\b`,
		`(?i)\bmiracle cure\b`,
		`(?i)\bdoctors don'?t want you to know\b`,
	},
	CategoryCopyrightViolation: {},
	CategoryPhishing: {
		`(?i)\bverify your (account|identity)\b`,
		`(?i)\byour account (has been|was) (suspended|locked|compromised)\b`,
		`(?i)\b(confirm|update) your (password|payment|billing)\b`,
		`(?i)\blog ?in immediately\b`,
		`(?i)\bunusual (activity|sign-?in)\b`,
	},
	CategoryMalware: {},
	CategoryInappropriateLanguage: {
		`(?i)\b(fuck|fucking|shit|bitch|asshole|bastard)\b`,
		`(?i)\bgo to hell\b`,
		`(?i)\bdamn it\b`,
	},
	CategoryPersonalInformation: {
		`(?i)\bmy (ssn|social security number) is\b`,
		`(?i)\bmy password is\b`,
		`(?i)\bmy (credit card|card) number is\b`,
	},
}

// piiExprs defines the dedicated personal-information rule set: SSN-shaped,
// phone-shaped, email-shaped, and payment-card-shaped sequences.
var piiExprs = []struct {
	kind PIIKind
	expr string
}{
	{PIIKindSSN, `\b\d{3}-\d{2}-\d{4}\b`},
	{PIIKindPhone, `\b\(?\d{3}\)?[-.\s]\d{3}[-.\s]\d{4}\b`},
	{PIIKindEmail, `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`},
	{PIIKindCreditCard, `\b\d{4}[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`},
}

// Catalog is the immutable, process-wide rule table. Build it once with
// BuildCatalog and share it freely: after construction it is read-only and
// requires no synchronization.
type Catalog struct {
	rules map[Category][]PatternRule
	pii   []piiRule
}

// BuildCatalog compiles the built-in rule table into an immutable Catalog.
//
// customRules may add operator-supplied phrases per category on top of the
// defaults; entries are matched case-insensitively as literal phrases.
// Unknown category keys or empty phrases are rejected. Pass nil for the
// built-in table only.
func BuildCatalog(customRules map[Category][]string) (*Catalog, error) {
	c := &Catalog{
		rules: make(map[Category][]PatternRule, len(categoryOrder)),
	}

	for _, cat := range categoryOrder {
		exprs := defaultRules[cat]
		compiled := make([]PatternRule, 0, len(exprs))
		for _, expr := range exprs {
			re, err := regexp.Compile(expr)
			if err != nil {
				return nil, fmt.Errorf("compiling %s rule %q: %w", cat, expr, err)
			}
			compiled = append(compiled, PatternRule{expr: expr, re: re})
		}
		c.rules[cat] = compiled
	}

	for cat, phrases := range customRules {
		if !ValidCategory(cat) {
			return nil, fmt.Errorf("unknown category %q in custom rules", cat)
		}
		for _, phrase := range phrases {
			if phrase == "" {
				return nil, fmt.Errorf("empty custom rule for category %q", cat)
			}
			expr := `(?i)` + regexp.QuoteMeta(phrase)
			re, err := regexp.Compile(expr)
			if err != nil {
				return nil, fmt.Errorf("compiling custom %s rule %q: %w", cat, phrase, err)
			}
			c.rules[cat] = append(c.rules[cat], PatternRule{expr: expr, re: re})
		}
	}

	c.pii = make([]piiRule, 0, len(piiExprs))
	for _, p := range piiExprs {
		re, err := regexp.Compile(p.expr)
		if err != nil {
			return nil, fmt.Errorf("compiling pii rule %q: %w", p.expr, err)
		}
		c.pii = append(c.pii, piiRule{kind: p.kind, re: re})
	}

	return c, nil
}

// RulesFor returns the ordered rule list for a category. The returned slice
// is a copy; the catalog itself is never mutated after construction.
func (c *Catalog) RulesFor(cat Category) []PatternRule {
	rules := c.rules[cat]
	out := make([]PatternRule, len(rules))
	copy(out, rules)
	return out
}

// RuleCount returns the number of rules registered for a category.
func (c *Catalog) RuleCount(cat Category) int {
	return len(c.rules[cat])
}
