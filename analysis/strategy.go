// Package analysis produces compliance reports for uploaded policies.
//
// The shipped Strategy is a fixed rule table keyed by policy type; no
// document parsing or model call happens. A real analyzer can replace it by
// implementing Strategy.
package analysis

const (
	TypePrivacyPolicy  = "Privacy Policy"
	TypeTermsOfService = "Terms of Service"

	readability     = "Grade 12 - College level"
	summaryTemplate = "This %s outlines the company's commitments, user rights, and operational procedures."
)

// Bundle is what a Strategy yields for one policy type.
type Bundle struct {
	Compliance map[string]string
	Insights   []string
}

// Strategy maps a policy type to its analysis bundle. Implementations must
// always return a bundle; unknown types get a default.
type Strategy interface {
	Bundle(policyType string) Bundle
}

// RuleTable is a Strategy backed by exact-match rules and a fallback.
type RuleTable struct {
	rules    map[string]Bundle
	fallback Bundle
}

// NewRuleTable builds a table from rules and a fallback bundle.
func NewRuleTable(rules map[string]Bundle, fallback Bundle) *RuleTable {
	table := &RuleTable{rules: make(map[string]Bundle, len(rules)), fallback: fallback.clone()}
	for k, v := range rules {
		table.rules[k] = v.clone()
	}
	return table
}

// DefaultRules is the built-in table: privacy policies, terms of service and
// a general fallback.
func DefaultRules() *RuleTable {
	return NewRuleTable(map[string]Bundle{
		TypePrivacyPolicy: {
			Compliance: map[string]string{
				"GDPR":  "87% compliant",
				"CCPA":  "92% compliant",
				"HIPAA": "Not applicable",
			},
			Insights: []string{
				"Consider simplifying language in data collection sections",
				"Missing clear data retention guidelines",
				"Strong on consent mechanisms",
			},
		},
		TypeTermsOfService: {
			Compliance: map[string]string{
				"Consumer Protection":    "76% compliant",
				"E-Commerce Regulations": "88% compliant",
			},
			Insights: []string{
				"Liability clauses may be overly broad",
				"Consider adding clearer dispute resolution terms",
				"Good coverage of intellectual property rights",
			},
		},
	}, Bundle{
		Compliance: map[string]string{
			"General": "82% compliant",
		},
		Insights: []string{
			"Some sections use overly complex language",
			"Consider adding more examples or clarifications",
			"Good structure and organization",
		},
	})
}

// Bundle returns a copy, so callers may mutate the result freely.
func (t *RuleTable) Bundle(policyType string) Bundle {
	if b, ok := t.rules[policyType]; ok {
		return b.clone()
	}
	return t.fallback.clone()
}

func (b Bundle) clone() Bundle {
	out := Bundle{
		Compliance: make(map[string]string, len(b.Compliance)),
		Insights:   make([]string, len(b.Insights)),
	}
	for k, v := range b.Compliance {
		out.Compliance[k] = v
	}
	copy(out.Insights, b.Insights)
	return out
}
