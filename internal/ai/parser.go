package ai

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mini-crm/crm-backend/internal/models"
)

// rulePattern pairs one phrase pattern with the rule it produces. Patterns
// are evaluated independently and in order; the order of this list defines
// the order of the resulting rules.
type rulePattern struct {
	re    *regexp.Regexp
	build func(match []string) models.Rule
}

var rulePatterns = []rulePattern{
	{
		// "haven't shopped in N months" -> inactive for N*30 days
		re: regexp.MustCompile(`haven't shopped in (\d+) months?`),
		build: func(m []string) models.Rule {
			months, _ := strconv.Atoi(m[1])
			return models.Rule{
				Field:    models.RuleFieldLastVisit,
				Operator: ">",
				Value:    strconv.Itoa(months * 30),
			}
		},
	},
	{
		// "spent over ₹N" / "spent more than N"
		re: regexp.MustCompile(`spent (?:over|more than) ₹?(\d+)`),
		build: func(m []string) models.Rule {
			return models.Rule{
				Field:    models.RuleFieldTotalSpent,
				Operator: ">",
				Value:    m[1],
			}
		},
	},
	{
		// "less than N visits"
		re: regexp.MustCompile(`less than (\d+) visits?`),
		build: func(m []string) models.Rule {
			return models.Rule{
				Field:    models.RuleFieldVisits,
				Operator: "<",
				Value:    m[1],
			}
		},
	},
	{
		// "more than N orders"
		re: regexp.MustCompile(`more than (\d+) orders?`),
		build: func(m []string) models.Rule {
			return models.Rule{
				Field:    models.RuleFieldOrders,
				Operator: ">",
				Value:    m[1],
			}
		},
	},
	{
		// "inactive for N days"
		re: regexp.MustCompile(`inactive for (\d+) days?`),
		build: func(m []string) models.Rule {
			return models.Rule{
				Field:    models.RuleFieldLastVisit,
				Operator: ">",
				Value:    m[1],
			}
		},
	},
}

// ParseNaturalLanguage translates a free-text audience description into an
// ordered rule sequence. Every pattern that matches contributes one rule;
// rules after the first are chained with AND. When nothing matches, a single
// default rule (totalSpent > 1000) is returned so the caller always gets a
// usable sequence.
func ParseNaturalLanguage(query string) []models.Rule {
	lower := strings.ToLower(query)

	var rules []models.Rule
	for _, p := range rulePatterns {
		match := p.re.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		rule := p.build(match)
		rule.ID = uuid.NewString()
		if len(rules) > 0 {
			rule.Connector = models.ConnectorAnd
		}
		rules = append(rules, rule)
	}

	if len(rules) == 0 {
		rules = append(rules, models.Rule{
			ID:       uuid.NewString(),
			Field:    models.RuleFieldTotalSpent,
			Operator: ">",
			Value:    "1000",
		})
	}

	return rules
}
