// Package segments evaluates rule sequences against customer records to
// compute audience membership and size.
package segments

import (
	"strconv"
	"time"

	"github.com/mini-crm/crm-backend/internal/models"
)

// fieldValue extracts the numeric value a rule field refers to. lastVisit is
// expressed as whole days since the customer's last visit, so rules like
// "lastVisit > 180" select customers inactive for more than six months.
func fieldValue(customer *models.Customer, field string, now time.Time) (float64, bool) {
	switch field {
	case models.RuleFieldTotalSpent:
		return customer.TotalSpent, true
	case models.RuleFieldVisits:
		return float64(customer.Visits), true
	case models.RuleFieldOrders:
		return float64(customer.Orders), true
	case models.RuleFieldAvgOrderValue:
		return customer.AvgOrderValue, true
	case models.RuleFieldLastVisit:
		t, err := time.Parse(models.DateLayout, customer.LastVisit)
		if err != nil {
			return 0, false
		}
		return float64(int(now.Sub(t).Hours() / 24)), true
	default:
		return 0, false
	}
}

func compare(left float64, operator string, right float64) bool {
	switch operator {
	case ">":
		return left > right
	case "<":
		return left < right
	case ">=":
		return left >= right
	case "<=":
		return left <= right
	case "=":
		return left == right
	case "!=":
		return left != right
	default:
		return false
	}
}

// Matches reports whether a customer satisfies a rule sequence. Rules are
// folded left to right; each rule after the first combines with the running
// result through its AND/OR connector. An empty sequence matches nobody. A
// rule with an unknown field, unparsable value or unparsable lastVisit date
// evaluates to false rather than failing the whole sequence.
func Matches(rules []models.Rule, customer *models.Customer, now time.Time) bool {
	if len(rules) == 0 {
		return false
	}

	result := evalRule(rules[0], customer, now)
	for _, rule := range rules[1:] {
		matched := evalRule(rule, customer, now)
		if rule.Connector == models.ConnectorOr {
			result = result || matched
		} else {
			result = result && matched
		}
	}
	return result
}

func evalRule(rule models.Rule, customer *models.Customer, now time.Time) bool {
	left, ok := fieldValue(customer, rule.Field, now)
	if !ok {
		return false
	}
	right, err := strconv.ParseFloat(rule.Value, 64)
	if err != nil {
		return false
	}
	return compare(left, rule.Operator, right)
}

// Filter returns the customers matching a rule sequence, preserving order.
func Filter(rules []models.Rule, customers []*models.Customer, now time.Time) []*models.Customer {
	var matched []*models.Customer
	for _, c := range customers {
		if Matches(rules, c, now) {
			matched = append(matched, c)
		}
	}
	return matched
}
