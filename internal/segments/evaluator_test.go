package segments

import (
	"testing"
	"time"

	"github.com/mini-crm/crm-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func customer(totalSpent float64, visits int, lastVisitDaysAgo int, orders int) *models.Customer {
	return &models.Customer{
		Name:          "Test Customer",
		TotalSpent:    totalSpent,
		Visits:        visits,
		LastVisit:     now.AddDate(0, 0, -lastVisitDaysAgo).Format(models.DateLayout),
		Orders:        orders,
		AvgOrderValue: totalSpent / float64(maxInt(orders, 1)),
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func rule(field, operator, value, connector string) models.Rule {
	return models.Rule{ID: "r", Field: field, Operator: operator, Value: value, Connector: connector}
}

func TestMatches_SingleRule(t *testing.T) {
	c := customer(5000, 10, 30, 4)

	tests := []struct {
		name string
		rule models.Rule
		want bool
	}{
		{"totalSpent greater", rule(models.RuleFieldTotalSpent, ">", "1000", ""), true},
		{"totalSpent not greater", rule(models.RuleFieldTotalSpent, ">", "9000", ""), false},
		{"visits less", rule(models.RuleFieldVisits, "<", "20", ""), true},
		{"orders equal", rule(models.RuleFieldOrders, "=", "4", ""), true},
		{"orders not equal", rule(models.RuleFieldOrders, "!=", "4", ""), false},
		{"gte boundary", rule(models.RuleFieldVisits, ">=", "10", ""), true},
		{"lte boundary", rule(models.RuleFieldVisits, "<=", "10", ""), true},
		{"inactive 30 days is not more than 180", rule(models.RuleFieldLastVisit, ">", "180", ""), false},
		{"unknown field never matches", rule("favouriteColour", ">", "1", ""), false},
		{"unparsable value never matches", rule(models.RuleFieldVisits, ">", "ten", ""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches([]models.Rule{tt.rule}, c, now))
		})
	}
}

func TestMatches_LastVisitDaysSince(t *testing.T) {
	inactive := customer(100, 1, 200, 1)
	active := customer(100, 1, 5, 1)
	sixMonths := []models.Rule{rule(models.RuleFieldLastVisit, ">", "180", "")}

	assert.True(t, Matches(sixMonths, inactive, now))
	assert.False(t, Matches(sixMonths, active, now))
}

func TestMatches_Connectors(t *testing.T) {
	c := customer(5000, 2, 30, 4)

	andRules := []models.Rule{
		rule(models.RuleFieldTotalSpent, ">", "1000", ""),
		rule(models.RuleFieldVisits, ">", "10", models.ConnectorAnd),
	}
	assert.False(t, Matches(andRules, c, now))

	orRules := []models.Rule{
		rule(models.RuleFieldTotalSpent, ">", "1000", ""),
		rule(models.RuleFieldVisits, ">", "10", models.ConnectorOr),
	}
	assert.True(t, Matches(orRules, c, now))

	// Connectors fold left to right: (false OR true) AND true
	mixed := []models.Rule{
		rule(models.RuleFieldTotalSpent, ">", "9000", ""),
		rule(models.RuleFieldVisits, "<", "5", models.ConnectorOr),
		rule(models.RuleFieldOrders, ">", "1", models.ConnectorAnd),
	}
	assert.True(t, Matches(mixed, c, now))
}

func TestMatches_EmptyRules(t *testing.T) {
	assert.False(t, Matches(nil, customer(5000, 10, 30, 4), now))
}

func TestMatches_BadLastVisitDate(t *testing.T) {
	c := customer(5000, 10, 30, 4)
	c.LastVisit = "not-a-date"

	assert.False(t, Matches([]models.Rule{rule(models.RuleFieldLastVisit, ">", "1", "")}, c, now))
}

func TestFilter(t *testing.T) {
	customers := []*models.Customer{
		customer(5000, 10, 30, 4),
		customer(500, 1, 300, 1),
		customer(12000, 25, 2, 9),
	}
	rules := []models.Rule{rule(models.RuleFieldTotalSpent, ">", "1000", "")}

	matched := Filter(rules, customers, now)

	assert.Len(t, matched, 2)
	assert.Empty(t, Filter(rules, nil, now))
}
