package ai

import (
	"testing"

	"github.com/mini-crm/crm-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNaturalLanguage_MonthsInactivity(t *testing.T) {
	rules := ParseNaturalLanguage("People who haven't shopped in 6 months")

	require.Len(t, rules, 1)
	assert.Equal(t, models.RuleFieldLastVisit, rules[0].Field)
	assert.Equal(t, ">", rules[0].Operator)
	assert.Equal(t, "180", rules[0].Value)
	assert.Empty(t, rules[0].Connector)
	assert.NotEmpty(t, rules[0].ID)
}

func TestParseNaturalLanguage_SpentOver(t *testing.T) {
	for _, query := range []string{
		"customers who spent over ₹5000",
		"customers who spent more than 5000",
	} {
		rules := ParseNaturalLanguage(query)

		require.Len(t, rules, 1, "query: %s", query)
		assert.Equal(t, models.RuleFieldTotalSpent, rules[0].Field)
		assert.Equal(t, ">", rules[0].Operator)
		assert.Equal(t, "5000", rules[0].Value)
	}
}

func TestParseNaturalLanguage_Visits(t *testing.T) {
	rules := ParseNaturalLanguage("less than 3 visits")

	require.Len(t, rules, 1)
	assert.Equal(t, models.RuleFieldVisits, rules[0].Field)
	assert.Equal(t, "<", rules[0].Operator)
	assert.Equal(t, "3", rules[0].Value)
}

func TestParseNaturalLanguage_Orders(t *testing.T) {
	rules := ParseNaturalLanguage("more than 10 orders")

	require.Len(t, rules, 1)
	assert.Equal(t, models.RuleFieldOrders, rules[0].Field)
	assert.Equal(t, ">", rules[0].Operator)
	assert.Equal(t, "10", rules[0].Value)
}

func TestParseNaturalLanguage_InactiveDays(t *testing.T) {
	rules := ParseNaturalLanguage("inactive for 90 days")

	require.Len(t, rules, 1)
	assert.Equal(t, models.RuleFieldLastVisit, rules[0].Field)
	assert.Equal(t, ">", rules[0].Operator)
	assert.Equal(t, "90", rules[0].Value)
}

func TestParseNaturalLanguage_MultiplePatternsChainWithAnd(t *testing.T) {
	rules := ParseNaturalLanguage("spent over ₹2000 and less than 5 visits and more than 2 orders")

	require.Len(t, rules, 3)
	assert.Empty(t, rules[0].Connector)
	assert.Equal(t, models.ConnectorAnd, rules[1].Connector)
	assert.Equal(t, models.ConnectorAnd, rules[2].Connector)

	// Order of checks is fixed and defines result order
	assert.Equal(t, models.RuleFieldTotalSpent, rules[0].Field)
	assert.Equal(t, models.RuleFieldVisits, rules[1].Field)
	assert.Equal(t, models.RuleFieldOrders, rules[2].Field)
}

func TestParseNaturalLanguage_DefaultRule(t *testing.T) {
	rules := ParseNaturalLanguage("all my favourite people")

	require.Len(t, rules, 1)
	assert.Equal(t, models.RuleFieldTotalSpent, rules[0].Field)
	assert.Equal(t, ">", rules[0].Operator)
	assert.Equal(t, "1000", rules[0].Value)
	assert.Empty(t, rules[0].Connector)
}

func TestParseNaturalLanguage_CaseInsensitive(t *testing.T) {
	rules := ParseNaturalLanguage("HAVEN'T SHOPPED IN 2 MONTHS")

	require.Len(t, rules, 1)
	assert.Equal(t, "60", rules[0].Value)
}
