package models

// Rule fields that can be evaluated against a customer record
const (
	RuleFieldTotalSpent    = "totalSpent"
	RuleFieldVisits        = "visits"
	RuleFieldLastVisit     = "lastVisit"
	RuleFieldOrders        = "orders"
	RuleFieldAvgOrderValue = "avgOrderValue"
)

// Rule connectors
const (
	ConnectorAnd = "AND"
	ConnectorOr  = "OR"
)

// Rule represents a single audience-filter condition. Rules are chained in
// order; the first rule in a sequence carries no connector, every subsequent
// rule carries AND or OR relative to the result so far.
type Rule struct {
	ID        string `bson:"id" json:"id"`
	Field     string `bson:"field" json:"field"`         // totalSpent, visits, lastVisit, orders, avgOrderValue
	Operator  string `bson:"operator" json:"operator"`   // >, <, >=, <=, =, !=
	Value     string `bson:"value" json:"value"`         // numeric literal; days for lastVisit
	Connector string `bson:"connector,omitempty" json:"connector,omitempty"` // AND, OR
}
