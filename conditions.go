package sqlmodel

import "strings"

// Connective tells how a condition is attached to the ones before it
type Connective int

const (
	// ConnectiveNone is used by the first condition of a list
	ConnectiveNone Connective = iota
	ConnectiveAnd
	ConnectiveOr
)

// String returns the SQL keyword of the connective
func (connective Connective) String() string {
	switch connective {
	case ConnectiveAnd:
		return "AND"
	case ConnectiveOr:
		return "OR"
	default:
		return ""
	}
}

type condition struct {
	Connective Connective
	Expression Expression
}

// Conditions is an ordered list of conditions connected with AND or OR
//
// The connective of the first condition is never rendered.
type Conditions []condition

// Add appends a condition, the first condition of the list is always attached with ConnectiveNone
func (conditions Conditions) Add(connective Connective, expression Expression) Conditions {
	if len(conditions) == 0 {
		connective = ConnectiveNone
	}
	return append(conditions, condition{Connective: connective, Expression: expression})
}

// Group appends the given conditions as one parenthesized condition
//
// An empty group is not appended.
func (conditions Conditions) Group(connective Connective, group Conditions) Conditions {
	if len(group) == 0 {
		return conditions
	}
	return conditions.Add(connective, groupExpression(group))
}

// Render renders the conditions without any leading keyword
func (conditions Conditions) Render(adapter Adapter, table string) string {
	clause := strings.Builder{}
	for i, condition := range conditions {
		if i > 0 {
			clause.WriteString(" ")
			if connective := condition.Connective.String(); len(connective) > 0 {
				clause.WriteString(connective)
				clause.WriteString(" ")
			}
		}
		if condition.Expression != nil {
			clause.WriteString(condition.Expression.Render(adapter, table))
		}
	}
	return clause.String()
}

type groupExpression Conditions

func (group groupExpression) Render(adapter Adapter, table string) string {
	return "(" + Conditions(group).Render(adapter, table) + ")"
}
