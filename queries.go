package sqlmodel

import (
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// Queries describes a map of Query objects, keyed by column
type Queries map[string]Query

// Query describes a query in a Statement Where Clause
//
// The first item is the QueryOperator, the others are its values.
type Query []interface{}

// QueriesFromRequest creates a Queries from an HTTP Request
func QueriesFromRequest(r *http.Request) Queries {
	return QueriesFromURL(r.URL)
}

// QueriesFromURL creates Queries from a URL (from its query part)
func QueriesFromURL(u *url.URL) Queries {
	queries := Queries{}
	for key, values := range u.Query() {
		qvalues := make([]interface{}, len(values))
		for i, value := range values {
			qvalues[i] = value
		}
		queries.Add(key, qvalues...)
	}
	return queries
}

// Add adds a new Query
//
// Without an operator, one value is an equality and more values are an IN.
// If the key is already an equality or an IN, the values are added to it and it becomes an IN.
//
// With an explicit operator (the first value), the Query replaces the one of the key, the last call wins.
// IN and NOT IN are the exception: values added with the same operator are accumulated.
// Ranges need QueryBetween, a map cannot hold 2 queries for the same column.
//
// If no values are given, the Queries is unchanged.
// Use QuerySet as the first value for the assignments of an UpdateModel.
func (queries Queries) Add(key string, values ...interface{}) Queries {
	if len(values) == 0 {
		return queries
	}
	current, found := queries[key]
	if operator, ok := values[0].(QueryOperator); ok {
		if operator == QuerySet {
			queries["="+key] = append(Query{}, values...)
			return queries
		}
		if found && len(current) > 0 && operator.IsVariadic() && current[0] == operator {
			queries[key] = append(append(Query{}, current...), values[1:]...)
			return queries
		}
		queries[key] = append(Query{}, values...)
		return queries
	}
	if found && len(current) > 0 && (current[0] == QueryEqual || current[0] == QueryIn) {
		queries[key] = append(append(Query{QueryIn}, current[1:]...), values...)
		return queries
	}
	switch len(values) {
	case 1:
		queries[key] = append(Query{QueryEqual}, values...)
	default:
		queries[key] = append(Query{QueryIn}, values...)
	}
	return queries
}

// Conditions builds the conditions of a WHERE clause, sorted by column
//
// Queries with the wrong number of values and QuerySet queries are ignored.
func (queries Queries) Conditions() []Expression {
	conditions := []Expression{}
	for _, column := range queries.columns() {
		values := queries[column]
		if len(values) == 0 {
			continue
		}
		operator, ok := values[0].(QueryOperator)
		if !ok || operator == QuerySet {
			continue
		}
		if operator.IsVariadic() {
			if len(values) < 2 {
				continue
			}
		} else if len(values) != operator.Arity {
			continue
		}
		conditions = append(conditions, C(column).Is(operator, values[1:]...))
	}
	return conditions
}

// Assignments builds the assignments of the QuerySet queries, sorted by column
func (queries Queries) Assignments() []Expression {
	assignments := []Expression{}
	for _, column := range queries.columns() {
		values := queries[column]
		if len(values) == 0 {
			continue
		}
		if operator, ok := values[0].(QueryOperator); !ok || operator != QuerySet || len(values) != operator.Arity {
			continue
		}
		assignments = append(assignments, C(strings.TrimPrefix(column, "=")).Is(QuerySet, values[1]))
	}
	return assignments
}

func (queries Queries) columns() []string {
	columns := make([]string, 0, len(queries))
	for column := range queries {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}
