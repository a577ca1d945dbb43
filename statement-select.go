package sqlmodel

import (
	"fmt"

	"github.com/gildas/go-logger"
)

// SelectModel builds SELECT statements
//
// Clauses are always rendered in this order:
//
//	SELECT ... FROM ... WHERE ... GROUP BY ... HAVING ... ORDER BY ... LIMIT ... OFFSET ...
//
// Nothing is validated: without columns or table, String renders "SELECT  FROM ", which is not valid SQL.
type SelectModel struct {
	Model
	columns []Expression
	groupBy []Expression
	having  Conditions
	orderBy []Expression
	limit   string
	offset  string
}

// NewSelectModel creates a SelectModel bound to the given Adapter
func NewSelectModel(adapter Adapter) *SelectModel {
	return &SelectModel{Model: newModel(adapter)}
}

// With attaches a Logger, rendered statements are traced to it
func (model *SelectModel) With(log *logger.Logger) *SelectModel {
	model.setLogger(log, "select")
	return model
}

// Select appends columns to the projection, in order. Duplicates are kept
//
// strings are column names, use Raw for expressions like "COUNT(*)".
func (model *SelectModel) Select(columns ...interface{}) *SelectModel {
	for _, column := range columns {
		model.columns = append(model.columns, asColumn(column))
	}
	return model
}

// From sets the table, the last call wins
//
// The table is rendered verbatim so aliases and joins can be given ("users u").
// Qualified columns still quote it as an identifier.
func (model *SelectModel) From(table string) *SelectModel {
	model.table = table
	return model
}

// Where adds a condition, it is attached with AND if there are conditions already
//
// strings are raw SQL, Cols and other Expressions are rendered through the Adapter.
func (model *SelectModel) Where(condition interface{}) *SelectModel {
	model.addWhere(ConnectiveAnd, condition)
	return model
}

// AndWhere adds a condition attached with AND
func (model *SelectModel) AndWhere(condition interface{}) *SelectModel {
	model.addWhere(ConnectiveAnd, condition)
	return model
}

// OrWhere adds a condition attached with OR
func (model *SelectModel) OrWhere(condition interface{}) *SelectModel {
	model.addWhere(ConnectiveOr, condition)
	return model
}

// WhereQueries adds the conditions of the given Queries, attached with AND
func (model *SelectModel) WhereQueries(queries Queries) *SelectModel {
	model.addQueries(queries)
	return model
}

// Quote adds the conditions built by callback as one parenthesized condition attached with AND
//
// callback receives an empty SelectModel on the same Adapter and table.
// If callback adds no condition, nothing is added.
func (model *SelectModel) Quote(callback func(model *SelectModel)) *SelectModel {
	return model.quote(ConnectiveAnd, callback)
}

// AndQuote is Quote
func (model *SelectModel) AndQuote(callback func(model *SelectModel)) *SelectModel {
	return model.quote(ConnectiveAnd, callback)
}

// OrQuote is Quote, the group is attached with OR
func (model *SelectModel) OrQuote(callback func(model *SelectModel)) *SelectModel {
	return model.quote(ConnectiveOr, callback)
}

func (model *SelectModel) quote(connective Connective, callback func(model *SelectModel)) *SelectModel {
	child := &SelectModel{Model: model.child()}
	if callback != nil {
		callback(child)
	}
	model.addGroup(connective, &child.Model)
	return model
}

// GroupBy appends columns to the GROUP BY clause, in order
func (model *SelectModel) GroupBy(columns ...interface{}) *SelectModel {
	for _, column := range columns {
		model.groupBy = append(model.groupBy, asColumn(column))
	}
	return model
}

// Having adds a HAVING condition, attached with AND if there are conditions already
func (model *SelectModel) Having(condition interface{}) *SelectModel {
	model.having = model.having.Add(ConnectiveAnd, asExpression(condition))
	return model
}

// AndHaving adds a HAVING condition attached with AND
func (model *SelectModel) AndHaving(condition interface{}) *SelectModel {
	model.having = model.having.Add(ConnectiveAnd, asExpression(condition))
	return model
}

// OrHaving adds a HAVING condition attached with OR
func (model *SelectModel) OrHaving(condition interface{}) *SelectModel {
	model.having = model.having.Add(ConnectiveOr, asExpression(condition))
	return model
}

// OrderBy appends columns to the ORDER BY clause, in order
//
// Use Col.Asc and Col.Desc for the direction.
func (model *SelectModel) OrderBy(columns ...interface{}) *SelectModel {
	for _, column := range columns {
		model.orderBy = append(model.orderBy, asColumn(column))
	}
	return model
}

// Limit sets the LIMIT clause, an empty value removes it
func (model *SelectModel) Limit(limit interface{}) *SelectModel {
	model.limit = toText(limit)
	return model
}

// Offset sets the OFFSET clause, an empty value removes it
func (model *SelectModel) Offset(offset interface{}) *SelectModel {
	model.offset = toText(offset)
	return model
}

// Page sets OFFSET and LIMIT for the given 1-based page
//
// Pages below 1 give a negative OFFSET, they are not rejected.
func (model *SelectModel) Page(page, pageSize int) *SelectModel {
	return model.Offset((page - 1) * pageSize).Limit(pageSize)
}

// String renders the statement
//
// It can be called any number of times, the statement is rebuilt from the current state on each call.
func (model *SelectModel) String() string {
	limit, offset := "", ""
	if len(model.limit) > 0 {
		limit = " LIMIT " + model.limit
	}
	if len(model.offset) > 0 {
		offset = " OFFSET " + model.offset
	}
	return model.render(
		"SELECT ",
		model.SelectString(),
		" FROM ",
		model.table,
		model.WhereString(),
		model.GroupByString(),
		model.HavingString(),
		model.OrderByString(),
		limit,
		offset,
	)
}

// SelectString renders the projection
func (model *SelectModel) SelectString() string {
	return joinExpressions(model.columns, model.adapter, model.table)
}

// GroupByString renders the GROUP BY clause with its leading space, or nothing
func (model *SelectModel) GroupByString() string {
	if len(model.groupBy) == 0 {
		return ""
	}
	return " GROUP BY " + joinExpressions(model.groupBy, model.adapter, model.table)
}

// HavingString renders the HAVING clause with its leading space, or nothing
func (model *SelectModel) HavingString() string {
	if len(model.having) == 0 {
		return ""
	}
	return " HAVING " + model.having.Render(model.adapter, model.table)
}

// OrderByString renders the ORDER BY clause with its leading space, or nothing
func (model *SelectModel) OrderByString() string {
	if len(model.orderBy) == 0 {
		return ""
	}
	return " ORDER BY " + joinExpressions(model.orderBy, model.adapter, model.table)
}

// Reset clears every clause, the Adapter and the Logger are kept
func (model *SelectModel) Reset() *SelectModel {
	model.Model.reset()
	model.columns = nil
	model.groupBy = nil
	model.having = nil
	model.orderBy = nil
	model.limit = ""
	model.offset = ""
	return model
}

func toText(value interface{}) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%v", value)
}
