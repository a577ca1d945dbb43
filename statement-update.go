package sqlmodel

import (
	"sort"

	"github.com/gildas/go-logger"
)

// UpdateModel builds UPDATE statements
//
//	UPDATE table SET column = value, ... WHERE ...
//
// Without assignments, String renders "UPDATE table SET ", which is not valid SQL.
// Without conditions, the statement updates every row of the table.
type UpdateModel struct {
	Model
	assignments []Expression
}

// NewUpdateModel creates an UpdateModel bound to the given Adapter
func NewUpdateModel(adapter Adapter) *UpdateModel {
	return &UpdateModel{Model: newModel(adapter)}
}

// With attaches a Logger, rendered statements are traced to it
func (model *UpdateModel) With(log *logger.Logger) *UpdateModel {
	model.setLogger(log, "update")
	return model
}

// Update sets the table to update
func (model *UpdateModel) Update(table string) *UpdateModel {
	model.table = table
	return model
}

// Set appends the assignment column = value, the value is formatted by the Adapter
func (model *UpdateModel) Set(column string, value interface{}) *UpdateModel {
	model.assignments = append(model.assignments, C(column).Is(QuerySet, value))
	return model
}

// SetAll appends an assignment per entry, sorted by column
func (model *UpdateModel) SetAll(values map[string]interface{}) *UpdateModel {
	columns := make([]string, 0, len(values))
	for column := range values {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	for _, column := range columns {
		model.Set(column, values[column])
	}
	return model
}

// Apply uses the QuerySet entries of queries as assignments and the other entries as conditions
func (model *UpdateModel) Apply(queries Queries) *UpdateModel {
	model.assignments = append(model.assignments, queries.Assignments()...)
	model.addQueries(queries)
	return model
}

// Where adds a condition, it is attached with AND if there are conditions already
func (model *UpdateModel) Where(condition interface{}) *UpdateModel {
	model.addWhere(ConnectiveAnd, condition)
	return model
}

// AndWhere adds a condition attached with AND
func (model *UpdateModel) AndWhere(condition interface{}) *UpdateModel {
	model.addWhere(ConnectiveAnd, condition)
	return model
}

// OrWhere adds a condition attached with OR
func (model *UpdateModel) OrWhere(condition interface{}) *UpdateModel {
	model.addWhere(ConnectiveOr, condition)
	return model
}

// WhereQueries adds the conditions of the given Queries, attached with AND
func (model *UpdateModel) WhereQueries(queries Queries) *UpdateModel {
	model.addQueries(queries)
	return model
}

// Quote adds the conditions built by callback as one parenthesized condition attached with AND
func (model *UpdateModel) Quote(callback func(model *UpdateModel)) *UpdateModel {
	return model.quote(ConnectiveAnd, callback)
}

// AndQuote is Quote
func (model *UpdateModel) AndQuote(callback func(model *UpdateModel)) *UpdateModel {
	return model.quote(ConnectiveAnd, callback)
}

// OrQuote is Quote, the group is attached with OR
func (model *UpdateModel) OrQuote(callback func(model *UpdateModel)) *UpdateModel {
	return model.quote(ConnectiveOr, callback)
}

func (model *UpdateModel) quote(connective Connective, callback func(model *UpdateModel)) *UpdateModel {
	child := &UpdateModel{Model: model.child()}
	if callback != nil {
		callback(child)
	}
	model.addGroup(connective, &child.Model)
	return model
}

// String renders the statement
func (model *UpdateModel) String() string {
	return model.render(
		"UPDATE ",
		quoteName(model.adapter, model.table),
		" SET ",
		joinExpressions(model.assignments, model.adapter, model.table),
		model.WhereString(),
	)
}

// Reset clears the table, the assignments and the conditions, the Adapter and the Logger are kept
func (model *UpdateModel) Reset() *UpdateModel {
	model.Model.reset()
	model.assignments = nil
	return model
}
