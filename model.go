package sqlmodel

import (
	"strings"

	"github.com/gildas/go-logger"
)

// Model holds what SELECT and UPDATE statements share: the Adapter, the table, the WHERE conditions and the output buffer
//
// A Model is not safe for concurrent use, the Adapter it is bound to is.
type Model struct {
	Logger     *logger.Logger
	adapter    Adapter
	table      string
	conditions Conditions
	sql        strings.Builder
}

func newModel(adapter Adapter) Model {
	return Model{adapter: adapter}
}

// Adapter returns the Adapter this Model renders with
func (model *Model) Adapter() Adapter {
	return model.adapter
}

// TableName returns the table this Model works on
func (model *Model) TableName() string {
	return model.table
}

// Conditions returns the WHERE conditions accumulated so far
func (model *Model) Conditions() Conditions {
	return model.conditions
}

// WhereString renders the WHERE clause with its leading space, or nothing when there are no conditions
func (model *Model) WhereString() string {
	if len(model.conditions) == 0 {
		return ""
	}
	return " WHERE " + model.conditions.Render(model.adapter, model.table)
}

func (model *Model) addWhere(connective Connective, condition interface{}) {
	model.conditions = model.conditions.Add(connective, asExpression(condition))
}

func (model *Model) addQueries(queries Queries) {
	for _, condition := range queries.Conditions() {
		model.conditions = model.conditions.Add(ConnectiveAnd, condition)
	}
}

func (model *Model) addGroup(connective Connective, child *Model) {
	model.conditions = model.conditions.Group(connective, child.conditions)
}

// child creates the Model given to Quote callbacks
func (model *Model) child() Model {
	return Model{
		Logger:  model.Logger,
		adapter: model.adapter,
		table:   model.table,
	}
}

func (model *Model) setLogger(log *logger.Logger, scope string) {
	model.Logger = logger.CreateIfNil(log, "sql").Child("statement", scope)
}

// render stores the statement in the output buffer
func (model *Model) render(parts ...string) string {
	model.sql.Reset()
	for _, part := range parts {
		model.sql.WriteString(part)
	}
	statement := model.sql.String()
	if model.Logger != nil {
		model.Logger.Tracef("Statement: %s", statement)
	}
	return statement
}

func (model *Model) reset() {
	model.table = ""
	model.conditions = nil
	model.sql.Reset()
}

// joinExpressions renders the expressions separated by ", "
func joinExpressions(expressions []Expression, adapter Adapter, table string) string {
	rendered := make([]string, 0, len(expressions))
	for _, expression := range expressions {
		rendered = append(rendered, expression.Render(adapter, table))
	}
	return strings.Join(rendered, ", ")
}
