package sqlmodel

import (
	"fmt"
	"reflect"
	"strings"
)

// Expression is a fragment of SQL that can render itself through an Adapter
//
// table is the name of the table the enclosing statement works on, expressions may use it to qualify columns.
type Expression interface {
	Render(adapter Adapter, table string) string
}

type partKind int

const (
	fieldPart partKind = iota
	aliasPart
	operatorPart
	valuePart
	listPart
	rawPart
)

type part struct {
	kind   partKind
	text   string
	values []interface{}
}

// Col is an SQL fragment: a column reference, optionally followed by operators and values, or raw SQL text
//
// A Col is a value, chaining returns a new Col and never modifies the receiver.
// Missing parts render as nothing, a Col never fails to render.
type Col struct {
	parts     []part
	qualified bool
}

// C creates a column reference, the name is quoted by the Adapter when rendered
//
// A dotted name ("person.age") is quoted segment by segment, "*" is never quoted.
func C(name string) Col {
	return Col{parts: []part{{kind: fieldPart, text: name}}}
}

// Raw creates an SQL fragment that is rendered verbatim
//
// Nothing is quoted or escaped, the caller is responsible for the content.
func Raw(text string) Col {
	return Col{parts: []part{{kind: rawPart, text: text}}}
}

// Star creates the "*" column
func Star() Col {
	return C("*")
}

// Op appends an operator
func (col Col) Op(operator string) Col {
	return col.with(part{kind: operatorPart, text: operator})
}

// Val appends a value, formatted by the Adapter's QuoteValue when rendered
func (col Col) Val(value interface{}) Col {
	return col.with(part{kind: valuePart, values: []interface{}{value}})
}

// Raw appends raw SQL text
func (col Col) Raw(text string) Col {
	return col.with(part{kind: rawPart, text: text})
}

// Is appends a QueryOperator and its values
//
// BETWEEN takes 2 values, IN and NOT IN take any number of values, IS NULL and IS NOT NULL take none.
// QuerySet renders as an assignment.
//
// A single slice or array given to IN or NOT IN is expanded into the list, except []byte which is one value.
// Values are not counted: IN or NOT IN without values render "IN ()" and BETWEEN with one value
// renders "BETWEEN x", neither is valid SQL.
func (col Col) Is(operator QueryOperator, values ...interface{}) Col {
	switch {
	case operator == QuerySet:
		col = col.Op("=")
	case operator == QueryBetween:
		col = col.Op(operator.Operator)
		for i, value := range values {
			if i > 1 {
				break
			}
			if i > 0 {
				col = col.Op("AND")
			}
			col = col.Val(value)
		}
		return col
	case operator.IsVariadic():
		return col.Op(operator.Operator).with(part{kind: listPart, values: flatten(values)})
	default:
		col = col.Op(operator.Operator)
	}
	if operator.Arity > 1 && len(values) > 0 {
		col = col.Val(values[0])
	}
	return col
}

// Eq appends "= value"
func (col Col) Eq(value interface{}) Col { return col.Is(QueryEqual, value) }

// Ne appends "<> value"
func (col Col) Ne(value interface{}) Col { return col.Is(QueryDifferent, value) }

// Gt appends "> value"
func (col Col) Gt(value interface{}) Col { return col.Is(QueryGreater, value) }

// Gte appends ">= value"
func (col Col) Gte(value interface{}) Col { return col.Is(QueryGreaterOrEqual, value) }

// Lt appends "< value"
func (col Col) Lt(value interface{}) Col { return col.Is(QueryLesser, value) }

// Lte appends "<= value"
func (col Col) Lte(value interface{}) Col { return col.Is(QueryLesserOrEqual, value) }

// Like appends "LIKE pattern", the pattern is a value and is escaped as such
func (col Col) Like(pattern interface{}) Col { return col.Is(QueryLike, pattern) }

// In appends "IN (values...)", see Is for slices and empty lists
func (col Col) In(values ...interface{}) Col { return col.Is(QueryIn, values...) }

// NotIn appends "NOT IN (values...)", see Is for slices and empty lists
func (col Col) NotIn(values ...interface{}) Col { return col.Is(QueryNotIn, values...) }

// Between appends "BETWEEN low AND high"
func (col Col) Between(low, high interface{}) Col { return col.Is(QueryBetween, low, high) }

// IsNull appends "IS NULL"
func (col Col) IsNull() Col { return col.Is(QueryIsNull) }

// IsNotNull appends "IS NOT NULL"
func (col Col) IsNotNull() Col { return col.Is(QueryIsNotNull) }

// Asc appends the ascending direction, for ORDER BY
func (col Col) Asc() Col { return col.Op("ASC") }

// Desc appends the descending direction, for ORDER BY
func (col Col) Desc() Col { return col.Op("DESC") }

// As appends an alias, quoted by the Adapter
func (col Col) As(alias string) Col {
	return col.with(part{kind: aliasPart, text: alias})
}

// Qualified prefixes the column with the table name of the statement it is rendered in
//
// Names that are already dotted are left alone.
func (col Col) Qualified() Col {
	qualified := col.with()
	qualified.qualified = true
	return qualified
}

// IsEmpty tells if the Col would render nothing
func (col Col) IsEmpty() bool {
	for _, part := range col.parts {
		if len(part.text) > 0 || len(part.values) > 0 {
			return false
		}
	}
	return true
}

// Render renders the Col through the given Adapter
//
// Parts are joined with single spaces, empty parts are skipped.
func (col Col) Render(adapter Adapter, table string) string {
	fragments := make([]string, 0, len(col.parts))
	for _, part := range col.parts {
		var fragment string
		switch part.kind {
		case fieldPart:
			if len(part.text) == 0 {
				continue
			}
			fragment = quoteName(adapter, part.text)
			if col.qualified && len(table) > 0 && !strings.Contains(part.text, ".") {
				fragment = quoteName(adapter, table) + "." + fragment
			}
		case aliasPart:
			if len(part.text) == 0 {
				continue
			}
			fragment = "AS " + quoteName(adapter, part.text)
		case valuePart:
			fragment = renderValue(adapter, part.values[0])
		case listPart:
			values := make([]string, len(part.values))
			for i, value := range part.values {
				values[i] = renderValue(adapter, value)
			}
			fragment = "(" + strings.Join(values, ", ") + ")"
		default:
			fragment = part.text
		}
		if len(fragment) > 0 {
			fragments = append(fragments, fragment)
		}
	}
	return strings.Join(fragments, " ")
}

// String renders the Col with the SQLite Adapter, mostly for logs
func (col Col) String() string {
	return col.Render(SQLiteAdapter{}, "")
}

func (col Col) with(parts ...part) Col {
	extended := make([]part, 0, len(col.parts)+len(parts))
	extended = append(extended, col.parts...)
	extended = append(extended, parts...)
	return Col{parts: extended, qualified: col.qualified}
}

func renderValue(adapter Adapter, value interface{}) string {
	if adapter == nil {
		return fmt.Sprintf("%v", value)
	}
	return adapter.QuoteValue(value)
}

// flatten expands a lone slice or array argument into its elements
func flatten(values []interface{}) []interface{} {
	if len(values) != 1 {
		return values
	}
	if _, isBytes := values[0].([]byte); isBytes {
		return values
	}
	reflected := reflect.ValueOf(values[0])
	if reflected.Kind() != reflect.Slice && reflected.Kind() != reflect.Array {
		return values
	}
	expanded := make([]interface{}, reflected.Len())
	for i := range expanded {
		expanded[i] = reflected.Index(i).Interface()
	}
	return expanded
}

// asExpression converts a condition argument: strings and Stringers are raw SQL, Expressions are kept as is
func asExpression(condition interface{}) Expression {
	switch payload := condition.(type) {
	case Expression:
		return payload
	case string:
		return Raw(payload)
	case fmt.Stringer:
		return Raw(payload.String())
	case nil:
		return Raw("")
	default:
		return Raw(fmt.Sprintf("%v", payload))
	}
}

// asColumn converts a column argument: strings are column names, Expressions are kept as is
func asColumn(column interface{}) Expression {
	switch payload := column.(type) {
	case Expression:
		return payload
	case string:
		return C(payload)
	case nil:
		return Col{}
	default:
		return Raw(fmt.Sprintf("%v", payload))
	}
}
