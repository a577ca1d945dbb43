package sqlmodel

import "math"

// QueryOperator describes the operator used to build a condition
//
// Arity counts the column plus its values, an Arity of 1 takes no value.
type QueryOperator struct {
	Operator string
	Arity    int
}

var (
	QueryBetween        = QueryOperator{"BETWEEN", 3}
	QueryDifferent      = QueryOperator{"<>", 2}
	QueryEqual          = QueryOperator{"=", 2}
	QueryGreater        = QueryOperator{">", 2}
	QueryGreaterOrEqual = QueryOperator{">=", 2}
	QueryIn             = QueryOperator{"IN", math.MaxInt32}
	QueryNotIn          = QueryOperator{"NOT IN", math.MaxInt32}
	QueryIsNull         = QueryOperator{"IS NULL", 1}
	QueryIsNotNull      = QueryOperator{"IS NOT NULL", 1}
	QueryLesser         = QueryOperator{"<", 2}
	QueryLesserOrEqual  = QueryOperator{"<=", 2}
	QueryLike           = QueryOperator{"LIKE", 2}
	QuerySet            = QueryOperator{"SET", 2}
)

// String returns a string representation of the operator
func (operator QueryOperator) String() string {
	return operator.Operator
}

// IsVariadic tells if the operator takes a list of values (IN, NOT IN)
func (operator QueryOperator) IsVariadic() bool {
	return operator.Arity == math.MaxInt32
}
