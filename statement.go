package sqlmodel

// Statement describes stuff that can be rendered into an SQL statement
type Statement interface {
	String() string
	TableName() string
	Adapter() Adapter
}

var (
	_ Statement  = (*SelectModel)(nil)
	_ Statement  = (*UpdateModel)(nil)
	_ Expression = Col{}
	_ Expression = Conditions{}
)
