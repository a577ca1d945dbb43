package sqlmodel

import (
	"reflect"
	"strings"
)

// SelectStruct appends the columns of a struct to the projection
//
// schema is a struct or a pointer to one, a nil pointer is fine.
// Columns are the exported fields, named by their `sql` tag or by their lower cased field name.
// Fields tagged `sql:"-"` are skipped.
// If the table is not set yet, it becomes the lower cased type name.
// Anything else than a struct is ignored.
func (model *SelectModel) SelectStruct(schema interface{}) *SelectModel {
	schemaType, _ := getTypeAndValue(schema)
	if schemaType == nil || schemaType.Kind() != reflect.Struct {
		if model.Logger != nil {
			model.Logger.Warnf("Cannot select from %T, it is not a struct", schema)
		}
		return model
	}
	for _, column := range getColumns(schemaType) {
		model.columns = append(model.columns, C(column))
	}
	if len(model.table) == 0 {
		model.table = getTableName(schemaType)
	}
	return model
}

// SetStruct assigns the columns of a struct from its field values
//
// Columns are found the same way as SelectStruct.
// Fields tagged `sql:"key"` are not assigned, they become equality conditions so only the row of blob is updated.
// If the table is not set yet, it becomes the lower cased type name.
// Anything else than a struct, or a nil pointer, is ignored.
func (model *UpdateModel) SetStruct(blob interface{}) *UpdateModel {
	blobType, blobValue := getTypeAndValue(blob)
	if blobType == nil || blobType.Kind() != reflect.Struct || !blobValue.IsValid() {
		if model.Logger != nil {
			model.Logger.Warnf("Cannot update from %T, it is not a struct", blob)
		}
		return model
	}
	queries := Queries{}
	for i := 0; i < blobType.NumField(); i++ {
		field := blobType.Field(i)
		options := getOptions(field)
		if options.Ignore || !field.IsExported() {
			continue
		}
		value := blobValue.Field(i).Interface()
		if options.PrimaryKey {
			queries.Add(options.ColumnName, QueryEqual, value)
		} else {
			queries.Add(options.ColumnName, QuerySet, value)
		}
	}
	if len(model.table) == 0 {
		model.table = getTableName(blobType)
	}
	return model.Apply(queries)
}

type fieldOptions struct {
	PrimaryKey bool
	Ignore     bool
	ColumnName string
}

// getOptions parses the `sql` tag of a field: `sql:"name,key,index,type"` or `sql:"-"`
//
// The first item that is not an option is the column name.
// "index" and column types are accepted, statements do not use them.
func getOptions(field reflect.StructField) fieldOptions {
	options := fieldOptions{}
	for i, option := range strings.Split(field.Tag.Get("sql"), ",") {
		name := strings.ToLower(strings.TrimSpace(option))
		switch name {
		case "", "index":
		case "key":
			options.PrimaryKey = true
		case "-":
			options.Ignore = true
		default:
			if i == 0 {
				options.ColumnName = name
			}
		}
	}
	if len(options.ColumnName) == 0 {
		options.ColumnName = strings.ToLower(field.Name)
	}
	return options
}

func getTypeAndValue(blob interface{}) (reflect.Type, reflect.Value) {
	blobType := reflect.TypeOf(blob)
	blobValue := reflect.ValueOf(blob)
	if blobType != nil && blobType.Kind() == reflect.Ptr {
		blobType = blobType.Elem()
		if blobValue.IsNil() {
			return blobType, reflect.Value{}
		}
		blobValue = blobValue.Elem()
	}
	return blobType, blobValue
}

func getColumns(schemaType reflect.Type) []string {
	columns := []string{}
	for i := 0; i < schemaType.NumField(); i++ {
		field := schemaType.Field(i)
		options := getOptions(field)
		if options.Ignore || !field.IsExported() {
			continue
		}
		columns = append(columns, options.ColumnName)
	}
	return columns
}

func getTableName(schemaType reflect.Type) string {
	return strings.ToLower(schemaType.Name())
}
