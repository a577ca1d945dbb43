package sqlmodel

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/gildas/go-errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Adapter describes the dialect specific quoting rules used when rendering statements
//
// Adapters must not hold mutable state, they are shared by all the statements bound to them.
type Adapter interface {
	// QuoteField quotes an identifier (table, column, alias)
	QuoteField(identifier string) string
	// QuoteValue formats a value as an SQL literal, escaping it as needed
	QuoteValue(value interface{}) string
}

// TimeFormat is the layout used to render time.Time values
const TimeFormat = "2006-01-02 15:04:05.999999999-07:00"

// PostgresAdapter quotes identifiers with double quotes: "table"."column"
type PostgresAdapter struct{}

// SQLiteAdapter quotes identifiers with double quotes, as ANSI SQL does
type SQLiteAdapter struct{}

// MySQLAdapter quotes identifiers with backticks: `table`.`column`
//
// Unless NoBackslashEscapes is set (matching the server's NO_BACKSLASH_ESCAPES sql_mode),
// backslashes in string literals are escaped too.
type MySQLAdapter struct {
	NoBackslashEscapes bool
}

// AdapterFor returns the Adapter that matches a database/sql driver name
func AdapterFor(driverName string) (Adapter, error) {
	switch strings.ToLower(strings.TrimSpace(driverName)) {
	case "postgres", "postgresql", "pgx", "pq":
		return PostgresAdapter{}, nil
	case "sqlite", "sqlite3":
		return SQLiteAdapter{}, nil
	case "mysql", "mariadb":
		return MySQLAdapter{}, nil
	default:
		return nil, errors.ArgumentInvalid.With("driver", driverName).WithStack()
	}
}

// Must returns the given Adapter or panics upon error
func Must(adapter Adapter, err error) Adapter {
	if err != nil {
		panic(err)
	}
	return adapter
}

// QuoteField quotes an identifier, embedded double quotes are doubled
func (adapter PostgresAdapter) QuoteField(identifier string) string {
	return pgx.Identifier{identifier}.Sanitize()
}

// QuoteValue formats a value as a PostgreSQL literal
func (adapter PostgresAdapter) QuoteValue(value interface{}) string {
	return formatValue(value, escapeStandard)
}

// QuoteField quotes an identifier, embedded double quotes are doubled
func (adapter SQLiteAdapter) QuoteField(identifier string) string {
	return `"` + strings.ReplaceAll(identifier, `"`, `""`) + `"`
}

// QuoteValue formats a value as an SQLite literal
func (adapter SQLiteAdapter) QuoteValue(value interface{}) string {
	return formatValue(value, escapeStandard)
}

// QuoteField quotes an identifier, embedded backticks are doubled
func (adapter MySQLAdapter) QuoteField(identifier string) string {
	return "`" + strings.ReplaceAll(identifier, "`", "``") + "`"
}

// QuoteValue formats a value as a MySQL literal
func (adapter MySQLAdapter) QuoteValue(value interface{}) string {
	if adapter.NoBackslashEscapes {
		return formatValue(value, escapeStandard)
	}
	return formatValue(value, escapeBackslash)
}

// quoteName quotes a possibly dotted name ("schema.table") one segment at a time
func quoteName(adapter Adapter, name string) string {
	if adapter == nil {
		return name
	}
	if len(name) == 0 || name == "*" {
		return name
	}
	segments := strings.Split(name, ".")
	for i, segment := range segments {
		if segment != "*" {
			segments[i] = adapter.QuoteField(segment)
		}
	}
	return strings.Join(segments, ".")
}

func escapeStandard(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

func escapeBackslash(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

// formatValue renders a Go value as an SQL literal, strings go through escape
func formatValue(value interface{}, escape func(string) string) string {
	if reflected := reflect.ValueOf(value); reflected.Kind() == reflect.Ptr {
		if reflected.IsNil() {
			return "NULL"
		}
		return formatValue(reflected.Elem().Interface(), escape)
	}
	switch payload := value.(type) {
	case nil:
		return "NULL"
	case string:
		return escape(payload)
	case []byte:
		return escape(string(payload))
	case bool:
		if payload {
			return "TRUE"
		}
		return "FALSE"
	case int:
		return strconv.FormatInt(int64(payload), 10)
	case int8:
		return strconv.FormatInt(int64(payload), 10)
	case int16:
		return strconv.FormatInt(int64(payload), 10)
	case int32:
		return strconv.FormatInt(int64(payload), 10)
	case int64:
		return strconv.FormatInt(payload, 10)
	case uint:
		return strconv.FormatUint(uint64(payload), 10)
	case uint8:
		return strconv.FormatUint(uint64(payload), 10)
	case uint16:
		return strconv.FormatUint(uint64(payload), 10)
	case uint32:
		return strconv.FormatUint(uint64(payload), 10)
	case uint64:
		return strconv.FormatUint(payload, 10)
	case float32:
		return formatFloat(float64(payload), 32)
	case float64:
		return formatFloat(payload, 64)
	case time.Time:
		return escape(payload.Format(TimeFormat))
	case time.Duration:
		return strconv.FormatInt(int64(payload), 10)
	case uuid.UUID:
		return escape(payload.String())
	case fmt.Stringer:
		return escape(payload.String())
	}

	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(reflected.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(reflected.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return formatFloat(reflected.Float(), 64)
	case reflect.Bool:
		return formatValue(reflected.Bool(), escape)
	case reflect.String:
		return escape(reflected.String())
	default:
		return escape(fmt.Sprintf("%v", value))
	}
}

// formatFloat never emits exponents or NaN/Inf, which no dialect accepts as bare literals
func formatFloat(value float64, bitSize int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "NULL"
	}
	return strconv.FormatFloat(value, 'f', -1, bitSize)
}
