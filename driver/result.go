package driver

import (
	"database/sql"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"
)

type Meta struct {
	RowCount int
	RunTime  time.Duration
}

// Result is a fully buffered result set, every value rendered as a string.
// NULL is rendered as "NULL" for display, Nulls tells it apart from the text.
type Result struct {
	Columns []string
	Rows    [][]string
	Nulls   [][]bool
	Meta    Meta
}

// IsNull reports whether the cell was SQL NULL
func (r Result) IsNull(row int, column int) bool {
	if row >= len(r.Nulls) || column >= len(r.Nulls[row]) {
		return false
	}
	return r.Nulls[row][column]
}

func (r Result) IsSimple() (bool, string) {
	if len(r.Columns) == 0 {
		return true, "OK\n"
	}
	return false, ""
}

func (r Result) empty() bool {
	return len(r.Columns) == 0
}

// Maps returns each row keyed by column name. Duplicate column names,
// which sql server allows, keep the last value.
func (r Result) Maps() []map[string]string {
	maps := make([]map[string]string, len(r.Rows))
	for i, row := range r.Rows {
		m := make(map[string]string, len(r.Columns))
		for j, column := range r.Columns {
			m[column] = row[j]
		}
		maps[i] = m
	}
	return maps
}

func readResult(rows *sql.Rows) (Result, error) {
	columns, err := rows.Columns()
	if err != nil {
		return Result{}, wrapError(err)
	}

	values := make([]interface{}, len(columns))
	scan := make([]interface{}, len(columns))
	for i := range values {
		scan[i] = &values[i]
	}

	var table [][]string
	var nulls [][]bool
	for rows.Next() {
		if err := rows.Scan(scan...); err != nil {
			return Result{}, wrapError(err)
		}
		row := make([]string, len(columns))
		null := make([]bool, len(columns))
		for i, value := range values {
			row[i] = format(value)
			null[i] = value == nil
		}
		table = append(table, row)
		nulls = append(nulls, null)
	}

	return Result{
		Columns: columns,
		Rows:    table,
		Nulls:   nulls,
		Meta:    Meta{RowCount: len(table)},
	}, nil
}

func format(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "NULL"
	case string:
		return v
	case []byte:
		// decimals and money come back as text, binary columns don't
		if utf8.Valid(v) {
			return string(v)
		}
		return "0x" + hex.EncodeToString(v)
	case time.Time:
		return v.Format("2006-01-02 15:04:05.000")
	case bool:
		if v {
			return "1"
		}
		return "0"
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
