package outputs

import (
	"fmt"
	"io"
	"strings"

	"github.com/karlseguin/mssql/driver"
)

const (
	FORMAT_TABLE    = "table"
	FORMAT_EXPANDED = "expanded"
	FORMAT_CSV      = "csv"
	FORMAT_JSON     = "json"
	FORMAT_XML      = "xml"
)

type renderer func(results []driver.Result, out io.Writer) error

var renderers = map[string]renderer{
	FORMAT_TABLE:    Table,
	FORMAT_EXPANDED: Expanded,
	FORMAT_CSV:      CSV,
	FORMAT_JSON:     JSON,
	FORMAT_XML:      XML,
}

// Formats lists the supported output formats, default first
func Formats() []string {
	return []string{FORMAT_TABLE, FORMAT_EXPANDED, FORMAT_CSV, FORMAT_JSON, FORMAT_XML}
}

func Valid(format string) bool {
	_, ok := renderers[strings.ToLower(format)]
	return ok
}

// Write renders results in the given format. An empty format means table.
func Write(format string, results []driver.Result, out io.Writer) error {
	if format == "" {
		format = FORMAT_TABLE
	}
	render, ok := renderers[strings.ToLower(format)]
	if !ok {
		return fmt.Errorf("unknown format '%s', valid formats are: %s", format, strings.Join(Formats(), ", "))
	}
	return render(results, out)
}

func rowCount(n int) string {
	if n == 1 {
		return "(1 row)\n"
	}
	return fmt.Sprintf("(%d rows)\n", n)
}
