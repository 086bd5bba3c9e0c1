package outputs

import (
	"io"
	"strconv"

	"github.com/karlseguin/mssql/driver"
	"github.com/olekukonko/tablewriter"
)

// Expanded renders one "column | value" block per row, like psql's \x
func Expanded(results []driver.Result, out io.Writer) error {
	for _, result := range results {
		if ok, data := result.IsSimple(); ok {
			io.WriteString(out, data)
			continue
		}

		maxWidth := 0
		for _, c := range result.Columns {
			if len(c) > maxWidth {
				maxWidth = len(c)
			}
		}

		columns := make([][]byte, len(result.Columns))
		for i, column := range result.Columns {
			columns[i] = []byte("\n" + tablewriter.PadRight(column, " ", maxWidth) + " | ")
		}

		for rowIndex, row := range result.Rows {
			io.WriteString(out, "-[ RECORD ")
			io.WriteString(out, strconv.Itoa(rowIndex+1))
			out.Write([]byte(" ] "))
			for colIndex, column := range columns {
				out.Write(column)
				io.WriteString(out, row[colIndex])
			}
			out.Write([]byte("\n"))
		}
		io.WriteString(out, rowCount(result.Meta.RowCount))
	}
	return nil
}
