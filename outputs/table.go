package outputs

import (
	"io"

	"github.com/karlseguin/mssql/driver"
	"github.com/olekukonko/tablewriter"
)

// Table renders each result set as a psql-style table followed by a row count
func Table(results []driver.Result, out io.Writer) error {
	for _, result := range results {
		if ok, data := result.IsSimple(); ok {
			io.WriteString(out, data)
			continue
		}

		table := tablewriter.NewWriter(out)
		table.SetAutoFormatHeaders(false)
		table.SetColWidth(72)
		table.SetHeaderLine(true)
		table.SetAutoWrapText(false)
		table.SetReflowDuringAutoWrap(false)
		table.SetBorders(tablewriter.Border{Left: false, Top: false, Right: false, Bottom: false})
		table.SetCenterSeparator("|")
		table.SetHeader(result.Columns)
		table.AppendBulk(result.Rows)
		table.Render()

		io.WriteString(out, rowCount(result.Meta.RowCount))
	}
	return nil
}
