package outputs

import (
	"encoding/csv"
	"io"

	"github.com/karlseguin/mssql/driver"
)

// CSV writes a header line followed by the rows. Multiple result sets are
// separated by a blank line.
func CSV(results []driver.Result, out io.Writer) error {
	first := true
	for _, result := range results {
		if ok, _ := result.IsSimple(); ok {
			continue
		}
		if !first {
			io.WriteString(out, "\n")
		}
		first = false

		w := csv.NewWriter(out)
		if err := w.Write(result.Columns); err != nil {
			return err
		}
		if err := w.WriteAll(result.Rows); err != nil {
			return err
		}
	}
	return nil
}
