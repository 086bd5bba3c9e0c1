package outputs

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/karlseguin/mssql/driver"
)

// JSON writes each result set as an array of objects, one per line. Keys
// keep the column order of the query, which a map would lose.
func JSON(results []driver.Result, out io.Writer) error {
	var buffer bytes.Buffer
	for _, result := range results {
		if ok, _ := result.IsSimple(); ok {
			continue
		}

		keys := make([][]byte, len(result.Columns))
		for i, column := range result.Columns {
			key, err := json.Marshal(column)
			if err != nil {
				return err
			}
			keys[i] = append(key, ':')
		}

		buffer.Reset()
		buffer.WriteByte('[')
		for i, row := range result.Rows {
			if i > 0 {
				buffer.WriteByte(',')
			}
			buffer.WriteByte('{')
			for j, value := range row {
				if j > 0 {
					buffer.WriteByte(',')
				}
				buffer.Write(keys[j])
				if result.IsNull(i, j) {
					buffer.WriteString("null")
					continue
				}
				encoded, err := json.Marshal(value)
				if err != nil {
					return err
				}
				buffer.Write(encoded)
			}
			buffer.WriteByte('}')
		}
		buffer.WriteString("]\n")

		if _, err := out.Write(buffer.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
