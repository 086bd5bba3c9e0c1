package outputs

import (
	"encoding/xml"
	"io"

	"github.com/karlseguin/mssql/driver"
)

type xmlResults struct {
	XMLName xml.Name    `xml:"results"`
	Results []xmlResult `xml:"result"`
}

type xmlResult struct {
	Rows []xmlRow `xml:"row"`
}

type xmlRow struct {
	Columns []xmlColumn `xml:"column"`
}

type xmlColumn struct {
	Name  string `xml:"name,attr"`
	Null  bool   `xml:"null,attr,omitempty"`
	Value string `xml:",chardata"`
}

func XML(results []driver.Result, out io.Writer) error {
	doc := xmlResults{}
	for _, result := range results {
		if ok, _ := result.IsSimple(); ok {
			continue
		}
		rows := make([]xmlRow, len(result.Rows))
		for i, row := range result.Rows {
			columns := make([]xmlColumn, len(row))
			for j, value := range row {
				if result.IsNull(i, j) {
					columns[j] = xmlColumn{Name: result.Columns[j], Null: true}
				} else {
					columns[j] = xmlColumn{Name: result.Columns[j], Value: value}
				}
			}
			rows[i] = xmlRow{Columns: columns}
		}
		doc.Results = append(doc.Results, xmlResult{Rows: rows})
	}

	io.WriteString(out, xml.Header)
	encoder := xml.NewEncoder(out)
	encoder.Indent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(out, "\n")
	return err
}
