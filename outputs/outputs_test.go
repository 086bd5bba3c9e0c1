package outputs

import (
	"bytes"
	"testing"

	"github.com/karlseguin/mssql/driver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func users() []driver.Result {
	return []driver.Result{{
		Columns: []string{"id", "name"},
		Rows:    [][]string{{"1", "leto"}, {"2", "NULL"}},
		Nulls:   [][]bool{{false, false}, {false, true}},
		Meta:    driver.Meta{RowCount: 2},
	}}
}

func render(t *testing.T, format string, results []driver.Result) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, Write(format, results, &out))
	return out.String()
}

func TestWrite_UnknownFormat(t *testing.T) {
	var out bytes.Buffer
	err := Write("yaml", users(), &out)
	assert.EqualError(t, err, "unknown format 'yaml', valid formats are: table, expanded, csv, json, xml")
}

func TestValid(t *testing.T) {
	for _, format := range Formats() {
		assert.True(t, Valid(format), format)
	}
	assert.True(t, Valid("JSON"))
	assert.False(t, Valid("tsv"))
}

func TestTable(t *testing.T) {
	out := render(t, "", users())
	assert.Contains(t, out, "id")
	assert.Contains(t, out, "name")
	assert.Contains(t, out, "leto")
	assert.Contains(t, out, "|")
	assert.Contains(t, out, "(2 rows)\n")
}

func TestTable_Simple(t *testing.T) {
	out := render(t, FORMAT_TABLE, []driver.Result{{}})
	assert.Equal(t, "OK\n", out)
}

func TestExpanded(t *testing.T) {
	out := render(t, FORMAT_EXPANDED, users())
	assert.Equal(t, "-[ RECORD 1 ] \nid   | 1\nname | leto\n-[ RECORD 2 ] \nid   | 2\nname | NULL\n(2 rows)\n", out)
}

func TestCSV(t *testing.T) {
	results := append(users(), driver.Result{}, driver.Result{
		Columns: []string{"note"},
		Rows:    [][]string{{"a, \"quoted\" note"}},
		Meta:    driver.Meta{RowCount: 1},
	})
	out := render(t, FORMAT_CSV, results)
	assert.Equal(t, "id,name\n1,leto\n2,NULL\n\nnote\n\"a, \"\"quoted\"\" note\"\n", out)
}

func TestJSON(t *testing.T) {
	out := render(t, FORMAT_JSON, users())
	assert.Equal(t, `[{"id":"1","name":"leto"},{"id":"2","name":null}]`+"\n", out)
}

func TestJSON_NullTextIsNotNull(t *testing.T) {
	out := render(t, FORMAT_JSON, []driver.Result{{
		Columns: []string{"word", "missing"},
		Rows:    [][]string{{"NULL", "NULL"}},
		Nulls:   [][]bool{{false, true}},
	}})
	assert.Equal(t, `[{"word":"NULL","missing":null}]`+"\n", out)
}

func TestJSON_KeepsColumnOrder(t *testing.T) {
	out := render(t, FORMAT_JSON, []driver.Result{{
		Columns: []string{"zeta", "alpha"},
		Rows:    [][]string{{"z", "a"}},
	}})
	assert.Equal(t, `[{"zeta":"z","alpha":"a"}]`+"\n", out)
}

func TestJSON_Empty(t *testing.T) {
	out := render(t, FORMAT_JSON, []driver.Result{{Columns: []string{"id"}}})
	assert.Equal(t, "[]\n", out)
}

func TestXML(t *testing.T) {
	out := render(t, FORMAT_XML, users())
	expected := `<?xml version="1.0" encoding="UTF-8"?>
<results>
  <result>
    <row>
      <column name="id">1</column>
      <column name="name">leto</column>
    </row>
    <row>
      <column name="id">2</column>
      <column name="name" null="true"></column>
    </row>
  </result>
</results>
`
	assert.Equal(t, expected, out)
}

func TestXML_NullTextIsNotNull(t *testing.T) {
	out := render(t, FORMAT_XML, []driver.Result{{
		Columns: []string{"word"},
		Rows:    [][]string{{"NULL"}},
	}})
	assert.Contains(t, out, `<column name="word">NULL</column>`)
	assert.NotContains(t, out, `null="true"`)
}
