package options

type kind uint8

const (
	stringFlag kind = iota
	boolFlag
)

// A flag is one row of the command line table: the short flag, the
// canonical RawArgs key (also accepted as --long) and its value kind.
type flag struct {
	short string
	name  string
	kind  kind
	help  string
}

var flags = []flag{
	{"s", "server", stringFlag, "server to connect to"},
	{"u", "user", stringFlag, "user to connect as"},
	{"p", "pass", stringFlag, "password"},
	{"o", "port", stringFlag, "port to connect to"},
	{"t", "timeout", stringFlag, "connection timeout in milliseconds"},
	{"d", "database", stringFlag, "database to use"},
	{"q", "query", stringFlag, "statement or dot-command to run, then exit"},
	{"v", "tdsVersion", stringFlag, "TDS protocol version"},
	{"e", "encrypt", boolFlag, "encrypt the connection"},
	{"f", "format", stringFlag, "output format: table, expanded, csv, json or xml"},
	{"c", "config", stringFlag, "path of a JSON config file"},
}
