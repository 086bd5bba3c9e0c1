package commands

type Help struct {
}

func (cmd Help) Execute(context Context, input string) {
	context.WriteString(`
.quit              - Quits the shell (also .q and .exit)
.help              - Outputs this help screen (also .h and .?)
.tables            - Lists the tables and views of the current database
.databases         - Lists the databases on the server
.describe TABLE    - Lists the columns of TABLE, which may be schema.table
.format FORMAT     - Sets the output format: table, expanded, csv, json or xml

Statements end with a semicolon, or a line containing only GO.

`)
}

type Quit struct {
}

func (cmd Quit) Execute(context Context, input string) {
	context.Quit()
}
