package commands

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

type Tables struct {
}

func (cmd Tables) Execute(context Context, args string) {
	context.Query(`
		select TABLE_SCHEMA as [schema], TABLE_NAME as name, lower(TABLE_TYPE) as type
		from INFORMATION_SCHEMA.TABLES
		order by TABLE_SCHEMA, TABLE_NAME
	`)
}

type Databases struct {
}

func (cmd Databases) Execute(context Context, args string) {
	context.Query(`select name from sys.databases order by name`)
}

type Describe struct {
}

func (cmd Describe) Execute(context Context, args string) {
	if args == "" {
		log.Error("usage: .describe TABLE")
		return
	}

	table := args
	schema := "dbo"
	parts := strings.SplitN(table, ".", 2)
	if len(parts) == 2 {
		schema = parts[0]
		table = parts[1]
	}

	context.Query(`
		select COLUMN_NAME as name, DATA_TYPE as type, CHARACTER_MAXIMUM_LENGTH as length,
			IS_NULLABLE as nullable, COLUMN_DEFAULT as [default]
		from INFORMATION_SCHEMA.COLUMNS
		where TABLE_SCHEMA = @p1 and TABLE_NAME = @p2
		order by ORDINAL_POSITION
	`, strings.Trim(schema, "[]"), strings.Trim(table, "[]"))
}
