package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/karlseguin/mssql/driver"
	"github.com/karlseguin/mssql/outputs"
)

type Context struct {
	out    io.Writer
	conn   driver.Conn
	format string
	quit   bool
	// set when any statement or command failed, used for the exit code of -q
	failed bool
}

func NewContext(conn driver.Conn, out io.Writer, format string) *Context {
	if format == "" {
		format = outputs.FORMAT_TABLE
	}
	return &Context{
		out:    out,
		conn:   conn,
		format: strings.ToLower(format),
	}
}

func (c *Context) Close() {
	c.conn.Close()
}

func (c *Context) WriteString(s string) {
	io.WriteString(c.out, s)
}

func (c *Context) Format(format string) error {
	if !outputs.Valid(format) {
		c.failed = true
		return fmt.Errorf("unknown format '%s', valid formats are: %s", format, strings.Join(outputs.Formats(), ", "))
	}
	c.format = strings.ToLower(format)
	return nil
}

func (c *Context) Quit() {
	c.quit = true
}

// Query sends a batch to the server and renders whatever comes back
func (c *Context) Query(statement string, args ...interface{}) {
	results, err := c.conn.Query(context.Background(), statement, args...)
	if err != nil {
		c.failed = true
		handleDriverError(err)
		return
	}
	if err := outputs.Write(c.format, results, c.out); err != nil {
		c.failed = true
		handleDriverError(err)
	}
}
