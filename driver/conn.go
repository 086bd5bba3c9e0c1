package driver

import (
	"context"
	"database/sql"
	"time"

	mssql "github.com/denisenkom/go-mssqldb"
	log "github.com/sirupsen/logrus"
)

const DEFAULT_CONNECT_TIMEOUT = time.Second * 15

type Conn struct {
	db *sql.DB
}

func Open(config Config) (Conn, error) {
	if config.TDSVersion != "" {
		// go-mssqldb negotiates the protocol version itself
		log.WithFields(log.Fields{"context": "open", "tdsVersion": config.TDSVersion}).Warn("tdsVersion is not configurable, ignoring")
	}

	connector, err := mssql.NewConnector(config.DSN())
	if err != nil {
		return Conn{}, detailedDriverError("invalid connection settings", err.Error())
	}

	c := New(sql.OpenDB(connector))

	timeout := config.Timeout
	if timeout == 0 {
		timeout = DEFAULT_CONNECT_TIMEOUT
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := c.db.PingContext(ctx); err != nil {
		c.Close()
		return Conn{}, wrapError(err)
	}
	return c, nil
}

// New wraps an existing pool
func New(db *sql.DB) Conn {
	// the shell runs one statement at a time
	db.SetMaxOpenConns(1)
	return Conn{db: db}
}

func (c Conn) Close() error {
	return c.db.Close()
}

// Query executes a batch and reads every result set it produces. Statements
// which don't return rows (insert, update, ddl) produce a single simple
// result.
func (c Conn) Query(ctx context.Context, statement string, args ...interface{}) ([]Result, error) {
	started := time.Now()
	rows, err := c.db.QueryContext(ctx, statement, args...)
	if err != nil {
		return nil, wrapError(err)
	}
	defer rows.Close()

	var results []Result
	for {
		result, err := readResult(rows)
		if err != nil {
			return nil, err
		}
		if !result.empty() || len(results) == 0 {
			results = append(results, result)
		}
		if !rows.NextResultSet() {
			break
		}
	}

	if err := rows.Err(); err != nil {
		return nil, wrapError(err)
	}

	elapsed := time.Since(started)
	for i := range results {
		results[i].Meta.RunTime = elapsed
	}
	return results, nil
}

// QueryRows is a convenience for statements known to return a single result
// set, such as the queries behind dot-commands.
func (c Conn) QueryRows(ctx context.Context, statement string, args ...interface{}) ([][]string, error) {
	results, err := c.Query(ctx, statement, args...)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0].Rows, nil
}
