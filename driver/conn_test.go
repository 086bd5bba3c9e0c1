package driver

import (
	"context"
	"errors"
	"net"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	mssql "github.com/denisenkom/go-mssqldb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConn(t *testing.T) (Conn, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	conn := New(db)
	t.Cleanup(func() { conn.Close() })
	return conn, mock
}

func TestQuery_Rows(t *testing.T) {
	conn, mock := setupConn(t)

	created := time.Date(2020, 8, 6, 12, 30, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("select id, name, note, created, active, amount from users")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "note", "created", "active", "amount"}).
			AddRow(int64(1), "leto", nil, created, true, []byte("12.50")).
			AddRow(int64(2), "ghanima", "twin", created, false, []byte{0xff, 0x00}))

	results, err := conn.Query(context.Background(), "select id, name, note, created, active, amount from users")
	require.NoError(t, err)
	require.Len(t, results, 1)

	result := results[0]
	assert.Equal(t, []string{"id", "name", "note", "created", "active", "amount"}, result.Columns)
	assert.Equal(t, [][]string{
		{"1", "leto", "NULL", "2020-08-06 12:30:00.000", "1", "12.50"},
		{"2", "ghanima", "twin", "2020-08-06 12:30:00.000", "0", "0xff00"},
	}, result.Rows)
	assert.Equal(t, 2, result.Meta.RowCount)
	assert.True(t, result.IsNull(0, 2))
	assert.False(t, result.IsNull(1, 2))
	assert.False(t, result.IsNull(5, 0))

	simple, _ := result.IsSimple()
	assert.False(t, simple)
	assert.Equal(t, "ghanima", result.Maps()[1]["name"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuery_NullVersusNullText(t *testing.T) {
	conn, mock := setupConn(t)

	mock.ExpectQuery("select word").
		WillReturnRows(sqlmock.NewRows([]string{"missing", "word"}).AddRow(nil, "NULL"))

	results, err := conn.Query(context.Background(), "select word")
	require.NoError(t, err)
	require.Len(t, results, 1)

	result := results[0]
	assert.Equal(t, [][]string{{"NULL", "NULL"}}, result.Rows)
	assert.Equal(t, [][]bool{{true, false}}, result.Nulls)
	assert.True(t, result.IsNull(0, 0))
	assert.False(t, result.IsNull(0, 1))
}

func TestQuery_MultipleResultSets(t *testing.T) {
	conn, mock := setupConn(t)

	mock.ExpectQuery("select 1 as a; select 2 as b").
		WillReturnRows(
			sqlmock.NewRows([]string{"a"}).AddRow(int64(1)),
			sqlmock.NewRows([]string{"b"}).AddRow(int64(2)),
		)

	results, err := conn.Query(context.Background(), "select 1 as a; select 2 as b")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, [][]string{{"1"}}, results[0].Rows)
	assert.Equal(t, [][]string{{"2"}}, results[1].Rows)
}

func TestQuery_NoColumns(t *testing.T) {
	conn, mock := setupConn(t)

	mock.ExpectQuery("update users").WillReturnRows(sqlmock.NewRows(nil))

	results, err := conn.Query(context.Background(), "update users set active = 1")
	require.NoError(t, err)
	require.Len(t, results, 1)
	simple, message := results[0].IsSimple()
	assert.True(t, simple)
	assert.Equal(t, "OK\n", message)
}

func TestQuery_ServerError(t *testing.T) {
	conn, mock := setupConn(t)

	mock.ExpectQuery("select \\* from nope").WillReturnError(mssql.Error{
		Number:  208,
		Class:   16,
		State:   1,
		LineNo:  1,
		Message: "Invalid object name 'nope'.",
	})

	_, err := conn.Query(context.Background(), "select * from nope")
	require.Error(t, err)

	var driverErr Error
	require.True(t, errors.As(err, &driverErr))
	assert.Equal(t, MSSQL_ERROR, driverErr.Source)
	assert.Equal(t, "mssql - Invalid object name 'nope'.\nMsg 208, Level 16, State 1, Line 1", err.Error())
}

func TestQuery_NetworkError(t *testing.T) {
	conn, mock := setupConn(t)

	netErr := &net.OpError{Op: "read", Net: "tcp", Err: errors.New("connection reset")}
	mock.ExpectQuery("select 1").WillReturnError(netErr)

	_, err := conn.Query(context.Background(), "select 1")
	var driverErr Error
	require.True(t, errors.As(err, &driverErr))
	assert.Equal(t, NETWORK_ERROR, driverErr.Source)
	assert.Equal(t, netErr.Error(), err.Error())
}

func TestQueryRows(t *testing.T) {
	conn, mock := setupConn(t)

	mock.ExpectQuery("select name from sys.databases").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("master").AddRow("tempdb"))

	rows, err := conn.QueryRows(context.Background(), "select name from sys.databases")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"master"}, {"tempdb"}}, rows)
}
