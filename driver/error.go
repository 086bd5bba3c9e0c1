package driver

import (
	"errors"
	"fmt"
	"net"

	mssql "github.com/denisenkom/go-mssqldb"
)

const (
	DRIVER_ERROR  = "driver"
	MSSQL_ERROR   = "mssql"
	NETWORK_ERROR = "network"
)

type Error struct {
	Source  string
	Message string
	Details string
	Inner   error
}

func (e Error) Error() string {
	if e.Inner != nil && e.Message == "" {
		return e.Inner.Error()
	}

	if e.Details == "" {
		return fmt.Sprintf("%s - %s", e.Source, e.Message)
	}

	return fmt.Sprintf("%s - %s\n%s", e.Source, e.Message, e.Details)
}

func (e Error) Unwrap() error {
	return e.Inner
}

func detailedDriverError(message string, details string) Error {
	return Error{
		Source:  DRIVER_ERROR,
		Message: message,
		Details: details,
	}
}

func serverError(err mssql.Error) Error {
	details := fmt.Sprintf("Msg %d, Level %d, State %d, Line %d", err.Number, err.Class, err.State, err.LineNo)
	if err.ProcName != "" {
		details += ", Procedure " + err.ProcName
	}
	return Error{
		Source:  MSSQL_ERROR,
		Message: err.Message,
		Details: details,
		Inner:   err,
	}
}

func networkError(err error) Error {
	return Error{
		Source: NETWORK_ERROR,
		Inner:  err,
	}
}

// classifies whatever database/sql hands back to us
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var driverErr Error
	if errors.As(err, &driverErr) {
		return err
	}

	var serverErr mssql.Error
	if errors.As(err, &serverErr) {
		return serverError(serverErr)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return networkError(err)
	}

	return Error{Source: DRIVER_ERROR, Inner: err}
}
