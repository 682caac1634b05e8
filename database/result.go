// Package database is the resolution layer between the legacy PCRT
// schema and the API's resource shapes. Every lookup reports one of
// three outcomes through its error value: nil (found), ErrNotFound
// (the query ran but matched nothing) or *GatewayError (the query
// itself failed). The HTTP layer relies on the distinction to answer
// 404 versus 500.
package database

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a lookup that succeeded but matched zero rows.
var ErrNotFound = errors.New("record not found")

// GatewayError reports that query execution failed, as opposed to
// succeeding with an empty result.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s: query failed: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

func gatewayErr(op string, err error) *GatewayError {
	return &GatewayError{Op: op, Err: err}
}
