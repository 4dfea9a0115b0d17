// Package apperr carries an HTTP status with application errors so handlers
// can map failures without inspecting message strings.
package apperr

import (
	"errors"
	"net/http"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type Error struct {
	Status  int
	Message string
	Fields  map[string]string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func Validation(message string, fields map[string]string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message, Fields: fields}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// Unavailable marks a dependent resource in a non-usable state (variant off,
// product disabled). Surfaced as 400 like the rest of the input-level family.
func Unavailable(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func Internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "Internal server error", cause: err}
}

// StatusOf returns the HTTP status carried by err, or 500 for anything
// unclassified.
func StatusOf(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status
	}
	return http.StatusInternalServerError
}

const mysqlDuplicateEntry = 1062

// FromDB translates store-layer failures: missing rows become 404 with the
// given message, duplicate unique keys become 409, everything else 500.
func FromDB(err error, notFoundMessage string) *Error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(notFoundMessage)
	}
	if IsDuplicate(err) {
		return Conflict("Duplicate entry")
	}
	return Internal(err)
}

func IsDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}
