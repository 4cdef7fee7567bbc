package services

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrGuestNotFound       = errors.New("guest not found")
	ErrRoomUnavailable     = errors.New("room is not available")
	ErrRoomInUse           = errors.New("room is referenced by reservations")
	ErrGuestInUse          = errors.New("guest is referenced by reservations")
	ErrDuplicateRoomNumber = errors.New("room number already exists")
	ErrDuplicateUsername   = errors.New("username already exists")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidDateRange    = errors.New("check-out must be after check-in")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUnauthorized        = errors.New("unauthorized")
)

const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrRowIsReferenced = 1451
	mysqlErrNoReferencedRow = 1452
)

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == mysqlErrDuplicateEntry
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "duplicate entry") || strings.Contains(lower, "unique constraint failed")
}

func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == mysqlErrRowIsReferenced || merr.Number == mysqlErrNoReferencedRow
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key")
}
