package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

var nop = zap.NewNop()

func day(s string) time.Time {
	t, err := time.Parse(StayDateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func roomRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "room_number", "room_type", "price", "is_available"})
}

func guestRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "phone", "email"})
}

func reservationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "guest_id", "room_id", "check_in", "check_out", "payment_status"})
}

func billingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "reservation_id", "guest_name", "amount", "status", "category"})
}

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count(*)"}).AddRow(n)
}
