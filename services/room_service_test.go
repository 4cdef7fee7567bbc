package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomCreateStartsAvailable(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewRoomService(db, nop)

	mock.ExpectExec("INSERT INTO `rooms`").WillReturnResult(sqlmock.NewResult(4, 1))

	room, err := svc.Create(context.Background(), RoomInput{RoomNumber: " 104 ", RoomType: "Double", Price: 1800})
	require.NoError(t, err)

	assert.Equal(t, uint(4), room.ID)
	assert.Equal(t, "104", room.RoomNumber)
	assert.True(t, room.Available)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomCreateDuplicateNumber(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewRoomService(db, nop)

	mock.ExpectExec("INSERT INTO `rooms`").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '101' for key 'room_number'"})

	_, err := svc.Create(context.Background(), RoomInput{RoomNumber: "101", RoomType: "Single", Price: 1000})
	assert.ErrorIs(t, err, ErrDuplicateRoomNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomCreateValidation(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewRoomService(db, nop)

	for _, in := range []RoomInput{
		{RoomNumber: "", RoomType: "Single", Price: 1000},
		{RoomNumber: "101", RoomType: " ", Price: 1000},
		{RoomNumber: "101", RoomType: "Single", Price: 0},
	} {
		_, err := svc.Create(context.Background(), in)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRecommendDefaults(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewRoomService(db, nop)

	mock.ExpectQuery("SELECT \\* FROM `rooms` WHERE is_available = \\? AND room_type = \\? ORDER BY price ASC LIMIT").
		WillReturnRows(roomRows().
			AddRow(1, "101", "Single", 1000.0, true).
			AddRow(2, "102", "Single", 1200.0, true))

	rooms, err := svc.Recommend(context.Background(), "", 0)
	require.NoError(t, err)

	require.Len(t, rooms, 2)
	assert.Equal(t, "101", rooms[0].RoomNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomListFiltersByType(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewRoomService(db, nop)

	mock.ExpectQuery("SELECT \\* FROM `rooms` WHERE room_type = \\? ORDER BY room_number ASC").
		WithArgs("Suite").
		WillReturnRows(roomRows().AddRow(5, "301", "Suite", 4500.0, true))

	rooms, err := svc.List(context.Background(), "Suite")
	require.NoError(t, err)
	assert.Len(t, rooms, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomDeleteRefusesReferencedRoom(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewRoomService(db, nop)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `rooms`").
		WillReturnRows(roomRows().AddRow(1, "101", "Single", 1000.0, false))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `reservations` WHERE room_id = \\?").
		WillReturnRows(countRows(1))
	mock.ExpectRollback()

	err := svc.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrRoomInUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomDelete(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewRoomService(db, nop)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `rooms`").
		WillReturnRows(roomRows().AddRow(1, "101", "Single", 1000.0, true))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `reservations`").WillReturnRows(countRows(0))
	mock.ExpectExec("DELETE FROM `rooms`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
