package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotel-frontdesk/controllers"
	"hotel-frontdesk/models"
	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type RouterSuite struct {
	suite.Suite
	Mock   sqlmock.Sqlmock
	Router *gin.Engine
	Token  string
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(utils.RegisterValidators())
}

func (s *RouterSuite) SetupTest() {
	sqlDB, mock, err := sqlmock.New()
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)

	log := zap.NewNop()
	auth := services.NewAuthService(db, log, "router-test-secret", time.Hour)
	rooms := services.NewRoomService(db, log)

	s.Router = SetupRouter(Handlers{
		Auth:        controllers.NewAuthController(auth),
		Guests:      controllers.NewGuestController(services.NewGuestService(db, log)),
		Rooms:       controllers.NewRoomController(rooms),
		Reservation: controllers.NewReservationController(services.NewReservationService(db, log), rooms),
		Billing:     controllers.NewBillingController(services.NewBillingService(db, log), services.NewRoomServiceLog(db)),
		Receipts:    controllers.NewReceiptController(services.NewReceiptService(db, log), "HOTEL RECEIPT", "Rs."),
		Dashboard:   controllers.NewDashboardController(services.NewDashboardService(db)),
	}, auth, log, []string{"*"})

	s.Token, _, err = auth.IssueToken(models.User{ID: 1, Username: "admin"})
	s.Require().NoError(err)
	s.Mock = mock
}

func (s *RouterSuite) TearDownTest() {
	s.NoError(s.Mock.ExpectationsWereMet())
}

// expectSession queues the revocation lookup the auth guard runs before any
// handler query.
func (s *RouterSuite) expectSession() {
	s.Mock.ExpectQuery("SELECT count\\(\\*\\) FROM `revoked_tokens`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
}

func (s *RouterSuite) request(method, path, body string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func (s *RouterSuite) TestHealthIsPublic() {
	w := s.request(http.MethodGet, "/health", "", false)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("ok", gjson.Get(w.Body.String(), "status").String())
}

func (s *RouterSuite) TestGuardRejectsAnonymousCalls() {
	for _, path := range []string{"/api/guests", "/api/reservations", "/api/dashboard", "/api/me"} {
		w := s.request(http.MethodGet, path, "", false)
		s.Equal(http.StatusUnauthorized, w.Code, path)
		s.Equal("Please log in first!", gjson.Get(w.Body.String(), "error").String())
	}
}

func (s *RouterSuite) TestLogin() {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	s.Require().NoError(err)
	s.Mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password"}).AddRow(1, "admin", string(hash)))

	w := s.request(http.MethodPost, "/api/auth/login", `{"username":"admin","password":"admin123"}`, false)

	s.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	s.NotEmpty(gjson.Get(body, "data.token").String())
	s.Equal("admin", gjson.Get(body, "data.user.username").String())
	s.False(gjson.Get(body, "data.user.TokenID").Exists())
}

func (s *RouterSuite) TestMe() {
	s.expectSession()
	w := s.request(http.MethodGet, "/api/me", "", true)

	s.Equal(http.StatusOK, w.Code)
	s.Equal(int64(1), gjson.Get(w.Body.String(), "data.userId").Int())
}

func (s *RouterSuite) TestCreateReservation() {
	s.expectSession()
	s.Mock.ExpectBegin()
	s.Mock.ExpectQuery("SELECT \\* FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_number", "room_type", "price", "is_available"}).
			AddRow(1, "101", "Single", 1000.0, true))
	s.Mock.ExpectQuery("SELECT \\* FROM `guests`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Asha"))
	s.Mock.ExpectExec("INSERT INTO `reservations`").WillReturnResult(sqlmock.NewResult(10, 1))
	s.Mock.ExpectExec("UPDATE `rooms` SET").WillReturnResult(sqlmock.NewResult(0, 1))
	s.Mock.ExpectCommit()

	w := s.request(http.MethodPost, "/api/reservations",
		`{"guestId":1,"roomId":1,"checkIn":"2024-01-01","checkOut":"2024-01-03"}`, true)

	s.Equal(http.StatusCreated, w.Code)
	body := w.Body.String()
	s.Equal(int64(10), gjson.Get(body, "data.id").Int())
	s.False(gjson.Get(body, "data.room.available").Bool())
	s.Equal("Unpaid", gjson.Get(body, "data.paymentStatus").String())
}

func (s *RouterSuite) TestCreateReservationRejectsBadDates() {
	s.expectSession()
	w := s.request(http.MethodPost, "/api/reservations",
		`{"guestId":1,"roomId":1,"checkIn":"01/01/2024","checkOut":"2024-01-03"}`, true)
	s.Equal(http.StatusBadRequest, w.Code)

	s.expectSession()
	w = s.request(http.MethodPost, "/api/reservations",
		`{"guestId":1,"roomId":1,"checkIn":"2024-01-03","checkOut":"2024-01-01"}`, true)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(gjson.Get(w.Body.String(), "error").String(), "check-out must be after check-in")
}

func (s *RouterSuite) TestCreateReservationOnOccupiedRoom() {
	s.expectSession()
	s.Mock.ExpectBegin()
	s.Mock.ExpectQuery("SELECT \\* FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_number", "is_available"}).AddRow(1, "101", false))
	s.Mock.ExpectRollback()

	w := s.request(http.MethodPost, "/api/reservations",
		`{"guestId":1,"roomId":1,"checkIn":"2024-01-01","checkOut":"2024-01-03"}`, true)

	s.Equal(http.StatusConflict, w.Code)
}

func (s *RouterSuite) TestDeleteMissingReservation() {
	s.expectSession()
	s.Mock.ExpectBegin()
	s.Mock.ExpectQuery("SELECT \\* FROM `reservations`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	s.Mock.ExpectRollback()

	w := s.request(http.MethodDelete, "/api/reservations/44", "", true)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RouterSuite) TestNonNumericIDIsRejected() {
	s.expectSession()
	w := s.request(http.MethodGet, "/api/guests/abc", "", true)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) expectReceiptQueries() {
	s.Mock.ExpectQuery("SELECT \\* FROM `reservations`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "guest_id", "room_id", "check_in", "check_out"}).
			AddRow(1, 1, 1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)))
	s.Mock.ExpectQuery("SELECT \\* FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_number", "room_type", "price"}).AddRow(1, "101", "Single", 1000.0))
	s.Mock.ExpectQuery("SELECT \\* FROM `room_services`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "reservation_id", "item", "price"}).
			AddRow(1, 1, "Laundry", 150.0).
			AddRow(2, 1, "Breakfast", 50.0))
	s.Mock.ExpectQuery("SELECT \\* FROM `guests`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Asha"))
}

func (s *RouterSuite) TestReceiptJSON() {
	s.expectSession()
	s.expectReceiptQueries()

	w := s.request(http.MethodGet, "/api/reservations/1/receipt", "", true)

	s.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	s.Equal(200.0, gjson.Get(body, "data.totalServiceCost").Float())
	s.Equal(1200.0, gjson.Get(body, "data.grandTotal").Float())
	s.Equal("Laundry", gjson.Get(body, "data.services.0.item").String())
}

func (s *RouterSuite) TestReceiptPDF() {
	s.expectSession()
	s.expectReceiptQueries()

	w := s.request(http.MethodGet, "/api/reservations/1/receipt.pdf", "", true)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("application/pdf", w.Header().Get("Content-Type"))
	s.Contains(w.Header().Get("Content-Disposition"), "receipt_1.pdf")
	s.True(strings.HasPrefix(w.Body.String(), "%PDF-"))
}

func (s *RouterSuite) TestPayBill() {
	s.expectSession()
	s.Mock.ExpectBegin()
	s.Mock.ExpectQuery("SELECT \\* FROM `billings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "reservation_id", "amount", "status", "category"}).
			AddRow(7, 1, 2000.0, "Pending", "Room Stay"))
	s.Mock.ExpectExec("UPDATE `billings` SET").WillReturnResult(sqlmock.NewResult(0, 1))
	s.Mock.ExpectCommit()

	w := s.request(http.MethodPost, "/api/billing/7/pay", "", true)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("Paid", gjson.Get(w.Body.String(), "data.status").String())
}

func (s *RouterSuite) TestAddRoomServiceValidatesPayload() {
	s.expectSession()
	w := s.request(http.MethodPost, "/api/room-services", `{"reservationId":1,"item":"Laundry","price":-5}`, true)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) TestRecommendRejectsBadLimit() {
	s.expectSession()
	w := s.request(http.MethodGet, "/api/rooms/recommend?limit=abc", "", true)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *RouterSuite) TestDashboard() {
	s.expectSession()
	for _, n := range []int64{3, 2, 2, 8} {
		s.Mock.ExpectQuery("SELECT count\\(\\*\\)").
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(n))
	}
	s.Mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(4200.0))

	w := s.request(http.MethodGet, "/api/dashboard", "", true)

	s.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	s.Equal(int64(8), gjson.Get(body, "data.availableRooms").Int())
	s.Equal(4200.0, gjson.Get(body, "data.totalRevenue").Float())
}
