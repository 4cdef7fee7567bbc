package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotel-frontdesk/controllers"
	"hotel-frontdesk/middleware"
)

// Handlers groups the controllers mounted by SetupRouter.
type Handlers struct {
	Auth        *controllers.AuthController
	Guests      *controllers.GuestController
	Rooms       *controllers.RoomController
	Reservation *controllers.ReservationController
	Billing     *controllers.BillingController
	Receipts    *controllers.ReceiptController
	Dashboard   *controllers.DashboardController
}

func corsConfig(origins []string) cors.Config {
	// Browsers reject credentialed requests against a wildcard origin.
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}
}

// SetupRouter wires every route. Everything under /api except register and
// login sits behind the auth guard.
func SetupRouter(h Handlers, auth middleware.Authenticator, log *zap.Logger, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), gin.Recovery())
	r.Use(cors.New(corsConfig(corsOrigins)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		public := api.Group("/auth")
		{
			public.POST("/register", h.Auth.Register)
			public.POST("/login", h.Auth.Login)
		}

		secured := api.Group("")
		secured.Use(middleware.RequireAuth(auth))

		secured.POST("/auth/logout", h.Auth.Logout)
		secured.GET("/me", h.Auth.Me)

		guests := secured.Group("/guests")
		{
			guests.GET("", h.Guests.GetGuests)
			guests.POST("", h.Guests.CreateGuest)
			guests.GET("/:id", h.Guests.GetGuestByID)
			guests.PUT("/:id", h.Guests.UpdateGuest)
			guests.DELETE("/:id", h.Guests.DeleteGuest)
		}

		rooms := secured.Group("/rooms")
		{
			rooms.GET("", h.Rooms.GetRooms)
			rooms.POST("", h.Rooms.CreateRoom)

			// must stay ahead of /:id
			rooms.GET("/recommend", h.Rooms.RecommendRooms)

			rooms.GET("/:id", h.Rooms.GetRoomByID)
			rooms.PUT("/:id", h.Rooms.UpdateRoom)
			rooms.PATCH("/:id", h.Rooms.UpdateRoom)
			rooms.DELETE("/:id", h.Rooms.DeleteRoom)
		}

		reservations := secured.Group("/reservations")
		{
			reservations.GET("", h.Reservation.GetReservations)
			reservations.POST("", h.Reservation.CreateReservation)
			reservations.GET("/available-rooms", h.Reservation.GetAvailableRooms)
			reservations.GET("/:id", h.Reservation.GetReservationByID)
			reservations.PUT("/:id", h.Reservation.UpdateReservation)
			reservations.DELETE("/:id", h.Reservation.DeleteReservation)

			reservations.POST("/:id/bill", h.Billing.GenerateStayBill)
			reservations.GET("/:id/receipt", h.Receipts.GetReceipt)
			reservations.GET("/:id/receipt.pdf", h.Receipts.DownloadReceipt)
		}

		billing := secured.Group("/billing")
		{
			billing.GET("", h.Billing.GetBills)
			billing.POST("/:id/pay", h.Billing.PayBill)
		}

		roomServices := secured.Group("/room-services")
		{
			roomServices.GET("", h.Billing.GetRoomServices)
			roomServices.POST("", h.Billing.AddRoomService)
		}

		secured.GET("/dashboard", h.Dashboard.GetDashboard)
	}

	return r
}
