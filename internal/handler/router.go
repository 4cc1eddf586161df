package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"hotelhub/internal/handler/api"
	"hotelhub/internal/handler/middleware"
	"hotelhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	rdb *redis.Client,
	authHandler *api.AuthHandler,
	hotelHandler *api.HotelHandler,
	roomTypeHandler *api.RoomTypeHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, rdb)
	setupRoutes(engine, authHandler, hotelHandler, roomTypeHandler, bookingHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, rdb *redis.Client) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.NewRateLimitMiddleware(cfg.RateLimit, rdb))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	hotelHandler *api.HotelHandler,
	roomTypeHandler *api.RoomTypeHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		hotels := apiGroup.Group("/hotels")
		{
			addRoutes(hotels, []route{
				{Method: http.MethodGet, Path: "", Handler: hotelHandler.ListHotels},
				{Method: http.MethodGet, Path: "/:id", Handler: hotelHandler.GetHotel},
				{Method: http.MethodGet, Path: "/:id/room-types", Handler: roomTypeHandler.GetHotelRoomTypes},
			})

			admin := hotels.Group("")
			admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "", Handler: hotelHandler.CreateHotel},
				{Method: http.MethodPut, Path: "/:id", Handler: hotelHandler.UpdateHotel},
				{Method: http.MethodDelete, Path: "/:id", Handler: hotelHandler.DeleteHotel},
			})
		}

		roomTypes := apiGroup.Group("/room-types")
		{
			addRoutes(roomTypes, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: roomTypeHandler.GetRoomType},
			})

			admin := roomTypes.Group("")
			admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "", Handler: roomTypeHandler.CreateRoomType},
				{Method: http.MethodPut, Path: "/:id", Handler: roomTypeHandler.UpdateRoomType},
				{Method: http.MethodDelete, Path: "/:id", Handler: roomTypeHandler.DeleteRoomType},
				{Method: http.MethodPut, Path: "/:id/available", Handler: roomTypeHandler.MarkAvailable},
				{Method: http.MethodPut, Path: "/:id/unavailable", Handler: roomTypeHandler.MarkUnavailable},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodPost, Path: "/process", Handler: bookingHandler.ProcessBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.GetMyBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.CancelBooking},
			})

			admin := bookings.Group("")
			admin.Use(authMiddleware.RequireAdmin())
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/all", Handler: bookingHandler.ListBookings},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
