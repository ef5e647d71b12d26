package router

import (
	"github.com/labstack/echo/v4"

	"github.com/kostong/kostong-backend/internal/handler"
	"github.com/kostong/kostong-backend/internal/middleware"
)

// RegisterUserScoped registers the endpoints that require a bearer token:
// bookings, favorites, notifications and transaction history. The token
// only has to be present and valid; no ownership check ties the token's
// subject to the records being read or written.
func RegisterUserScoped(
	e *echo.Echo,
	booking *handler.BookingHandler,
	favorit *handler.FavoritHandler,
	notifikasi *handler.NotifikasiHandler,
	riwayat *handler.RiwayatHandler,
	jwtSecret string,
) {
	g := e.Group("/api", middleware.JWTAuth(jwtSecret))

	g.GET("/booking/user/:userId", booking.ListByUser)
	g.POST("/booking", booking.Create)
	g.GET("/booking/:id", booking.GetByID)
	g.PUT("/booking/:id", booking.Update)

	g.GET("/favorit/user/:userId", favorit.ListByUser)
	g.POST("/favorit", favorit.Create)
	g.DELETE("/favorit/:id", favorit.Delete)

	g.GET("/notifikasi/user/:userId", notifikasi.ListByUser)
	g.POST("/notifikasi", notifikasi.Create)
	g.PUT("/notifikasi/:id/read", notifikasi.MarkRead)

	g.GET("/riwayat/:user_id", riwayat.ListByUser)
}
