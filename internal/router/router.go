// Package router registers all HTTP routes under the /api base path and
// owns the translation of uncaught errors into the API's response shape.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kostong/kostong-backend/internal/handler"
	"github.com/kostong/kostong-backend/internal/middleware"
)

// ErrorHandler converts any error that escapes a handler into the
// {message, error?} body the API promises. Unmatched routes become
// 404 "Route not found"; everything else collapses to a 500 with the
// detail echoed in the error field and logged server-side.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if he, ok := err.(*echo.HTTPError); ok {
		msg := "Route not found"
		if he.Code != http.StatusNotFound {
			msg = http.StatusText(he.Code)
		}
		body := echo.Map{"message": msg}
		// The bare status text carries no extra detail worth echoing.
		if s, ok := he.Message.(string); ok && s != "" && s != msg && s != http.StatusText(he.Code) {
			body["error"] = s
		}
		_ = c.JSON(he.Code, body)
		return
	}
	c.Logger().Error(err)
	_ = c.JSON(http.StatusInternalServerError, echo.Map{
		"message": "Internal server error",
		"error":   err.Error(),
	})
}

// RegisterRoutes registers the routes that carry no authentication: the
// health check and the public kost endpoints. cacheMW wraps the kost
// reads; pass a pass-through middleware when Redis is unavailable.
func RegisterRoutes(e *echo.Echo, kost *handler.KostHandler, cacheMW echo.MiddlewareFunc) {
	e.GET("/api/health", handler.Health)

	e.GET("/api/kost", kost.List, cacheMW)
	e.GET("/api/kost/:id", kost.GetByID, cacheMW)
	// Listing creation is intentionally open; see the kost handler.
	e.POST("/api/kost", kost.Create)
}

// RegisterAuth registers the account endpoints. Register, login, refresh
// and logout need no session; /api/users/me requires a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/api/users")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	g.GET("/me", a.Me, middleware.JWTAuth(jwtSecret))
}
