package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/kostong/kostong-backend/internal/handler"
)

func passthrough(next echo.HandlerFunc) echo.HandlerFunc { return next }

func TestUnknownRouteBody(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler

	req := httptest.NewRequest(http.MethodGet, "/api/does-not-exist", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"message":"Route not found"}`, rec.Body.String())
}

func TestHealthRoute(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler
	RegisterRoutes(e, handler.NewKostHandler(nil), passthrough)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"OK","message":"Kostong API is running"}`, rec.Body.String())
}
