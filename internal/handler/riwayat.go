package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kostong/kostong-backend/internal/model"
)

// RiwayatStore is the read surface of the transaction history. The log is
// append-only; appends happen in the queue consumer, never over HTTP.
type RiwayatStore interface {
	ListByUser(ctx context.Context, userID uint64) ([]model.RiwayatTransaksi, error)
}

// RiwayatHandler serves a user's transaction history.
type RiwayatHandler struct {
	Store RiwayatStore
}

// NewRiwayatHandler wires a history handler.
func NewRiwayatHandler(store RiwayatStore) *RiwayatHandler { return &RiwayatHandler{Store: store} }

// ListByUser returns all transaction records for a user, newest first.
func (h *RiwayatHandler) ListByUser(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid user id"})
	}
	history, err := h.Store.ListByUser(c.Request().Context(), userID)
	if err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, history)
}
