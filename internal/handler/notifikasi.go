package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kostong/kostong-backend/internal/model"
	"github.com/kostong/kostong-backend/internal/repository"
)

// notifListLimit caps notification listings regardless of how many rows
// exist for the user.
const notifListLimit = 50

// NotifikasiStore is the persistence surface the notification handler
// needs.
type NotifikasiStore interface {
	ListByUser(ctx context.Context, userID uint64, limit int) ([]model.Notifikasi, error)
	Create(ctx context.Context, n *model.Notifikasi) error
	MarkRead(ctx context.Context, id uint64) (*model.Notifikasi, error)
}

// NotifikasiHandler serves in-app notifications.
type NotifikasiHandler struct {
	Store NotifikasiStore
}

// NewNotifikasiHandler wires a notification handler.
func NewNotifikasiHandler(store NotifikasiStore) *NotifikasiHandler {
	return &NotifikasiHandler{Store: store}
}

// ListByUser returns the user's notifications, newest first, capped at 50.
func (h *NotifikasiHandler) ListByUser(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid user id"})
	}
	notifs, err := h.Store.ListByUser(c.Request().Context(), userID, notifListLimit)
	if err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, notifs)
}

type createNotifikasiReq struct {
	UserID uint64 `json:"user_id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Create inserts a notification as given; the read flag defaults false.
func (h *NotifikasiHandler) Create(c echo.Context) error {
	var req createNotifikasiReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	notif := model.Notifikasi{UserID: req.UserID, Title: req.Title, Body: req.Body}
	if err := h.Store.Create(c.Request().Context(), &notif); err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusCreated, notif)
}

// MarkRead flips the read flag and returns the updated notification.
func (h *NotifikasiHandler) MarkRead(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	notif, err := h.Store.MarkRead(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrNotifikasiNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Notification not found"})
		}
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, notif)
}
