// Package handler exposes the HTTP handlers for the API. Each handler
// depends on a small store interface satisfied by the corresponding
// repository, which keeps the handlers testable without a database.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kostong/kostong-backend/internal/model"
	"github.com/kostong/kostong-backend/internal/queue"
	"github.com/kostong/kostong-backend/internal/repository"
)

// BookingStore is the persistence surface the booking handler needs.
type BookingStore interface {
	ListByUser(ctx context.Context, userID uint64) ([]repository.BookingDetail, error)
	Create(ctx context.Context, b *model.Booking) error
	GetByID(ctx context.Context, id uint64) (*repository.BookingDetail, error)
	UpdateFields(ctx context.Context, id uint64, upd repository.BookingUpdate) (*model.Booking, error)
}

// EventPublisher publishes booking events. Implementations must be safe to
// call fire-and-forget; the handler ignores publish errors.
type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, ev queue.BookingEvent) error
}

// BookingHandler owns the booking lifecycle endpoints.
type BookingHandler struct {
	Store  BookingStore
	Events EventPublisher
}

// NewBookingHandler wires a booking handler.
func NewBookingHandler(store BookingStore, events EventPublisher) *BookingHandler {
	return &BookingHandler{Store: store, Events: events}
}

// ListByUser returns all bookings for a user with the kost summary
// populated, newest first. An empty list is a 200, not an error.
func (h *BookingHandler) ListByUser(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid user id"})
	}
	bookings, err := h.Store.ListByUser(c.Request().Context(), userID)
	if err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, bookings)
}

// Create accepts a partial booking record, stamps the server-assigned
// fields (booking number, pending status, timestamps) and persists it.
// Beyond what the schema enforces, the payload is taken as given: dates
// and pricing fields are not cross-checked.
func (h *BookingHandler) Create(c echo.Context) error {
	var b model.Booking
	if err := c.Bind(&b); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}

	now := time.Now().UTC()
	b.ID = 0
	b.NomorBooking = model.NewNomorBooking()
	b.StatusBooking = model.StatusPending
	b.CreatedAt = now
	b.UpdatedAt = now

	if err := h.Store.Create(c.Request().Context(), &b); err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	_ = h.Events.PublishBookingEvent(c.Request().Context(), queue.BookingEvent{
		Type:         queue.EventBookingCreated,
		BookingID:    b.ID,
		UserID:       b.UserID,
		KostID:       b.KostID,
		NomorBooking: b.NomorBooking,
		Status:       b.StatusBooking,
		TotalBayar:   b.TotalBayar,
		OccurredAt:   now.Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, b)
}

// GetByID returns one booking with kost and kamar populated.
func (h *BookingHandler) GetByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	booking, err := h.Store.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Booking not found"})
		}
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, booking)
}

// updateBookingReq is the partial field set accepted by Update. Absent
// fields stay nil and untouched.
type updateBookingReq struct {
	TanggalMulai     *time.Time `json:"tanggal_mulai"`
	TanggalSelesai   *time.Time `json:"tanggal_selesai"`
	Durasi           *int       `json:"durasi"`
	TipeDurasi       *string    `json:"tipe_durasi"`
	HargaTotal       *int64     `json:"harga_total"`
	BiayaAdmin       *int64     `json:"biaya_admin"`
	TotalBayar       *int64     `json:"total_bayar"`
	StatusBooking    *string    `json:"status_booking"`
	MetodePembayaran *string    `json:"metode_pembayaran"`
	Catatan          *string    `json:"catatan"`
	ExpiredAt        *time.Time `json:"expired_at"`
}

// Update applies a partial field set and refreshes updated_at. Status
// changes are checked against the booking transition table; every other
// field is applied as given, with no ownership check against the caller.
func (h *BookingHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req updateBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}

	ctx := c.Request().Context()
	statusChanged := false
	if req.StatusBooking != nil {
		current, err := h.Store.GetByID(ctx, id)
		if err != nil {
			if err == repository.ErrBookingNotFound {
				return c.JSON(http.StatusNotFound, echo.Map{"message": "Booking not found"})
			}
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
		}
		if !model.CanTransition(current.StatusBooking, *req.StatusBooking) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid status transition"})
		}
		statusChanged = current.StatusBooking != *req.StatusBooking
	}

	booking, err := h.Store.UpdateFields(ctx, id, repository.BookingUpdate{
		TanggalMulai:     req.TanggalMulai,
		TanggalSelesai:   req.TanggalSelesai,
		Durasi:           req.Durasi,
		TipeDurasi:       req.TipeDurasi,
		HargaTotal:       req.HargaTotal,
		BiayaAdmin:       req.BiayaAdmin,
		TotalBayar:       req.TotalBayar,
		StatusBooking:    req.StatusBooking,
		MetodePembayaran: req.MetodePembayaran,
		Catatan:          req.Catatan,
		ExpiredAt:        req.ExpiredAt,
	})
	if err != nil {
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Booking not found"})
		}
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}

	if statusChanged {
		_ = h.Events.PublishBookingEvent(ctx, queue.BookingEvent{
			Type:         queue.EventBookingStatusChanged,
			BookingID:    booking.ID,
			UserID:       booking.UserID,
			KostID:       booking.KostID,
			NomorBooking: booking.NomorBooking,
			Status:       booking.StatusBooking,
			TotalBayar:   booking.TotalBayar,
			OccurredAt:   time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, booking)
}
