package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/kostong/kostong-backend/internal/model"
	"github.com/kostong/kostong-backend/internal/queue"
	"github.com/kostong/kostong-backend/internal/repository"
)

type bookingStoreMock struct {
	listFn   func(ctx context.Context, userID uint64) ([]repository.BookingDetail, error)
	createFn func(ctx context.Context, b *model.Booking) error
	getFn    func(ctx context.Context, id uint64) (*repository.BookingDetail, error)
	updateFn func(ctx context.Context, id uint64, upd repository.BookingUpdate) (*model.Booking, error)
}

func (m *bookingStoreMock) ListByUser(ctx context.Context, userID uint64) ([]repository.BookingDetail, error) {
	return m.listFn(ctx, userID)
}
func (m *bookingStoreMock) Create(ctx context.Context, b *model.Booking) error {
	return m.createFn(ctx, b)
}
func (m *bookingStoreMock) GetByID(ctx context.Context, id uint64) (*repository.BookingDetail, error) {
	return m.getFn(ctx, id)
}
func (m *bookingStoreMock) UpdateFields(ctx context.Context, id uint64, upd repository.BookingUpdate) (*model.Booking, error) {
	return m.updateFn(ctx, id, upd)
}

type publisherMock struct {
	events []queue.BookingEvent
}

func (p *publisherMock) PublishBookingEvent(_ context.Context, ev queue.BookingEvent) error {
	p.events = append(p.events, ev)
	return nil
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestBookingCreate(t *testing.T) {
	var stored *model.Booking
	store := &bookingStoreMock{
		createFn: func(ctx context.Context, b *model.Booking) error {
			b.ID = 11
			stored = b
			return nil
		},
	}
	pub := &publisherMock{}
	h := NewBookingHandler(store, pub)

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/booking",
		`{"user_id":1,"kost_id":2,"harga_total":500000,"biaya_admin":10000,"total_bayar":510000}`)

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, stored)
	require.Equal(t, model.StatusPending, stored.StatusBooking)
	require.Regexp(t, regexp.MustCompile(`^BK\d+$`), stored.NomorBooking)
	require.False(t, stored.CreatedAt.IsZero())
	require.Equal(t, stored.CreatedAt, stored.UpdatedAt)
	require.WithinDuration(t, time.Now().UTC(), stored.CreatedAt, 5*time.Second)

	var resp model.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "pending", resp.StatusBooking)
	require.Equal(t, int64(500000), resp.HargaTotal)

	require.Len(t, pub.events, 1)
	require.Equal(t, queue.EventBookingCreated, pub.events[0].Type)
	require.Equal(t, uint64(11), pub.events[0].BookingID)
}

func TestBookingCreate_StorageFailure(t *testing.T) {
	store := &bookingStoreMock{
		createFn: func(ctx context.Context, b *model.Booking) error {
			return context.DeadlineExceeded
		},
	}
	pub := &publisherMock{}
	h := NewBookingHandler(store, pub)

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/booking", `{"user_id":1,"kost_id":2}`)

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "Server error")
	require.Empty(t, pub.events)
}

func TestBookingListByUser(t *testing.T) {
	now := time.Now().UTC()
	earlier := now.Add(-time.Hour)
	store := &bookingStoreMock{
		listFn: func(ctx context.Context, userID uint64) ([]repository.BookingDetail, error) {
			if userID != 7 {
				t.Fatalf("unexpected user id %d", userID)
			}
			return []repository.BookingDetail{
				{
					Booking: model.Booking{ID: 2, UserID: 7, CreatedAt: now},
					Kost:    &model.KostSummary{ID: 9, Title: "Kost Melati", Price: 750000, Address: "Jl. Melati 1", Photos: []string{"a.jpg"}},
				},
				{Booking: model.Booking{ID: 1, UserID: 7, CreatedAt: earlier}},
			}, nil
		},
	}
	h := NewBookingHandler(store, &publisherMock{})

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodGet, "/", "")
	c.SetPath("/api/booking/user/:userId")
	c.SetParamNames("userId")
	c.SetParamValues("7")

	require.NoError(t, h.ListByUser(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []repository.BookingDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	require.Equal(t, uint64(2), resp[0].ID) // newest first
	require.NotNil(t, resp[0].Kost)
	require.Equal(t, "Kost Melati", resp[0].Kost.Title)
	require.Nil(t, resp[1].Kost)
}

func TestBookingGetByID_NotFound(t *testing.T) {
	store := &bookingStoreMock{
		getFn: func(ctx context.Context, id uint64) (*repository.BookingDetail, error) {
			return nil, repository.ErrBookingNotFound
		},
	}
	h := NewBookingHandler(store, &publisherMock{})

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodGet, "/", "")
	c.SetPath("/api/booking/:id")
	c.SetParamNames("id")
	c.SetParamValues("404")

	require.NoError(t, h.GetByID(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Booking not found")
}

func TestBookingUpdate_StatusTransition(t *testing.T) {
	store := &bookingStoreMock{
		getFn: func(ctx context.Context, id uint64) (*repository.BookingDetail, error) {
			return &repository.BookingDetail{
				Booking: model.Booking{ID: id, UserID: 3, StatusBooking: model.StatusPending, NomorBooking: "BK1", TotalBayar: 510000},
			}, nil
		},
		updateFn: func(ctx context.Context, id uint64, upd repository.BookingUpdate) (*model.Booking, error) {
			require.NotNil(t, upd.StatusBooking)
			return &model.Booking{ID: id, UserID: 3, StatusBooking: *upd.StatusBooking, NomorBooking: "BK1", TotalBayar: 510000}, nil
		},
	}
	pub := &publisherMock{}
	h := NewBookingHandler(store, pub)

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPut, "/", `{"status_booking":"confirmed"}`)
	c.SetPath("/api/booking/:id")
	c.SetParamNames("id")
	c.SetParamValues("5")

	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status_booking":"confirmed"`)

	require.Len(t, pub.events, 1)
	require.Equal(t, queue.EventBookingStatusChanged, pub.events[0].Type)
	require.Equal(t, "confirmed", pub.events[0].Status)
}

func TestBookingUpdate_IllegalTransition(t *testing.T) {
	store := &bookingStoreMock{
		getFn: func(ctx context.Context, id uint64) (*repository.BookingDetail, error) {
			return &repository.BookingDetail{
				Booking: model.Booking{ID: id, StatusBooking: model.StatusCancelled},
			}, nil
		},
		updateFn: func(ctx context.Context, id uint64, upd repository.BookingUpdate) (*model.Booking, error) {
			t.Fatal("update must not run on an illegal transition")
			return nil, nil
		},
	}
	pub := &publisherMock{}
	h := NewBookingHandler(store, pub)

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPut, "/", `{"status_booking":"confirmed"}`)
	c.SetPath("/api/booking/:id")
	c.SetParamNames("id")
	c.SetParamValues("5")

	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid status transition")
	require.Empty(t, pub.events)
}

func TestBookingUpdate_NotFound(t *testing.T) {
	store := &bookingStoreMock{
		updateFn: func(ctx context.Context, id uint64, upd repository.BookingUpdate) (*model.Booking, error) {
			return nil, repository.ErrBookingNotFound
		},
	}
	h := NewBookingHandler(store, &publisherMock{})

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPut, "/", `{"catatan":"updated"}`)
	c.SetPath("/api/booking/:id")
	c.SetParamNames("id")
	c.SetParamValues("99")

	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Booking not found")
}
