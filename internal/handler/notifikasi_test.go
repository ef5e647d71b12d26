package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/kostong/kostong-backend/internal/model"
	"github.com/kostong/kostong-backend/internal/repository"
)

type notifikasiStoreMock struct {
	listFn     func(ctx context.Context, userID uint64, limit int) ([]model.Notifikasi, error)
	createFn   func(ctx context.Context, n *model.Notifikasi) error
	markReadFn func(ctx context.Context, id uint64) (*model.Notifikasi, error)
}

func (m *notifikasiStoreMock) ListByUser(ctx context.Context, userID uint64, limit int) ([]model.Notifikasi, error) {
	return m.listFn(ctx, userID, limit)
}
func (m *notifikasiStoreMock) Create(ctx context.Context, n *model.Notifikasi) error {
	return m.createFn(ctx, n)
}
func (m *notifikasiStoreMock) MarkRead(ctx context.Context, id uint64) (*model.Notifikasi, error) {
	return m.markReadFn(ctx, id)
}

func TestNotifikasiListByUser_CapsLimit(t *testing.T) {
	gotLimit := 0
	store := &notifikasiStoreMock{
		listFn: func(ctx context.Context, userID uint64, limit int) ([]model.Notifikasi, error) {
			gotLimit = limit
			return []model.Notifikasi{
				{ID: 2, UserID: userID, Title: "Status booking diperbarui"},
				{ID: 1, UserID: userID, Title: "Booking dibuat"},
			}, nil
		},
	}
	h := NewNotifikasiHandler(store)

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodGet, "/", "")
	c.SetPath("/api/notifikasi/user/:userId")
	c.SetParamNames("userId")
	c.SetParamValues("6")

	require.NoError(t, h.ListByUser(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 50, gotLimit)

	var resp []model.Notifikasi
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	require.Equal(t, uint64(2), resp[0].ID)
}

func TestNotifikasiCreate(t *testing.T) {
	store := &notifikasiStoreMock{
		createFn: func(ctx context.Context, n *model.Notifikasi) error {
			n.ID = 1
			return nil
		},
	}
	h := NewNotifikasiHandler(store)

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPost, "/api/notifikasi",
		`{"user_id":6,"title":"Booking dibuat","body":"Nomor booking BK123"}`)

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp model.Notifikasi
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, uint64(1), resp.ID)
	require.False(t, resp.Read)
	require.Equal(t, "Booking dibuat", resp.Title)
}

func TestNotifikasiMarkRead(t *testing.T) {
	store := &notifikasiStoreMock{
		markReadFn: func(ctx context.Context, id uint64) (*model.Notifikasi, error) {
			return &model.Notifikasi{ID: id, UserID: 6, Title: "Booking dibuat", Read: true}, nil
		},
	}
	h := NewNotifikasiHandler(store)

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPut, "/", "")
	c.SetPath("/api/notifikasi/:id/read")
	c.SetParamNames("id")
	c.SetParamValues("5")

	require.NoError(t, h.MarkRead(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.Notifikasi
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Read)
	require.Equal(t, uint64(5), resp.ID)
}

func TestNotifikasiMarkRead_NotFound(t *testing.T) {
	store := &notifikasiStoreMock{
		markReadFn: func(ctx context.Context, id uint64) (*model.Notifikasi, error) {
			return nil, repository.ErrNotifikasiNotFound
		},
	}
	h := NewNotifikasiHandler(store)

	e := echo.New()
	c, rec := newJSONContext(e, http.MethodPut, "/", "")
	c.SetPath("/api/notifikasi/:id/read")
	c.SetParamNames("id")
	c.SetParamValues("404")

	require.NoError(t, h.MarkRead(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "Notification not found")
}
