package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kostong/kostong-backend/internal/model"
	"github.com/kostong/kostong-backend/internal/repository"
)

// FavoritStore is the persistence surface the favorite handler needs.
type FavoritStore interface {
	ListByUser(ctx context.Context, userID uint64) ([]repository.FavoritDetail, error)
	Create(ctx context.Context, f *model.Favorit) error
	Delete(ctx context.Context, id uint64) error
}

// FavoritHandler serves a user's saved listings.
type FavoritHandler struct {
	Store FavoritStore
}

// NewFavoritHandler wires a favorite handler.
func NewFavoritHandler(store FavoritStore) *FavoritHandler { return &FavoritHandler{Store: store} }

// ListByUser returns the user's favorites with the kost populated,
// newest first.
func (h *FavoritHandler) ListByUser(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid user id"})
	}
	favorits, err := h.Store.ListByUser(c.Request().Context(), userID)
	if err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, favorits)
}

type createFavoritReq struct {
	UserID uint64 `json:"user_id"`
	KostID uint64 `json:"kost_id"`
}

// Create adds a favorite. The unique (user, kost) index makes the
// duplicate check atomic; a second identical request gets a 400.
func (h *FavoritHandler) Create(c echo.Context) error {
	var req createFavoritReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}

	fav := model.Favorit{UserID: req.UserID, KostID: req.KostID}
	if err := h.Store.Create(c.Request().Context(), &fav); err != nil {
		if err == repository.ErrAlreadyFavorited {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Already in favorites"})
		}
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusCreated, fav)
}

// Delete removes a favorite by id.
func (h *FavoritHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Store.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrFavoritNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Favorite not found"})
		}
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Favorite removed"})
}
