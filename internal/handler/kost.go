package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kostong/kostong-backend/internal/model"
	"github.com/kostong/kostong-backend/internal/repository"
)

// KostStore is the persistence surface the listing handler needs.
type KostStore interface {
	ListAll(ctx context.Context) ([]model.Kost, error)
	GetByID(ctx context.Context, id uint64) (*model.Kost, error)
	Create(ctx context.Context, k *model.Kost) error
}

// KostHandler serves the public listing endpoints. These routes carry no
// auth; reads sit behind the Redis response cache.
type KostHandler struct {
	Store KostStore
}

// NewKostHandler wires a listing handler.
func NewKostHandler(store KostStore) *KostHandler { return &KostHandler{Store: store} }

// List returns every listing, newest first, unpaginated.
func (h *KostHandler) List(c echo.Context) error {
	kosts, err := h.Store.ListAll(c.Request().Context())
	if err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, kosts)
}

// GetByID returns one listing.
func (h *KostHandler) GetByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	kost, err := h.Store.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrKostNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Kost not found"})
		}
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, kost)
}

type createKostReq struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Price       int64    `json:"price" validate:"gte=0"`
	Photos      []string `json:"photos"`
	Owner       string   `json:"owner"`
}

// Create inserts a listing as given. The route is deliberately left
// unauthenticated to match the upstream interface.
func (h *KostHandler) Create(c echo.Context) error {
	var req createKostReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	kost := model.Kost{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		Price:       req.Price,
		Photos:      req.Photos,
		Owner:       req.Owner,
	}
	if err := h.Store.Create(c.Request().Context(), &kost); err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusCreated, kost)
}
