package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mycart/commerce-api/internal/core/ports"
)

// WishlistHandler handles HTTP requests for the current user's wishlist.
type WishlistHandler struct {
	service ports.WishlistService
}

func NewWishlistHandler(service ports.WishlistService) *WishlistHandler {
	return &WishlistHandler{service: service}
}

type addToWishlistRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// Get returns the user's wishlist.
//
// @Summary      Get wishlist
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Product
// @Failure      403  {object}  map[string]any
// @Router       /wishlist [get]
func (h *WishlistHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	wishlist, err := h.service.Get(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, wishlist)
}

// Add puts a product on the wishlist and returns the updated list.
//
// @Summary      Add product to wishlist
// @Tags         wishlist
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addToWishlistRequest  true  "Product to add"
// @Success      200   {array}   domain.Product
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /wishlist [post]
func (h *WishlistHandler) Add(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req addToWishlistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	wishlist, err := h.service.Add(c.Request().Context(), user.ID, req.ProductID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, wishlist)
}

// Remove deletes a product from the wishlist and returns the updated list.
//
// @Summary      Remove product from wishlist
// @Tags         wishlist
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path      string  true  "Product id"
// @Success      200        {array}   domain.Product
// @Failure      400        {object}  map[string]any
// @Router       /wishlist/{productId} [delete]
func (h *WishlistHandler) Remove(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	wishlist, err := h.service.Remove(c.Request().Context(), user.ID, c.Param("productId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, wishlist)
}
