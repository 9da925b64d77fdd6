package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mycart/commerce-api/internal/core/ports"
)

// CartHandler handles HTTP requests for the current user's cart.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

type addToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Qty       int    `json:"qty"`
}

// Get returns the user's cart.
//
// @Summary      Get cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.CartItem
// @Failure      403  {object}  map[string]any
// @Router       /cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	cart, err := h.service.Get(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// Add puts qty units of a product in the cart and returns the updated cart.
//
// @Summary      Add product to cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addToCartRequest  true  "Product and quantity"
// @Success      200   {array}   domain.CartItem
// @Failure      400   {object}  map[string]any
// @Router       /cart [post]
func (h *CartHandler) Add(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cart, err := h.service.Add(c.Request().Context(), user.ID, req.ProductID, req.Qty)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// Remove takes one unit (or the whole line, with ?all=) out of the cart and
// returns the updated cart.
//
// @Summary      Remove product from cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path      string  true   "Product id"
// @Param        all        query     string  false  "Remove the line regardless of quantity"
// @Success      200        {array}   domain.CartItem
// @Router       /cart/{productId} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	all := c.QueryParam("all") != ""
	cart, err := h.service.Remove(c.Request().Context(), user.ID, c.Param("productId"), all)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}
