package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mycart/commerce-api/internal/core/ports"
)

// maxPictureBytes caps a picture upload at 5 MiB.
const maxPictureBytes = 5 << 20

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service ports.CatalogService
}

func NewProductHandler(service ports.CatalogService) *ProductHandler {
	return &ProductHandler{service: service}
}

type createProductRequest struct {
	Name       string   `json:"name"     validate:"required"`
	Price      *float64 `json:"price"    validate:"required"`
	OldPrice   *float64 `json:"oldPrice" validate:"required"`
	PictureURL string   `json:"pictureUrl"`
}

// List returns the catalog.
//
// @Summary      Get list of available products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Create adds a product to the catalog.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]any
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:       req.Name,
		Price:      req.Price,
		OldPrice:   req.OldPrice,
		PictureURL: req.PictureURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// AttachPicture uploads a product picture to the object bucket.
//
// @Summary      Upload a product picture
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true  "Product id"
// @Param        picture  formData  file    true  "Picture file"
// @Success      200      {object}  domain.Product
// @Failure      400      {object}  map[string]any
// @Router       /products/{id}/picture [post]
func (h *ProductHandler) AttachPicture(c echo.Context) error {
	fileHeader, err := c.FormFile("picture")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "picture file is required")
	}
	if fileHeader.Size > maxPictureBytes {
		return echo.NewHTTPError(http.StatusBadRequest, "picture too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read picture")
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxPictureBytes))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read picture")
	}

	product, err := h.service.AttachPicture(c.Request().Context(), c.Param("id"), fileHeader.Filename, content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}
