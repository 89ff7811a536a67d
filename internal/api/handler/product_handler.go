package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/commercekit/ecommerce-api/internal/core/domain"
	"github.com/commercekit/ecommerce-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /products.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "product not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /products.
//
// @Summary      Create a new product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	input, ok := bindProductRequest(c)
	if !ok {
		return nil
	}

	product, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Update handles PUT /products/:id — full replacement, id preserved.
//
// @Summary      Replace a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Product id"
// @Param        body  body      productRequest  true  "Product details"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	input, ok := bindProductRequest(c)
	if !ok {
		return nil
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Patch handles PATCH /products/:id — partial update.
//
// @Summary      Partially update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Product id"
// @Param        body  body      patchProductRequest  true  "Fields to update"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /products/{id} [patch]
func (h *ProductHandler) Patch(c echo.Context) error {
	var req patchProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if req.Price != nil && !req.Price.IsPositive() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "price must be positive"})
	}
	if req.Stock != nil && *req.Stock < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "stock must not be negative"})
	}

	product, err := h.service.Patch(c.Request().Context(), c.Param("id"), ports.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImgURL:      req.ImgURL,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /products/:id. Idempotent: 204 even when the id never
// existed.
//
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        id  path  string  true  "Product id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListCategories handles GET /categories.
//
// @Summary      List all categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  domain.Category
// @Router       /categories [get]
func (h *ProductHandler) ListCategories(c echo.Context) error {
	categories, err := h.service.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// bindProductRequest binds and validates the create/replace payload. When it
// returns false the 400 response has already been written.
func bindProductRequest(c echo.Context) (ports.CreateProductInput, bool) {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		return ports.CreateProductInput{}, false
	}
	if err := c.Validate(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		return ports.CreateProductInput{}, false
	}
	if !req.Price.IsPositive() {
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "price must be positive"})
		return ports.CreateProductInput{}, false
	}

	return ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		ImgURL:      req.ImgURL,
	}, true
}
