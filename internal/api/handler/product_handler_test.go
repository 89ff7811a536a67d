package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commercekit/ecommerce-api/internal/core/domain"
	"github.com/commercekit/ecommerce-api/internal/core/ports"
)

type stubProductService struct {
	createFn     func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error)
	updateFn     func(ctx context.Context, id string, input ports.CreateProductInput) (*domain.Product, error)
	patchFn      func(ctx context.Context, id string, patch ports.ProductPatch) (*domain.Product, error)
	deleteFn     func(ctx context.Context, id string) error
	findAllFn    func(ctx context.Context) ([]*domain.Product, error)
	findByIDFn   func(ctx context.Context, id string) (*domain.Product, error)
	categoriesFn func(ctx context.Context) ([]*domain.Category, error)
}

func (s *stubProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, input)
}

func (s *stubProductService) Update(ctx context.Context, id string, input ports.CreateProductInput) (*domain.Product, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubProductService) Patch(ctx context.Context, id string, patch ports.ProductPatch) (*domain.Product, error) {
	return s.patchFn(ctx, id, patch)
}

func (s *stubProductService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubProductService) FindAll(ctx context.Context) ([]*domain.Product, error) {
	return s.findAllFn(ctx)
}

func (s *stubProductService) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubProductService) Categories(ctx context.Context) ([]*domain.Category, error) {
	return s.categoriesFn(ctx)
}

func TestProductHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			assert.Equal(t, "Laptop", input.Name)
			assert.Equal(t, "Electronics", input.Category)
			assert.True(t, input.Price.Equal(decimal.RequireFromString("999.99")))
			return &domain.Product{
				ID:       "p1",
				Name:     input.Name,
				Price:    input.Price,
				Stock:    input.Stock,
				Category: domain.Category{ID: "c1", Name: input.Category},
			}, nil
		},
	}
	handler := NewProductHandler(stub)

	body := strings.NewReader(`{"name":"Laptop","description":"A fast laptop","price":999.99,"stock":5,"category":"Electronics"}`)
	req := httptest.NewRequest(http.MethodPost, "/products", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "p1", resp["id"])
}

func TestProductHandler_Create_NegativePrice(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	body := strings.NewReader(`{"name":"Laptop","description":"desc","price":-1,"stock":5,"category":"Electronics"}`)
	req := httptest.NewRequest(http.MethodPost, "/products", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_Create_MissingFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	body := strings.NewReader(`{"price":10,"stock":1}`)
	req := httptest.NewRequest(http.MethodPost, "/products", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		findByIDFn: func(ctx context.Context, id string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/products/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, handler.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		findAllFn: func(ctx context.Context) ([]*domain.Product, error) {
			return []*domain.Product{
				{ID: "p1", Name: "Laptop"},
				{ID: "p2", Name: "Phone"},
			}, nil
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestProductHandler_Patch_ForwardsOnlyProvidedFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		patchFn: func(ctx context.Context, id string, patch ports.ProductPatch) (*domain.Product, error) {
			assert.Equal(t, "p1", id)
			require.NotNil(t, patch.Price)
			assert.True(t, patch.Price.Equal(decimal.RequireFromString("19.99")))
			assert.Nil(t, patch.Name)
			assert.Nil(t, patch.Description)
			assert.Nil(t, patch.Stock)
			assert.Nil(t, patch.Category)
			return &domain.Product{ID: id, Price: *patch.Price}, nil
		},
	}
	handler := NewProductHandler(stub)

	body := strings.NewReader(`{"price":19.99}`)
	req := httptest.NewRequest(http.MethodPatch, "/products/p1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	require.NoError(t, handler.Patch(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_Patch_NegativeStock(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		patchFn: func(ctx context.Context, id string, patch ports.ProductPatch) (*domain.Product, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	body := strings.NewReader(`{"stock":-3}`)
	req := httptest.NewRequest(http.MethodPatch, "/products/p1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	require.NoError(t, handler.Patch(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_Delete_ReturnsNoContent(t *testing.T) {
	e := newTestEcho()
	called := false
	stub := &stubProductService{
		deleteFn: func(ctx context.Context, id string) error {
			called = true
			return nil
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/products/p1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	require.NoError(t, handler.Delete(c))
	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestProductHandler_ListCategories(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		categoriesFn: func(ctx context.Context) ([]*domain.Category, error) {
			return []*domain.Category{{ID: "c1", Name: "Books"}}, nil
		},
	}
	handler := NewProductHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.ListCategories(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Books")
}
