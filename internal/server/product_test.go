package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type productBody struct {
	ID          int64   `json:"id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
}

func TestProductLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/products", map[string]any{
		"product_name": "Widget",
		"price":        9.99,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[productBody](t, rec)
	require.EqualValues(t, 1, created.ID)
	require.Equal(t, "Widget", created.ProductName)

	rec = doRequest(t, srv, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeBody[[]productBody](t, rec), 1)

	rec = doRequest(t, srv, http.MethodGet, "/product/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, srv, http.MethodPut, "/product/1", map[string]any{
		"product_name": "Widget Pro",
		"price":        14.5,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[productBody](t, rec)
	require.Equal(t, "Widget Pro", updated.ProductName)
	require.Equal(t, 14.5, updated.Price)

	rec = doRequest(t, srv, http.MethodDelete, "/product/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, srv, http.MethodGet, "/product/1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProductDuplicateName(t *testing.T) {
	srv, _ := newTestServer(t)

	body := map[string]any{"product_name": "Widget", "price": 1.0}
	rec := doRequest(t, srv, http.MethodPost, "/products", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, srv, http.MethodPost, "/products", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	errResp := decodeBody[errorBody](t, rec)
	require.Equal(t, "conflict", errResp.Error.Type)
}

func TestCreateProductAllowsZeroPrice(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/products", map[string]any{
		"product_name": "Freebie",
		"price":        0,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, float64(0), decodeBody[productBody](t, rec).Price)
}

func TestCreateProductValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/products", map[string]any{
		"price": 3.0,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	errResp := decodeBody[errorBody](t, rec)
	require.Equal(t, "validation_error", errResp.Error.Type)
	require.Len(t, errResp.Error.Errors, 1)
	require.Equal(t, "product_name", errResp.Error.Errors[0].Field)
}

func TestProductMissingID(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		rec := doRequest(t, srv, method, "/product/99", nil)
		require.Equal(t, http.StatusNotFound, rec.Code, method)
	}

	rec := doRequest(t, srv, http.MethodGet, "/product/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
