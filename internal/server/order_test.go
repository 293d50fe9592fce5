package server

import (
	"fmt"
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

type orderCreatedBody struct {
	Message   string `json:"message"`
	OrderID   int64  `json:"order_id"`
	OrderDate string `json:"order_date"`
}

type orderSummaryBody struct {
	ID        int64  `json:"id"`
	OrderDate string `json:"order_date"`
}

type userOrdersBody struct {
	Orders []orderSummaryBody `json:"orders"`
}

type orderProductsBody struct {
	Products []struct {
		Name string `json:"name"`
		ID   int64  `json:"id"`
	} `json:"products"`
}

func seedCustomer(t *testing.T, srv *Server, email string) int64 {
	t.Helper()
	rec := doRequest(t, srv, http.MethodPost, "/users", map[string]any{
		"name": "Buyer", "address": "1 Rd", "email": email,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeBody[userBody](t, rec).ID
}

func seedCatalogProduct(t *testing.T, srv *Server, name string) int64 {
	t.Helper()
	rec := doRequest(t, srv, http.MethodPost, "/products", map[string]any{
		"product_name": name, "price": 4.2,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeBody[productBody](t, rec).ID
}

var orderDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)

func TestOrderScenario(t *testing.T) {
	srv, _ := newTestServer(t)

	userID := seedCustomer(t, srv, "buyer@example.com")
	productID := seedCatalogProduct(t, srv, "Widget")

	rec := doRequest(t, srv, http.MethodPost, "/order", map[string]any{"user_id": userID})
	require.Equal(t, http.StatusOK, rec.Code)
	created := decodeBody[orderCreatedBody](t, rec)
	require.EqualValues(t, 1, created.OrderID)
	require.Equal(t, "order created successfully", created.Message)
	require.Regexp(t, orderDateRe, created.OrderDate)

	path := fmt.Sprintf("/orders/%d/add_product/%d", created.OrderID, productID)
	rec = doRequest(t, srv, http.MethodPut, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Widget")

	rec = doRequest(t, srv, http.MethodGet, fmt.Sprintf("/orders/%d/products", created.OrderID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listed := decodeBody[orderProductsBody](t, rec)
	require.Len(t, listed.Products, 1)
	require.Equal(t, "Widget", listed.Products[0].Name)
	require.Equal(t, productID, listed.Products[0].ID)

	rec = doRequest(t, srv, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	all := decodeBody[[]orderSummaryBody](t, rec)
	require.Len(t, all, 1)
	require.Regexp(t, orderDateRe, all[0].OrderDate)
}

func TestCreateOrderRequiresExistingUser(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodPost, "/order", map[string]any{"user_id": 42})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, srv, http.MethodPost, "/order", map[string]any{})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	errResp := decodeBody[errorBody](t, rec)
	require.Equal(t, "validation_error", errResp.Error.Type)
}

func TestAddProductTwiceConflicts(t *testing.T) {
	srv, _ := newTestServer(t)

	userID := seedCustomer(t, srv, "buyer@example.com")
	productID := seedCatalogProduct(t, srv, "Widget")
	rec := doRequest(t, srv, http.MethodPost, "/order", map[string]any{"user_id": userID})
	orderID := decodeBody[orderCreatedBody](t, rec).OrderID

	path := fmt.Sprintf("/orders/%d/add_product/%d", orderID, productID)
	rec = doRequest(t, srv, http.MethodPut, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, srv, http.MethodPut, path, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	errResp := decodeBody[errorBody](t, rec)
	require.Equal(t, "conflict", errResp.Error.Type)

	rec = doRequest(t, srv, http.MethodGet, fmt.Sprintf("/orders/%d/products", orderID), nil)
	require.Len(t, decodeBody[orderProductsBody](t, rec).Products, 1)
}

func TestAddProductMissingSides(t *testing.T) {
	srv, _ := newTestServer(t)

	userID := seedCustomer(t, srv, "buyer@example.com")
	productID := seedCatalogProduct(t, srv, "Widget")
	rec := doRequest(t, srv, http.MethodPost, "/order", map[string]any{"user_id": userID})
	orderID := decodeBody[orderCreatedBody](t, rec).OrderID

	rec = doRequest(t, srv, http.MethodPut, fmt.Sprintf("/orders/99/add_product/%d", productID), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, srv, http.MethodPut, fmt.Sprintf("/orders/%d/add_product/99", orderID), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRemoveProductFromOrder(t *testing.T) {
	srv, _ := newTestServer(t)

	userID := seedCustomer(t, srv, "buyer@example.com")
	first := seedCatalogProduct(t, srv, "Widget")
	second := seedCatalogProduct(t, srv, "Gadget")
	rec := doRequest(t, srv, http.MethodPost, "/order", map[string]any{"user_id": userID})
	orderID := decodeBody[orderCreatedBody](t, rec).OrderID

	for _, id := range []int64{first, second} {
		rec = doRequest(t, srv, http.MethodPut, fmt.Sprintf("/orders/%d/add_product/%d", orderID, id), nil)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = doRequest(t, srv, http.MethodPut, fmt.Sprintf("/orders/%d/remove_product/%d", orderID, first), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Widget")

	rec = doRequest(t, srv, http.MethodGet, fmt.Sprintf("/orders/%d/products", orderID), nil)
	remaining := decodeBody[orderProductsBody](t, rec)
	require.Len(t, remaining.Products, 1)
	require.Equal(t, "Gadget", remaining.Products[0].Name)
}

func TestRemoveProductNotAssociated(t *testing.T) {
	srv, _ := newTestServer(t)

	userID := seedCustomer(t, srv, "buyer@example.com")
	productID := seedCatalogProduct(t, srv, "Widget")
	rec := doRequest(t, srv, http.MethodPost, "/order", map[string]any{"user_id": userID})
	orderID := decodeBody[orderCreatedBody](t, rec).OrderID

	rec = doRequest(t, srv, http.MethodPut, fmt.Sprintf("/orders/%d/remove_product/%d", orderID, productID), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	errResp := decodeBody[errorBody](t, rec)
	require.Contains(t, errResp.Error.Message, "not in the order")
}

func TestOrdersForUser(t *testing.T) {
	srv, _ := newTestServer(t)

	withOrders := seedCustomer(t, srv, "buyer@example.com")
	without := seedCustomer(t, srv, "browser@example.com")
	rec := doRequest(t, srv, http.MethodPost, "/order", map[string]any{"user_id": withOrders})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, srv, http.MethodGet, fmt.Sprintf("/orders/user/%d", withOrders), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeBody[userOrdersBody](t, rec).Orders, 1)

	rec = doRequest(t, srv, http.MethodGet, fmt.Sprintf("/orders/user/%d", without), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decodeBody[userOrdersBody](t, rec).Orders)
	require.Contains(t, rec.Body.String(), `"orders":[]`)

	rec = doRequest(t, srv, http.MethodGet, "/orders/user/99", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUserWithOrdersRejected(t *testing.T) {
	srv, _ := newTestServer(t)

	userID := seedCustomer(t, srv, "buyer@example.com")
	rec := doRequest(t, srv, http.MethodPost, "/order", map[string]any{"user_id": userID})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, srv, http.MethodDelete, fmt.Sprintf("/user/%d", userID), nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	errResp := decodeBody[errorBody](t, rec)
	require.Equal(t, "conflict", errResp.Error.Type)
}

func TestListOrderProductsMissingOrder(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := doRequest(t, srv, http.MethodGet, "/orders/7/products", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
