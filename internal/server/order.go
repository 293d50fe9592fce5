package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	orderdomain "github.com/marketbase/commerce/internal/order/domain"
)

// order_date is dump-only: it is never accepted on input and always present
// on output, formatted as YYYY-MM-DD HH:MM:SS.
type createOrderRequest struct {
	UserID *int64 `json:"user_id" binding:"required"`
}

type orderSummary struct {
	ID        int64  `json:"id"`
	OrderDate string `json:"order_date"`
}

type orderProductSummary struct {
	Name string `json:"name"`
	ID   int64  `json:"id"`
}

func (s *Server) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, bindingError(err))
		return
	}

	order, err := s.orderSvc.Create(c.Request.Context(), orderdomain.CreateOrderRequest{
		UserID: *req.UserID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "order created successfully",
		"order_id":   order.ID,
		"order_date": order.FormattedDate(),
	})
}

func (s *Server) ListOrders(c *gin.Context) {
	orders, err := s.orderSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summarizeOrders(orders))
}

func (s *Server) ListUserOrders(c *gin.Context) {
	userID, err := parseID(c.Param("user_id"))
	if err != nil {
		AbortWithError(c, orderdomain.ErrInvalidID)
		return
	}

	orders, err := s.orderSvc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": summarizeOrders(orders)})
}

func (s *Server) ListOrderProducts(c *gin.Context) {
	orderID, err := parseID(c.Param("order_id"))
	if err != nil {
		AbortWithError(c, orderdomain.ErrInvalidID)
		return
	}

	products, err := s.orderSvc.Products(c.Request.Context(), orderID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	out := make([]orderProductSummary, 0, len(products))
	for _, p := range products {
		out = append(out, orderProductSummary{
			Name: p.ProductName,
			ID:   p.ID,
		})
	}
	c.JSON(http.StatusOK, gin.H{"products": out})
}

func (s *Server) AddProductToOrder(c *gin.Context) {
	orderID, productID, err := parseOrderProductIDs(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	product, err := s.orderSvc.AddProduct(c.Request.Context(), orderID, productID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("product %s added to order %d", product.ProductName, orderID),
	})
}

func (s *Server) RemoveProductFromOrder(c *gin.Context) {
	orderID, productID, err := parseOrderProductIDs(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	product, err := s.orderSvc.RemoveProduct(c.Request.Context(), orderID, productID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("product %s removed from order %d", product.ProductName, orderID),
	})
}

func parseOrderProductIDs(c *gin.Context) (int64, int64, error) {
	orderID, err := parseID(c.Param("order_id"))
	if err != nil {
		return 0, 0, newValidationError("order_id", "invalid_order_id", "invalid order id")
	}
	productID, err := parseID(c.Param("product_id"))
	if err != nil {
		return 0, 0, newValidationError("product_id", "invalid_product_id", "invalid product id")
	}
	return orderID, productID, nil
}

func summarizeOrders(orders []orderdomain.Order) []orderSummary {
	out := make([]orderSummary, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderSummary{
			ID:        o.ID,
			OrderDate: o.FormattedDate(),
		})
	}
	return out
}
