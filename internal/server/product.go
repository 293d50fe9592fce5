package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	productdomain "github.com/marketbase/commerce/internal/product/domain"
)

// price is a pointer so that an explicit zero price still satisfies required.
type productRequest struct {
	ProductName string   `json:"product_name" binding:"required,max=60"`
	Price       *float64 `json:"price" binding:"required"`
}

func (s *Server) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, bindingError(err))
		return
	}

	product, err := s.productSvc.Create(c.Request.Context(), productdomain.CreateProductRequest{
		ProductName: strings.TrimSpace(req.ProductName),
		Price:       *req.Price,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (s *Server) ListProducts(c *gin.Context) {
	products, err := s.productSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (s *Server) GetProductByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, productdomain.ErrInvalidID)
		return
	}

	product, err := s.productSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (s *Server) UpdateProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, productdomain.ErrInvalidID)
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, bindingError(err))
		return
	}

	product, err := s.productSvc.Update(c.Request.Context(), id, productdomain.UpdateProductRequest{
		ProductName: strings.TrimSpace(req.ProductName),
		Price:       *req.Price,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (s *Server) DeleteProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		AbortWithError(c, productdomain.ErrInvalidID)
		return
	}

	if err := s.productSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("product with id %d deleted", id)})
}
