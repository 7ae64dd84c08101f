package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"manufac-asset-backend/internal/model"
)

type createProductRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// CreateProduct handles the POST /api/products request.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product name cannot be empty"})
		return
	}
	if req.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be greater than 0"})
		return
	}

	product := model.Product{
		Name: req.Name,
		// The price field is carried in the data model but not collected by the
		// intake flow; every product is recorded at 0.
		Price:    0,
		Quantity: req.Quantity,
	}
	if err := h.store.CreateProduct(c.Request.Context(), &product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// ListProducts handles the GET /api/products request.
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.store.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}
