package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hanz-sales/internal/domain"
	"hanz-sales/internal/repository"
	"hanz-sales/internal/validate"
)

// ProductHandler mantiene dependencias para endpoints de productos.
type ProductHandler struct {
	logger   *zap.Logger
	products repository.ProductRepository
}

func NewProductHandler(logger *zap.Logger, products repository.ProductRepository) *ProductHandler {
	return &ProductHandler{logger: logger, products: products}
}

type productList struct {
	Items []domain.Product `json:"items" xml:"items>item"`
}

type deletedProduct struct {
	Deleted   bool `json:"deleted" xml:"deleted"`
	ProductID int  `json:"product_id" xml:"product_id"`
}

// createdProduct omite category_name, que solo existe en lecturas unidas.
type createdProduct struct {
	ProductID   int    `json:"product_id" xml:"product_id"`
	ProductName string `json:"product_name" xml:"product_name"`
	CategoryID  int    `json:"category_id" xml:"category_id"`
}

// List maneja GET /api/products.
func (h *ProductHandler) List(c *gin.Context) {
	items, err := h.products.List(c.Request.Context())
	if err != nil {
		writeStorageError(c, h.logger, "Product not found", err)
		return
	}
	writeResponse(c, http.StatusOK, "response", productList{Items: items})
}

// Create maneja POST /api/products.
func (h *ProductHandler) Create(c *gin.Context) {
	body := bindBody(c)

	name := strings.TrimSpace(stringField(body, "product_name"))
	categoryID, err := validate.IntMin(body["category_id"], "category_id", 1)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	if name == "" {
		writeError(c, http.StatusBadRequest, "product_name is required")
		return
	}

	created, err := h.products.Create(c.Request.Context(), name, categoryID)
	if err != nil {
		writeStorageError(c, h.logger, "Product not found", err)
		return
	}

	setLocation(c, fmt.Sprintf("/api/products/%d", created.ProductID))
	writeResponse(c, http.StatusCreated, "response", createdProduct{
		ProductID:   created.ProductID,
		ProductName: created.ProductName,
		CategoryID:  created.CategoryID,
	})
}

// Get maneja GET /api/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.products.GetByID(c.Request.Context(), id)
	if err != nil {
		writeStorageError(c, h.logger, "Product not found", err)
		return
	}
	writeResponse(c, http.StatusOK, "response", row)
}

// Update maneja PUT /api/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	body := bindBody(c)

	name := strings.TrimSpace(stringField(body, "product_name"))
	categoryID, err := validate.IntMin(body["category_id"], "category_id", 1)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	if name == "" {
		writeError(c, http.StatusBadRequest, "product_name is required")
		return
	}

	updated, err := h.products.Update(c.Request.Context(), id, name, categoryID)
	if err != nil {
		writeStorageError(c, h.logger, "Product not found", err)
		return
	}
	writeResponse(c, http.StatusOK, "response", createdProduct{
		ProductID:   updated.ProductID,
		ProductName: updated.ProductName,
		CategoryID:  updated.CategoryID,
	})
}

// Delete maneja DELETE /api/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		writeStorageError(c, h.logger, "Product not found", err)
		return
	}
	writeResponse(c, http.StatusOK, "response", deletedProduct{Deleted: true, ProductID: id})
}
