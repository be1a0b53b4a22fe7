package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hanz-sales/internal/domain"
	"hanz-sales/internal/repository"
)

// CategoryHandler mantiene dependencias para endpoints de categorias.
type CategoryHandler struct {
	logger     *zap.Logger
	categories repository.CategoryRepository
}

func NewCategoryHandler(logger *zap.Logger, categories repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{logger: logger, categories: categories}
}

type categoryList struct {
	Items []domain.Category `json:"items" xml:"items>item"`
}

type deletedCategory struct {
	Deleted    bool `json:"deleted" xml:"deleted"`
	CategoryID int  `json:"category_id" xml:"category_id"`
}

// List maneja GET /api/categories.
func (h *CategoryHandler) List(c *gin.Context) {
	items, err := h.categories.List(c.Request.Context())
	if err != nil {
		writeStorageError(c, h.logger, "Category not found", err)
		return
	}
	writeResponse(c, http.StatusOK, "response", categoryList{Items: items})
}

// Create maneja POST /api/categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	body := bindBody(c)
	name := strings.TrimSpace(stringField(body, "category_name"))
	if name == "" {
		writeError(c, http.StatusBadRequest, "category_name is required")
		return
	}

	created, err := h.categories.Create(c.Request.Context(), name)
	if err != nil {
		writeStorageError(c, h.logger, "Category not found", err)
		return
	}

	setLocation(c, fmt.Sprintf("/api/categories/%d", created.CategoryID))
	writeResponse(c, http.StatusCreated, "response", created)
}

// Get maneja GET /api/categories/:id.
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.categories.GetByID(c.Request.Context(), id)
	if err != nil {
		writeStorageError(c, h.logger, "Category not found", err)
		return
	}
	writeResponse(c, http.StatusOK, "response", row)
}

// Update maneja PUT /api/categories/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	body := bindBody(c)
	name := strings.TrimSpace(stringField(body, "category_name"))
	if name == "" {
		writeError(c, http.StatusBadRequest, "category_name is required")
		return
	}

	updated, err := h.categories.Update(c.Request.Context(), id, name)
	if err != nil {
		writeStorageError(c, h.logger, "Category not found", err)
		return
	}
	writeResponse(c, http.StatusOK, "response", updated)
}

// Delete maneja DELETE /api/categories/:id.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		writeStorageError(c, h.logger, "Category not found", err)
		return
	}
	writeResponse(c, http.StatusOK, "response", deletedCategory{Deleted: true, CategoryID: id})
}
