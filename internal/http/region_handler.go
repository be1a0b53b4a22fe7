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

// RegionHandler mantiene dependencias para endpoints de regiones.
type RegionHandler struct {
	logger  *zap.Logger
	regions repository.RegionRepository
}

func NewRegionHandler(logger *zap.Logger, regions repository.RegionRepository) *RegionHandler {
	return &RegionHandler{logger: logger, regions: regions}
}

type regionList struct {
	Items []domain.Region `json:"items" xml:"items>item"`
}

type deletedRegion struct {
	Deleted  bool `json:"deleted" xml:"deleted"`
	RegionID int  `json:"region_id" xml:"region_id"`
}

// List maneja GET /api/regions.
func (h *RegionHandler) List(c *gin.Context) {
	items, err := h.regions.List(c.Request.Context())
	if err != nil {
		writeStorageError(c, h.logger, "Region not found", err)
		return
	}
	writeResponse(c, http.StatusOK, "response", regionList{Items: items})
}

// Create maneja POST /api/regions.
func (h *RegionHandler) Create(c *gin.Context) {
	body := bindBody(c)
	name := strings.TrimSpace(stringField(body, "region_name"))
	if name == "" {
		writeError(c, http.StatusBadRequest, "region_name is required")
		return
	}

	created, err := h.regions.Create(c.Request.Context(), name)
	if err != nil {
		writeStorageError(c, h.logger, "Region not found", err)
		return
	}

	setLocation(c, fmt.Sprintf("/api/regions/%d", created.RegionID))
	writeResponse(c, http.StatusCreated, "response", created)
}

// Get maneja GET /api/regions/:id.
func (h *RegionHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.regions.GetByID(c.Request.Context(), id)
	if err != nil {
		writeStorageError(c, h.logger, "Region not found", err)
		return
	}
	writeResponse(c, http.StatusOK, "response", row)
}

// Update maneja PUT /api/regions/:id.
func (h *RegionHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	body := bindBody(c)
	name := strings.TrimSpace(stringField(body, "region_name"))
	if name == "" {
		writeError(c, http.StatusBadRequest, "region_name is required")
		return
	}

	updated, err := h.regions.Update(c.Request.Context(), id, name)
	if err != nil {
		writeStorageError(c, h.logger, "Region not found", err)
		return
	}
	writeResponse(c, http.StatusOK, "response", updated)
}

// Delete maneja DELETE /api/regions/:id.
func (h *RegionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.regions.Delete(c.Request.Context(), id); err != nil {
		writeStorageError(c, h.logger, "Region not found", err)
		return
	}
	writeResponse(c, http.StatusOK, "response", deletedRegion{Deleted: true, RegionID: id})
}
