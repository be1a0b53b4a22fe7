package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hanz-sales/internal/domain"
	"hanz-sales/internal/repository"
	"hanz-sales/internal/validate"
)

// SaleHandler mantiene dependencias para endpoints de ventas.
type SaleHandler struct {
	logger *zap.Logger
	sales  repository.SaleRepository
}

func NewSaleHandler(logger *zap.Logger, sales repository.SaleRepository) *SaleHandler {
	return &SaleHandler{logger: logger, sales: sales}
}

type saleList struct {
	Items []domain.Sale `json:"items" xml:"items>item"`
}

type deletedSale struct {
	Deleted bool `json:"deleted" xml:"deleted"`
	SaleID  int  `json:"sale_id" xml:"sale_id"`
}

type saleSearchResult struct {
	Items []domain.SaleSearchRow `json:"items" xml:"items>item"`
	Count int                    `json:"count" xml:"count"`
}

// saleFields valida los campos comunes de create y update.
func saleFields(body map[string]any) (domain.Sale, error) {
	var s domain.Sale
	var err error

	if s.ProductID, err = validate.IntMin(body["product_id"], "product_id", 1); err != nil {
		return domain.Sale{}, err
	}
	saleDate, err := validate.Date(body["sale_date"], "sale_date")
	if err != nil {
		return domain.Sale{}, err
	}
	s.SaleDate = saleDate.Format("2006-01-02")
	if s.Quantity, err = validate.IntMin(body["quantity"], "quantity", 1); err != nil {
		return domain.Sale{}, err
	}
	if s.Price, err = validate.Decimal(body["price"], "price"); err != nil {
		return domain.Sale{}, err
	}
	if s.CustomerID, err = validate.IntMin(body["customer_id"], "customer_id", 1); err != nil {
		return domain.Sale{}, err
	}
	if s.RegionID, err = validate.IntMin(body["region_id"], "region_id", 1); err != nil {
		return domain.Sale{}, err
	}
	return s, nil
}

// List maneja GET /api/sales.
func (h *SaleHandler) List(c *gin.Context) {
	items, err := h.sales.List(c.Request.Context())
	if err != nil {
		writeStorageError(c, h.logger, "Sale not found", err)
		return
	}
	writeResponse(c, http.StatusOK, "response", saleList{Items: items})
}

// Create maneja POST /api/sales. El caller aporta el sale_id.
func (h *SaleHandler) Create(c *gin.Context) {
	body := bindBody(c)

	saleID, err := validate.IntMin(body["sale_id"], "sale_id", 1)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	sale, err := saleFields(body)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	sale.SaleID = saleID

	if err := h.sales.Create(c.Request.Context(), sale); err != nil {
		writeStorageError(c, h.logger, "Sale not found", err)
		return
	}

	setLocation(c, fmt.Sprintf("/api/sales/%d", saleID))
	writeResponse(c, http.StatusCreated, "response", sale)
}

// Get maneja GET /api/sales/:id.
func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.sales.GetByID(c.Request.Context(), id)
	if err != nil {
		writeStorageError(c, h.logger, "Sale not found", err)
		return
	}
	writeResponse(c, http.StatusOK, "response", row)
}

// Update maneja PUT /api/sales/:id.
func (h *SaleHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	body := bindBody(c)

	sale, err := saleFields(body)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	sale.SaleID = id

	if err := h.sales.Update(c.Request.Context(), sale); err != nil {
		writeStorageError(c, h.logger, "Sale not found", err)
		return
	}
	writeResponse(c, http.StatusOK, "response", sale)
}

// Delete maneja DELETE /api/sales/:id.
func (h *SaleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.sales.Delete(c.Request.Context(), id); err != nil {
		writeStorageError(c, h.logger, "Sale not found", err)
		return
	}
	writeResponse(c, http.StatusOK, "response", deletedSale{Deleted: true, SaleID: id})
}

// Search maneja GET /api/sales/search sobre la vista denormalizada.
// Todos los filtros son opcionales y se combinan con AND.
func (h *SaleHandler) Search(c *gin.Context) {
	filter := domain.SaleSearchFilter{
		ProductName:  c.Query("product_name"),
		CategoryName: c.Query("category_name"),
		RegionName:   c.Query("region_name"),
	}

	if raw := c.Query("customer_id"); raw != "" {
		id, err := validate.IntMin(raw, "customer_id", 1)
		if err != nil {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		filter.CustomerID = id
	}
	if raw := c.Query("date_from"); raw != "" {
		from, err := validate.Date(raw, "date_from")
		if err != nil {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		filter.DateFrom = from.Format("2006-01-02")
	}
	if raw := c.Query("date_to"); raw != "" {
		to, err := validate.Date(raw, "date_to")
		if err != nil {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		filter.DateTo = to.Format("2006-01-02")
	}

	rows, err := h.sales.Search(c.Request.Context(), filter)
	if err != nil {
		writeStorageError(c, h.logger, "Sale not found", err)
		return
	}
	writeResponse(c, http.StatusOK, "response", saleSearchResult{Items: rows, Count: len(rows)})
}
