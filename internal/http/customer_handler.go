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

// CustomerHandler mantiene dependencias para endpoints de clientes.
type CustomerHandler struct {
	logger    *zap.Logger
	customers repository.CustomerRepository
}

func NewCustomerHandler(logger *zap.Logger, customers repository.CustomerRepository) *CustomerHandler {
	return &CustomerHandler{logger: logger, customers: customers}
}

type customerList struct {
	Items []domain.Customer `json:"items" xml:"items>item"`
}

type deletedCustomer struct {
	Deleted    bool `json:"deleted" xml:"deleted"`
	CustomerID int  `json:"customer_id" xml:"customer_id"`
}

// List maneja GET /api/customers.
func (h *CustomerHandler) List(c *gin.Context) {
	items, err := h.customers.List(c.Request.Context())
	if err != nil {
		writeStorageError(c, h.logger, "Customer not found", err)
		return
	}
	writeResponse(c, http.StatusOK, "response", customerList{Items: items})
}

// Create maneja POST /api/customers. El cliente aporta su propio id.
func (h *CustomerHandler) Create(c *gin.Context) {
	body := bindBody(c)

	customerID, err := validate.IntMin(body["customer_id"], "customer_id", 1)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	firstName := strings.TrimSpace(stringField(body, "first_name"))
	lastName := strings.TrimSpace(stringField(body, "last_name"))
	email, err := validate.Email(body["email"])
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	signup, err := validate.Date(body["signup_date"], "signup_date")
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	if firstName == "" || lastName == "" {
		writeError(c, http.StatusBadRequest, "first_name and last_name are required")
		return
	}

	cust := domain.Customer{
		CustomerID: customerID,
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		SignupDate: signup.Format("2006-01-02"),
	}
	if err := h.customers.Create(c.Request.Context(), cust); err != nil {
		writeStorageError(c, h.logger, "Customer not found", err)
		return
	}

	setLocation(c, fmt.Sprintf("/api/customers/%d", customerID))
	writeResponse(c, http.StatusCreated, "response", cust)
}

// Get maneja GET /api/customers/:id.
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.customers.GetByID(c.Request.Context(), id)
	if err != nil {
		writeStorageError(c, h.logger, "Customer not found", err)
		return
	}
	writeResponse(c, http.StatusOK, "response", row)
}

// Update maneja PUT /api/customers/:id. El id viene de la ruta y no se
// reconfirma en el body.
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	body := bindBody(c)

	firstName := strings.TrimSpace(stringField(body, "first_name"))
	lastName := strings.TrimSpace(stringField(body, "last_name"))
	if firstName == "" || lastName == "" {
		writeError(c, http.StatusBadRequest, "first_name and last_name are required")
		return
	}
	rawEmail, hasEmail := body["email"]
	rawSignup, hasSignup := body["signup_date"]
	if !hasEmail || !hasSignup || rawEmail == nil || rawSignup == nil {
		writeError(c, http.StatusBadRequest, "email and signup_date are required")
		return
	}
	email, err := validate.Email(rawEmail)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	signup, err := validate.Date(rawSignup, "signup_date")
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	cust := domain.Customer{
		CustomerID: id,
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		SignupDate: signup.Format("2006-01-02"),
	}
	if err := h.customers.Update(c.Request.Context(), cust); err != nil {
		writeStorageError(c, h.logger, "Customer not found", err)
		return
	}
	writeResponse(c, http.StatusOK, "response", cust)
}

// Delete maneja DELETE /api/customers/:id.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.customers.Delete(c.Request.Context(), id); err != nil {
		writeStorageError(c, h.logger, "Customer not found", err)
		return
	}
	writeResponse(c, http.StatusOK, "response", deletedCustomer{Deleted: true, CustomerID: id})
}
