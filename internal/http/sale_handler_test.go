package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hanz-sales/internal/domain"
)

func newSaleRouter(repo *mockSaleRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSaleHandler(zap.NewNop(), repo)
	r := gin.New()
	r.Use(FormatMiddleware())
	r.GET("/api/sales", h.List)
	r.POST("/api/sales", h.Create)
	r.GET("/api/sales/search", h.Search)
	r.GET("/api/sales/:id", h.Get)
	r.PUT("/api/sales/:id", h.Update)
	r.DELETE("/api/sales/:id", h.Delete)
	return r
}

func validSale() map[string]any {
	return map[string]any{
		"sale_id":     100,
		"product_id":  1,
		"sale_date":   "2023-02-10",
		"quantity":    3,
		"price":       49.99,
		"customer_id": 42,
		"region_id":   2,
	}
}

func TestSale_CreateAndGetRoundTrip(t *testing.T) {
	repo := newMockSaleRepo()
	r := newSaleRouter(repo)

	rec := postJSON(t, r, "/api/sales", validSale())
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/api/sales/100" {
		t.Fatalf("unexpected location %q", loc)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/sales/100", nil)
	getRec := httptest.NewRecorder()
	r.ServeHTTP(getRec, req)

	if getRec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", getRec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(getRec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["sale_date"] != "2023-02-10" || body["quantity"] != float64(3) || body["price"] != 49.99 {
		t.Fatalf("round trip mismatch: %v", body)
	}
}

func TestSale_CreateValidationBoundaries(t *testing.T) {
	repo := newMockSaleRepo()
	r := newSaleRouter(repo)

	cases := []struct {
		mutate func(map[string]any)
		want   string
	}{
		{func(p map[string]any) { p["quantity"] = 0 }, "quantity must be >= 1"},
		{func(p map[string]any) { p["sale_id"] = 0 }, "sale_id must be >= 1"},
		{func(p map[string]any) { p["product_id"] = -1 }, "product_id must be >= 1"},
		{func(p map[string]any) { p["customer_id"] = "abc" }, "customer_id must be an integer"},
		{func(p map[string]any) { p["region_id"] = 0 }, "region_id must be >= 1"},
		{func(p map[string]any) { p["price"] = "free" }, "price must be a number"},
		{func(p map[string]any) { p["sale_date"] = "2023/02/10" }, "sale_date must be a date string (YYYY-MM-DD)"},
	}
	for _, tc := range cases {
		payload := validSale()
		tc.mutate(payload)
		rec := postJSON(t, r, "/api/sales", payload)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		if msg := errorMessage(t, rec.Body.Bytes()); msg != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, msg)
		}
	}
	if len(repo.items) != 0 {
		t.Fatalf("invalid input reached storage")
	}
}

func TestSale_DuplicateIDConflictThenDeleteIdempotence(t *testing.T) {
	r := newSaleRouter(newMockSaleRepo())

	if rec := postJSON(t, r, "/api/sales", validSale()); rec.Code != http.StatusCreated {
		t.Fatalf("first create: got %d", rec.Code)
	}
	if rec := postJSON(t, r, "/api/sales", validSale()); rec.Code != http.StatusConflict {
		t.Fatalf("duplicate create: expected 409, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/sales/100", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/sales/100", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("repeat delete: expected 404, got %d", rec.Code)
	}
	if msg := errorMessage(t, rec.Body.Bytes()); msg != "Sale not found" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func searchFixtures() []domain.SaleSearchRow {
	return []domain.SaleSearchRow{
		{SaleID: 3, SaleDate: "2023-01-20", Quantity: 2, Price: 99.90, ProductID: 1, ProductName: "Laptop 14\"", ProductCategory: "Electronics", CustomerID: 42, FirstName: "Alice", LastName: "Santos", SignupDate: "2022-11-03", Region: "North"},
		{SaleID: 1, SaleDate: "2023-01-05", Quantity: 1, Price: 15.50, ProductID: 5, ProductName: "Coffee Beans 1kg", ProductCategory: "Groceries", CustomerID: 7, FirstName: "Bruno", LastName: "Reyes", SignupDate: "2022-12-18", Region: "South"},
		{SaleID: 2, SaleDate: "2023-02-14", Quantity: 4, Price: 35.00, ProductID: 4, ProductName: "Denim Jacket", ProductCategory: "Clothing", CustomerID: 42, FirstName: "Alice", LastName: "Santos", SignupDate: "2022-11-03", Region: "West"},
	}
}

func TestSaleSearch_FilterByCustomer(t *testing.T) {
	repo := newMockSaleRepo()
	repo.searchRows = searchFixtures()
	r := newSaleRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/sales/search?customer_id=42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Items []domain.SaleSearchRow `json:"items"`
		Count int                    `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Count != len(body.Items) {
		t.Fatalf("count %d != len(items) %d", body.Count, len(body.Items))
	}
	if len(body.Items) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(body.Items))
	}
	for _, item := range body.Items {
		if item.CustomerID != 42 {
			t.Fatalf("row for wrong customer: %+v", item)
		}
	}
	if body.Items[0].SaleID >= body.Items[1].SaleID {
		t.Fatalf("items not ascending by sale_id: %+v", body.Items)
	}
}

func TestSaleSearch_NoFiltersReturnsAll(t *testing.T) {
	repo := newMockSaleRepo()
	repo.searchRows = searchFixtures()
	r := newSaleRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/sales/search", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Count != 3 {
		t.Fatalf("expected all rows, got count %d", body.Count)
	}
	if repo.lastFilter != (domain.SaleSearchFilter{}) {
		t.Fatalf("expected empty filter, got %+v", repo.lastFilter)
	}
}

func TestSaleSearch_CombinesFiltersConjunctively(t *testing.T) {
	repo := newMockSaleRepo()
	repo.searchRows = searchFixtures()
	r := newSaleRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/sales/search?customer_id=42&category_name=electro&date_from=2023-01-01&date_to=2023-01-31", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Items []domain.SaleSearchRow `json:"items"`
		Count int                    `json:"count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Count != 1 || body.Items[0].SaleID != 3 {
		t.Fatalf("unexpected result: %+v", body)
	}
}

func TestSaleSearch_BadFilterValues(t *testing.T) {
	r := newSaleRouter(newMockSaleRepo())

	cases := []struct {
		query string
		want  string
	}{
		{"customer_id=abc", "customer_id must be an integer"},
		{"customer_id=0", "customer_id must be >= 1"},
		{"date_from=2023/01/01", "date_from must be a date string (YYYY-MM-DD)"},
		{"date_to=soon", "date_to must be a date string (YYYY-MM-DD)"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/sales/search?"+tc.query, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tc.query, rec.Code)
		}
		if msg := errorMessage(t, rec.Body.Bytes()); msg != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.query, tc.want, msg)
		}
	}
}

func TestSale_UpdateMissingIs404(t *testing.T) {
	r := newSaleRouter(newMockSaleRepo())

	payload := validSale()
	delete(payload, "sale_id")
	rec := putJSON(t, r, "/api/sales/999", payload)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
