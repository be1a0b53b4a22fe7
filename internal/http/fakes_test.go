package http

import (
	"context"
	"errors"
	"sort"
	"strings"

	"hanz-sales/internal/domain"
)

var errSimulated = errors.New("simulated storage failure")

// Mocks de repositorio respaldados por mapas, con un error forzable para
// simular fallos de almacenamiento.

type mockCategoryRepo struct {
	items  map[int]domain.Category
	nextID int
	err    error
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{items: map[int]domain.Category{}, nextID: 1}
}

func (m *mockCategoryRepo) List(context.Context) ([]domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []domain.Category{}
	for _, c := range m.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CategoryID < out[j].CategoryID })
	return out, nil
}

func (m *mockCategoryRepo) Create(_ context.Context, name string) (domain.Category, error) {
	if m.err != nil {
		return domain.Category{}, m.err
	}
	for _, c := range m.items {
		if c.CategoryName == name {
			return domain.Category{}, domain.ErrConflict
		}
	}
	c := domain.Category{CategoryID: m.nextID, CategoryName: name}
	m.items[c.CategoryID] = c
	m.nextID++
	return c, nil
}

func (m *mockCategoryRepo) GetByID(_ context.Context, id int) (domain.Category, error) {
	if m.err != nil {
		return domain.Category{}, m.err
	}
	c, ok := m.items[id]
	if !ok {
		return domain.Category{}, domain.ErrNotFound
	}
	return c, nil
}

func (m *mockCategoryRepo) Update(_ context.Context, id int, name string) (domain.Category, error) {
	if m.err != nil {
		return domain.Category{}, m.err
	}
	if _, ok := m.items[id]; !ok {
		return domain.Category{}, domain.ErrNotFound
	}
	c := domain.Category{CategoryID: id, CategoryName: name}
	m.items[id] = c
	return c, nil
}

func (m *mockCategoryRepo) Delete(_ context.Context, id int) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type mockRegionRepo struct {
	items  map[int]domain.Region
	nextID int
}

func newMockRegionRepo() *mockRegionRepo {
	return &mockRegionRepo{items: map[int]domain.Region{}, nextID: 1}
}

func (m *mockRegionRepo) List(context.Context) ([]domain.Region, error) {
	out := []domain.Region{}
	for _, r := range m.items {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RegionID < out[j].RegionID })
	return out, nil
}

func (m *mockRegionRepo) Create(_ context.Context, name string) (domain.Region, error) {
	r := domain.Region{RegionID: m.nextID, RegionName: name}
	m.items[r.RegionID] = r
	m.nextID++
	return r, nil
}

func (m *mockRegionRepo) GetByID(_ context.Context, id int) (domain.Region, error) {
	r, ok := m.items[id]
	if !ok {
		return domain.Region{}, domain.ErrNotFound
	}
	return r, nil
}

func (m *mockRegionRepo) Update(_ context.Context, id int, name string) (domain.Region, error) {
	if _, ok := m.items[id]; !ok {
		return domain.Region{}, domain.ErrNotFound
	}
	r := domain.Region{RegionID: id, RegionName: name}
	m.items[id] = r
	return r, nil
}

func (m *mockRegionRepo) Delete(_ context.Context, id int) error {
	if _, ok := m.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type mockCustomerRepo struct {
	items       map[int]domain.Customer
	createCalls int
}

func newMockCustomerRepo() *mockCustomerRepo {
	return &mockCustomerRepo{items: map[int]domain.Customer{}}
}

func (m *mockCustomerRepo) List(context.Context) ([]domain.Customer, error) {
	out := []domain.Customer{}
	for _, c := range m.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CustomerID < out[j].CustomerID })
	return out, nil
}

func (m *mockCustomerRepo) Create(_ context.Context, c domain.Customer) error {
	m.createCalls++
	if _, ok := m.items[c.CustomerID]; ok {
		return domain.ErrConflict
	}
	m.items[c.CustomerID] = c
	return nil
}

func (m *mockCustomerRepo) GetByID(_ context.Context, id int) (domain.Customer, error) {
	c, ok := m.items[id]
	if !ok {
		return domain.Customer{}, domain.ErrNotFound
	}
	return c, nil
}

func (m *mockCustomerRepo) Update(_ context.Context, c domain.Customer) error {
	if _, ok := m.items[c.CustomerID]; !ok {
		return domain.ErrNotFound
	}
	m.items[c.CustomerID] = c
	return nil
}

func (m *mockCustomerRepo) Delete(_ context.Context, id int) error {
	if _, ok := m.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type mockProductRepo struct {
	items  map[int]domain.Product
	nextID int
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{items: map[int]domain.Product{}, nextID: 1}
}

func (m *mockProductRepo) List(context.Context) ([]domain.Product, error) {
	out := []domain.Product{}
	for _, p := range m.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (m *mockProductRepo) Create(_ context.Context, name string, categoryID int) (domain.Product, error) {
	p := domain.Product{ProductID: m.nextID, ProductName: name, CategoryID: categoryID}
	m.items[p.ProductID] = p
	m.nextID++
	return p, nil
}

func (m *mockProductRepo) GetByID(_ context.Context, id int) (domain.Product, error) {
	p, ok := m.items[id]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, nil
}

func (m *mockProductRepo) Update(_ context.Context, id int, name string, categoryID int) (domain.Product, error) {
	if _, ok := m.items[id]; !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	p := domain.Product{ProductID: id, ProductName: name, CategoryID: categoryID}
	m.items[id] = p
	return p, nil
}

func (m *mockProductRepo) Delete(_ context.Context, id int) error {
	if _, ok := m.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type mockSaleRepo struct {
	items      map[int]domain.Sale
	searchRows []domain.SaleSearchRow
	lastFilter domain.SaleSearchFilter
}

func newMockSaleRepo() *mockSaleRepo {
	return &mockSaleRepo{items: map[int]domain.Sale{}}
}

func (m *mockSaleRepo) List(context.Context) ([]domain.Sale, error) {
	out := []domain.Sale{}
	for _, s := range m.items {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SaleID < out[j].SaleID })
	return out, nil
}

func (m *mockSaleRepo) Create(_ context.Context, s domain.Sale) error {
	if _, ok := m.items[s.SaleID]; ok {
		return domain.ErrConflict
	}
	m.items[s.SaleID] = s
	return nil
}

func (m *mockSaleRepo) GetByID(_ context.Context, id int) (domain.Sale, error) {
	s, ok := m.items[id]
	if !ok {
		return domain.Sale{}, domain.ErrNotFound
	}
	return s, nil
}

func (m *mockSaleRepo) Update(_ context.Context, s domain.Sale) error {
	if _, ok := m.items[s.SaleID]; !ok {
		return domain.ErrNotFound
	}
	m.items[s.SaleID] = s
	return nil
}

func (m *mockSaleRepo) Delete(_ context.Context, id int) error {
	if _, ok := m.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

// Search evalua los filtros en memoria contra searchRows.
func (m *mockSaleRepo) Search(_ context.Context, f domain.SaleSearchFilter) ([]domain.SaleSearchRow, error) {
	m.lastFilter = f
	out := []domain.SaleSearchRow{}
	for _, row := range m.searchRows {
		if f.ProductName != "" && !containsFold(row.ProductName, f.ProductName) {
			continue
		}
		if f.CategoryName != "" && !containsFold(row.ProductCategory, f.CategoryName) {
			continue
		}
		if f.RegionName != "" && !containsFold(row.Region, f.RegionName) {
			continue
		}
		if f.CustomerID > 0 && row.CustomerID != f.CustomerID {
			continue
		}
		if f.DateFrom != "" && row.SaleDate < f.DateFrom {
			continue
		}
		if f.DateTo != "" && row.SaleDate > f.DateTo {
			continue
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SaleID < out[j].SaleID })
	return out, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
