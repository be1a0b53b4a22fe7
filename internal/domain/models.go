package domain

// Category es una fila de la tabla categories.
type Category struct {
	CategoryID   int    `json:"category_id" xml:"category_id"`
	CategoryName string `json:"category_name" xml:"category_name"`
}

// Region es una fila de la tabla regions.
type Region struct {
	RegionID   int    `json:"region_id" xml:"region_id"`
	RegionName string `json:"region_name" xml:"region_name"`
}

// Customer es una fila de la tabla customers. SignupDate se normaliza
// a YYYY-MM-DD antes de salir del repositorio.
type Customer struct {
	CustomerID int    `json:"customer_id" xml:"customer_id"`
	FirstName  string `json:"first_name" xml:"first_name"`
	LastName   string `json:"last_name" xml:"last_name"`
	Email      string `json:"email" xml:"email"`
	SignupDate string `json:"signup_date" xml:"signup_date"`
}

// Product es una fila de products unida con el nombre de su categoria.
type Product struct {
	ProductID    int    `json:"product_id" xml:"product_id"`
	ProductName  string `json:"product_name" xml:"product_name"`
	CategoryID   int    `json:"category_id" xml:"category_id"`
	CategoryName string `json:"category_name" xml:"category_name"`
}

// Sale es una fila de la tabla de hechos sales_fact.
type Sale struct {
	SaleID     int     `json:"sale_id" xml:"sale_id"`
	ProductID  int     `json:"product_id" xml:"product_id"`
	SaleDate   string  `json:"sale_date" xml:"sale_date"`
	Quantity   int     `json:"quantity" xml:"quantity"`
	Price      float64 `json:"price" xml:"price"`
	CustomerID int     `json:"customer_id" xml:"customer_id"`
	RegionID   int     `json:"region_id" xml:"region_id"`
}

// SaleSearchRow es una fila de la vista sales_denorm usada por la busqueda.
type SaleSearchRow struct {
	SaleID          int     `json:"sale_id" xml:"sale_id"`
	SaleDate        string  `json:"sale_date" xml:"sale_date"`
	Quantity        int     `json:"quantity" xml:"quantity"`
	Price           float64 `json:"price" xml:"price"`
	ProductID       int     `json:"product_id" xml:"product_id"`
	ProductName     string  `json:"product_name" xml:"product_name"`
	ProductCategory string  `json:"product_category" xml:"product_category"`
	CustomerID      int     `json:"customer_id" xml:"customer_id"`
	FirstName       string  `json:"first_name" xml:"first_name"`
	LastName        string  `json:"last_name" xml:"last_name"`
	SignupDate      string  `json:"signup_date" xml:"signup_date"`
	Region          string  `json:"region" xml:"region"`
}

// SaleSearchFilter agrupa los filtros opcionales de /api/sales/search.
// Un campo en cero se omite de la consulta.
type SaleSearchFilter struct {
	ProductName  string
	CategoryName string
	RegionName   string
	CustomerID   int
	DateFrom     string
	DateTo       string
}
