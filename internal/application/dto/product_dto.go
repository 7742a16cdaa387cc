package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pro/internal/domain/stock"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Category string          `json:"category"`
	Quantity int64           `json:"quantity" validate:"min=0"`
	MinStock int64           `json:"min_stock" validate:"min=0"`
	Price    decimal.Decimal `json:"price"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category *string          `json:"category"`
	Quantity *int64           `json:"quantity" validate:"omitempty,min=0"`
	MinStock *int64           `json:"min_stock" validate:"omitempty,min=0"`
	Price    *decimal.Decimal `json:"price"`
}

// ProductResponse salida de un producto. StockStatus es derivado
// (quantity vs min_stock), jamás se persiste.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Quantity    int64           `json:"quantity"`
	MinStock    int64           `json:"min_stock"`
	Price       decimal.Decimal `json:"price"`
	StockStatus stock.Status    `json:"stock_status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse listado filtrado de productos más el resumen de
// estados de stock del conjunto filtrado.
type ProductListResponse struct {
	Items   []ProductResponse `json:"items"`
	Summary stock.Summary     `json:"summary"`
}
