package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// El estado de stock (disponible/bajo/agotado) es derivado de Quantity y
// MinStock; nunca se persiste (ver domain/stock).
type Product struct {
	ID        string
	OwnerID   string
	Name      string
	Category  string
	Quantity  int64           // unidades en stock, >= 0
	MinStock  int64           // umbral de stock bajo, >= 0
	Price     decimal.Decimal // precio de venta, > 0
	CreatedAt time.Time
	UpdatedAt time.Time
}
