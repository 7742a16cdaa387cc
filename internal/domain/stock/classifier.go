// Package stock clasifica el estado de inventario de un producto a partir
// de su cantidad y su umbral mínimo (servicio de dominio puro).
package stock

// Status estado derivado de stock de un producto.
type Status string

// Partición estricta de tres estados: todo par (quantity, minStock) con
// quantity >= 0 cae en exactamente uno.
const (
	StatusOutOfStock Status = "out_of_stock"
	StatusLowStock   Status = "low_stock"
	StatusInStock    Status = "in_stock"
)

// Classify devuelve el estado de stock.
// quantity == 0 tiene precedencia sobre el umbral: un producto agotado es
// OutOfStock aunque minStock sea 0.
func Classify(quantity, minStock int64) Status {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity <= minStock:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// Summary conteo de productos por estado, para el dashboard.
type Summary struct {
	InStock    int `json:"in_stock"`
	LowStock   int `json:"low_stock"`
	OutOfStock int `json:"out_of_stock"`
}

// Count acumula el resumen de estados para un conjunto de pares
// (quantity, minStock). Recorre la colección completa en cada llamada.
func Count(pairs [][2]int64) Summary {
	var s Summary
	for _, p := range pairs {
		switch Classify(p[0], p[1]) {
		case StatusOutOfStock:
			s.OutOfStock++
		case StatusLowStock:
			s.LowStock++
		default:
			s.InStock++
		}
	}
	return s
}
