// Package validate contiene las reglas de validación por entidad.
//
// Cada validador es puro y falla rápido: devuelve la PRIMERA regla violada
// (una sola razón por llamada) o nil si la entidad es válida. No acumula
// errores.
package validate

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pro/internal/domain/entity"
)

// RuleError identifica la regla violada y el campo que la violó.
type RuleError struct {
	Field   string
	Message string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Patrón estándar de dirección de correo (suficiente para captura de datos;
// la verificación real es el correo de confirmación).
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Product valida un producto: nombre requerido, precio > 0,
// cantidad y stock mínimo >= 0.
func Product(p *entity.Product) *RuleError {
	if p.Name == "" {
		return &RuleError{Field: "name", Message: "el nombre es requerido"}
	}
	if !p.Price.GreaterThan(decimal.Zero) {
		return &RuleError{Field: "price", Message: "el precio debe ser mayor que 0"}
	}
	if p.Quantity < 0 {
		return &RuleError{Field: "quantity", Message: "la cantidad no puede ser negativa"}
	}
	if p.MinStock < 0 {
		return &RuleError{Field: "min_stock", Message: "el stock mínimo no puede ser negativo"}
	}
	return nil
}

// Invoice valida la cabecera de una factura: contraparte requerida,
// subtotal e impuesto >= 0, estado conocido.
func Invoice(inv *entity.Invoice) *RuleError {
	if inv.CounterpartyName == "" {
		return &RuleError{Field: "counterparty_name", Message: "el nombre de la contraparte es requerido"}
	}
	if inv.Kind != entity.InvoiceKindSale && inv.Kind != entity.InvoiceKindPurchase {
		return &RuleError{Field: "kind", Message: "tipo de factura desconocido"}
	}
	if inv.Subtotal.IsNegative() {
		return &RuleError{Field: "subtotal", Message: "el subtotal no puede ser negativo"}
	}
	if inv.Tax.IsNegative() {
		return &RuleError{Field: "tax", Message: "el impuesto no puede ser negativo"}
	}
	if inv.Status != entity.InvoiceStatusPaid && inv.Status != entity.InvoiceStatusPending {
		return &RuleError{Field: "status", Message: "estado de pago desconocido"}
	}
	return nil
}

// InvoiceItem valida una línea: producto requerido, cantidad y precio > 0.
func InvoiceItem(item *entity.InvoiceItem) *RuleError {
	if item.ProductName == "" {
		return &RuleError{Field: "product_name", Message: "el producto es requerido"}
	}
	if !item.Quantity.GreaterThan(decimal.Zero) {
		return &RuleError{Field: "quantity", Message: "la cantidad debe ser mayor que 0"}
	}
	if !item.Price.GreaterThan(decimal.Zero) {
		return &RuleError{Field: "price", Message: "el precio debe ser mayor que 0"}
	}
	return nil
}

// LedgerEntry valida un asiento: contraparte requerida, tipos conocidos,
// monto > 0.
func LedgerEntry(e *entity.LedgerEntry) *RuleError {
	if e.EntityName == "" {
		return &RuleError{Field: "entity_name", Message: "el nombre de la contraparte es requerido"}
	}
	if e.EntityType != entity.LedgerEntityCustomer && e.EntityType != entity.LedgerEntityVendor {
		return &RuleError{Field: "entity_type", Message: "tipo de contraparte desconocido"}
	}
	if e.TransactionType != entity.LedgerTypeDebit && e.TransactionType != entity.LedgerTypeCredit {
		return &RuleError{Field: "transaction_type", Message: "tipo de movimiento desconocido"}
	}
	if !e.Amount.GreaterThan(decimal.Zero) {
		return &RuleError{Field: "amount", Message: "el monto debe ser mayor que 0"}
	}
	return nil
}

// Party valida un cliente o proveedor: nombre requerido, tipo conocido,
// email con formato válido si está presente.
func Party(p *entity.Party) *RuleError {
	if p.Name == "" {
		return &RuleError{Field: "name", Message: "el nombre es requerido"}
	}
	if p.Kind != entity.PartyKindCustomer && p.Kind != entity.PartyKindVendor {
		return &RuleError{Field: "kind", Message: "tipo de contraparte desconocido"}
	}
	if p.Email != "" && !emailPattern.MatchString(p.Email) {
		return &RuleError{Field: "email", Message: "formato de email inválido"}
	}
	return nil
}
