package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/usecase"
)

// LedgerHandler maneja el libro de débitos/créditos (protegido).
type LedgerHandler struct {
	uc *usecase.LedgerUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *usecase.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar asiento
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLedgerEntryRequest  true  "Datos del asiento"
// @Success      201   {object}  dto.LedgerEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ledger [post]
func (h *LedgerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLedgerEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetOwnerID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar asientos con totales agregados
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        search       query  string  false  "Búsqueda por nombre, descripción o referencia"
// @Param        entity_type  query  string  false  "customer | vendor (vacío o all = todos)"
// @Param        type         query  string  false  "debit | credit (vacío o all = todos)"
// @Param        range        query  string  false  "today | 7d | 30d"
// @Success      200  {object}  dto.LedgerListResponse
// @Router       /api/ledger [get]
func (h *LedgerHandler) List(c *fiber.Ctx) error {
	var f dto.ListFilters
	if err := c.QueryParser(&f); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.List(c.Context(), GetOwnerID(c), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Statement godoc
// @Summary      Estado de cuenta de una contraparte
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        party_id  path  string  true  "ID de la contraparte"
// @Success      200  {object}  dto.StatementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledger/statement/{party_id} [get]
func (h *LedgerHandler) Statement(c *fiber.Ctx) error {
	out, err := h.uc.Statement(c.Context(), GetOwnerID(c), c.Params("party_id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contraparte no encontrada"})
	}
	return c.JSON(out)
}

// ExportStatement godoc
// @Summary      Exportar estado de cuenta (XML)
// @Tags         ledger
// @Security     Bearer
// @Produce      application/xml
// @Param        party_id  path   string  true   "ID de la contraparte"
// @Param        format    query  string  false  "Formato de salida"  default(xml)
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledger/statement/{party_id}/export [get]
func (h *LedgerHandler) ExportStatement(c *fiber.Ctx) error {
	format := c.Query("format", "xml")
	if format != "xml" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "formato no soportado: " + format})
	}
	partyID := c.Params("party_id")
	out, err := h.uc.ExportStatement(c.Context(), GetOwnerID(c), partyID)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contraparte no encontrada"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXML)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="estado-cuenta-%s.xml"`, partyID))
	return c.Send(out)
}

// Delete godoc
// @Summary      Eliminar asiento
// @Tags         ledger
// @Security     Bearer
// @Param        id  path  string  true  "ID del asiento"
// @Success      204
// @Router       /api/ledger/{id} [delete]
func (h *LedgerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetOwnerID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
