package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pro/internal/application/billing"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/usecase"
)

// InvoiceHandler maneja ventas y compras. Se monta dos veces: una instancia
// con kind=sale bajo /api/sales y otra con kind=purchase bajo /api/purchases.
type InvoiceHandler struct {
	uc   *usecase.InvoiceUseCase
	pdf  *billing.PDFUseCase
	kind string // "sale" | "purchase"
}

// NewInvoiceHandler construye el handler para un tipo de factura.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase, pdf *billing.PDFUseCase, kind string) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdf: pdf, kind: kind}
}

// belongsToKind verifica que la factura exista y sea del tipo que sirve este
// handler. Sin este chequeo una compra podría mutarse por la ruta de ventas.
// Devuelve (false, respuesta) si la operación no debe continuar.
func (h *InvoiceHandler) belongsToKind(c *fiber.Ctx, id string) (bool, error) {
	out, err := h.uc.GetByID(c.Context(), GetOwnerID(c), id)
	if err != nil {
		return false, respondError(c, err)
	}
	if out == nil || out.Kind != h.kind {
		return false, c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	}
	return true, nil
}

// Create godoc
// @Summary      Crear factura (venta o compra)
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "Cabecera e ítems"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.Create(c.Context(), GetOwnerID(c), h.kind, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener factura por ID con sus ítems
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la factura"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetOwnerID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil || out.Kind != h.kind {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar facturas con estadísticas
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Búsqueda por contraparte o ID"
// @Param        status  query  string  false  "paid | pending (vacío o all = todas)"
// @Param        range   query  string  false  "today | 7d | 30d"
// @Success      200  {object}  dto.InvoiceListResponse
// @Router       /api/sales [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var f dto.ListFilters
	if err := c.QueryParser(&f); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.List(c.Context(), GetOwnerID(c), h.kind, f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cabecera de factura
// @Tags         invoices
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la factura"
// @Param        body  body  dto.UpdateInvoiceRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [put]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	id := c.Params("id")
	if ok, resp := h.belongsToKind(c, id); !ok {
		return resp
	}
	out, err := h.uc.Update(c.Context(), GetOwnerID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar factura y sus ítems
// @Tags         invoices
// @Security     Bearer
// @Param        id  path  string  true  "ID de la factura"
// @Success      204
// @Router       /api/sales/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if ok, resp := h.belongsToKind(c, id); !ok {
		return resp
	}
	if err := h.uc.Delete(c.Context(), GetOwnerID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadPDF godoc
// @Summary      Descargar la factura en PDF
// @Tags         invoices
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if ok, resp := h.belongsToKind(c, id); !ok {
		return resp
	}
	pdfBytes, err := h.pdf.GenerateInvoicePDF(c.Context(), GetOwnerID(c), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="factura-%s.pdf"`, id))
	return c.Send(pdfBytes)
}
