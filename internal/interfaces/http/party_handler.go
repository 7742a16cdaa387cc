package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/usecase"
)

// PartyHandler maneja clientes y proveedores. Se monta dos veces: una
// instancia con kind=customer bajo /api/customers y otra con kind=vendor
// bajo /api/vendors.
type PartyHandler struct {
	uc   *usecase.PartyUseCase
	kind string // "customer" | "vendor"
}

// NewPartyHandler construye el handler para un tipo de contraparte.
func NewPartyHandler(uc *usecase.PartyUseCase, kind string) *PartyHandler {
	return &PartyHandler{uc: uc, kind: kind}
}

// belongsToKind verifica que la contraparte exista y sea del tipo que sirve
// este handler. Sin este chequeo un proveedor podría mutarse por la ruta de
// clientes. Devuelve (false, respuesta) si la operación no debe continuar.
func (h *PartyHandler) belongsToKind(c *fiber.Ctx, id string) (bool, error) {
	out, err := h.uc.GetByID(c.Context(), GetOwnerID(c), id)
	if err != nil {
		return false, respondError(c, err)
	}
	if out == nil || out.Kind != h.kind {
		return false, c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contraparte no encontrada"})
	}
	return true, nil
}

// Create godoc
// @Summary      Crear contraparte (cliente o proveedor)
// @Tags         parties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartyRequest  true  "Datos de la contraparte"
// @Success      201   {object}  dto.PartyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *PartyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartyRequest
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
// @Summary      Obtener contraparte con totales de su libro
// @Tags         parties
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la contraparte"
// @Success      200  {object}  dto.PartyDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *PartyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetOwnerID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil || out.Kind != h.kind {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contraparte no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar contrapartes
// @Tags         parties
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Búsqueda por nombre, email o teléfono"
// @Success      200  {object}  dto.PartyListResponse
// @Router       /api/customers [get]
func (h *PartyHandler) List(c *fiber.Ctx) error {
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
// @Summary      Actualizar contraparte
// @Tags         parties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la contraparte"
// @Param        body  body  dto.UpdatePartyRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.PartyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *PartyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePartyRequest
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
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contraparte no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar contraparte
// @Tags         parties
// @Security     Bearer
// @Param        id  path  string  true  "ID de la contraparte"
// @Success      204
// @Router       /api/customers/{id} [delete]
func (h *PartyHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if ok, resp := h.belongsToKind(c, id); !ok {
		return resp
	}
	if err := h.uc.Delete(c.Context(), GetOwnerID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
