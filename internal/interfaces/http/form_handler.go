package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/order-desk/internal/application/dto"
	"github.com/jhoicas/order-desk/internal/application/session"
)

// FormHandler formulario en cascada de la sesión.
type FormHandler struct {
	sessions *session.Service
}

// NewFormHandler construye el handler del formulario.
func NewFormHandler(sessions *session.Service) *FormHandler {
	return &FormHandler{sessions: sessions}
}

// Get godoc
// @Summary      Estado del formulario
// @Tags         form
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.FormResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/form [get]
func (h *FormHandler) Get(c *fiber.Ctx) error {
	out, err := h.sessions.Form(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Select godoc
// @Summary      Elegir un valor en un nivel del formulario
// @Description  Elegir encargado limpia vendedor y destino; elegir vendedor limpia destino; elegir categoría limpia producto.
// @Tags         form
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SelectRequest  true  "level: manager | seller | destination | category | product"
// @Success      200   {object}  dto.FormResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/form/select [post]
func (h *FormHandler) Select(c *fiber.Ctx) error {
	var in dto.SelectRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.sessions.Select(c.UserContext(), in.Level, in.Value)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CancelEdit godoc
// @Summary      Salir del modo edición
// @Tags         form
// @Security     BearerAuth
// @Success      204
// @Router       /api/session/edit [delete]
func (h *FormHandler) CancelEdit(c *fiber.Ctx) error {
	if err := h.sessions.CancelEdit(); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// BeginEdit godoc
// @Summary      Cargar un pedido en el formulario para editarlo
// @Tags         form
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.FormResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/edit [post]
func (h *FormHandler) BeginEdit(c *fiber.Ctx) error {
	out, err := h.sessions.BeginEdit(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
