package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/order-desk/internal/application/dto"
	"github.com/jhoicas/order-desk/internal/application/session"
)

// AuthHandler login por nombre/PIN y estado de la sesión.
type AuthHandler struct {
	sessions *session.Service
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(sessions *session.Service) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "name, pin"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Name == "" || in.PIN == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION_FAILED", Message: "name y pin son requeridos"})
	}
	out, err := h.sessions.Login(c.UserContext(), in.Name, in.PIN)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Borra el auto-login guardado; los tokens emitidos dejan de ser aceptados.
// @Tags         auth
// @Success      204
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Logout(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Restore godoc
// @Summary      Sesión actual (auto-login)
// @Description  Devuelve un token para la sesión abierta o la recuperada del almacenamiento local.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.LoginResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/session [get]
func (h *AuthHandler) Restore(c *fiber.Ctx) error {
	out, err := h.sessions.Restore(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetViewMode godoc
// @Summary      Cambiar modo de vista de la lista
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ViewModeRequest  true  "upcoming | all | my | my-all"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/session/view [put]
func (h *AuthHandler) SetViewMode(c *fiber.Ctx) error {
	var in dto.ViewModeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.sessions.SetViewMode(in.Mode)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
