package http

import (
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/order-desk/internal/application/analytics"
	"github.com/jhoicas/order-desk/internal/application/dto"
	"github.com/jhoicas/order-desk/internal/application/session"
	"github.com/jhoicas/order-desk/internal/application/transfer"
)

// maxImportSize límite del archivo de importación.
const maxImportSize = 16 << 20

// OrderHandler lista, alta, edición, borrado, estadísticas y transferencia de pedidos.
type OrderHandler struct {
	sessions *session.Service
	stats    *analytics.StatsUseCase
	transfer *transfer.Service
}

// NewOrderHandler construye el handler de pedidos.
func NewOrderHandler(sessions *session.Service, stats *analytics.StatsUseCase, tr *transfer.Service) *OrderHandler {
	return &OrderHandler{sessions: sessions, stats: stats, transfer: tr}
}

// List godoc
// @Summary      Pedidos visibles según el modo de vista
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.OrderListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.sessions.ListVisible(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar pedidos
// @Description  Coincidencia sin distinguir mayúsculas en ID, vendedor, destino, producto y encargado. Ignora el modo de vista.
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        q  query  string  false  "texto a buscar"
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/orders/search [get]
func (h *OrderHandler) Search(c *fiber.Ctx) error {
	out, err := h.sessions.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Enviar el formulario
// @Description  Crea un pedido nuevo, o actualiza el pedido en edición si hay uno.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.OrderRequest  true  "pedido"
// @Success      201   {object}  dto.SubmitResponse
// @Success      200   {object}  dto.SubmitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/orders/submit [post]
func (h *OrderHandler) Submit(c *fiber.Ctx) error {
	var in dto.OrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.sessions.Submit(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	status := fiber.StatusOK
	if out.Created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(out)
}

// Update godoc
// @Summary      Actualizar un pedido
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string            true  "ID del pedido"
// @Param        body  body  dto.OrderRequest  true  "campos editables"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.OrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.sessions.UpdateOrder(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pedidos
// @Description  Todo o nada: si algún ID no existe o tiene fecha pasada no se elimina ninguno.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.DeleteOrdersRequest  true  "ids"
// @Success      200   {object}  dto.DeleteOrdersResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/delete [post]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteOrdersRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.sessions.Delete(c.UserContext(), in.IDs)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Resumen de pedidos
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/orders/stats [get]
func (h *OrderHandler) Stats(c *fiber.Ctx) error {
	out, err := h.stats.GetSummary(c.UserContext(), GetUserName(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar todos los pedidos
// @Tags         orders
// @Produce      json
// @Produce      text/csv
// @Produce      application/pdf
// @Produce      application/xml
// @Security     BearerAuth
// @Param        format  query  string  false  "json (defecto) | csv | pdf | xml"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders/export [get]
func (h *OrderHandler) Export(c *fiber.Ctx) error {
	file, err := h.transfer.Export(c.UserContext(), c.Query("format"), GetUserName(c))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	return c.Send(file.Body)
}

// Import godoc
// @Summary      Importar pedidos
// @Description  Acepta el documento JSON exportado, en el cuerpo o como campo multipart "file". Solo agrega IDs nuevos.
// @Tags         orders
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  false  "documento exportado"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/orders/import [post]
func (h *OrderHandler) Import(c *fiber.Ctx) error {
	body, err := importBody(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: err.Error()})
	}
	added, err := h.transfer.Import(c.UserContext(), body)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ImportResponse{Added: added})
}

func importBody(c *fiber.Ctx) ([]byte, error) {
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return c.Body(), nil
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("campo file requerido: %w", err)
	}
	if fh.Size > maxImportSize {
		return nil, fmt.Errorf("archivo demasiado grande (%d bytes)", fh.Size)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("abrir archivo: %w", err)
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxImportSize))
}
