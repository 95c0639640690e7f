package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/order-desk/internal/application/dto"
	"github.com/jhoicas/order-desk/internal/domain/catalog"
	"github.com/jhoicas/order-desk/internal/domain/entity"
)

// CatalogHandler consultas de solo lectura sobre el catálogo cargado al arrancar.
type CatalogHandler struct {
	catalog *entity.Catalog
	users   []entity.User
}

// NewCatalogHandler construye el handler de catálogo.
func NewCatalogHandler(c *entity.Catalog, users []entity.User) *CatalogHandler {
	return &CatalogHandler{catalog: c, users: users}
}

// Get godoc
// @Summary      Catálogo base y usuarios del login
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CatalogResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	users := make([]dto.UserResponse, 0, len(h.users))
	for _, u := range h.users {
		users = append(users, dto.UserResponse{Name: u.Name, Role: u.Role})
	}
	return c.JSON(dto.CatalogResponse{
		Categories: catalog.Categories(h.catalog),
		Managers:   catalog.Managers(h.catalog),
		Users:      users,
	})
}

// Sellers godoc
// @Summary      Vendedores de un encargado
// @Tags         catalog
// @Produce      json
// @Param        manager  query  string  true  "encargado"
// @Success      200  {object}  dto.OptionsResponse
// @Router       /api/catalog/sellers [get]
func (h *CatalogHandler) Sellers(c *fiber.Ctx) error {
	return c.JSON(dto.OptionsResponse{Items: plain(catalog.SellersFor(h.catalog, c.Query("manager")))})
}

// Destinations godoc
// @Summary      Destinos de un vendedor
// @Description  Label es la primera línea del destino.
// @Tags         catalog
// @Produce      json
// @Param        seller  query  string  true  "vendedor"
// @Success      200  {object}  dto.OptionsResponse
// @Router       /api/catalog/destinations [get]
func (h *CatalogHandler) Destinations(c *fiber.Ctx) error {
	dests := catalog.DestinationsFor(h.catalog, c.Query("seller"))
	items := make([]dto.OptionDTO, 0, len(dests))
	for _, d := range dests {
		items = append(items, dto.OptionDTO{Value: d, Label: catalog.DestinationLabel(d)})
	}
	return c.JSON(dto.OptionsResponse{Items: items})
}

// Products godoc
// @Summary      Productos de una categoría
// @Tags         catalog
// @Produce      json
// @Param        category  query  string  true  "categoría"
// @Success      200  {object}  dto.OptionsResponse
// @Router       /api/catalog/products [get]
func (h *CatalogHandler) Products(c *fiber.Ctx) error {
	return c.JSON(dto.OptionsResponse{Items: plain(catalog.ProductsFor(h.catalog, c.Query("category")))})
}

func plain(values []string) []dto.OptionDTO {
	out := make([]dto.OptionDTO, 0, len(values))
	for _, v := range values {
		out = append(out, dto.OptionDTO{Value: v, Label: v})
	}
	return out
}
