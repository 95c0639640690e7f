// Package catalog deriva las opciones válidas del formulario en cascada a partir del
// catálogo y de la selección parcial. Todas las funciones son puras y devuelven copias.
package catalog

import (
	"sort"
	"strings"

	"github.com/jhoicas/order-desk/internal/domain/entity"
)

// Managers lista los encargados del catálogo en orden estable.
func Managers(c *entity.Catalog) []string {
	if c == nil {
		return []string{}
	}
	out := make([]string, 0, len(c.ManagerSellers))
	for m := range c.ManagerSellers {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// SellersFor vendedores del encargado; vacío si el encargado no existe.
func SellersFor(c *entity.Catalog, manager string) []string {
	if c == nil || manager == "" {
		return []string{}
	}
	return clone(c.ManagerSellers[manager])
}

// DestinationsFor destinos del vendedor; vacío si el vendedor no existe.
func DestinationsFor(c *entity.Catalog, seller string) []string {
	if c == nil || seller == "" {
		return []string{}
	}
	return clone(c.SellerDestinations[seller])
}

// ProductsFor productos de la categoría; vacío si la categoría no existe.
func ProductsFor(c *entity.Catalog, category string) []string {
	if c == nil || category == "" {
		return []string{}
	}
	return clone(c.CategoryProducts[category])
}

// Categories categorías en el orden del recurso.
func Categories(c *entity.Catalog) []string {
	if c == nil {
		return []string{}
	}
	return clone(c.Categories)
}

// DestinationLabel primera línea del destino (texto de la opción).
func DestinationLabel(destination string) string {
	first, _, _ := strings.Cut(destination, "\n")
	return strings.TrimSpace(first)
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
