package orders

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/order-desk/internal/domain/entity"
)

// Projected pedido visible con su elegibilidad de edición/borrado.
type Projected struct {
	Order    entity.Order
	Editable bool
}

// Project calcula la lista visible para el modo de vista y el usuario actual.
// "my" y "my-all" filtran por el campo Manager (asignado a mí), no por CreatedBy.
// Orden: CreatedAt descendente, estable (los empates conservan el orden de la colección).
func Project(list []entity.Order, mode entity.ViewMode, currentUser string, now time.Time) []Projected {
	out := make([]Projected, 0, len(list))
	for _, o := range list {
		past := IsPast(o, now)
		if !visible(o, past, mode, currentUser) {
			continue
		}
		out = append(out, Projected{Order: o, Editable: !past})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order.CreatedAt.After(out[j].Order.CreatedAt)
	})
	return out
}

func visible(o entity.Order, past bool, mode entity.ViewMode, currentUser string) bool {
	switch mode {
	case entity.ViewAll:
		return true
	case entity.ViewMine:
		return o.Manager == currentUser && !past
	case entity.ViewMineAll:
		return o.Manager == currentUser
	default: // upcoming
		return !past
	}
}

// Search incluye un pedido si algún campo contiene la consulta (sin distinguir mayúsculas).
// Ignora el modo de vista y conserva el orden natural de la colección.
func Search(list []entity.Order, query string, now time.Time) []Projected {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Projected, 0)
	for _, o := range list {
		if q != "" && !matches(o, q) {
			continue
		}
		out = append(out, Projected{Order: o, Editable: !IsPast(o, now)})
	}
	return out
}

func matches(o entity.Order, q string) bool {
	for _, f := range searchableFields(o) {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func searchableFields(o entity.Order) []string {
	fields := []string{
		o.ID, o.Manager, o.Seller, o.Destination, o.Category, o.Product,
		strconv.FormatInt(o.Quantity, 10), strconv.FormatInt(o.UnitPrice, 10),
		o.TotalAmount, o.DeliveryDate, o.DeliveryTime,
		o.CreatedAt.Format(time.RFC3339), o.CreatedBy, o.Status, o.UpdatedBy,
	}
	if o.UpdatedAt != nil {
		fields = append(fields, o.UpdatedAt.Format(time.RFC3339))
	}
	return fields
}
