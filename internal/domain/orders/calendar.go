package orders

import (
	"time"

	"github.com/jhoicas/order-desk/internal/domain/entity"
)

// Today fecha de calendario de now en su propia zona horaria.
func Today(now time.Time) string {
	return now.Format(entity.DateLayout)
}

// IsPast indica si la fecha de entrega es estrictamente anterior a la fecha de now.
// Un pedido pasado es inmutable: no se edita ni se elimina.
func IsPast(o entity.Order, now time.Time) bool {
	d, err := time.Parse(entity.DateLayout, o.DeliveryDate)
	if err != nil {
		return false
	}
	return d.Format(entity.DateLayout) < Today(now)
}

// IsToday indica si la entrega es hoy.
func IsToday(o entity.Order, now time.Time) bool {
	return o.DeliveryDate == Today(now)
}
