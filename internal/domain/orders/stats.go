package orders

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/order-desk/internal/domain/entity"
)

// Stats resumen de la colección para el panel de inicio.
type Stats struct {
	Total          int
	Upcoming       int
	Today          int
	Mine           int // pedidos asignados al usuario (campo Manager), no pasados
	UpcomingAmount decimal.Decimal
	MineAmount     decimal.Decimal
}

// Summarize calcula Stats; los importes se recalculan desde cantidad × precio
// (TotalAmount es solo un texto de presentación).
func Summarize(list []entity.Order, currentUser string, now time.Time) Stats {
	s := Stats{UpcomingAmount: decimal.Zero, MineAmount: decimal.Zero}
	for _, o := range list {
		s.Total++
		if IsToday(o, now) {
			s.Today++
		}
		if IsPast(o, now) {
			continue
		}
		amount := Amount(o.Quantity, o.UnitPrice)
		s.Upcoming++
		s.UpcomingAmount = s.UpcomingAmount.Add(amount)
		if currentUser != "" && o.Manager == currentUser {
			s.Mine++
			s.MineAmount = s.MineAmount.Add(amount)
		}
	}
	return s
}
