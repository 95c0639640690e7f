// Package analytics contiene el resumen de pedidos del panel de inicio.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/order-desk/internal/application/dto"
	"github.com/jhoicas/order-desk/internal/domain/entity"
	rules "github.com/jhoicas/order-desk/internal/domain/orders"
)

// OrderReader fuente read-only de la colección.
type OrderReader interface {
	QueryAll(ctx context.Context) ([]entity.Order, error)
}

// StatsUseCase genera el resumen de la colección para el usuario actual.
//
// Los importes se suman con aritmética decimal a partir de cantidad × precio;
// TotalAmount de cada pedido es solo un texto de presentación.
type StatsUseCase struct {
	orders OrderReader
	now    func() time.Time
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(orders OrderReader, now func() time.Time) *StatsUseCase {
	if now == nil {
		now = time.Now
	}
	return &StatsUseCase{orders: orders, now: now}
}

// GetSummary construye el StatsResponse; currentUser define "mis pedidos" (campo encargado).
func (uc *StatsUseCase) GetSummary(ctx context.Context, currentUser string) (*dto.StatsResponse, error) {
	list, err := uc.orders.QueryAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: leer pedidos: %w", err)
	}
	now := uc.now()
	s := rules.Summarize(list, currentUser, now)

	return &dto.StatsResponse{
		TotalOrders:         s.Total,
		UpcomingOrders:      s.Upcoming,
		TodayDeliveries:     s.Today,
		MyOrders:            s.Mine,
		UpcomingAmount:      s.UpcomingAmount,
		MyAmount:            s.MineAmount,
		UpcomingAmountLabel: rules.FormatAmount(s.UpcomingAmount),
		DateLabel:           dateLabel(now),
	}, nil
}

// dateLabel devuelve una etiqueta legible de la fecha, ej: "2026년 10월 15일".
func dateLabel(t time.Time) string {
	return fmt.Sprintf("%d년 %d월 %d일", t.Year(), int(t.Month()), t.Day())
}
