package dto

import "github.com/shopspring/decimal"

// StatsResponse respuesta de GET /api/orders/stats.
type StatsResponse struct {
	TotalOrders     int             `json:"total_orders"`
	UpcomingOrders  int             `json:"upcoming_orders"`
	TodayDeliveries int             `json:"today_deliveries"`
	MyOrders        int             `json:"my_orders"` // asignados al usuario actual, no pasados
	UpcomingAmount  decimal.Decimal `json:"upcoming_amount"`
	MyAmount        decimal.Decimal `json:"my_amount"`

	UpcomingAmountLabel string `json:"upcoming_amount_label"` // ej: "1,500,000원"
	DateLabel           string `json:"date_label"`            // ej: "2026년 10월 15일"
}
