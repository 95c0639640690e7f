package entity

import "time"

// OrderStatusPending es el único estado modelado; "pasado" se calcula sobre DeliveryDate.
const OrderStatusPending = "pending"

// Formatos de DeliveryDate y DeliveryTime.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Order pedido de entrega. Los tags JSON definen el formato del documento
// (almacenamiento local, exportación e importación).
type Order struct {
	ID           string     `json:"id"`
	Manager      string     `json:"manager"`
	Seller       string     `json:"seller"`
	Destination  string     `json:"destination"`
	Category     string     `json:"category"`
	Product      string     `json:"product"`
	Quantity     int64      `json:"quantity"`
	UnitPrice    int64      `json:"unitPrice"`
	TotalAmount  string     `json:"totalAmount"` // snapshot formateado al guardar, ej. "500,000원"
	DeliveryDate string     `json:"deliveryDate"`
	DeliveryTime string     `json:"deliveryTime"`
	CreatedAt    time.Time  `json:"createdAt"`
	CreatedBy    string     `json:"createdBy"`
	Status       string     `json:"status"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy    string     `json:"updatedBy,omitempty"`
}

// OrderDraft candidato a pedido tal como lo arma el formulario.
type OrderDraft struct {
	Manager      string
	Seller       string
	Destination  string
	Category     string
	Product      string
	Quantity     int64
	UnitPrice    int64
	DeliveryDate string
	DeliveryTime string
}

// Draft devuelve los campos editables del pedido (pre-carga del formulario en edición).
func (o Order) Draft() OrderDraft {
	return OrderDraft{
		Manager:      o.Manager,
		Seller:       o.Seller,
		Destination:  o.Destination,
		Category:     o.Category,
		Product:      o.Product,
		Quantity:     o.Quantity,
		UnitPrice:    o.UnitPrice,
		DeliveryDate: o.DeliveryDate,
		DeliveryTime: o.DeliveryTime,
	}
}
