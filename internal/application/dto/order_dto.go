package dto

import "time"

// OrderRequest candidato a pedido enviado por el formulario.
type OrderRequest struct {
	Manager      string `json:"manager"`
	Seller       string `json:"seller"`
	Destination  string `json:"destination"`
	Category     string `json:"category"`
	Product      string `json:"product"`
	Quantity     int64  `json:"quantity"`
	UnitPrice    int64  `json:"unit_price"`
	DeliveryDate string `json:"delivery_date"` // AAAA-MM-DD
	DeliveryTime string `json:"delivery_time"` // HH:MM
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID               string     `json:"id"`
	Manager          string     `json:"manager"`
	Seller           string     `json:"seller"`
	Destination      string     `json:"destination"`
	DestinationLabel string     `json:"destination_label"`
	Category         string     `json:"category"`
	Product          string     `json:"product"`
	Quantity         int64      `json:"quantity"`
	UnitPrice        int64      `json:"unit_price"`
	TotalAmount      string     `json:"total_amount"`
	DeliveryDate     string     `json:"delivery_date"`
	DeliveryTime     string     `json:"delivery_time"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	CreatedBy        string     `json:"created_by"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
	UpdatedBy        string     `json:"updated_by,omitempty"`
	Editable         bool       `json:"editable"` // false si la fecha de entrega ya pasó
}

// OrderListResponse lista visible de pedidos.
type OrderListResponse struct {
	ViewMode string          `json:"view_mode,omitempty"`
	Query    string          `json:"query,omitempty"`
	Items    []OrderResponse `json:"items"`
	Total    int             `json:"total"`
}

// SubmitResponse resultado de POST /api/orders/submit.
type SubmitResponse struct {
	Created bool          `json:"created"` // false cuando se actualizó el pedido en edición
	Order   OrderResponse `json:"order"`
}

// DeleteOrdersRequest entrada de POST /api/orders/delete.
type DeleteOrdersRequest struct {
	IDs []string `json:"ids"`
}

// DeleteOrdersResponse cantidad eliminada.
type DeleteOrdersResponse struct {
	Deleted int `json:"deleted"`
}

// ImportResponse cantidad de pedidos agregados por la importación.
type ImportResponse struct {
	Added int `json:"added"`
}
