package dto

// OptionDTO opción de un selector; en destinos Label es solo la primera línea.
type OptionDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CatalogResponse salida de GET /api/catalog.
type CatalogResponse struct {
	Categories []string       `json:"categories"`
	Managers   []string       `json:"managers"`
	Users      []UserResponse `json:"users"`
}

// OptionsResponse opciones de un nivel dependiente.
type OptionsResponse struct {
	Items []OptionDTO `json:"items"`
}

// SelectRequest entrada de POST /api/form/select.
type SelectRequest struct {
	Level string `json:"level"`
	Value string `json:"value"`
}

// SelectionDTO selección parcial del formulario.
type SelectionDTO struct {
	Manager     string `json:"manager"`
	Seller      string `json:"seller"`
	Destination string `json:"destination"`
	Category    string `json:"category"`
	Product     string `json:"product"`
}

// FormOptionsDTO opciones válidas para la selección actual.
type FormOptionsDTO struct {
	Managers     []OptionDTO `json:"managers"`
	Sellers      []OptionDTO `json:"sellers"`
	Destinations []OptionDTO `json:"destinations"`
	Categories   []OptionDTO `json:"categories"`
	Products     []OptionDTO `json:"products"`
}

// FormResponse estado del formulario de alta/edición.
type FormResponse struct {
	Selection      SelectionDTO   `json:"selection"`
	Options        FormOptionsDTO `json:"options"`
	EditingOrderID string         `json:"editing_order_id,omitempty"`
	Editing        *OrderResponse `json:"editing,omitempty"` // pedido en edición (cantidad, precio, fecha, hora)
}
