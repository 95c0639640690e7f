package entity

import "fmt"

// ViewMode filtro activo de la lista de pedidos.
type ViewMode string

const (
	ViewUpcoming ViewMode = "upcoming"
	ViewAll      ViewMode = "all"
	ViewMine     ViewMode = "my"
	ViewMineAll  ViewMode = "my-all"
)

// ParseViewMode valida el modo de vista recibido del cliente.
func ParseViewMode(s string) (ViewMode, error) {
	switch m := ViewMode(s); m {
	case ViewUpcoming, ViewAll, ViewMine, ViewMineAll:
		return m, nil
	}
	return "", fmt.Errorf("modo de vista desconocido: %q", s)
}

// Session estado de una sesión autenticada. Se reinicia al cerrar sesión.
type Session struct {
	CurrentUser    *User
	EditingOrderID string
	ViewMode       ViewMode
	Draft          Selection
}

// NewSession devuelve la sesión vacía {sin usuario, sin edición, upcoming}.
func NewSession() Session {
	return Session{ViewMode: ViewUpcoming}
}

// Editing indica si hay un pedido en edición.
func (s Session) Editing() bool { return s.EditingOrderID != "" }
