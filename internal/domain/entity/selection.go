package entity

import "fmt"

// SelectionLevel nivel del formulario en cascada.
type SelectionLevel string

const (
	LevelManager     SelectionLevel = "manager"
	LevelSeller      SelectionLevel = "seller"
	LevelDestination SelectionLevel = "destination"
	LevelCategory    SelectionLevel = "category"
	LevelProduct     SelectionLevel = "product"
)

// Selection selección parcial del formulario. Cada setter reinicia los niveles dependientes,
// también cuando el valor se asigna por programa (pre-carga en edición).
type Selection struct {
	Manager     string `json:"manager"`
	Seller      string `json:"seller"`
	Destination string `json:"destination"`
	Category    string `json:"category"`
	Product     string `json:"product"`
}

// SetManager asigna el encargado y limpia vendedor y destino.
func (s *Selection) SetManager(v string) {
	s.Manager = v
	s.SetSeller("")
}

// SetSeller asigna el vendedor y limpia el destino.
func (s *Selection) SetSeller(v string) {
	s.Seller = v
	s.SetDestination("")
}

func (s *Selection) SetDestination(v string) { s.Destination = v }

// SetCategory asigna la categoría y limpia el producto.
func (s *Selection) SetCategory(v string) {
	s.Category = v
	s.SetProduct("")
}

func (s *Selection) SetProduct(v string) { s.Product = v }

// Set asigna el valor en el nivel indicado.
func (s *Selection) Set(level SelectionLevel, v string) error {
	switch level {
	case LevelManager:
		s.SetManager(v)
	case LevelSeller:
		s.SetSeller(v)
	case LevelDestination:
		s.SetDestination(v)
	case LevelCategory:
		s.SetCategory(v)
	case LevelProduct:
		s.SetProduct(v)
	default:
		return fmt.Errorf("nivel de selección desconocido: %q", level)
	}
	return nil
}

// Prefill carga la selección desde un pedido existente respetando la cascada.
func (s *Selection) Prefill(d OrderDraft) {
	s.SetManager(d.Manager)
	s.SetSeller(d.Seller)
	s.SetDestination(d.Destination)
	s.SetCategory(d.Category)
	s.SetProduct(d.Product)
}
