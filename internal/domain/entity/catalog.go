package entity

// Catalog datos de referencia jerárquicos: encargado → vendedor → destino, y categoría → producto.
// Inmutable después de cargarse; los lectores nunca deben modificar los slices devueltos.
type Catalog struct {
	Categories         []string
	ManagerSellers     map[string][]string
	SellerDestinations map[string][]string // cada destino es un texto multilínea
	CategoryProducts   map[string][]string
}
