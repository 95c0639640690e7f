package catalog

import "github.com/jhoicas/order-desk/internal/domain/entity"

// Option valor seleccionable con su etiqueta.
type Option struct {
	Value string
	Label string
}

// FormOptions conjuntos de opciones de cada nivel para una selección parcial.
// Los niveles dependientes quedan vacíos mientras su nivel padre no esté elegido.
type FormOptions struct {
	Managers     []string
	Sellers      []string
	Destinations []Option
	Categories   []string
	Products     []string
}

// OptionsFor calcula las opciones de todos los niveles para la selección dada.
func OptionsFor(c *entity.Catalog, sel entity.Selection) FormOptions {
	dests := DestinationsFor(c, sel.Seller)
	opts := make([]Option, 0, len(dests))
	for _, d := range dests {
		opts = append(opts, Option{Value: d, Label: DestinationLabel(d)})
	}
	return FormOptions{
		Managers:     Managers(c),
		Sellers:      SellersFor(c, sel.Manager),
		Destinations: opts,
		Categories:   Categories(c),
		Products:     ProductsFor(c, sel.Category),
	}
}

// Contains indica si v está entre las opciones válidas.
func Contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
