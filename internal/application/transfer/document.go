// Package transfer exporta la colección de pedidos a archivo (JSON, CSV, PDF, XML)
// e importa documentos JSON fusionándolos por ID.
package transfer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/order-desk/internal/domain"
	"github.com/jhoicas/order-desk/internal/domain/entity"
	rules "github.com/jhoicas/order-desk/internal/domain/orders"
)

// Document formato de intercambio: metadatos de exportación + colección completa.
type Document struct {
	ExportedAt time.Time      `json:"exportedAt"`
	ExportedBy string         `json:"exportedBy"`
	Orders     []entity.Order `json:"orders"`
}

// ParseDocument decodifica un documento de importación. Exige el campo "orders" como
// arreglo, un id en cada pedido y que cada pedido pase la validación del formulario
// (campos, fecha y hora, cantidad y precio); si algo falla no se importa nada.
func ParseDocument(body []byte) ([]entity.Order, error) {
	var raw struct {
		Orders *[]entity.Order `json:"orders"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedImport, err)
	}
	if raw.Orders == nil {
		return nil, fmt.Errorf("%w: falta el campo orders", domain.ErrMalformedImport)
	}
	for i, o := range *raw.Orders {
		if o.ID == "" {
			return nil, fmt.Errorf("%w: el pedido %d no tiene id", domain.ErrMalformedImport, i)
		}
		if err := checkImported(o); err != nil {
			return nil, err
		}
	}
	return *raw.Orders, nil
}

// checkImported aplica a un pedido importado las mismas reglas que a uno del formulario.
func checkImported(o entity.Order) error {
	if err := rules.Validate(o.Draft()); err != nil {
		return fmt.Errorf("%w: pedido %s: %v", domain.ErrMalformedImport, o.ID, err)
	}
	return nil
}
