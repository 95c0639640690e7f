package repository

import (
	"context"

	"github.com/jhoicas/order-desk/internal/domain/entity"
)

// OrderStore puerto del almacenamiento local durable de la colección de pedidos.
// Save debe ser atómico: o queda guardada la colección completa o retorna error
// y el contenido anterior sigue intacto.
type OrderStore interface {
	Load(ctx context.Context) ([]entity.Order, error)
	Save(ctx context.Context, orders []entity.Order) error
}
