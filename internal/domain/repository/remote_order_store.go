package repository

import (
	"context"

	"github.com/jhoicas/order-desk/internal/domain/entity"
)

// RemoteOrderStore espejo remoto opcional: colección de pedidos indexada por ID.
type RemoteOrderStore interface {
	Upsert(ctx context.Context, order entity.Order) error
	Delete(ctx context.Context, ids []string) error
	List(ctx context.Context) ([]entity.Order, error)
}

// ChangeFeed notifica cambios en el espejo remoto. Listen bloquea hasta que ctx
// se cancela o la conexión falla; onChange no recibe datos, solo el aviso.
type ChangeFeed interface {
	Listen(ctx context.Context, onChange func()) error
}
