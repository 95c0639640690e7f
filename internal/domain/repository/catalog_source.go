package repository

import (
	"context"

	"github.com/jhoicas/order-desk/internal/domain/entity"
)

// CatalogSource recursos estáticos: catálogo y directorio de usuarios.
// Ambos fallan con domain.ErrResourceUnavailable si no se pueden leer o parsear.
type CatalogSource interface {
	LoadCatalog(ctx context.Context) (*entity.Catalog, error)
	LoadUsers(ctx context.Context) ([]entity.User, error)
}
