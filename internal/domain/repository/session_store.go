package repository

import (
	"context"

	"github.com/jhoicas/order-desk/internal/domain/entity"
)

// SessionStore slot durable con el usuario de la sesión actual (auto-login al reiniciar).
// LoadUser devuelve (nil, nil) si el slot está vacío.
type SessionStore interface {
	LoadUser(ctx context.Context) (*entity.User, error)
	SaveUser(ctx context.Context, user entity.User) error
	ClearUser(ctx context.Context) error
}
