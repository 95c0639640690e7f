package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/order-desk/internal/domain/repository"
)

var _ repository.ChangeFeed = (*ChangeFeed)(nil)

// ChangeFeed avisos de cambios del espejo vía LISTEN/NOTIFY. Mantiene una conexión
// del pool tomada mientras escucha.
type ChangeFeed struct {
	pool    *pgxpool.Pool
	channel string
}

// NewChangeFeed escucha ChangeChannel.
func NewChangeFeed(pool *pgxpool.Pool) *ChangeFeed {
	return &ChangeFeed{pool: pool, channel: ChangeChannel}
}

// Listen bloquea hasta que ctx se cancele o la conexión falle.
func (f *ChangeFeed) Listen(ctx context.Context, onChange func()) error {
	conn, err := f.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire conn: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{f.channel}.Sanitize()); err != nil {
		return fmt.Errorf("listen %s: %w", f.channel, err)
	}
	for {
		if _, err := conn.Conn().WaitForNotification(ctx); err != nil {
			return fmt.Errorf("wait notification: %w", err)
		}
		onChange()
	}
}
