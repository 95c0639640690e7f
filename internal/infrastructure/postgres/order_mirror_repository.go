package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/order-desk/internal/domain/entity"
	rules "github.com/jhoicas/order-desk/internal/domain/orders"
	"github.com/jhoicas/order-desk/internal/domain/repository"
)

// ChangeChannel canal de NOTIFY que avisa cambios en order_mirror.
const ChangeChannel = "order_mirror_changed"

var _ repository.RemoteOrderStore = (*OrderMirrorRepo)(nil)

// Querier subconjunto común de pool y tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// OrderMirrorRepo espejo remoto de pedidos en la tabla order_mirror, una fila por ID.
// Cada escritura emite pg_notify en la misma transacción.
type OrderMirrorRepo struct {
	pool *pgxpool.Pool
}

// NewOrderMirrorRepository construye el adaptador.
func NewOrderMirrorRepository(pool *pgxpool.Pool) *OrderMirrorRepo {
	return &OrderMirrorRepo{pool: pool}
}

const schemaSQL = `
	CREATE TABLE IF NOT EXISTS order_mirror (
		id            TEXT PRIMARY KEY,
		manager       TEXT NOT NULL,
		seller        TEXT NOT NULL,
		destination   TEXT NOT NULL,
		category      TEXT NOT NULL,
		product       TEXT NOT NULL,
		quantity      BIGINT NOT NULL,
		unit_price    BIGINT NOT NULL,
		amount        NUMERIC(20,0) NOT NULL,
		total_amount  TEXT NOT NULL,
		delivery_date DATE NOT NULL,
		delivery_time TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL,
		created_by    TEXT NOT NULL,
		status        TEXT NOT NULL DEFAULT 'pending',
		updated_at    TIMESTAMPTZ,
		updated_by    TEXT NOT NULL DEFAULT ''
	)`

// EnsureSchema crea la tabla si no existe.
func (r *OrderMirrorRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear tabla order_mirror: %w", err)
	}
	return nil
}

// Upsert inserta o reemplaza el pedido por ID.
func (r *OrderMirrorRepo) Upsert(ctx context.Context, o entity.Order) error {
	query := `
		INSERT INTO order_mirror (id, manager, seller, destination, category, product,
			quantity, unit_price, amount, total_amount, delivery_date, delivery_time,
			created_at, created_by, status, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (id) DO UPDATE SET
			manager = EXCLUDED.manager,
			seller = EXCLUDED.seller,
			destination = EXCLUDED.destination,
			category = EXCLUDED.category,
			product = EXCLUDED.product,
			quantity = EXCLUDED.quantity,
			unit_price = EXCLUDED.unit_price,
			amount = EXCLUDED.amount,
			total_amount = EXCLUDED.total_amount,
			delivery_date = EXCLUDED.delivery_date,
			delivery_time = EXCLUDED.delivery_time,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at,
			updated_by = EXCLUDED.updated_by`
	deliveryDate, err := time.Parse(entity.DateLayout, o.DeliveryDate)
	if err != nil {
		return fmt.Errorf("pedido %s: fecha de entrega inválida: %w", o.ID, err)
	}
	return r.inTx(ctx, o.ID, func(q Querier) error {
		_, err := q.Exec(ctx, query,
			o.ID, o.Manager, o.Seller, o.Destination, o.Category, o.Product,
			o.Quantity, o.UnitPrice, rules.Amount(o.Quantity, o.UnitPrice), o.TotalAmount,
			deliveryDate, o.DeliveryTime, o.CreatedAt, o.CreatedBy, o.Status, o.UpdatedAt, o.UpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("upsert order_mirror: %w", err)
		}
		return nil
	})
}

// Delete elimina los IDs indicados; los que no existen se ignoran.
func (r *OrderMirrorRepo) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.inTx(ctx, ids[0], func(q Querier) error {
		if _, err := q.Exec(ctx, `DELETE FROM order_mirror WHERE id = ANY($1)`, ids); err != nil {
			return fmt.Errorf("delete order_mirror: %w", err)
		}
		return nil
	})
}

// List devuelve el contenido completo del espejo, más nuevos primero.
func (r *OrderMirrorRepo) List(ctx context.Context) ([]entity.Order, error) {
	query := `
		SELECT id, manager, seller, destination, category, product, quantity, unit_price,
			amount, total_amount, delivery_date, delivery_time, created_at, created_by, status,
			updated_at, updated_by
		FROM order_mirror
		ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list order_mirror: %w", err)
	}
	defer rows.Close()

	var out []entity.Order
	for rows.Next() {
		var (
			o            entity.Order
			amount       decimal.Decimal
			deliveryDate time.Time
		)
		if err := rows.Scan(
			&o.ID, &o.Manager, &o.Seller, &o.Destination, &o.Category, &o.Product,
			&o.Quantity, &o.UnitPrice, &amount, &o.TotalAmount, &deliveryDate, &o.DeliveryTime,
			&o.CreatedAt, &o.CreatedBy, &o.Status, &o.UpdatedAt, &o.UpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan order_mirror: %w", err)
		}
		o.DeliveryDate = deliveryDate.Format(entity.DateLayout)
		if o.TotalAmount == "" {
			o.TotalAmount = rules.FormatAmount(amount)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows order_mirror: %w", err)
	}
	return out, nil
}

// inTx ejecuta fn y el NOTIFY dentro de una transacción: el aviso solo sale si hubo commit.
func (r *OrderMirrorRepo) inTx(ctx context.Context, payload string, fn func(q Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `SELECT pg_notify($1, $2)`, ChangeChannel, payload); err != nil {
		return fmt.Errorf("notify: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
