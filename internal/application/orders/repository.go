// Package orders es el dueño único de la colección de pedidos en memoria.
//
// Todas las operaciones pasan por una sola goroutine (cola de peticiones), así que
// las llamadas concurrentes se encolan y nunca se intercalan. Cada mutación arma la
// colección nueva, la persiste completa y solo entonces la reemplaza: si el guardado
// falla, la colección en memoria queda como estaba y se retorna domain.ErrPersistence.
package orders

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jhoicas/order-desk/internal/domain"
	"github.com/jhoicas/order-desk/internal/domain/entity"
	rules "github.com/jhoicas/order-desk/internal/domain/orders"
	"github.com/jhoicas/order-desk/internal/domain/repository"
	"github.com/jhoicas/order-desk/pkg/logger"
)

// ErrClosed el repositorio ya no atiende peticiones.
var ErrClosed = errors.New("repositorio de pedidos detenido")

// maxIDAttempts reintentos de NewID ante una colisión (prácticamente imposible).
const maxIDAttempts = 8

type request struct {
	ctx  context.Context
	fn   func(ctx context.Context) error
	done chan error
}

// Repository colección de pedidos con persistencia local-first.
type Repository struct {
	store repository.OrderStore
	log   *logger.Logger
	now   func() time.Time

	requests chan request
	stopped  chan struct{}
	started  atomic.Bool

	// list solo se toca desde la goroutine del loop.
	list []entity.Order

	subsMu sync.Mutex
	subs   []chan Event
	closed bool
}

// Option configura el Repository.
type Option func(*Repository)

// WithClock reemplaza el reloj (zona horaria configurada, tests).
func WithClock(now func() time.Time) Option {
	return func(r *Repository) { r.now = now }
}

// NewRepository construye el repositorio; no atiende peticiones hasta Start.
func NewRepository(store repository.OrderStore, log *logger.Logger, opts ...Option) *Repository {
	if log == nil {
		log = logger.Nop()
	}
	r := &Repository{
		store:    store,
		log:      log.Component("orders"),
		now:      time.Now,
		requests: make(chan request),
		stopped:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start carga la colección desde el almacenamiento local y lanza la goroutine dueña.
// Un almacenamiento ilegible es un error de arranque: no se sigue con una colección
// vacía que luego pisaría el archivo.
func (r *Repository) Start(ctx context.Context) error {
	if !r.started.CompareAndSwap(false, true) {
		return errors.New("repositorio de pedidos ya iniciado")
	}
	list, err := r.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("cargar pedidos: %w", err)
	}
	r.list = list
	r.log.Info().Int("orders", len(list)).Msg("colección de pedidos cargada")
	go r.loop(ctx)
	return nil
}

// Done se cierra cuando la goroutine dueña terminó.
func (r *Repository) Done() <-chan struct{} { return r.stopped }

func (r *Repository) loop(ctx context.Context) {
	defer func() {
		close(r.stopped)
		r.closeSubscribers()
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-r.requests:
			req.done <- req.fn(req.ctx)
		}
	}
}

// do encola fn y espera su resultado. Una vez encolada, la operación se completa
// aunque ctx se cancele.
func (r *Repository) do(ctx context.Context, fn func(ctx context.Context) error) error {
	req := request{ctx: ctx, fn: fn, done: make(chan error, 1)}
	select {
	case r.requests <- req:
	case <-r.stopped:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	return <-req.done
}

// commit persiste next y, solo si salió bien, lo adopta como colección actual.
func (r *Repository) commit(ctx context.Context, next []entity.Order) error {
	if err := r.store.Save(ctx, next); err != nil {
		r.log.Error().Err(err).Msg("no se pudo persistir la colección, se conserva la anterior")
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	r.list = next
	return nil
}

func (r *Repository) indexOf(id string) int {
	for i := range r.list {
		if r.list[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *Repository) uniqueID(now time.Time) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := rules.NewID(now)
		if r.indexOf(id) < 0 {
			return id, nil
		}
	}
	return "", errors.New("no se pudo generar un ID de pedido único")
}

// Create valida el candidato y agrega el pedido al principio de la colección.
func (r *Repository) Create(ctx context.Context, draft entity.OrderDraft, createdBy string) (entity.Order, error) {
	var created entity.Order
	err := r.do(ctx, func(ctx context.Context) error {
		if err := rules.Validate(draft); err != nil {
			return err
		}
		now := r.now()
		id, err := r.uniqueID(now)
		if err != nil {
			return err
		}
		o := entity.Order{
			ID:        id,
			CreatedAt: now,
			CreatedBy: createdBy,
			Status:    entity.OrderStatusPending,
		}
		applyDraft(&o, draft)

		next := make([]entity.Order, 0, len(r.list)+1)
		next = append(next, o)
		next = append(next, r.list...)
		if err := r.commit(ctx, next); err != nil {
			return err
		}
		created = o
		r.publish(Event{Kind: EventCreated, Orders: []entity.Order{o}})
		return nil
	})
	return created, err
}

// Update reemplaza los campos editables de un pedido existente y no pasado.
// ID, CreatedAt y CreatedBy se conservan.
func (r *Repository) Update(ctx context.Context, id string, draft entity.OrderDraft, updatedBy string) (entity.Order, error) {
	var updated entity.Order
	err := r.do(ctx, func(ctx context.Context) error {
		if err := rules.Validate(draft); err != nil {
			return err
		}
		idx := r.indexOf(id)
		if idx < 0 {
			return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
		}
		now := r.now()
		if rules.IsPast(r.list[idx], now) {
			return fmt.Errorf("%w: %s", domain.ErrPastOrderLocked, id)
		}
		o := r.list[idx]
		applyDraft(&o, draft)
		o.UpdatedAt = &now
		o.UpdatedBy = updatedBy

		next := cloneOrders(r.list)
		next[idx] = o
		if err := r.commit(ctx, next); err != nil {
			return err
		}
		updated = o
		r.publish(Event{Kind: EventUpdated, Orders: []entity.Order{o}})
		return nil
	})
	return updated, err
}

// Delete elimina los pedidos indicados. Es todo o nada: si algún ID no existe o
// pertenece a un pedido pasado, no se elimina ninguno.
func (r *Repository) Delete(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var removed int
	err := r.do(ctx, func(ctx context.Context) error {
		now := r.now()
		targets := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			idx := r.indexOf(id)
			if idx < 0 {
				return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
			}
			if rules.IsPast(r.list[idx], now) {
				return fmt.Errorf("%w: %s", domain.ErrPastOrderLocked, id)
			}
			targets[id] = struct{}{}
		}

		next := make([]entity.Order, 0, len(r.list))
		for _, o := range r.list {
			if _, ok := targets[o.ID]; !ok {
				next = append(next, o)
			}
		}
		if err := r.commit(ctx, next); err != nil {
			return err
		}
		removed = len(targets)
		deleted := make([]string, 0, len(targets))
		for _, id := range ids {
			if _, ok := targets[id]; ok {
				deleted = append(deleted, id)
				delete(targets, id)
			}
		}
		r.publish(Event{Kind: EventDeleted, IDs: deleted})
		return nil
	})
	return removed, err
}

// QueryAll devuelve una copia de la colección en su orden natural.
func (r *Repository) QueryAll(ctx context.Context) ([]entity.Order, error) {
	var out []entity.Order
	err := r.do(ctx, func(context.Context) error {
		out = cloneOrders(r.list)
		return nil
	})
	return out, err
}

// Get devuelve un pedido por ID.
func (r *Repository) Get(ctx context.Context, id string) (entity.Order, error) {
	var out entity.Order
	err := r.do(ctx, func(context.Context) error {
		idx := r.indexOf(id)
		if idx < 0 {
			return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
		}
		out = r.list[idx]
		return nil
	})
	return out, err
}

// MergeRemote agrega los pedidos del espejo remoto cuyo ID no existe localmente.
// Ante el mismo ID gana la copia local. Devuelve cuántos se agregaron.
func (r *Repository) MergeRemote(ctx context.Context, remote []entity.Order) (int, error) {
	return r.merge(ctx, remote, EventMerged)
}

// Import fusiona un documento importado con la misma regla que MergeRemote;
// reimportar el mismo documento no agrega nada.
func (r *Repository) Import(ctx context.Context, incoming []entity.Order) (int, error) {
	return r.merge(ctx, incoming, EventImported)
}

func (r *Repository) merge(ctx context.Context, incoming []entity.Order, kind EventKind) (int, error) {
	var added []entity.Order
	err := r.do(ctx, func(ctx context.Context) error {
		known := make(map[string]struct{}, len(r.list)+len(incoming))
		for _, o := range r.list {
			known[o.ID] = struct{}{}
		}
		for _, o := range incoming {
			if o.ID == "" {
				continue
			}
			if _, ok := known[o.ID]; ok {
				continue
			}
			known[o.ID] = struct{}{}
			added = append(added, o)
		}
		if len(added) == 0 {
			return nil
		}
		next := make([]entity.Order, 0, len(r.list)+len(added))
		next = append(next, r.list...)
		next = append(next, added...)
		if err := r.commit(ctx, next); err != nil {
			added = nil
			return err
		}
		r.log.Info().Str("source", string(kind)).Int("added", len(added)).Msg("pedidos fusionados")
		r.publish(Event{Kind: kind, Orders: cloneOrders(added)})
		return nil
	})
	return len(added), err
}

func applyDraft(o *entity.Order, d entity.OrderDraft) {
	o.Manager = d.Manager
	o.Seller = d.Seller
	o.Destination = d.Destination
	o.Category = d.Category
	o.Product = d.Product
	o.Quantity = d.Quantity
	o.UnitPrice = d.UnitPrice
	o.DeliveryDate = d.DeliveryDate
	o.DeliveryTime = d.DeliveryTime
	o.TotalAmount = rules.TotalAmount(d.Quantity, d.UnitPrice)
}

func cloneOrders(list []entity.Order) []entity.Order {
	out := make([]entity.Order, len(list))
	copy(out, list)
	return out
}
