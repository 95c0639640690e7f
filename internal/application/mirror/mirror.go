// Package mirror replica la colección local en un almacén remoto opcional.
//
// Es best-effort: cada cambio local se envía una sola vez y los fallos solo se
// registran en el log. Las notificaciones del remoto disparan un Pull que agrega
// los pedidos desconocidos; ante el mismo ID gana la copia local.
package mirror

import (
	"context"
	"time"

	"github.com/jhoicas/order-desk/internal/application/orders"
	"github.com/jhoicas/order-desk/internal/domain/entity"
	"github.com/jhoicas/order-desk/internal/domain/repository"
	"github.com/jhoicas/order-desk/pkg/logger"
)

// Merger lo que el espejo necesita del repositorio de pedidos.
type Merger interface {
	MergeRemote(ctx context.Context, remote []entity.Order) (int, error)
}

// Mirror sincroniza en segundo plano contra un RemoteOrderStore.
// Un *Mirror nil es un espejo deshabilitado: todos sus métodos son no-ops.
type Mirror struct {
	remote      repository.RemoteOrderStore
	repo        Merger
	log         *logger.Logger
	pushTimeout time.Duration
	retryDelay  time.Duration
}

// Option configura el espejo.
type Option func(*Mirror)

// WithRetryDelay espera entre reconexiones del feed de cambios.
func WithRetryDelay(d time.Duration) Option {
	return func(m *Mirror) { m.retryDelay = d }
}

// New construye el espejo. pushTimeout acota cada llamada al remoto.
func New(remote repository.RemoteOrderStore, repo Merger, log *logger.Logger, pushTimeout time.Duration, opts ...Option) *Mirror {
	if log == nil {
		log = logger.Nop()
	}
	if pushTimeout <= 0 {
		pushTimeout = 5 * time.Second
	}
	m := &Mirror{
		remote:      remote,
		repo:        repo,
		log:         log.Component("mirror"),
		pushTimeout: pushTimeout,
		retryDelay:  5 * time.Second,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Enabled indica si hay un remoto configurado.
func (m *Mirror) Enabled() bool { return m != nil }

// Run consume los eventos del repositorio hasta que el canal se cierre o ctx termine.
// Los pedidos traídos del remoto (EventMerged) no se reenvían.
func (m *Mirror) Run(ctx context.Context, events <-chan orders.Event) {
	if m == nil {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			m.apply(ctx, ev)
		}
	}
}

func (m *Mirror) apply(ctx context.Context, ev orders.Event) {
	switch ev.Kind {
	case orders.EventCreated, orders.EventUpdated, orders.EventImported:
		for _, o := range ev.Orders {
			m.Push(ctx, o)
		}
	case orders.EventDeleted:
		m.pushDelete(ctx, ev.IDs)
	}
}

// Push envía un pedido al remoto. Un fallo no se reintenta ni afecta al estado local.
func (m *Mirror) Push(ctx context.Context, o entity.Order) {
	if m == nil {
		return
	}
	pctx, cancel := context.WithTimeout(ctx, m.pushTimeout)
	defer cancel()
	if err := m.remote.Upsert(pctx, o); err != nil {
		m.log.Warn().Err(err).Str("order_id", o.ID).Msg("no se pudo replicar el pedido")
		return
	}
	m.log.Debug().Str("order_id", o.ID).Msg("pedido replicado")
}

func (m *Mirror) pushDelete(ctx context.Context, ids []string) {
	if len(ids) == 0 {
		return
	}
	pctx, cancel := context.WithTimeout(ctx, m.pushTimeout)
	defer cancel()
	if err := m.remote.Delete(pctx, ids); err != nil {
		m.log.Warn().Err(err).Strs("order_ids", ids).Msg("no se pudo replicar el borrado")
	}
}

// Pull trae el contenido remoto y agrega al repositorio los IDs que no existen localmente.
func (m *Mirror) Pull(ctx context.Context) (int, error) {
	if m == nil {
		return 0, nil
	}
	pctx, cancel := context.WithTimeout(ctx, m.pushTimeout)
	list, err := m.remote.List(pctx)
	cancel()
	if err != nil {
		m.log.Warn().Err(err).Msg("no se pudo leer el espejo remoto")
		return 0, err
	}
	added, err := m.repo.MergeRemote(ctx, list)
	if err != nil {
		m.log.Warn().Err(err).Msg("no se pudieron fusionar los pedidos remotos")
		return 0, err
	}
	if added > 0 {
		m.log.Info().Int("added", added).Msg("pedidos remotos incorporados")
	}
	return added, nil
}

// Watch escucha el feed de cambios y ejecuta Pull por cada aviso. Los avisos que
// llegan mientras un Pull está en curso se agrupan en uno solo. Si la escucha se
// corta, espera retryDelay, hace un Pull (pudo perder avisos) y vuelve a escuchar
// hasta que ctx termine.
func (m *Mirror) Watch(ctx context.Context, feed repository.ChangeFeed) {
	if m == nil || feed == nil {
		return
	}
	pending := make(chan struct{}, 1)
	notify := func() {
		select {
		case pending <- struct{}{}:
		default:
		}
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-pending:
				_, _ = m.Pull(ctx)
			}
		}
	}()

	for {
		err := feed.Listen(ctx, notify)
		if ctx.Err() != nil {
			return
		}
		m.log.Warn().Err(err).Dur("retry_in", m.retryDelay).Msg("feed de cambios remoto cortado, se reintenta")
		select {
		case <-ctx.Done():
			return
		case <-time.After(m.retryDelay):
		}
		notify()
	}
}
