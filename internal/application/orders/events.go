package orders

import "github.com/jhoicas/order-desk/internal/domain/entity"

// EventKind tipo de mutación confirmada en el repositorio.
type EventKind string

const (
	EventCreated  EventKind = "created"
	EventUpdated  EventKind = "updated"
	EventDeleted  EventKind = "deleted"
	EventImported EventKind = "imported"
	EventMerged   EventKind = "merged" // pedidos traídos del espejo remoto
)

// Event se publica solo después de que la colección quedó persistida.
// Orders lleva los pedidos afectados; IDs solo se usa en EventDeleted.
type Event struct {
	Kind   EventKind
	Orders []entity.Order
	IDs    []string
}

// subscriberBuffer capacidad por defecto del canal de cada suscriptor.
const subscriberBuffer = 64

// Subscribe registra un consumidor de eventos. El canal se cierra cuando el
// repositorio se detiene. Un suscriptor lento pierde eventos (se registra en el log),
// nunca bloquea al repositorio.
func (r *Repository) Subscribe() <-chan Event {
	ch := make(chan Event, subscriberBuffer)
	r.subsMu.Lock()
	defer r.subsMu.Unlock()
	if r.closed {
		close(ch)
		return ch
	}
	r.subs = append(r.subs, ch)
	return ch
}

func (r *Repository) publish(ev Event) {
	r.subsMu.Lock()
	defer r.subsMu.Unlock()
	for _, ch := range r.subs {
		select {
		case ch <- ev:
		default:
			r.log.Warn().Str("event", string(ev.Kind)).Msg("suscriptor lleno, evento descartado")
		}
	}
}

func (r *Repository) closeSubscribers() {
	r.subsMu.Lock()
	defer r.subsMu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	for _, ch := range r.subs {
		close(ch)
	}
	r.subs = nil
}
