package session

import (
	"context"
	"fmt"

	"github.com/jhoicas/order-desk/internal/application/dto"
	"github.com/jhoicas/order-desk/internal/domain"
	"github.com/jhoicas/order-desk/internal/domain/catalog"
	"github.com/jhoicas/order-desk/internal/domain/entity"
	rules "github.com/jhoicas/order-desk/internal/domain/orders"
)

// Form estado actual del formulario en cascada.
func (s *Service) Form(ctx context.Context) (*dto.FormResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.CurrentUser == nil {
		return nil, domain.ErrNoSession
	}
	return s.form(ctx), nil
}

// Select asigna un nivel de la selección; los niveles dependientes se reinician.
func (s *Service) Select(ctx context.Context, level, value string) (*dto.FormResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.CurrentUser == nil {
		return nil, domain.ErrNoSession
	}
	if err := s.sess.Draft.Set(entity.SelectionLevel(level), value); err != nil {
		return nil, &rules.ValidationError{Field: "level", Reason: err.Error()}
	}
	return s.form(ctx), nil
}

// BeginEdit pone un pedido existente y no pasado en edición y pre-carga la selección
// con los setters en cascada. Reemplaza cualquier edición anterior.
func (s *Service) BeginEdit(ctx context.Context, id string) (*dto.FormResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.CurrentUser == nil {
		return nil, domain.ErrNoSession
	}
	o, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rules.IsPast(o, s.now()) {
		return nil, fmt.Errorf("%w: %s", domain.ErrPastOrderLocked, id)
	}
	s.sess.Draft = entity.Selection{}
	s.sess.Draft.Prefill(o.Draft())
	s.sess.EditingOrderID = o.ID
	return s.form(ctx), nil
}

// CancelEdit sale del modo edición y limpia la selección.
func (s *Service) CancelEdit() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.CurrentUser == nil {
		return domain.ErrNoSession
	}
	s.resetDraft()
	return nil
}

// Submit valida el candidato contra el catálogo y crea un pedido nuevo, o actualiza
// el pedido en edición. Tras un envío exitoso se limpian la edición y la selección.
func (s *Service) Submit(ctx context.Context, in dto.OrderRequest) (*dto.SubmitResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.CurrentUser == nil {
		return nil, domain.ErrNoSession
	}
	draft := toDraft(in)
	if err := rules.ValidateWithCatalog(s.catalog, draft); err != nil {
		return nil, err
	}
	user := s.sess.CurrentUser.Name

	var (
		o       entity.Order
		err     error
		created = !s.sess.Editing()
	)
	if created {
		o, err = s.orders.Create(ctx, draft, user)
	} else {
		o, err = s.orders.Update(ctx, s.sess.EditingOrderID, draft, user)
	}
	if err != nil {
		return nil, err
	}
	s.resetDraft()
	s.log.Info().Str("order_id", o.ID).Bool("created", created).Str("user", user).Msg("pedido guardado")
	return &dto.SubmitResponse{Created: created, Order: toOrderResponse(o, !rules.IsPast(o, s.now()))}, nil
}

// UpdateOrder actualiza un pedido por ID sin pasar por el modo edición.
func (s *Service) UpdateOrder(ctx context.Context, id string, in dto.OrderRequest) (*dto.OrderResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.CurrentUser == nil {
		return nil, domain.ErrNoSession
	}
	draft := toDraft(in)
	if err := rules.ValidateWithCatalog(s.catalog, draft); err != nil {
		return nil, err
	}
	o, err := s.orders.Update(ctx, id, draft, s.sess.CurrentUser.Name)
	if err != nil {
		return nil, err
	}
	if s.sess.EditingOrderID == id {
		s.resetDraft()
	}
	resp := toOrderResponse(o, true)
	return &resp, nil
}

func (s *Service) resetDraft() {
	s.sess.EditingOrderID = ""
	s.sess.Draft = entity.Selection{}
}

func (s *Service) form(ctx context.Context) *dto.FormResponse {
	sel := s.sess.Draft
	opts := catalog.OptionsFor(s.catalog, sel)
	resp := &dto.FormResponse{
		Selection: dto.SelectionDTO{
			Manager:     sel.Manager,
			Seller:      sel.Seller,
			Destination: sel.Destination,
			Category:    sel.Category,
			Product:     sel.Product,
		},
		Options: dto.FormOptionsDTO{
			Managers:     plainOptions(opts.Managers),
			Sellers:      plainOptions(opts.Sellers),
			Destinations: labeledOptions(opts.Destinations),
			Categories:   plainOptions(opts.Categories),
			Products:     plainOptions(opts.Products),
		},
		EditingOrderID: s.sess.EditingOrderID,
	}
	if s.sess.Editing() {
		if o, err := s.orders.Get(ctx, s.sess.EditingOrderID); err == nil {
			r := toOrderResponse(o, true)
			resp.Editing = &r
		}
	}
	return resp
}

func plainOptions(values []string) []dto.OptionDTO {
	out := make([]dto.OptionDTO, 0, len(values))
	for _, v := range values {
		out = append(out, dto.OptionDTO{Value: v, Label: v})
	}
	return out
}

func labeledOptions(opts []catalog.Option) []dto.OptionDTO {
	out := make([]dto.OptionDTO, 0, len(opts))
	for _, o := range opts {
		out = append(out, dto.OptionDTO{Value: o.Value, Label: o.Label})
	}
	return out
}

func toDraft(in dto.OrderRequest) entity.OrderDraft {
	return entity.OrderDraft{
		Manager:      in.Manager,
		Seller:       in.Seller,
		Destination:  in.Destination,
		Category:     in.Category,
		Product:      in.Product,
		Quantity:     in.Quantity,
		UnitPrice:    in.UnitPrice,
		DeliveryDate: in.DeliveryDate,
		DeliveryTime: in.DeliveryTime,
	}
}
