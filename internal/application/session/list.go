package session

import (
	"context"

	"github.com/jhoicas/order-desk/internal/application/dto"
	"github.com/jhoicas/order-desk/internal/domain"
	"github.com/jhoicas/order-desk/internal/domain/catalog"
	"github.com/jhoicas/order-desk/internal/domain/entity"
	rules "github.com/jhoicas/order-desk/internal/domain/orders"
)

// ListVisible lista proyectada según el modo de vista de la sesión.
func (s *Service) ListVisible(ctx context.Context) (*dto.OrderListResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.CurrentUser == nil {
		return nil, domain.ErrNoSession
	}
	all, err := s.orders.QueryAll(ctx)
	if err != nil {
		return nil, err
	}
	projected := rules.Project(all, s.sess.ViewMode, s.sess.CurrentUser.Name, s.now())
	return &dto.OrderListResponse{
		ViewMode: string(s.sess.ViewMode),
		Items:    toOrderResponses(projected),
		Total:    len(projected),
	}, nil
}

// Search busca en todos los campos, sin filtro de modo de vista.
func (s *Service) Search(ctx context.Context, query string) (*dto.OrderListResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.CurrentUser == nil {
		return nil, domain.ErrNoSession
	}
	all, err := s.orders.QueryAll(ctx)
	if err != nil {
		return nil, err
	}
	found := rules.Search(all, query, s.now())
	return &dto.OrderListResponse{
		Query: query,
		Items: toOrderResponses(found),
		Total: len(found),
	}, nil
}

// Delete elimina un lote de pedidos (todo o nada). Si el pedido en edición se
// eliminó, la edición se cancela.
func (s *Service) Delete(ctx context.Context, ids []string) (*dto.DeleteOrdersResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.CurrentUser == nil {
		return nil, domain.ErrNoSession
	}
	n, err := s.orders.Delete(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if id == s.sess.EditingOrderID {
			s.resetDraft()
			break
		}
	}
	s.log.Info().Int("deleted", n).Str("user", s.sess.CurrentUser.Name).Msg("pedidos eliminados")
	return &dto.DeleteOrdersResponse{Deleted: n}, nil
}

func toOrderResponses(list []rules.Projected) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toOrderResponse(p.Order, p.Editable))
	}
	return out
}

func toOrderResponse(o entity.Order, editable bool) dto.OrderResponse {
	return dto.OrderResponse{
		ID:               o.ID,
		Manager:          o.Manager,
		Seller:           o.Seller,
		Destination:      o.Destination,
		DestinationLabel: catalog.DestinationLabel(o.Destination),
		Category:         o.Category,
		Product:          o.Product,
		Quantity:         o.Quantity,
		UnitPrice:        o.UnitPrice,
		TotalAmount:      o.TotalAmount,
		DeliveryDate:     o.DeliveryDate,
		DeliveryTime:     o.DeliveryTime,
		Status:           o.Status,
		CreatedAt:        o.CreatedAt,
		CreatedBy:        o.CreatedBy,
		UpdatedAt:        o.UpdatedAt,
		UpdatedBy:        o.UpdatedBy,
		Editable:         editable,
	}
}
