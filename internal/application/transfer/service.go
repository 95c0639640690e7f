package transfer

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/order-desk/internal/domain/entity"
	rules "github.com/jhoicas/order-desk/internal/domain/orders"
	"github.com/jhoicas/order-desk/pkg/logger"
)

// Formatos soportados por defecto.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
	FormatXML  = "xml"
)

// OrderRepository lo que la exportación/importación usa del repositorio.
type OrderRepository interface {
	QueryAll(ctx context.Context) ([]entity.Order, error)
	Import(ctx context.Context, orders []entity.Order) (int, error)
}

// File resultado de una exportación.
type File struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Service exporta e importa la colección.
type Service struct {
	orders   OrderRepository
	encoders map[string]Encoder
	log      *logger.Logger
	now      func() time.Time
}

// NewService construye el servicio con los codificadores JSON y CSV; el resto se
// registra con Register (PDF y XML viven en infraestructura).
func NewService(orders OrderRepository, log *logger.Logger, now func() time.Time) *Service {
	if log == nil {
		log = logger.Nop()
	}
	if now == nil {
		now = time.Now
	}
	return &Service{
		orders: orders,
		encoders: map[string]Encoder{
			FormatJSON: JSONEncoder{},
			FormatCSV:  CSVEncoder{},
		},
		log: log.Component("transfer"),
		now: now,
	}
}

// Register agrega o reemplaza el codificador de un formato.
func (s *Service) Register(format string, enc Encoder) {
	s.encoders[strings.ToLower(format)] = enc
}

// Formats formatos disponibles, ordenados.
func (s *Service) Formats() []string {
	out := make([]string, 0, len(s.encoders))
	for f := range s.encoders {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Export serializa la colección completa con la fecha y el usuario que exporta.
func (s *Service) Export(ctx context.Context, format, exportedBy string) (*File, error) {
	if format == "" {
		format = FormatJSON
	}
	enc, ok := s.encoders[strings.ToLower(format)]
	if !ok {
		return nil, &rules.ValidationError{
			Field:  "format",
			Reason: fmt.Sprintf("formato no soportado, use uno de %s", strings.Join(s.Formats(), ", ")),
		}
	}
	list, err := s.orders.QueryAll(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	body, err := enc.Encode(Document{ExportedAt: now, ExportedBy: exportedBy, Orders: list})
	if err != nil {
		return nil, fmt.Errorf("exportar %s: %w", format, err)
	}
	s.log.Info().Str("format", format).Int("orders", len(list)).Str("user", exportedBy).Msg("pedidos exportados")
	return &File{
		Filename:    fmt.Sprintf("orders_%s.%s", now.Format("20060102_150405"), enc.Extension()),
		ContentType: enc.ContentType(),
		Body:        body,
	}, nil
}

// Import fusiona un documento JSON por ID y devuelve cuántos pedidos se agregaron.
func (s *Service) Import(ctx context.Context, body []byte) (int, error) {
	list, err := ParseDocument(body)
	if err != nil {
		return 0, err
	}
	added, err := s.orders.Import(ctx, list)
	if err != nil {
		return 0, err
	}
	s.log.Info().Int("received", len(list)).Int("added", added).Msg("importación completada")
	return added, nil
}
