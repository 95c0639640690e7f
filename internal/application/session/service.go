// Package session contiene los casos de uso de la sesión del operador: login con
// auto-login, modo de vista, formulario en cascada, flujo de edición y envío.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/order-desk/internal/application/dto"
	"github.com/jhoicas/order-desk/internal/domain"
	"github.com/jhoicas/order-desk/internal/domain/entity"
	rules "github.com/jhoicas/order-desk/internal/domain/orders"
	"github.com/jhoicas/order-desk/internal/domain/repository"
	"github.com/jhoicas/order-desk/pkg/jwt"
	"github.com/jhoicas/order-desk/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// OrderRepository lo que la sesión usa del repositorio de pedidos.
type OrderRepository interface {
	Create(ctx context.Context, draft entity.OrderDraft, createdBy string) (entity.Order, error)
	Update(ctx context.Context, id string, draft entity.OrderDraft, updatedBy string) (entity.Order, error)
	Delete(ctx context.Context, ids []string) (int, error)
	QueryAll(ctx context.Context) ([]entity.Order, error)
	Get(ctx context.Context, id string) (entity.Order, error)
}

// Service sesión única del proceso. Todas las operaciones toman el mismo mutex.
type Service struct {
	users   []entity.User
	catalog *entity.Catalog
	slot    repository.SessionStore
	orders  OrderRepository
	jwtCfg  JWTConfig
	log     *logger.Logger
	now     func() time.Time

	mu   sync.Mutex
	sess entity.Session
}

// NewService construye el servicio con la sesión vacía.
func NewService(
	users []entity.User,
	catalog *entity.Catalog,
	slot repository.SessionStore,
	orders OrderRepository,
	jwtCfg JWTConfig,
	log *logger.Logger,
	now func() time.Time,
) *Service {
	if log == nil {
		log = logger.Nop()
	}
	if now == nil {
		now = time.Now
	}
	return &Service{
		users:   users,
		catalog: catalog,
		slot:    slot,
		orders:  orders,
		jwtCfg:  jwtCfg,
		log:     log.Component("session"),
		now:     now,
		sess:    entity.NewSession(),
	}
}

// Login busca el par nombre/PIN en el directorio, abre la sesión y la guarda en el
// slot durable para el auto-login. Un fallo al escribir el slot no impide el login.
func (s *Service) Login(ctx context.Context, name, pin string) (*dto.LoginResponse, error) {
	user, ok := s.lookup(name)
	if !ok || user.PIN != pin {
		return nil, domain.ErrUnauthorized
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.slot.SaveUser(ctx, user); err != nil {
		s.log.Warn().Err(err).Str("user", user.Name).Msg("no se pudo guardar el slot de sesión")
	}
	s.sess = entity.NewSession()
	s.sess.CurrentUser = &user
	s.log.Info().Str("user", user.Name).Msg("sesión iniciada")
	return s.issue(user)
}

// Restore devuelve la sesión activa o, si no hay, la recupera del slot durable.
// Un usuario del slot que ya no está en el directorio se descarta.
func (s *Service) Restore(ctx context.Context) (*dto.LoginResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sess.CurrentUser != nil {
		return s.issue(*s.sess.CurrentUser)
	}
	stored, err := s.slot.LoadUser(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("slot de sesión ilegible")
		return nil, domain.ErrNoSession
	}
	if stored == nil {
		return nil, domain.ErrNoSession
	}
	user, ok := s.lookup(stored.Name)
	if !ok {
		_ = s.slot.ClearUser(ctx)
		return nil, domain.ErrNoSession
	}
	s.sess = entity.NewSession()
	s.sess.CurrentUser = &user
	s.log.Info().Str("user", user.Name).Msg("sesión restaurada")
	return s.issue(user)
}

// Logout limpia el slot durable y reinicia la sesión.
func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.slot.ClearUser(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	s.sess = entity.NewSession()
	return nil
}

// Authorize verifica que el usuario del token sea el de la sesión activa.
func (s *Service) Authorize(userName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.CurrentUser == nil || s.sess.CurrentUser.Name != userName {
		return domain.ErrNoSession
	}
	return nil
}

// Current estado de la sesión.
func (s *Service) Current() (*dto.SessionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.CurrentUser == nil {
		return nil, domain.ErrNoSession
	}
	return s.sessionResponse(), nil
}

// CurrentUser nombre del usuario de la sesión, "" si no hay.
func (s *Service) CurrentUser() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.CurrentUser == nil {
		return ""
	}
	return s.sess.CurrentUser.Name
}

// SetViewMode cambia el filtro de la lista.
func (s *Service) SetViewMode(mode string) (*dto.SessionResponse, error) {
	m, err := entity.ParseViewMode(mode)
	if err != nil {
		return nil, &rules.ValidationError{Field: "mode", Reason: err.Error()}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.CurrentUser == nil {
		return nil, domain.ErrNoSession
	}
	s.sess.ViewMode = m
	return s.sessionResponse(), nil
}

func (s *Service) sessionResponse() *dto.SessionResponse {
	return &dto.SessionResponse{
		User:           toUserResponse(*s.sess.CurrentUser),
		ViewMode:       string(s.sess.ViewMode),
		EditingOrderID: s.sess.EditingOrderID,
	}
}

func (s *Service) issue(user entity.User) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(s.jwtCfg.Secret, user.Name, user.Role, s.jwtCfg.Issuer, s.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: toUserResponse(user)}, nil
}

func (s *Service) lookup(name string) (entity.User, bool) {
	for _, u := range s.users {
		if u.Name == name {
			return u, true
		}
	}
	return entity.User{}, false
}

func toUserResponse(u entity.User) dto.UserResponse {
	return dto.UserResponse{Name: u.Name, Role: u.Role}
}
