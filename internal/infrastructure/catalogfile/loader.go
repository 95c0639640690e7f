// Package catalogfile carga el catálogo y el directorio de usuarios desde archivos
// JSON, con una copia embebida que se usa cuando el archivo falta o está dañado.
package catalogfile

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/jhoicas/order-desk/internal/domain"
	"github.com/jhoicas/order-desk/internal/domain/entity"
	"github.com/jhoicas/order-desk/internal/domain/repository"
	"github.com/jhoicas/order-desk/pkg/logger"
)

//go:embed fallback/catalog.json fallback/users.json
var fallbackFS embed.FS

var _ repository.CatalogSource = (*Source)(nil)

// Claves fijas del documento de catálogo; el resto son listas de productos por categoría.
const (
	keyCategories         = "categories"
	keyManagerSellers     = "managerSellers"
	keySellerDestinations = "sellerDestinations"
)

// Source lee los recursos desde disco. Una ruta vacía equivale a un recurso ausente.
type Source struct {
	CatalogPath string
	UsersPath   string
}

// LoadCatalog lee y parsea el catálogo; cualquier fallo es domain.ErrResourceUnavailable.
func (s Source) LoadCatalog(_ context.Context) (*entity.Catalog, error) {
	data, err := readResource(s.CatalogPath)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(data)
}

// LoadUsers lee y parsea el directorio de usuarios.
func (s Source) LoadUsers(_ context.Context) ([]entity.User, error) {
	data, err := readResource(s.UsersPath)
	if err != nil {
		return nil, err
	}
	return ParseUsers(data)
}

func readResource(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: ruta no configurada", domain.ErrResourceUnavailable)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrResourceUnavailable, err)
	}
	return data, nil
}

// ParseCatalog decodifica el documento de catálogo. Una categoría sin su lista de
// productos queda con la lista vacía.
func ParseCatalog(data []byte) (*entity.Catalog, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: catálogo: %v", domain.ErrResourceUnavailable, err)
	}
	c := &entity.Catalog{
		ManagerSellers:     map[string][]string{},
		SellerDestinations: map[string][]string{},
		CategoryProducts:   map[string][]string{},
	}
	fields := []struct {
		key string
		dst any
	}{
		{keyCategories, &c.Categories},
		{keyManagerSellers, &c.ManagerSellers},
		{keySellerDestinations, &c.SellerDestinations},
	}
	for _, f := range fields {
		msg, ok := raw[f.key]
		if !ok {
			return nil, fmt.Errorf("%w: catálogo sin %q", domain.ErrResourceUnavailable, f.key)
		}
		if err := json.Unmarshal(msg, f.dst); err != nil {
			return nil, fmt.Errorf("%w: catálogo %q: %v", domain.ErrResourceUnavailable, f.key, err)
		}
	}
	for _, cat := range c.Categories {
		var products []string
		if msg, ok := raw[cat]; ok {
			if err := json.Unmarshal(msg, &products); err != nil {
				return nil, fmt.Errorf("%w: productos de %q: %v", domain.ErrResourceUnavailable, cat, err)
			}
		}
		c.CategoryProducts[cat] = products
	}
	return c, nil
}

type userRecord struct {
	PIN  string `json:"pin"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// ParseUsers decodifica el directorio {nombre: {pin, name, role}}, ordenado por nombre.
func ParseUsers(data []byte) ([]entity.User, error) {
	var raw map[string]userRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: usuarios: %v", domain.ErrResourceUnavailable, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: directorio de usuarios vacío", domain.ErrResourceUnavailable)
	}
	users := make([]entity.User, 0, len(raw))
	for key, r := range raw {
		name := r.Name
		if name == "" {
			name = key
		}
		users = append(users, entity.User{Name: name, PIN: r.PIN, Role: r.Role})
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users, nil
}

// FallbackCatalog catálogo embebido.
func FallbackCatalog() *entity.Catalog {
	c, err := ParseCatalog(mustReadFallback("fallback/catalog.json"))
	if err != nil {
		panic(err)
	}
	return c
}

// FallbackUsers los seis usuarios embebidos.
func FallbackUsers() []entity.User {
	users, err := ParseUsers(mustReadFallback("fallback/users.json"))
	if err != nil {
		panic(err)
	}
	return users
}

func mustReadFallback(name string) []byte {
	data, err := fallbackFS.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return data
}

// LoadWithFallback carga ambos recursos y sustituye por la copia embebida el que falle.
func LoadWithFallback(ctx context.Context, src repository.CatalogSource, log *logger.Logger) (*entity.Catalog, []entity.User) {
	if log == nil {
		log = logger.Nop()
	}
	c, err := src.LoadCatalog(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("catálogo no disponible, se usa el embebido")
		c = FallbackCatalog()
	}
	users, err := src.LoadUsers(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("directorio de usuarios no disponible, se usa el embebido")
		users = FallbackUsers()
	}
	return c, users
}
