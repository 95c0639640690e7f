package catalogfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/order-desk/internal/domain"
	"github.com/jhoicas/order-desk/internal/domain/catalog"
	"github.com/jhoicas/order-desk/internal/domain/entity"
	"github.com/jhoicas/order-desk/internal/infrastructure/catalogfile"
	"github.com/jhoicas/order-desk/pkg/logger"
)

const catalogDoc = `{
  "categories": ["설탕", "소금"],
  "managerSellers": {"김정진": ["(주)동일에프앤디"]},
  "sellerDestinations": {"(주)동일에프앤디": ["본사 창고\n경기도 화성시 123"]},
  "설탕": ["KBS_25KG"]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestParseCatalog(t *testing.T) {
	c, err := catalogfile.ParseCatalog([]byte(catalogDoc))
	require.NoError(t, err)
	assert.Equal(t, []string{"설탕", "소금"}, c.Categories)
	assert.Equal(t, []string{"KBS_25KG"}, c.CategoryProducts["설탕"])
	assert.Empty(t, c.CategoryProducts["소금"], "categoría sin lista propia")
	assert.Equal(t, []string{"(주)동일에프앤디"}, catalog.SellersFor(c, "김정진"))
}

func TestParseCatalog_Malformado(t *testing.T) {
	cases := map[string]string{
		"no es json":         `{`,
		"sin categories":     `{"managerSellers": {}, "sellerDestinations": {}}`,
		"tipo incorrecto":    `{"categories": "설탕", "managerSellers": {}, "sellerDestinations": {}}`,
		"productos inválido": `{"categories": ["설탕"], "managerSellers": {}, "sellerDestinations": {}, "설탕": 3}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := catalogfile.ParseCatalog([]byte(doc))
			assert.ErrorIs(t, err, domain.ErrResourceUnavailable)
		})
	}
}

func TestParseUsers(t *testing.T) {
	users, err := catalogfile.ParseUsers([]byte(`{
		"김정진": {"pin": "1234", "name": "김정진", "role": "manager"},
		"관리자": {"pin": "0000", "role": "admin"}
	}`))
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, entity.User{Name: "관리자", PIN: "0000", Role: "admin"}, users[0], "sin name se usa la clave")
	assert.Equal(t, "김정진", users[1].Name)
}

func TestSource_ArchivoAusente(t *testing.T) {
	src := catalogfile.Source{CatalogPath: filepath.Join(t.TempDir(), "no-existe.json")}
	_, err := src.LoadCatalog(context.Background())
	assert.ErrorIs(t, err, domain.ErrResourceUnavailable)
	_, err = src.LoadUsers(context.Background())
	assert.ErrorIs(t, err, domain.ErrResourceUnavailable, "ruta vacía")
}

func TestFallback(t *testing.T) {
	c := catalogfile.FallbackCatalog()
	assert.Contains(t, catalog.SellersFor(c, "김정진"), "(주)동일에프앤디")
	assert.Contains(t, catalog.ProductsFor(c, "설탕"), "KBS_25KG")
	assert.Len(t, catalogfile.FallbackUsers(), 6)
}

func TestLoadWithFallback(t *testing.T) {
	src := catalogfile.Source{
		CatalogPath: writeFile(t, "catalog.json", catalogDoc),
		UsersPath:   writeFile(t, "users.json", `{roto`),
	}
	c, users := catalogfile.LoadWithFallback(context.Background(), src, logger.Nop())
	assert.Equal(t, []string{"설탕", "소금"}, c.Categories, "el catálogo válido se usa tal cual")
	assert.Len(t, users, 6, "el directorio dañado se reemplaza por el embebido")
}
