package postgres

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/order-desk/pkg/config"
)

func TestResolveIPv4_Literales(t *testing.T) {
	ip, err := resolveIPv4(context.Background(), net.DefaultResolver, "10.0.0.7")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.7", ip)

	_, err = resolveIPv4(context.Background(), net.DefaultResolver, "::1")
	assert.Error(t, err, "una IPv6 literal no tiene IPv4")
}

// Un resolver que nunca contesta: la resolución solo termina por el ctx.
func blackholeResolver() *net.Resolver {
	return &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, _, _ string) (net.Conn, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
}

func TestResolveIPv4_RespetaElTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := resolveIPv4(ctx, blackholeResolver(), "espejo.example.com")
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second, "la búsqueda DNS no debe superar el timeout del llamador")
}

func TestNewPool_RemotoInalcanzableRespetaElTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	// 192.0.2.0/24 es TEST-NET-1: no enruta.
	pool, err := NewPool(ctx, config.DBConfig{DatabaseURL: "postgres://u:p@192.0.2.1:5432/pedidos?sslmode=disable&connect_timeout=30"})
	assert.Error(t, err)
	assert.Nil(t, pool)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestNewPool_DSNInvalido(t *testing.T) {
	_, err := NewPool(context.Background(), config.DBConfig{DatabaseURL: "postgres://u:p@host:puerto/x"})
	assert.Error(t, err)
}
