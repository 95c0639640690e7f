package transfer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"

	"github.com/jhoicas/order-desk/internal/application/transfer"
	"github.com/jhoicas/order-desk/internal/domain"
	"github.com/jhoicas/order-desk/pkg/logger"
)

func TestParseCSV_DesdeExportacion(t *testing.T) {
	svc := transfer.NewService(newRepo(t, sampleOrders()...), logger.Nop(), nil)
	file, err := svc.Export(context.Background(), "csv", "김정진")
	require.NoError(t, err)

	got, err := transfer.ParseCSV(file.Body, "관리자")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "ORD-1", got[0].ID)
	assert.Equal(t, "본사 창고\n경기도 화성시 123", got[0].Destination)
	assert.Equal(t, int64(1000), got[0].Quantity)
	assert.Equal(t, "500,000원", got[0].TotalAmount)
	assert.True(t, got[0].CreatedAt.Equal(now))
	assert.Equal(t, "관리자", got[0].CreatedBy)
}

func TestParseCSV_EUCKRSinEncabezado(t *testing.T) {
	row := "ORD-9,김정진,대한제과,물류센터,설탕,KBS_25KG,3,300,,2026-10-20,10:00,2026-10-15T09:30:00Z\n"
	encoded, err := korean.EUCKR.NewEncoder().Bytes([]byte(row))
	require.NoError(t, err)

	got, err := transfer.ParseCSV(encoded, "관리자")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "김정진", got[0].Manager)
	assert.Equal(t, "900원", got[0].TotalAmount, "sin total se recalcula")
}

func TestParseCSV_FilaInvalida(t *testing.T) {
	cases := map[string]string{
		"columnas de menos": "ORD-1,김정진\n",

		"cantidad no numérica": "ORD-1,김정진,대한제과,물류센터,설탕,KBS_25KG,tres,300,,2026-10-20,10:00,2026-10-15T09:30:00Z\n",

		"sin id": ",김정진,대한제과,물류센터,설탕,KBS_25KG,3,300,,2026-10-20,10:00,2026-10-15T09:30:00Z\n",

		"fecha de registro": "ORD-1,김정진,대한제과,물류센터,설탕,KBS_25KG,3,300,,2026-10-20,10:00,ayer\n",

		"fecha de entrega ilegible": "ORD-1,김정진,대한제과,물류센터,설탕,KBS_25KG,3,300,,20/10/2026,10:00,2026-10-15T09:30:00Z\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := transfer.ParseCSV([]byte(body), "관리자")
			assert.ErrorIs(t, err, domain.ErrMalformedImport)
		})
	}
}
