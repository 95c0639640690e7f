package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/order-desk/internal/application/transfer"
	"github.com/jhoicas/order-desk/internal/domain/entity"
	"github.com/jhoicas/order-desk/internal/infrastructure/pdf"
)

func TestOrderReport_GeneraPDF(t *testing.T) {
	enc := pdf.NewOrderReportEncoder("")
	doc := transfer.Document{
		ExportedAt: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC),
		ExportedBy: "admin",
		Orders: []entity.Order{{
			ID: "ORD-1", Manager: "kim", Seller: "dongil", Destination: "warehouse\nline 2",
			Category: "sugar", Product: "KBS_25KG", Quantity: 1000, UnitPrice: 500,
			TotalAmount: "500,000", DeliveryDate: "2026-10-16", DeliveryTime: "09:00",
		}},
	}

	out, err := enc.Encode(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un PDF")
	assert.Equal(t, "application/pdf", enc.ContentType())
	assert.Equal(t, "pdf", enc.Extension())
}

func TestOrderReport_FuenteInexistente(t *testing.T) {
	enc := pdf.NewOrderReportEncoder("/no/existe/fuente.ttf")
	_, err := enc.Encode(transfer.Document{})
	assert.Error(t, err)
}
