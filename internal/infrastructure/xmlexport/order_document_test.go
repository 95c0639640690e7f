package xmlexport_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/order-desk/internal/application/transfer"
	"github.com/jhoicas/order-desk/internal/domain/entity"
	"github.com/jhoicas/order-desk/internal/infrastructure/xmlexport"
)

func TestEncode_EstructuraDelDocumento(t *testing.T) {
	at := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	upd := at.Add(time.Hour)
	doc := transfer.Document{
		ExportedAt: at,
		ExportedBy: "김정진",
		Orders: []entity.Order{
			{
				ID: "ORD-1", Manager: "김정진", Seller: "(주)동일에프앤디", Destination: "본사 창고\n경기도 화성시 123",
				Category: "설탕", Product: "KBS_25KG", Quantity: 1000, UnitPrice: 500, TotalAmount: "500,000원",
				DeliveryDate: "2026-10-16", DeliveryTime: "09:00", CreatedAt: at, CreatedBy: "김정진",
				Status: entity.OrderStatusPending, UpdatedAt: &upd, UpdatedBy: "관리자",
			},
			{ID: "ORD-2", CreatedAt: at, Status: entity.OrderStatusPending},
		},
	}

	out, err := xmlexport.Encoder{}.Encode(doc)
	require.NoError(t, err)

	parsed := etree.NewDocument()
	require.NoError(t, parsed.ReadFromBytes(out))
	root := parsed.Root()
	require.NotNil(t, root)
	assert.Equal(t, "orders", root.Tag)
	assert.Equal(t, "2", root.SelectAttrValue("count", ""))
	assert.Equal(t, "김정진", root.SelectAttrValue("exportedBy", ""))

	orders := root.SelectElements("order")
	require.Len(t, orders, 2)
	first := orders[0]
	assert.Equal(t, "ORD-1", first.SelectAttrValue("id", ""))
	assert.Equal(t, "500,000원", first.SelectElement("totalAmount").Text())
	assert.Equal(t, "본사 창고\n경기도 화성시 123", first.SelectElement("destination").Text())
	assert.Equal(t, "2026-10-16", first.SelectElement("delivery").SelectAttrValue("date", ""))
	assert.Equal(t, "관리자", first.SelectElement("updated").SelectAttrValue("by", ""))
	assert.Nil(t, orders[1].SelectElement("updated"), "sin actualización no hay elemento updated")
}
