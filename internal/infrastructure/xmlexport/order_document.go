// Package xmlexport genera el documento XML de pedidos exportados.
//
//	<orders exportedAt="..." exportedBy="..." count="N">
//	  <order id="ORD-..." status="pending">
//	    <manager>..</manager> ... <destination>multilínea</destination>
//	    <quantity>1000</quantity> <unitPrice>500</unitPrice> <totalAmount>500,000원</totalAmount>
//	    <delivery date="2026-10-16" time="09:00"/>
//	    <created at="..." by="..."/> <updated at="..." by="..."/>
//	  </order>
//	</orders>
package xmlexport

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/order-desk/internal/application/transfer"
	"github.com/jhoicas/order-desk/internal/domain/entity"
)

var _ transfer.Encoder = Encoder{}

// Encoder implementa transfer.Encoder con etree.
type Encoder struct{}

func (Encoder) ContentType() string { return "application/xml" }
func (Encoder) Extension() string   { return "xml" }

// Encode serializa el documento indentado con declaración UTF-8.
func (Encoder) Encode(doc transfer.Document) ([]byte, error) {
	x := etree.NewDocument()
	x.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := x.CreateElement("orders")
	root.CreateAttr("exportedAt", doc.ExportedAt.Format(time.RFC3339))
	root.CreateAttr("exportedBy", doc.ExportedBy)
	root.CreateAttr("count", strconv.Itoa(len(doc.Orders)))
	for _, o := range doc.Orders {
		appendOrder(root, o)
	}

	x.Indent(2)
	var out bytes.Buffer
	if _, err := x.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("xml: serializar: %w", err)
	}
	return out.Bytes(), nil
}

func appendOrder(parent *etree.Element, o entity.Order) {
	el := parent.CreateElement("order")
	el.CreateAttr("id", o.ID)
	el.CreateAttr("status", o.Status)

	for _, f := range []struct{ tag, value string }{
		{"manager", o.Manager},
		{"seller", o.Seller},
		{"destination", o.Destination},
		{"category", o.Category},
		{"product", o.Product},
		{"quantity", strconv.FormatInt(o.Quantity, 10)},
		{"unitPrice", strconv.FormatInt(o.UnitPrice, 10)},
		{"totalAmount", o.TotalAmount},
	} {
		el.CreateElement(f.tag).SetText(f.value)
	}

	delivery := el.CreateElement("delivery")
	delivery.CreateAttr("date", o.DeliveryDate)
	delivery.CreateAttr("time", o.DeliveryTime)

	created := el.CreateElement("created")
	created.CreateAttr("at", o.CreatedAt.Format(time.RFC3339))
	created.CreateAttr("by", o.CreatedBy)

	if o.UpdatedAt != nil {
		updated := el.CreateElement("updated")
		updated.CreateAttr("at", o.UpdatedAt.Format(time.RFC3339))
		updated.CreateAttr("by", o.UpdatedBy)
	}
}
