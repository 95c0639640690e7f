package transfer

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/jhoicas/order-desk/internal/domain/entity"
)

// Encoder serializa un Document en un formato de archivo.
type Encoder interface {
	Encode(doc Document) ([]byte, error)
	ContentType() string
	Extension() string
}

// CSVHeader columnas del CSV en su orden fijo.
var CSVHeader = []string{
	"주문번호", "담당자", "판매처", "납품처", "카테고리", "제품",
	"수량", "단가", "총액", "납품일", "납품시간", "등록일시",
}

// utf8BOM para que las planillas detecten el texto coreano.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// JSONEncoder documento JSON indentado; es el formato que acepta Import.
type JSONEncoder struct{}

func (JSONEncoder) Encode(doc Document) ([]byte, error) {
	if doc.Orders == nil {
		doc.Orders = []entity.Order{}
	}
	return json.MarshalIndent(doc, "", "  ")
}

func (JSONEncoder) ContentType() string { return "application/json" }
func (JSONEncoder) Extension() string   { return "json" }

// CSVEncoder tabla plana sin metadatos de exportación.
type CSVEncoder struct{}

func (CSVEncoder) Encode(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)
	if err := w.Write(CSVHeader); err != nil {
		return nil, err
	}
	for _, o := range doc.Orders {
		if err := w.Write(CSVRecord(o)); err != nil {
			return nil, fmt.Errorf("csv: pedido %s: %w", o.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (CSVEncoder) ContentType() string { return "text/csv; charset=utf-8" }
func (CSVEncoder) Extension() string   { return "csv" }

// CSVRecord fila de un pedido en el orden de CSVHeader.
func CSVRecord(o entity.Order) []string {
	return []string{
		o.ID,
		o.Manager,
		o.Seller,
		o.Destination,
		o.Category,
		o.Product,
		strconv.FormatInt(o.Quantity, 10),
		strconv.FormatInt(o.UnitPrice, 10),
		o.TotalAmount,
		o.DeliveryDate,
		o.DeliveryTime,
		o.CreatedAt.Format(time.RFC3339),
	}
}
