package transfer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"github.com/jhoicas/order-desk/internal/domain"
	"github.com/jhoicas/order-desk/internal/domain/entity"
	rules "github.com/jhoicas/order-desk/internal/domain/orders"
)

// ParseCSV lee un CSV con las columnas de CSVHeader (por posición). Acepta UTF-8, con o
// sin BOM, y EUC-KR/CP949 tal como lo guardan las planillas. La fila de encabezado es
// opcional. Cualquier fila inválida descarta el archivo completo.
func ParseCSV(data []byte, importedBy string) ([]entity.Order, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	var r io.Reader = bytes.NewReader(data)
	if !utf8.Valid(data) {
		r = transform.NewReader(r, korean.EUCKR.NewDecoder())
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(CSVHeader)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: csv: %v", domain.ErrMalformedImport, err)
	}
	if len(records) > 0 && strings.TrimSpace(records[0][0]) == CSVHeader[0] {
		records = records[1:]
	}

	out := make([]entity.Order, 0, len(records))
	for i, rec := range records {
		o, err := orderFromRecord(rec, importedBy)
		if err != nil {
			return nil, fmt.Errorf("%w: fila %d: %v", domain.ErrMalformedImport, i+1, err)
		}
		out = append(out, o)
	}
	return out, nil
}

func orderFromRecord(rec []string, importedBy string) (entity.Order, error) {
	for i := range rec {
		rec[i] = strings.TrimSpace(rec[i])
	}
	if rec[0] == "" {
		return entity.Order{}, fmt.Errorf("sin %s", CSVHeader[0])
	}
	qty, err := strconv.ParseInt(rec[6], 10, 64)
	if err != nil {
		return entity.Order{}, fmt.Errorf("%s: %v", CSVHeader[6], err)
	}
	price, err := strconv.ParseInt(rec[7], 10, 64)
	if err != nil {
		return entity.Order{}, fmt.Errorf("%s: %v", CSVHeader[7], err)
	}
	createdAt, err := time.Parse(time.RFC3339, rec[11])
	if err != nil {
		return entity.Order{}, fmt.Errorf("%s: %v", CSVHeader[11], err)
	}
	o := entity.Order{
		ID:           rec[0],
		Manager:      rec[1],
		Seller:       rec[2],
		Destination:  rec[3],
		Category:     rec[4],
		Product:      rec[5],
		Quantity:     qty,
		UnitPrice:    price,
		TotalAmount:  rec[8],
		DeliveryDate: rec[9],
		DeliveryTime: rec[10],
		CreatedAt:    createdAt,
		CreatedBy:    importedBy,
		Status:       entity.OrderStatusPending,
	}
	if o.TotalAmount == "" {
		o.TotalAmount = rules.TotalAmount(qty, price)
	}
	if err := rules.Validate(o.Draft()); err != nil {
		return entity.Order{}, err
	}
	return o, nil
}
