package orders

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/order-desk/internal/domain"
	"github.com/jhoicas/order-desk/internal/domain/catalog"
	"github.com/jhoicas/order-desk/internal/domain/entity"
)

// Nombres de campo reportados por ValidationError.
const (
	FieldManager      = "manager"
	FieldSeller       = "seller"
	FieldDestination  = "destination"
	FieldCategory     = "category"
	FieldProduct      = "product"
	FieldDeliveryDate = "deliveryDate"
	FieldDeliveryTime = "deliveryTime"
	FieldQuantity     = "quantity"
	FieldUnitPrice    = "unitPrice"
)

// ValidationError primer campo que no pasó la validación.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap permite errors.Is(err, domain.ErrValidationFailed).
func (e *ValidationError) Unwrap() error { return domain.ErrValidationFailed }

// Validate revisa el candidato en orden fijo y se corta en el primer fallo:
// campos obligatorios en orden de declaración, luego cantidad > 0 y precio > 0.
func Validate(d entity.OrderDraft) error {
	required := []struct {
		field string
		value string
	}{
		{FieldManager, d.Manager},
		{FieldSeller, d.Seller},
		{FieldDestination, d.Destination},
		{FieldCategory, d.Category},
		{FieldProduct, d.Product},
		{FieldDeliveryDate, d.DeliveryDate},
		{FieldDeliveryTime, d.DeliveryTime},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Reason: "obligatorio"}
		}
		switch r.field {
		case FieldDeliveryDate:
			if _, err := time.Parse(entity.DateLayout, r.value); err != nil {
				return &ValidationError{Field: r.field, Reason: "formato esperado AAAA-MM-DD"}
			}
		case FieldDeliveryTime:
			if _, err := time.Parse(entity.TimeLayout, r.value); err != nil {
				return &ValidationError{Field: r.field, Reason: "formato esperado HH:MM"}
			}
		}
	}
	if d.Quantity <= 0 {
		return &ValidationError{Field: FieldQuantity, Reason: "debe ser mayor que 0"}
	}
	if d.UnitPrice <= 0 {
		return &ValidationError{Field: FieldUnitPrice, Reason: "debe ser mayor que 0"}
	}
	return nil
}

// ValidateWithCatalog aplica Validate y además exige que cada nivel pertenezca al
// conjunto de opciones válido en el momento del envío.
func ValidateWithCatalog(c *entity.Catalog, d entity.OrderDraft) error {
	if err := Validate(d); err != nil {
		return err
	}
	switch {
	case !catalog.Contains(catalog.Managers(c), d.Manager):
		return &ValidationError{Field: FieldManager, Reason: "no existe en el catálogo"}
	case !catalog.Contains(catalog.SellersFor(c, d.Manager), d.Seller):
		return &ValidationError{Field: FieldSeller, Reason: "no corresponde al encargado"}
	case !catalog.Contains(catalog.DestinationsFor(c, d.Seller), d.Destination):
		return &ValidationError{Field: FieldDestination, Reason: "no corresponde al vendedor"}
	case !catalog.Contains(catalog.Categories(c), d.Category):
		return &ValidationError{Field: FieldCategory, Reason: "no existe en el catálogo"}
	case !catalog.Contains(catalog.ProductsFor(c, d.Category), d.Product):
		return &ValidationError{Field: FieldProduct, Reason: "no corresponde a la categoría"}
	}
	return nil
}
