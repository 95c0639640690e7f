package orders_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/order-desk/internal/domain"
	"github.com/jhoicas/order-desk/internal/domain/entity"
	"github.com/jhoicas/order-desk/internal/domain/orders"
)

func validDraft() entity.OrderDraft {
	return entity.OrderDraft{
		Manager:      "김정진",
		Seller:       "(주)동일에프앤디",
		Destination:  "본사 창고\n경기도 화성시 123",
		Category:     "설탕",
		Product:      "KBS_25KG",
		Quantity:     1000,
		UnitPrice:    500,
		DeliveryDate: "2026-10-16",
		DeliveryTime: "09:00",
	}
}

func failingField(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidationFailed), "debe envolver ErrValidationFailed")
	var ve *orders.ValidationError
	require.True(t, errors.As(err, &ve))
	return ve.Field
}

func TestValidate_CandidatoValido(t *testing.T) {
	assert.NoError(t, orders.Validate(validDraft()))
}

func TestValidate_CampoObligatorioFaltante(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(d *entity.OrderDraft)
	}{
		{orders.FieldManager, func(d *entity.OrderDraft) { d.Manager = "" }},
		{orders.FieldSeller, func(d *entity.OrderDraft) { d.Seller = "" }},
		{orders.FieldDestination, func(d *entity.OrderDraft) { d.Destination = "  " }},
		{orders.FieldCategory, func(d *entity.OrderDraft) { d.Category = "" }},
		{orders.FieldProduct, func(d *entity.OrderDraft) { d.Product = "" }},
		{orders.FieldDeliveryDate, func(d *entity.OrderDraft) { d.DeliveryDate = "" }},
		{orders.FieldDeliveryTime, func(d *entity.OrderDraft) { d.DeliveryTime = "" }},
		{orders.FieldQuantity, func(d *entity.OrderDraft) { d.Quantity = 0 }},
		{orders.FieldUnitPrice, func(d *entity.OrderDraft) { d.UnitPrice = -5 }},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			d := validDraft()
			tc.mutate(&d)
			assert.Equal(t, tc.field, failingField(t, orders.Validate(d)))
		})
	}
}

func TestValidate_PrimerFalloGana(t *testing.T) {
	d := validDraft()
	d.Seller = ""
	d.Product = ""
	d.Quantity = 0
	assert.Equal(t, orders.FieldSeller, failingField(t, orders.Validate(d)))

	d = validDraft()
	d.DeliveryTime = ""
	d.Quantity = 0
	assert.Equal(t, orders.FieldDeliveryTime, failingField(t, orders.Validate(d)),
		"fecha y hora se revisan antes que cantidad y precio")
}

func TestValidate_FormatoFecha(t *testing.T) {
	d := validDraft()
	d.DeliveryDate = "16/10/2026"
	assert.Equal(t, orders.FieldDeliveryDate, failingField(t, orders.Validate(d)))

	d = validDraft()
	d.DeliveryTime = "9시"
	assert.Equal(t, orders.FieldDeliveryTime, failingField(t, orders.Validate(d)))
}

func TestValidateWithCatalog(t *testing.T) {
	c := &entity.Catalog{
		Categories:         []string{"설탕"},
		ManagerSellers:     map[string][]string{"김정진": {"(주)동일에프앤디"}, "이민호": {"대한제과"}},
		SellerDestinations: map[string][]string{"(주)동일에프앤디": {"본사 창고\n경기도 화성시 123"}},
		CategoryProducts:   map[string][]string{"설탕": {"KBS_25KG"}},
	}
	require.NoError(t, orders.ValidateWithCatalog(c, validDraft()))

	d := validDraft()
	d.Manager = "이민호"
	assert.Equal(t, orders.FieldSeller, failingField(t, orders.ValidateWithCatalog(c, d)),
		"el vendedor debe pertenecer al encargado elegido")

	d = validDraft()
	d.Product = "FL_20KG"
	assert.Equal(t, orders.FieldProduct, failingField(t, orders.ValidateWithCatalog(c, d)))
}
