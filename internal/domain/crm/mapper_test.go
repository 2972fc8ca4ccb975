package crm_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-gateway/internal/domain"
	"github.com/jhoicas/crm-gateway/internal/domain/crm"
	"github.com/jhoicas/crm-gateway/internal/domain/entity"
)

const testSite = "tienda-test"

// ── helpers ───────────────────────────────────────────────────────────────────

func toJSON(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return string(raw)
}

func toMap(t *testing.T, v any) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(toJSON(t, v)), &out))
	return out
}

// ── MapCustomer ───────────────────────────────────────────────────────────────

func TestMapCustomer_SoloObligatorios(t *testing.T) {
	out := crm.MapCustomer(entity.Customer{FirstName: "Jane", Email: "jane@x.com"})

	assert.JSONEq(t, `{"firstName":"Jane","email":"jane@x.com"}`, toJSON(t, out))
	m := toMap(t, out)
	assert.NotContains(t, m, "lastName")
	assert.NotContains(t, m, "phones")
}

func TestMapCustomer_Telefono(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  []crm.Phone
	}{
		{name: "sin teléfono", phone: "", want: nil},
		{name: "con teléfono", phone: "+79990000000", want: []crm.Phone{{Number: "+79990000000"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := crm.MapCustomer(entity.Customer{FirstName: "A", Email: "a@b.co", Phone: tt.phone})
			assert.Equal(t, tt.want, out.Phones)
			if tt.phone == "" {
				assert.NotContains(t, toMap(t, out), "phones")
			} else {
				assert.Len(t, out.Phones, 1)
			}
		})
	}
}

func TestMapCustomer_Completo(t *testing.T) {
	out := crm.MapCustomer(entity.Customer{
		FirstName: "Ana",
		LastName:  "Gómez",
		Email:     "ana@x.com",
		Phone:     "555",
	})
	assert.JSONEq(t,
		`{"firstName":"Ana","lastName":"Gómez","email":"ana@x.com","phones":[{"number":"555"}]}`,
		toJSON(t, out))
}

// ── MapOrder ──────────────────────────────────────────────────────────────────

func TestMapOrder_EscenarioCustomerID(t *testing.T) {
	order := entity.Order{
		Number:     "1001",
		CustomerID: "42",
		Items: []entity.OrderItem{
			{ProductName: "Widget", Quantity: 2, Price: decimal.RequireFromString("9.99")},
		},
	}

	out, err := crm.MapOrder(order, testSite)
	require.NoError(t, err)
	assert.Equal(t,
		`{"number":"1001","site":"tienda-test","customer":{"id":"42"},"items":[{"offer":{"name":"Widget"},"quantity":2,"initialPrice":9.99}]}`,
		toJSON(t, out))
}

// CustomerID tiene prioridad aunque también venga el cliente embebido.
func TestMapOrder_PrioridadCustomerID(t *testing.T) {
	order := entity.Order{
		Number:     "1",
		CustomerID: "7",
		Customer:   &entity.Customer{FirstName: "X", Email: "x@x.com"},
	}
	out, err := crm.MapOrder(order, testSite)
	require.NoError(t, err)
	assert.Equal(t, crm.CustomerRef{ID: "7"}, out.Customer)
	assert.Equal(t, map[string]any{"id": "7"}, toMap(t, out)["customer"])
}

func TestMapOrder_ClienteEmbebido(t *testing.T) {
	order := entity.Order{
		Number:   "2",
		Customer: &entity.Customer{FirstName: "Jane", Email: "jane@x.com", Phone: "123"},
	}
	out, err := crm.MapOrder(order, testSite)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"firstName": "Jane",
		"email":     "jane@x.com",
		"phones":    []any{map[string]any{"number": "123"}},
	}, toMap(t, out)["customer"])
}

func TestMapOrder_SinCliente(t *testing.T) {
	out, err := crm.MapOrder(entity.Order{Number: "3"}, testSite)
	require.NoError(t, err)
	assert.Nil(t, out.Customer)
	m := toMap(t, out)
	assert.NotContains(t, m, "customer")
	assert.Equal(t, []any{}, m["items"])
}

func TestMapOrder_ItemsEnOrden(t *testing.T) {
	names := []string{"a", "b", "c", "d"}
	items := make([]entity.OrderItem, 0, len(names))
	for i, n := range names {
		items = append(items, entity.OrderItem{ProductName: n, Quantity: i + 1, Price: decimal.NewFromInt(int64(i))})
	}

	out, err := crm.MapOrder(entity.Order{Number: "4", Items: items}, testSite)
	require.NoError(t, err)
	require.Len(t, out.Items, len(names))
	for i, n := range names {
		assert.Equal(t, n, out.Items[i].Offer.Name)
		assert.Equal(t, i+1, out.Items[i].Quantity)
	}
}

func TestMapOrder_SinSite(t *testing.T) {
	_, err := crm.MapOrder(entity.Order{Number: "5"}, "")
	assert.ErrorIs(t, err, domain.ErrSiteNotConfigured)
}

// ── MapPayment ────────────────────────────────────────────────────────────────

func TestMapPayment_EscenarioSinComentario(t *testing.T) {
	out := crm.MapPayment(entity.Payment{Amount: decimal.NewFromFloat(50.0), Type: "cash"}, "1001")

	assert.JSONEq(t, `{"amount":50.0,"type":"cash","order":{"id":"1001"}}`, toJSON(t, out))
	assert.NotContains(t, toMap(t, out), "comment")
}

func TestMapPayment_Comentario(t *testing.T) {
	out := crm.MapPayment(entity.Payment{
		Amount:  decimal.RequireFromString("12.50"),
		Type:    "bank-card",
		Comment: "pago parcial",
	}, "77")

	m := toMap(t, out)
	assert.Equal(t, "pago parcial", m["comment"])
	assert.Equal(t, 12.5, m["amount"])
	assert.Equal(t, "bank-card", m["type"])
	assert.Equal(t, map[string]any{"id": "77"}, m["order"])
}

func TestMapPayment_TipoVacioSeConserva(t *testing.T) {
	out := crm.MapPayment(entity.Payment{Amount: decimal.NewFromInt(1)}, "9")
	assert.JSONEq(t, `{"amount":1,"type":"","order":{"id":"9"}}`, toJSON(t, out))
}

// ── Ida y vuelta ──────────────────────────────────────────────────────────────

func TestRoundTrip_EstructuraIdentica(t *testing.T) {
	order, err := crm.MapOrder(entity.Order{
		Number:   "10",
		Customer: &entity.Customer{FirstName: "Jo", LastName: "Doe", Email: "jo@x.com"},
		Items: []entity.OrderItem{
			{ProductName: "P1", Quantity: 1, Price: decimal.RequireFromString("0.10")},
			{ProductName: "P2", Quantity: 3, Price: decimal.RequireFromString("1000")},
		},
	}, testSite)
	require.NoError(t, err)

	values := []any{
		crm.MapCustomer(entity.Customer{FirstName: "Jo", Email: "jo@x.com", Phone: "1"}),
		order,
		crm.MapPayment(entity.Payment{Amount: decimal.RequireFromString("3.3"), Type: "cash", Comment: "c"}, "10"),
	}
	for _, v := range values {
		first := toMap(t, v)
		raw, err := json.Marshal(first)
		require.NoError(t, err)
		var second map[string]any
		require.NoError(t, json.Unmarshal(raw, &second))
		assert.Equal(t, first, second)
	}
}

// ── EncodeForm ────────────────────────────────────────────────────────────────

func TestEncodeForm_CampoJSONString(t *testing.T) {
	form, err := crm.EncodeForm(crm.FieldCustomer, crm.MapCustomer(entity.Customer{FirstName: "Tom & Jerry", Email: "t@j.com"}))
	require.NoError(t, err)

	require.Len(t, form, 1)
	assert.Equal(t, `{"firstName":"Tom & Jerry","email":"t@j.com"}`, form.Get(crm.FieldCustomer))
}
