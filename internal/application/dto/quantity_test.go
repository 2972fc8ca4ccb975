package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-gateway/internal/application/dto"
)

func TestQuantity_AceptaEnterosYFlotantesIntegrales(t *testing.T) {
	tests := []struct {
		name string
		body string
		want dto.Quantity
	}{
		{name: "entero", body: `{"quantity":2}`, want: 2},
		{name: "flotante integral", body: `{"quantity":2.0}`, want: 2},
		{name: "entre comillas", body: `{"quantity":"3"}`, want: 3},
		{name: "null", body: `{"quantity":null}`, want: 0},
		{name: "ausente", body: `{}`, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item dto.OrderItemRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &item))
			assert.Equal(t, tt.want, item.Quantity)
		})
	}
}

func TestQuantity_RechazaFracciones(t *testing.T) {
	for _, body := range []string{`{"quantity":2.5}`, `{"quantity":"abc"}`, `{"quantity":1e20}`} {
		var item dto.OrderItemRequest
		assert.Error(t, json.Unmarshal([]byte(body), &item), body)
	}
}
