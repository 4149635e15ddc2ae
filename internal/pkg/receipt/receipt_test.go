package receipt

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	doc := &Document{
		Title:         "Recibo de Compra",
		Number:        "ORD-20240610-0001",
		IssuedAt:      time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC),
		CustomerName:  "Ana Torres",
		CustomerEmail: "ana@example.com",
		Notes:         []string{"Entrega: 11/06/2024"},
		Items: []Item{
			{Description: "Casco urbano", Quantity: 2, UnitPrice: 450, LineTotal: 900},
			{Description: "Candado U-lock", Quantity: 1, UnitPrice: 620, LineTotal: 620},
		},
		Total: 1520,
	}

	out, err := Render(doc)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	// PDF files start with the %PDF magic header
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderNoItems(t *testing.T) {
	doc := &Document{
		Title:        "Solicitud de Reparación",
		Number:       "REP-20240610-0001",
		IssuedAt:     time.Now(),
		CustomerName: "Luis Pérez",
	}

	out, err := Render(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
