package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mascotas-api/internal/domain/entity"
)

func TestGenerateOrderReceipt(t *testing.T) {
	at := time.Date(2024, 3, 15, 9, 45, 0, 0, time.UTC)
	order := &entity.Order{
		ID: "6f1c2a8e-4b7d-4c1e-9a2b-3c4d5e6f7a8b", UserID: "u-1", Status: entity.OrderInProgress,
		Notes: "Tocar el timbre", CreatedAt: at, UpdatedAt: at,
	}
	customer := &entity.User{ID: "u-1", Name: "Ana", LastName: "Pérez", Email: "ana@example.com"}

	doc, err := NewReceiptGenerator("").GenerateOrderReceipt(context.Background(), order, customer)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")), "el documento debe ser un PDF")
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "#6F1C2A8E", shortID("6f1c2a8e-4b7d-4c1e-9a2b-3c4d5e6f7a8b"))
	assert.Equal(t, "#AB", shortID("ab"))
}

func TestFooterLegend(t *testing.T) {
	at := time.Date(2024, 3, 20, 18, 5, 0, 0, time.UTC)
	open := &entity.Order{Status: entity.OrderPending, UpdatedAt: at}
	closed := &entity.Order{Status: entity.OrderDelivered, UpdatedAt: at}

	assert.Equal(t, "Presente este comprobante al recibir su pedido.", footerLegend(open))
	assert.Equal(t, "Pedido cerrado el 20/03/2024 18:05.", footerLegend(closed))
}
