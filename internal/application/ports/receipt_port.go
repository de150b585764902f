package ports

import (
	"context"

	"github.com/jhoicas/mascotas-api/internal/domain/entity"
)

// ReceiptGenerator define el puerto de salida para el comprobante de un pedido.
// El caso de uso solo conoce este contrato; el adaptador (Maroto, mock) decide el formato.
type ReceiptGenerator interface {
	// GenerateOrderReceipt devuelve los bytes del documento (PDF) del pedido y su cliente.
	GenerateOrderReceipt(ctx context.Context, order *entity.Order, customer *entity.User) ([]byte, error)
}
